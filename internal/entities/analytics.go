package entities

type ProductSales struct {
	ProductID    string
	ProductName  string
	TotalRevenue float64
}

type MonthSales struct {
	Month        string
	TotalRevenue float64
	OrderCount   int
}

type SalesAnalytics struct {
	TotalRevenue float64
	TotalOrders  int
	ByProduct    []ProductSales
	ByMonth      []MonthSales
	From         string
	To           string
}
