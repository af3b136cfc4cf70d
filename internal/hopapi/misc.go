package hopapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"
)

func (c *Client) ListCentres(ctx context.Context) ([]entities.Centre, error) {
	var raw []Centre
	if err := c.do(ctx, http.MethodGet, "/api/centres", nil, nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch centres: %w", err)
	}
	out := make([]entities.Centre, 0, len(raw))
	for _, ce := range raw {
		out = append(out, CentreToEntity(ce))
	}
	return out, nil
}

// SalesAnalytics fetches revenue figures, optionally bounded by a date
// range in YYYY-MM-DD form.
func (c *Client) SalesAnalytics(ctx context.Context, from, to string) (entities.SalesAnalytics, error) {
	query := url.Values{}
	if from != "" {
		query.Set("fromDate", from)
	}
	if to != "" {
		query.Set("toDate", to)
	}

	var res struct {
		Success  bool   `json:"success"`
		Message  string `json:"message,omitempty"`
		Overview struct {
			TotalRevenue float64 `json:"totalRevenue"`
			TotalOrders  int     `json:"totalOrders"`
		} `json:"overview"`
		ProductWiseSales []struct {
			ID           string  `json:"_id"`
			ProductName  string  `json:"productName,omitempty"`
			TotalRevenue float64 `json:"totalRevenue"`
		} `json:"productWiseSales"`
		MonthWiseSales []struct {
			Month        string  `json:"month"`
			TotalRevenue float64 `json:"totalRevenue"`
			OrderCount   int     `json:"orderCount"`
		} `json:"monthWiseSales"`
		Filter struct {
			From string `json:"from"`
			To   string `json:"to"`
		} `json:"filter"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/analytics/sales-analytics", query, nil, &res); err != nil {
		return entities.SalesAnalytics{}, fmt.Errorf("failed to fetch analytics: %w", err)
	}
	if !res.Success {
		return entities.SalesAnalytics{}, fmt.Errorf("analytics request rejected: %s", res.Message)
	}

	out := entities.SalesAnalytics{
		TotalRevenue: res.Overview.TotalRevenue,
		TotalOrders:  res.Overview.TotalOrders,
		From:         res.Filter.From,
		To:           res.Filter.To,
	}
	for _, p := range res.ProductWiseSales {
		name := p.ProductName
		if name == "" {
			name = "Product " + p.ID
		}
		out.ByProduct = append(out.ByProduct, entities.ProductSales{
			ProductID:    p.ID,
			ProductName:  name,
			TotalRevenue: p.TotalRevenue,
		})
	}
	for _, m := range res.MonthWiseSales {
		out.ByMonth = append(out.ByMonth, entities.MonthSales{
			Month:        m.Month,
			TotalRevenue: m.TotalRevenue,
			OrderCount:   m.OrderCount,
		})
	}
	return out, nil
}

// OfflineOrNoCameraCustomers feeds the notification poller; date is in
// YYYY-MM-DD form.
func (c *Client) OfflineOrNoCameraCustomers(ctx context.Context, date string) ([]entities.Customer, error) {
	query := url.Values{}
	query.Set("date", date)

	var res struct {
		Message   string     `json:"message"`
		Customers []Customer `json:"customers"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/customer/customers/offline-or-nocamera", query, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to fetch customer alerts: %w", err)
	}
	out := make([]entities.Customer, 0, len(res.Customers))
	for _, cu := range res.Customers {
		out = append(out, CustomerToEntity(cu))
	}
	return out, nil
}

// Login authenticates a vendor. Only accounts with the Vendor role may use
// the dashboard; anything else is rejected regardless of credentials.
func (c *Client) Login(ctx context.Context, userID, password string) (string, entities.Vendor, error) {
	body := map[string]string{"userId": userID, "pass": password}

	var res struct {
		Success bool `json:"success"`
		Data    struct {
			Token   string `json:"token"`
			HopUser Vendor `json:"hopUser"`
		} `json:"data"`
		// Some deployments answer with the flat shape instead.
		Token   string  `json:"token"`
		HopUser *Vendor `json:"hopUser"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/hop-user/login", nil, body, &res); err != nil {
		return "", entities.Vendor{}, fmt.Errorf("login failed: %w", err)
	}

	token, user := res.Data.Token, res.Data.HopUser
	if token == "" && res.Token != "" && res.HopUser != nil {
		token, user = res.Token, *res.HopUser
	}
	if token == "" || user.Role != entities.RoleVendor {
		return "", entities.Vendor{}, entities.ErrLoginRejected
	}
	return token, VendorToEntity(user), nil
}

func (c *Client) GetVendor(ctx context.Context, userID string) (entities.Vendor, error) {
	var raw Vendor
	if err := c.do(ctx, http.MethodGet, "/api/hop-user/"+url.PathEscape(userID), nil, nil, &raw); err != nil {
		return entities.Vendor{}, fmt.Errorf("failed to fetch vendor: %w", err)
	}
	return VendorToEntity(raw), nil
}
