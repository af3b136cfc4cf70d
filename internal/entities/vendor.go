package entities

import "errors"

// Vendor is the authenticated actor operating the dashboard.
type Vendor struct {
	ID           string
	Name         string
	UserID       string
	Role         string
	MobileNumber string
	Status       string
}

const RoleVendor = "Vendor"

// Centre is a delivery destination associated with an order.
type Centre struct {
	ID         string
	Name       string
	ShortCode  string
	BranchName string
}

// Customer appears in the offline-or-no-camera notification feed.
type Customer struct {
	ID         string
	Name       string
	CentreName string
	BranchName string
	Reason     string
}

var ErrLoginRejected = errors.New("login not allowed")
