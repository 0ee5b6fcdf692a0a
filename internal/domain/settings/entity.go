package settings

import "github.com/shopspring/decimal"

// Settings is the singleton configuration row: the default hourly rate new
// workers inherit, the bcrypt hash of the admin password, and the company
// display profile used on invoices.
type Settings struct {
	HourlyRate        decimal.Decimal
	AdminPasswordHash string
	CompanyName       string
	CompanyLogo       *string
}
