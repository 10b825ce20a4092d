package domain

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Operation is one completed service job, as stored on the Operations sheet.
// Column order matters: the workbook codec writes these nine fields in
// declaration order.
type Operation struct {
	CustomerID       string     // "CW" + zero-padded sequence
	CustomerName     string
	ServiceDate      civil.Date
	WeekNumber       int // 1-5 within the month
	Month            string
	ServiceCompleted string // "Yes" / "No"
	ServiceType      string
	Notes            string
	Status           string
}

// Revenue is one billable transaction linked to an Operation by CustomerID.
// Ten columns on the Revenue sheet.
type Revenue struct {
	TransactionID string // "REV" + zero-padded sequence
	CustomerID    string
	ServiceDate   civil.Date
	Month         string
	ServiceType   string
	Amount        decimal.Decimal // >= 0
	PaymentStatus string          // "Paid" / "Unpaid"
	PaymentMethod string          // "Cash" / "Card" / "EFT"
	Status        string          // display label, "Washed" / "Not yet Washed"
	WeekNumber    int
}

// Expense is one outgoing business cost. Amount is stored as a negative
// magnitude; the sign encodes the outflow. Nine columns on the Expenses sheet.
type Expense struct {
	TransactionID string // "EXP" + zero-padded sequence
	Date          civil.Date
	Month         string
	Category      string
	Description   string
	Amount        decimal.Decimal // <= 0 in storage
	Supplier      string
	Status        string
	Notes         string
}

// ServiceInfo is a partial service record extracted from one message.
// Nil pointers mean the field could not be extracted; the completion gate
// prompts for them before anything is written.
type ServiceInfo struct {
	CustomerName  string
	ServiceType   string
	Amount        *decimal.Decimal
	PaymentMethod string
	PaymentStatus string
}

// ExpenseInfo is a partial expense record extracted from one message.
type ExpenseInfo struct {
	Amount      *decimal.Decimal
	Supplier    string
	Category    string // "Other" counts as not yet provided
	Description string
}

const (
	PaymentStatusPaid   = "Paid"
	PaymentStatusUnpaid = "Unpaid"

	ServiceCompletedYes = "Yes"
	ServiceCompletedNo  = "No"

	// Defaults applied at write time when extraction left a field empty.
	DefaultCustomerName = "Walk-in Customer"
	DefaultServiceType  = "General Service"
	DefaultSupplier     = "Unknown"

	// CategoryOther is the expense category fallback. The completion gate
	// treats it as missing and asks for a real category.
	CategoryOther = "Other"
)
