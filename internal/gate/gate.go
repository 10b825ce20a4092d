// Package gate decides whether an extracted record is complete enough to
// persist. Given a partial record it produces a single reply asking for every
// missing required field, in sheet column order; persistence is blocked until
// the gate passes.
package gate

import (
	"fmt"
	"strings"

	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/domain"
)

// MissingServiceInfo returns a prompt asking for the required service fields
// that are still absent, or ok=true when the record may be written.
// Required: customer name, service type, amount — asked in that order.
func MissingServiceInfo(info domain.ServiceInfo, ownerName string) (prompt string, ok bool) {
	var missing []string

	if info.CustomerName == "" {
		missing = append(missing, "What's the customer's name?")
	}
	if info.ServiceType == "" {
		missing = append(missing, "What type of service? (Basic Wash, Full Wash, Premium Wash, or Interior Only)")
	}
	if info.Amount == nil {
		missing = append(missing, "What's the service amount in Rand?")
	}

	if len(missing) == 0 {
		return "", true
	}
	return fmt.Sprintf("I need a few more details, %s: %s", ownerName, strings.Join(missing, " ")), false
}

// MissingExpenseInfo returns a prompt for absent expense fields, or ok=true.
// Required: amount, supplier, category — a category of "Other" counts as
// missing because the extractor falls back to it.
func MissingExpenseInfo(info domain.ExpenseInfo, ownerName string) (prompt string, ok bool) {
	var missing []string

	if info.Amount == nil {
		missing = append(missing, "How much was the expense in Rand?")
	}
	if info.Supplier == "" {
		missing = append(missing, "Who did you pay?")
	}
	if info.Category == "" || info.Category == domain.CategoryOther {
		missing = append(missing, "What category? (Supplies, Equipment, Utilities, Staff, Marketing, Fuel, or Maintenance)")
	}

	if len(missing) == 0 {
		return "", true
	}
	return fmt.Sprintf("I need more details for the expense, %s: %s", ownerName, strings.Join(missing, " ")), false
}
