package domain

import "github.com/shopspring/decimal"

// ServiceCatalogEntry is one offered service with its standard price in Rand.
type ServiceCatalogEntry struct {
	Name  string
	Price decimal.Decimal
}

// ServiceCatalog lists the offered services in declaration order. The order
// is significant: the extractor resolves a service type by the first catalog
// entry whose keywords match, so Basic beats Full beats Premium beats Interior.
var ServiceCatalog = []ServiceCatalogEntry{
	{Name: "Basic Wash", Price: decimal.NewFromInt(120)},
	{Name: "Full Wash", Price: decimal.NewFromInt(180)},
	{Name: "Premium Wash", Price: decimal.NewFromInt(280)},
	{Name: "Interior Only", Price: decimal.NewFromInt(150)},
}

// ServicePrice returns the standard price for a catalog service name.
func ServicePrice(serviceType string) (decimal.Decimal, bool) {
	for _, e := range ServiceCatalog {
		if e.Name == serviceType {
			return e.Price, true
		}
	}
	return decimal.Decimal{}, false
}

// ExpenseCategories lists the fixed expense categories, in the order the
// extractor checks them. "Other" is the implicit fallback and is not listed.
var ExpenseCategories = []string{
	"Supplies",
	"Equipment",
	"Utilities",
	"Staff",
	"Marketing",
	"Fuel",
	"Maintenance",
}
