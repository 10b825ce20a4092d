package extract

import (
	"strings"
	"testing"

	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_MaxOfMatchesWins(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "currency marker beats bare digits",
			message: "served customer John, paid R120, washed 3 cars",
			want:    "120",
		},
		{
			name:    "largest bare number wins within fallback pattern",
			message: "bought 3 towels and 2 buckets costing 450 in total",
			want:    "450",
		},
		{
			name:    "rand suffix",
			message: "spent 250 rand on soap",
			want:    "250",
		},
		{
			name:    "thousands separator",
			message: "paid R1,200 for the new pressure machine",
			want:    "1200",
		},
		{
			name:    "cents",
			message: "electricity bill R340.50",
			want:    "340.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Amount(tt.message)
			require.NotNil(t, got)
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "Amount(%q) = %s, want %s", tt.message, got, want)
		})
	}
}

func TestAmount_NoNumber(t *testing.T) {
	assert.Nil(t, Amount("washed the bakkie for the regular guy"))
}

func TestServiceInfo_ServiceTypePrecedence(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"did a basic wash for customer Thabo R120", "Basic Wash"},
		{"full wash done", "Full Wash"},
		{"premium detail job", "Premium Wash"},
		{"interior clean only", "Interior Only"},
		// Two groups match: the earlier-declared catalog entry wins.
		{"basic and full wash combo", "Basic Wash"},
		{"full premium package", "Full Wash"},
		{"no wash words here at all", ""},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			info := ServiceInfo(tt.message)
			assert.Equal(t, tt.want, info.ServiceType)
		})
	}
}

func TestServiceInfo_PaymentMethod(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"customer paid cash", "Cash"},
		{"she swiped her card", "Card"},
		{"paid by card", "Card"},
		{"sent an eft this morning", "EFT"},
		{"bank transfer received", "EFT"},
		{"no method mentioned", "Cash"}, // default
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			info := ServiceInfo(tt.message)
			assert.Equal(t, tt.want, info.PaymentMethod)
		})
	}
}

func TestServiceInfo_CustomerName(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"after customer keyword", "customer Thabo, full wash, paid R180 cash", "Thabo"},
		{"two-word name", "client Thabo Mokoena wants a premium wash", "Thabo Mokoena"},
		{"name before came", "Dlamini came in, basic wash R120", "Dlamini"},
		{"honorific", "ms Naledi, interior only", "Naledi"},
		{"keyword candidates rejected", "served customer, full wash done", ""},
		{"no name at all", "washed a car R120", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ServiceInfo(tt.message)
			assert.Equal(t, tt.want, info.CustomerName)
		})
	}
}

func TestServiceInfo_CatalogPriceDefault(t *testing.T) {
	// No number in the message, but the service type is known: the catalog
	// price is suggested.
	info := ServiceInfo("finished a premium wash for customer Lebo")
	require.NotNil(t, info.Amount)
	assert.True(t, info.Amount.Equal(decimal.NewFromInt(280)))

	// Unknown service type and no number: amount stays absent.
	info = ServiceInfo("customer Lebo came by")
	assert.Nil(t, info.Amount)
}

func TestServiceInfo_PaymentStatus(t *testing.T) {
	paid := ServiceInfo("customer Thabo paid R180 for a full wash")
	assert.Equal(t, domain.PaymentStatusPaid, paid.PaymentStatus)

	unpaid := ServiceInfo("customer Thabo owes R180 for the full wash")
	assert.Equal(t, domain.PaymentStatusUnpaid, unpaid.PaymentStatus)

	later := ServiceInfo("customer Sipho will pay later for his wash R120")
	assert.Equal(t, domain.PaymentStatusUnpaid, later.PaymentStatus)
}

func TestExpenseInfo(t *testing.T) {
	info := ExpenseInfo("Paid Makro for soap and detergent R250")

	require.NotNil(t, info.Amount)
	assert.True(t, info.Amount.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, "Makro", info.Supplier)
	assert.Equal(t, "Supplies", info.Category)
	assert.Equal(t, "Paid Makro for soap and detergent R250", info.Description)
}

func TestExpenseInfo_CategoryPrecedence(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"bought wax and towels", "Supplies"},
		{"new vacuum machine", "Equipment"},
		{"electricity bill", "Utilities"},
		{"paid worker salary 800", "Staff"},
		{"printed flyers for promotion", "Marketing"},
		{"diesel for the van", "Fuel"},
		{"repair on the pressure pump", "Equipment"}, // "pressure" fires before "repair"
		{"something unclassifiable", domain.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			info := ExpenseInfo(tt.message)
			assert.Equal(t, tt.want, info.Category)
		})
	}
}

func TestExpenseInfo_SupplierRejection(t *testing.T) {
	// Purely numeric or single-character candidates are rejected.
	info := ExpenseInfo("spent 500 on stock")
	assert.Equal(t, "", info.Supplier)
}

func TestExpenseInfo_DescriptionTruncated(t *testing.T) {
	long := strings.Repeat("soap and towels from the depot ", 10)
	info := ExpenseInfo(long)
	assert.LessOrEqual(t, len([]rune(info.Description)), 100)
}
