package gate

import (
	"strings"
	"testing"

	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/domain"
	"github.com/shopspring/decimal"
)

func amt(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestMissingServiceInfo(t *testing.T) {
	tests := []struct {
		name       string
		info       domain.ServiceInfo
		wantOK     bool
		wantAsk    []string
		wantNotAsk []string
	}{
		{
			name:   "complete record passes",
			info:   domain.ServiceInfo{CustomerName: "Thabo", ServiceType: "Full Wash", Amount: amt(180)},
			wantOK: true,
		},
		{
			name:       "only amount missing asks only about amount",
			info:       domain.ServiceInfo{CustomerName: "Thabo", ServiceType: "Full Wash"},
			wantAsk:    []string{"amount in Rand"},
			wantNotAsk: []string{"name", "type of service"},
		},
		{
			name:    "everything missing asks in column order",
			info:    domain.ServiceInfo{},
			wantAsk: []string{"customer's name", "type of service", "amount in Rand"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, ok := MissingServiceInfo(tt.info, "Moloi")
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v (prompt %q)", ok, tt.wantOK, prompt)
			}
			for _, want := range tt.wantAsk {
				if !strings.Contains(prompt, want) {
					t.Errorf("prompt %q missing %q", prompt, want)
				}
			}
			for _, notWant := range tt.wantNotAsk {
				if strings.Contains(prompt, notWant) {
					t.Errorf("prompt %q should not mention %q", prompt, notWant)
				}
			}
		})
	}
}

func TestMissingServiceInfo_PromptOrder(t *testing.T) {
	prompt, _ := MissingServiceInfo(domain.ServiceInfo{}, "Moloi")

	nameIdx := strings.Index(prompt, "customer's name")
	typeIdx := strings.Index(prompt, "type of service")
	amountIdx := strings.Index(prompt, "amount in Rand")
	if !(nameIdx < typeIdx && typeIdx < amountIdx) {
		t.Errorf("prompts out of order: %q", prompt)
	}
}

func TestMissingExpenseInfo(t *testing.T) {
	complete := domain.ExpenseInfo{Amount: amt(250), Supplier: "Makro", Category: "Supplies"}
	if _, ok := MissingExpenseInfo(complete, "Moloi"); !ok {
		t.Error("complete expense should pass the gate")
	}

	// "Other" is the extractor fallback and counts as missing.
	otherCat := domain.ExpenseInfo{Amount: amt(250), Supplier: "Makro", Category: domain.CategoryOther}
	prompt, ok := MissingExpenseInfo(otherCat, "Moloi")
	if ok {
		t.Fatal("category Other should not pass the gate")
	}
	if !strings.Contains(prompt, "What category?") {
		t.Errorf("prompt %q should ask for category", prompt)
	}
	if strings.Contains(prompt, "Who did you pay?") {
		t.Errorf("prompt %q should not ask for supplier", prompt)
	}
}
