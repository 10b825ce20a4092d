package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/analytics"
	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/domain"
	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/ledger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWriter struct {
	serviceInfo *domain.ServiceInfo
	expenseInfo *domain.ExpenseInfo
	fail        bool
}

func (w *stubWriter) SaveCompleteService(ctx context.Context, info domain.ServiceInfo) (*ledger.ServiceReceipt, error) {
	if w.fail {
		return nil, errors.New("store offline")
	}
	w.serviceInfo = &info
	return &ledger.ServiceReceipt{CustomerID: "CW001", TransactionID: "REV001"}, nil
}

func (w *stubWriter) SaveExpense(ctx context.Context, info domain.ExpenseInfo) (string, error) {
	if w.fail {
		return "", errors.New("store offline")
	}
	w.expenseInfo = &info
	return "EXP001", nil
}

type stubReporter struct{}

func (stubReporter) EnhancedReport(ctx context.Context) string  { return "ENHANCED" }
func (stubReporter) AnalyzeCashFlow(ctx context.Context) string { return "CASHFLOW" }
func (stubReporter) IncomeStatement(ctx context.Context) string { return "STATEMENT" }
func (stubReporter) ExplainFinanceTerm(term string) string      { return "TERM:" + term }
func (stubReporter) LoadBusinessData(ctx context.Context) (*analytics.BusinessData, error) {
	return nil, errors.New("no data")
}

type stubGenerator struct {
	reply string
	err   error
	calls int
}

func (g *stubGenerator) Generate(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func newTestRouter(w *stubWriter, g *stubGenerator) *Router {
	return NewRouter(w, stubReporter{}, g,
		NewConversationStore(50), domain.NewClock(2),
		"Moloi", "MR Banks Car Detailing", zerolog.Nop())
}

func TestProcessMessage_Routing(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			"complete expense",
			"Paid Makro for soap and detergent R250",
			"Expense logged: EXP001 - R250 to Makro for Supplies.",
		},
		{
			"complete service",
			"customer Thabo, full wash, paid R180 cash",
			"Service logged: CW001 (Thabo) - Full Wash R180 (Paid).",
		},
		{
			"business report trigger",
			"How are the business numbers looking?",
			"ENHANCED",
		},
		{
			"cash flow trigger",
			"Show me my cash flow",
			"CASHFLOW",
		},
		{
			"income statement trigger",
			"Give me the income statement",
			"STATEMENT",
		},
		{
			"glossary question",
			"What is profit?",
			"TERM:profit",
		},
		{
			"glossary picks first matching term",
			"Explain revenue and margin please",
			"TERM:revenue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&stubWriter{}, &stubGenerator{reply: "LLM"})
			got := r.ProcessMessage(context.Background(), "whatsapp:+27820000001", tt.message)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProcessMessage_PurchaseIsNeverAService(t *testing.T) {
	w := &stubWriter{}
	r := newTestRouter(w, &stubGenerator{reply: "LLM"})

	// "customer" forces the message out of the expense branch even though
	// "bought" and a digit are present.
	r.ProcessMessage(context.Background(), "s", "customer Thabo bought a full wash R180")
	assert.Nil(t, w.expenseInfo)
}

func TestProcessMessage_IncompleteServiceAsksForDetails(t *testing.T) {
	w := &stubWriter{}
	r := newTestRouter(w, &stubGenerator{reply: "LLM"})

	got := r.ProcessMessage(context.Background(), "s", "served customer, full wash done, 1 car")
	assert.True(t, strings.HasPrefix(got, "I need a few more details, Moloi:"), "got %q", got)
	assert.Nil(t, w.serviceInfo, "incomplete record must not be saved")
}

func TestProcessMessage_IncompleteExpenseAsksForDetails(t *testing.T) {
	w := &stubWriter{}
	r := newTestRouter(w, &stubGenerator{reply: "LLM"})

	got := r.ProcessMessage(context.Background(), "s", "spent 500 on stock")
	assert.True(t, strings.HasPrefix(got, "I need more details for the expense, Moloi:"), "got %q", got)
	assert.Nil(t, w.expenseInfo)
}

func TestProcessMessage_SaveFailure(t *testing.T) {
	r := newTestRouter(&stubWriter{fail: true}, &stubGenerator{reply: "LLM"})

	got := r.ProcessMessage(context.Background(), "s", "Paid Makro for soap and detergent R250")
	assert.Equal(t, "Sorry Moloi, couldn't save that expense. Try again in a moment.", got)

	got = r.ProcessMessage(context.Background(), "s", "customer Thabo, full wash, paid R180 cash")
	assert.Equal(t, "Sorry Moloi, couldn't save that service. Try again in a moment.", got)
}

func TestProcessMessage_FreeformGoesToModel(t *testing.T) {
	g := &stubGenerator{reply: "Hello Moloi, how can I help?"}
	r := newTestRouter(&stubWriter{}, g)

	got := r.ProcessMessage(context.Background(), "s", "hello there")
	assert.Equal(t, "Hello Moloi, how can I help?", got)
	assert.Equal(t, 1, g.calls)
}

func TestProcessMessage_StructuredBranchesSkipModel(t *testing.T) {
	g := &stubGenerator{reply: "LLM"}
	r := newTestRouter(&stubWriter{}, g)

	r.ProcessMessage(context.Background(), "s", "customer Thabo, full wash, paid R180 cash")
	r.ProcessMessage(context.Background(), "s", "Show me my cash flow")
	assert.Zero(t, g.calls, "rule-matched messages must not reach the model")
}

func TestProcessMessage_ModelFailure(t *testing.T) {
	r := newTestRouter(&stubWriter{}, &stubGenerator{err: errors.New("quota")})

	got := r.ProcessMessage(context.Background(), "s", "hello there")
	assert.Equal(t, "Sorry Moloi, I'm having a technical moment. Could you repeat that?", got)
}

func TestProcessMessage_RecordsConversation(t *testing.T) {
	r := newTestRouter(&stubWriter{}, &stubGenerator{reply: "hi"})

	r.ProcessMessage(context.Background(), "whatsapp:+27820000001", "hello")
	history := r.conversations.History("whatsapp:+27820000001")
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "hello", history[0].Text)
	assert.Equal(t, "assistant", history[1].Role)
	assert.Equal(t, "hi", history[1].Text)
}
