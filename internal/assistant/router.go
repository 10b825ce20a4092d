// Package assistant turns incoming WhatsApp messages into replies. Messages
// are classified by keyword rules first; only messages no rule claims go to
// the language model.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/analytics"
	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/domain"
	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/extract"
	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/gate"
	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/ledger"
	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/llm"
	"github.com/rs/zerolog"
)

var (
	expenseIndicators = []string{"paid", "bought", "spent", "cost", "expense", "bill", "salary"}
	serviceIndicators = []string{"served", "customer", "wash", "service", "finished", "completed"}
	reportTriggers    = []string{"business", "report", "numbers", "performance"}
	statementTriggers = []string{"income statement", "profit and loss"}
	explainTriggers   = []string{"what is", "explain"}
	explainTerms      = []string{"profit", "loss", "revenue", "margin"}

	// Order decides which term a combined question resolves to.
	glossaryTerms = []string{"profit", "loss", "revenue", "income", "expenses", "cash flow", "margin"}
)

// RecordWriter persists completed service and expense records.
type RecordWriter interface {
	SaveCompleteService(ctx context.Context, info domain.ServiceInfo) (*ledger.ServiceReceipt, error)
	SaveExpense(ctx context.Context, info domain.ExpenseInfo) (string, error)
}

// Reporter answers analytical questions over the ledger.
type Reporter interface {
	EnhancedReport(ctx context.Context) string
	AnalyzeCashFlow(ctx context.Context) string
	IncomeStatement(ctx context.Context) string
	ExplainFinanceTerm(term string) string
	LoadBusinessData(ctx context.Context) (*analytics.BusinessData, error)
}

// Router classifies each incoming message and produces the reply.
type Router struct {
	writer        RecordWriter
	reporter      Reporter
	generator     llm.Generator
	conversations *ConversationStore
	clock         domain.Clock
	owner         string
	business      string
	log           zerolog.Logger
}

// NewRouter wires the message router.
func NewRouter(
	writer RecordWriter,
	reporter Reporter,
	generator llm.Generator,
	conversations *ConversationStore,
	clock domain.Clock,
	ownerName, businessName string,
	log zerolog.Logger,
) *Router {
	return &Router{
		writer:        writer,
		reporter:      reporter,
		generator:     generator,
		conversations: conversations,
		clock:         clock,
		owner:         ownerName,
		business:      businessName,
		log:           log,
	}
}

// ProcessMessage produces the reply for one incoming message and records both
// sides of the exchange in the conversation history.
func (r *Router) ProcessMessage(ctx context.Context, sender, message string) string {
	r.conversations.Append(sender, Turn{Role: "user", Text: message, At: r.clock.Now()})

	reply := r.route(ctx, sender, message)

	r.conversations.Append(sender, Turn{Role: "assistant", Text: reply, At: r.clock.Now()})
	return reply
}

func (r *Router) route(ctx context.Context, sender, message string) string {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, expenseIndicators) &&
		!containsAny(lower, serviceIndicators) &&
		containsDigit(message):
		return r.handleExpense(ctx, message)

	case containsAny(lower, serviceIndicators) &&
		containsDigit(message) &&
		(strings.Contains(lower, "customer") || strings.Contains(lower, "client")):
		return r.handleService(ctx, message)

	case containsAny(lower, reportTriggers):
		return r.reporter.EnhancedReport(ctx)

	case strings.Contains(lower, "cash flow"):
		return r.reporter.AnalyzeCashFlow(ctx)

	case containsAny(lower, statementTriggers):
		return r.reporter.IncomeStatement(ctx)

	case containsAny(lower, explainTriggers) && containsAny(lower, explainTerms):
		for _, term := range glossaryTerms {
			if strings.Contains(lower, term) {
				return r.reporter.ExplainFinanceTerm(term)
			}
		}
	}

	return r.handleFreeform(ctx, sender, message)
}

func (r *Router) handleExpense(ctx context.Context, message string) string {
	info := extract.ExpenseInfo(message)

	if prompt, ok := gate.MissingExpenseInfo(info, r.owner); !ok {
		return prompt
	}

	id, err := r.writer.SaveExpense(ctx, info)
	if err != nil {
		return fmt.Sprintf("Sorry %s, couldn't save that expense. Try again in a moment.", r.owner)
	}
	return fmt.Sprintf("Expense logged: %s - R%s to %s for %s.",
		id, analytics.FormatRand(info.Amount.Abs()), info.Supplier, info.Category)
}

func (r *Router) handleService(ctx context.Context, message string) string {
	info := extract.ServiceInfo(message)

	if prompt, ok := gate.MissingServiceInfo(info, r.owner); !ok {
		return prompt
	}

	receipt, err := r.writer.SaveCompleteService(ctx, info)
	if err != nil {
		return fmt.Sprintf("Sorry %s, couldn't save that service. Try again in a moment.", r.owner)
	}
	return fmt.Sprintf("Service logged: %s (%s) - %s R%s (%s).",
		receipt.CustomerID, info.CustomerName, info.ServiceType,
		analytics.FormatRand(*info.Amount), info.PaymentStatus)
}

// handleFreeform asks the language model, with a system prompt carrying the
// live business numbers when the ledger is reachable.
func (r *Router) handleFreeform(ctx context.Context, sender, message string) string {
	reply, err := r.generator.Generate(ctx, r.systemPrompt(ctx), message)
	if err != nil {
		r.log.Error().Err(err).Str("sender", sender).Msg("Model call failed")
		return fmt.Sprintf("Sorry %s, I'm having a technical moment. Could you repeat that?", r.owner)
	}
	return reply
}

func (r *Router) systemPrompt(ctx context.Context) string {
	today := r.clock.Now().Format("02 January 2006")

	businessContext := ""
	if data, err := r.reporter.LoadBusinessData(ctx); err == nil {
		businessContext = fmt.Sprintf(`
REAL-TIME BUSINESS STATUS:
Financial: R%s revenue | R%s expenses | R%s profit
Payment Status: %.1f%% payments collected (R%s)
Operations: %d services | %.1f%% completion rate
`,
			analytics.FormatRand(data.TotalRevenue),
			analytics.FormatRand(data.TotalExpenses),
			analytics.FormatRand(data.NetProfit),
			data.PaymentRate,
			analytics.FormatRand(data.PaidRevenue),
			len(data.Operations),
			data.CompletionRate)
	}

	return fmt.Sprintf(`You are %s's business assistant for %s in South Africa.

CONTEXT AWARENESS:
- Today's date in South Africa: %s
- Currency: South African Rand (R)
- Business location: South Africa
- Week numbers: 1-4 within each month

COMMUNICATION STYLE:
- Always call him "%s"
- Keep responses SHORT and practical
- Use simple, clear English
- Be direct and helpful
- Use "Rand" or "R" for currency

SMART DATA COLLECTION:
- Services: Customer Name, Service Type, Amount (Rand), Payment Method, Payment Status
- Expenses: Amount (Rand), Supplier, Category
- Extract from full sentences when possible
- Auto-generate IDs and calculate dates/weeks
- Track payment status (Paid/Unpaid)

CURRENT BUSINESS DATA:
%s

DETECTION RULES:
- Service: served, customer, wash, service, finished, completed
- Expense: paid, bought, spent, cost, expense, bill, salary
- NEVER log purchases as services
- Track both service completion AND payment status

Be conversational but focused on accurate data collection.`,
		r.owner, r.business, today, r.owner, businessContext)
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}
