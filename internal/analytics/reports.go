package analytics

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AnalyzeCashFlow summarises money in versus money out in one sentence.
func (e *Engine) AnalyzeCashFlow(ctx context.Context) string {
	data, err := e.LoadBusinessData(ctx)
	if err != nil {
		return fmt.Sprintf("Can't access business data right now, %s.", e.owner)
	}

	cashIn := data.TotalRevenue
	cashOut := data.TotalExpenses
	net := cashIn.Sub(cashOut)

	if net.IsPositive() {
		return fmt.Sprintf("Cash flow is positive, %s. R%s coming in, R%s going out. Net cash flow: R%s.",
			e.owner, FormatRand(cashIn), FormatRand(cashOut), FormatRand(net))
	}
	return fmt.Sprintf("Cash flow is negative, %s. R%s coming in, R%s going out. You're short R%s.",
		e.owner, FormatRand(cashIn), FormatRand(cashOut), FormatRand(net.Abs()))
}

// IncomeStatement renders a basic multi-line income statement.
func (e *Engine) IncomeStatement(ctx context.Context) string {
	data, err := e.LoadBusinessData(ctx)
	if err != nil {
		return fmt.Sprintf("Can't access business data, %s.", e.owner)
	}

	revenue := data.TotalRevenue
	expenses := data.TotalExpenses
	netIncome := revenue.Sub(expenses)

	var b strings.Builder
	b.WriteString("INCOME STATEMENT:\n")
	fmt.Fprintf(&b, "Revenue: R%s\n", FormatRand(revenue))
	fmt.Fprintf(&b, "Expenses: R%s\n", FormatRand(expenses))
	fmt.Fprintf(&b, "Net Income: R%s\n", FormatRand(netIncome))

	if netIncome.IsPositive() {
		fmt.Fprintf(&b, "You made a profit of R%s", FormatRand(netIncome))
	} else {
		fmt.Fprintf(&b, "You made a loss of R%s", FormatRand(netIncome.Abs()))
	}
	return b.String()
}

// EnhancedReport builds the full business insight reply: profitability,
// payment collection, best service, customer counts, and a recommendation
// when one applies.
func (e *Engine) EnhancedReport(ctx context.Context) string {
	data, err := e.LoadBusinessData(ctx)
	if err != nil {
		return fmt.Sprintf("Sorry %s, can't access business data right now. Try again in a moment.", e.owner)
	}

	var b strings.Builder
	if data.NetProfit.IsPositive() {
		fmt.Fprintf(&b, "Business is profitable, %s. Revenue R%s, expenses R%s. You made R%s profit.",
			e.owner, FormatRand(data.TotalRevenue), FormatRand(data.TotalExpenses), FormatRand(data.NetProfit))
	} else {
		fmt.Fprintf(&b, "Business is making a loss, %s. Revenue R%s, expenses R%s. Loss of R%s.",
			e.owner, FormatRand(data.TotalRevenue), FormatRand(data.TotalExpenses), FormatRand(data.NetProfit.Abs()))
	}

	fmt.Fprintf(&b, " Payment rate: %.1f%% (R%s collected).", data.PaymentRate, FormatRand(data.PaidRevenue))

	if name, perf := bestService(data.ServicePerformance); perf != nil {
		fmt.Fprintf(&b, " Your best service is %s with R%s from %d jobs.",
			name, FormatRand(perf.Revenue), perf.Count)
	}

	fmt.Fprintf(&b, " You served %d customers, %d came back for more.",
		data.TotalCustomers, data.RepeatCustomers)

	if data.PaymentRate < 90 {
		b.WriteString(" Focus on collecting payments - some customers still owe money.")
	} else if data.ProfitMargin < 10 {
		b.WriteString(" Profit is low - consider increasing prices or cutting expenses.")
	}

	return b.String()
}

// bestService picks the service type with the highest total revenue.
// Ties break on name so the report is deterministic.
func bestService(perf map[string]*ServicePerformance) (string, *ServicePerformance) {
	var bestName string
	var best *ServicePerformance
	for name, p := range perf {
		if best == nil || p.Revenue.GreaterThan(best.Revenue) ||
			(p.Revenue.Equal(best.Revenue) && name < bestName) {
			bestName, best = name, p
		}
	}
	return bestName, best
}

// FormatRand renders an amount rounded to whole rand with thousands
// separators, e.g. 12345.60 -> "12,346".
func FormatRand(d decimal.Decimal) string {
	s := d.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
