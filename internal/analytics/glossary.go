package analytics

import (
	"fmt"
	"strings"
)

var termExplanations = map[string]string{
	"profit":     "Money left after paying all expenses. Revenue minus expenses.",
	"loss":       "When you spend more than you earn. Expenses are higher than revenue.",
	"revenue":    "All money coming into the business from customers.",
	"income":     "Same as revenue - money earned from services.",
	"expenses":   "All money spent to run the business - supplies, utilities, wages.",
	"cash flow":  "Money moving in and out of business. Positive = more in than out.",
	"margin":     "Profit as percentage of revenue. Shows how profitable each rand of sales is.",
	"break even": "Point where revenue equals expenses. No profit, no loss.",
}

// ExplainFinanceTerm answers "what is profit" style questions from a fixed
// glossary. Lookup is case-insensitive on the whole term.
func (e *Engine) ExplainFinanceTerm(term string) string {
	explanation, ok := termExplanations[strings.ToLower(term)]
	if !ok {
		return fmt.Sprintf("Not sure about that term, %s. Ask me about profit, revenue, expenses, cash flow, or margins.", e.owner)
	}
	return fmt.Sprintf("%s: %s", titleTerm(term), explanation)
}

func titleTerm(term string) string {
	words := strings.Fields(strings.ToLower(term))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
