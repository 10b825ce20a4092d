// Package extract turns a raw message string into a partial service or
// expense record using ordered keyword and regex rules. Extraction is pure:
// a field that no rule matches stays absent, and the completion gate prompts
// for it. No rule here is an error condition.
package extract

import (
	"strings"
	"unicode"

	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/domain"
	"github.com/shopspring/decimal"
)

// ServiceInfo extracts a partial service record from a message.
func ServiceInfo(message string) domain.ServiceInfo {
	lower := strings.ToLower(message)

	serviceType, _ := matchKeywordRules(lower, serviceTypeRules)

	paymentMethod, ok := matchKeywordRules(lower, paymentMethodRules)
	if !ok {
		paymentMethod = "Cash"
	}

	amount := Amount(message)
	if amount == nil && serviceType != "" {
		// No explicit amount but the service type is known: suggest the
		// catalog price.
		if price, ok := domain.ServicePrice(serviceType); ok {
			amount = &price
		}
	}

	paymentStatus := domain.PaymentStatusPaid
	if containsAny(lower, deferredPaymentKeywords) {
		paymentStatus = domain.PaymentStatusUnpaid
	}

	return domain.ServiceInfo{
		CustomerName:  customerName(message),
		ServiceType:   serviceType,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		PaymentStatus: paymentStatus,
	}
}

// ExpenseInfo extracts a partial expense record from a message.
func ExpenseInfo(message string) domain.ExpenseInfo {
	lower := strings.ToLower(message)

	category, ok := matchKeywordRules(lower, categoryRules)
	if !ok {
		category = domain.CategoryOther
	}

	return domain.ExpenseInfo{
		Amount:      Amount(message),
		Supplier:    supplier(message),
		Category:    category,
		Description: truncate(message, 100),
	}
}

// Amount finds a money amount in a message. Patterns are tried in order; the
// first pattern with at least one parseable number wins, and within that
// pattern the maximum value is taken.
func Amount(message string) *decimal.Decimal {
	for _, pattern := range amountPatterns {
		matches := pattern.FindAllStringSubmatch(message, -1)
		if len(matches) == 0 {
			continue
		}

		var best *decimal.Decimal
		for _, m := range matches {
			raw := strings.ReplaceAll(m[1], ",", "")
			value, err := decimal.NewFromString(raw)
			if err != nil {
				continue
			}
			if best == nil || value.GreaterThan(*best) {
				v := value
				best = &v
			}
		}
		if best != nil {
			return best
		}
	}
	return nil
}

func customerName(message string) string {
	for _, pattern := range namePatterns {
		m := pattern.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		candidate := titleCase(strings.TrimSpace(m[1]))
		if isExcludedName(candidate) {
			continue
		}
		return candidate
	}
	return ""
}

func supplier(message string) string {
	for _, pattern := range supplierPatterns {
		m := pattern.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		candidate := whitespaceRun.ReplaceAllString(strings.TrimSpace(m[1]), " ")
		if len(candidate) <= 1 || isAllDigits(candidate) {
			continue
		}
		return candidate
	}
	return ""
}

// matchKeywordRules returns the result of the first rule with any keyword
// contained in the lowercased message.
func matchKeywordRules(lower string, rules []keywordRule) (string, bool) {
	for _, rule := range rules {
		if containsAny(lower, rule.Keywords) {
			return rule.Result, true
		}
	}
	return "", false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func isExcludedName(candidate string) bool {
	for _, excluded := range excludedNames {
		if candidate == excluded {
			return true
		}
	}
	return false
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// titleCase upper-cases the first letter of each space-separated word and
// lower-cases the rest, e.g. "john DOE" -> "John Doe".
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// truncate keeps the first n characters, then trims surrounding whitespace.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		s = string(runes[:n])
	}
	return strings.TrimSpace(s)
}
