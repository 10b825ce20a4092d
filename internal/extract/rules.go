package extract

import "regexp"

// The extractor is a set of ordered rule lists. Order is load-bearing
// everywhere in this file: the first matching rule wins, and reordering a
// list changes classification results.

// keywordRule maps a set of trigger keywords to a result label. Keywords are
// matched by substring containment against the lowercased message.
type keywordRule struct {
	Result   string
	Keywords []string
}

// serviceTypeRules resolves a service type. Basic beats Full beats Premium
// beats Interior when a message matches more than one group.
var serviceTypeRules = []keywordRule{
	{Result: "Basic Wash", Keywords: []string{"basic", "simple", "quick wash", "standard", "normal"}},
	{Result: "Full Wash", Keywords: []string{"full", "complete", "comprehensive", "thorough"}},
	{Result: "Premium Wash", Keywords: []string{"premium", "deluxe", "luxury", "detailed", "top service"}},
	{Result: "Interior Only", Keywords: []string{"interior", "inside", "cabin clean", "inside only"}},
}

// paymentMethodRules resolves a payment method; Cash is the default when
// nothing matches.
var paymentMethodRules = []keywordRule{
	{Result: "Cash", Keywords: []string{"cash", "notes", "money"}},
	{Result: "Card", Keywords: []string{"card", "swipe", "tap"}},
	{Result: "EFT", Keywords: []string{"eft", "transfer", "bank transfer", "online"}},
}

// categoryRules resolves an expense category; "Other" is the default.
var categoryRules = []keywordRule{
	{Result: "Supplies", Keywords: []string{"soap", "chemical", "detergent", "wax", "towel", "bucket", "supplies", "cleaning", "brushes"}},
	{Result: "Equipment", Keywords: []string{"hose", "machine", "vacuum", "pressure", "equipment", "tool", "replacement"}},
	{Result: "Utilities", Keywords: []string{"water", "electricity", "power", "utility", "bill"}},
	{Result: "Staff", Keywords: []string{"salary", "wage", "pay", "employee", "worker", "staff"}},
	{Result: "Marketing", Keywords: []string{"advert", "marketing", "promotion", "flyer", "social media"}},
	{Result: "Fuel", Keywords: []string{"petrol", "diesel", "fuel", "gas"}},
	{Result: "Maintenance", Keywords: []string{"repair", "fix", "service", "maintenance", "upkeep"}},
}

// deferredPaymentKeywords flip payment status from the Paid default to Unpaid.
var deferredPaymentKeywords = []string{"unpaid", "owes", "later", "credit"}

// namePatterns locate a customer name; the first pattern with a match wins.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:customer|client|for|served)\s+([A-Za-z]+(?:\s+[A-Za-z]+)?)`),
	regexp.MustCompile(`(?i)([A-Za-z]+(?:\s+[A-Za-z]+)?)(?:\s+came|paid|wants)`),
	regexp.MustCompile(`(?i)(?:mr|mrs|ms)\.?\s+([A-Za-z]+)`),
}

// excludedNames rejects name candidates that are really service or payment
// keywords. The comparison is a case-sensitive match against the title-cased
// candidate.
var excludedNames = []string{
	"Service", "Wash", "Customer", "Full", "Basic", "Premium", "Interior", "Cash", "Card",
}

// amountPatterns locate a money amount. Within a pattern every match is
// parsed and the MAXIMUM wins: currency amounts co-occur with quantities
// ("paid R120, washed 3 cars"), and the amount is reliably the largest
// number. The first pattern that yields at least one parseable number wins.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[rR]\s*(\d+(?:,\d+)*(?:\.\d{2})?)`),
	regexp.MustCompile(`(\d+(?:,\d+)*(?:\.\d{2})?)\s*rand`),
	regexp.MustCompile(`\b(\d+(?:,\d+)*(?:\.\d{2})?)\b`),
}

// supplierPatterns locate an expense supplier; first match wins. Candidates
// are whitespace-normalized and rejected if purely numeric or length <= 1.
var supplierPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:paid|pay|from|to|bought from|purchased from)\s+([A-Za-z][A-Za-z\s]+?)(?:\s|$|for|,|\d)`),
	regexp.MustCompile(`(?i)([A-Za-z][A-Za-z\s]+(?:suppliers?|store|shop|company|ltd|pty|co))`),
	regexp.MustCompile(`(?i)(?:supplier|vendor):\s*([A-Za-z][A-Za-z\s]+)`),
}

var whitespaceRun = regexp.MustCompile(`\s+`)
