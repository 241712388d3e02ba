// Package classifier infers a document type from raw text content.
// It is the deterministic fallback used when the LLM analysis comes
// back with a generic type such as "Document" or "Unknown".
package classifier

import (
	"strings"
	"unicode/utf8"
)

// rule pairs a keyword group with the label it produces. Rules are
// evaluated in order and the first match wins, so documents matching
// several groups (an invoice that mentions a contract) resolve to the
// earlier one. Keep this a slice, not a map: the tie-break depends on
// ordering.
type rule struct {
	keywords []string
	label    string
}

var rules = []rule{
	// Financial documents
	{[]string{"invoice", "bill", "payment", "amount due", "total"}, "Invoice"},
	{[]string{"balance sheet", "assets", "liabilities", "equity"}, "Balance Sheet"},
	{[]string{"profit", "loss", "revenue", "income statement"}, "Profit & Loss Statement"},
	{[]string{"receipt", "purchase", "transaction"}, "Receipt"},

	// Legal documents
	{[]string{"contract", "agreement", "terms", "clause", "party"}, "Contract"},
	{[]string{"legal", "attorney", "lawyer", "court"}, "Legal Document"},

	// Business documents
	{[]string{"report", "analysis", "findings", "conclusion"}, "Report"},
	{[]string{"proposal", "offer", "quote", "estimate"}, "Proposal"},
	{[]string{"memo", "memorandum", "internal"}, "Memo"},
	{[]string{"policy", "procedure", "guideline"}, "Policy Document"},

	// Personal documents
	{[]string{"resume", "cv", "curriculum vitae", "experience", "skills"}, "Resume"},
	{[]string{"letter", "dear", "sincerely", "yours truly"}, "Letter"},
	{[]string{"certificate", "certification", "award"}, "Certificate"},

	// Technical documents
	{[]string{"manual", "guide", "instruction", "how to"}, "Manual"},
	{[]string{"specification", "technical", "specs"}, "Technical Document"},

	// Academic, government and medical documents
	{[]string{"research", "study", "academic", "university"}, "Academic Document"},
	{[]string{"government", "official", "department", "ministry"}, "Government Document"},
	{[]string{"medical", "health", "patient", "diagnosis", "treatment"}, "Medical Document"},
}

// Classify returns a document-type label for the given text. It is a
// pure function: no state, same input always yields the same label.
// When no keyword group matches, the label falls back to a bucket
// based on content length.
func Classify(text string) string {
	lower := strings.ToLower(text)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.label
			}
		}
	}

	// Bucket by character count, not byte length, so non-ASCII text
	// is sized the same as its ASCII equivalent.
	switch n := utf8.RuneCountInString(text); {
	case n < 100:
		return "Short Document"
	case n < 1000:
		return "Medium Document"
	default:
		return "Long Document"
	}
}

// IsGenericType reports whether a type produced by analysis is too
// generic to be useful, in which case Classify should refine it.
func IsGenericType(docType string) bool {
	switch docType {
	case "GeneralDocument", "Document", "Unknown", "":
		return true
	}
	return false
}
