package classifier

import (
	"strings"
	"testing"
)

func TestClassifyKeywordGroups(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"invoice", "Invoice due March 1, amount $500", "Invoice"},
		{"balance sheet", "Statement of assets and liabilities for FY2025", "Balance Sheet"},
		{"receipt", "Thank you for your purchase at the store", "Receipt"},
		{"contract", "This agreement is made between the undersigned parties and sets out the clause structure", "Contract"},
		{"legal", "Please consult your attorney before the court date", "Legal Document"},
		{"report", "Quarterly findings and conclusion of the review", "Report"},
		{"resume", "Curriculum vitae with ten years of backend engineering", "Resume"},
		{"letter", "Dear Ms. Okoth, I hope this finds you well. Sincerely, J.", "Letter"},
		{"manual", "Follow this guide step by step. How to assemble the unit.", "Manual"},
		{"medical", "Patient presented for diagnosis and treatment options", "Medical Document"},
		{"case insensitive", "INVOICE #42 PAYMENT OVERDUE", "Invoice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// A document that matches more than one group resolves to the group
// that appears earlier in the rule list.
func TestClassifyPriorityOrder(t *testing.T) {
	text := "This invoice accompanies the signed contract for the research study"
	if got := Classify(text); got != "Invoice" {
		t.Errorf("Classify(%q) = %q, want %q", text, got, "Invoice")
	}
}

func TestClassifyLengthBuckets(t *testing.T) {
	// None of these contain keywords from any group.
	short := "zebra"
	medium := strings.Repeat("zebra quokka ", 20) // ~260 chars
	long := strings.Repeat("zebra quokka ", 120)  // ~1560 chars

	if got := Classify(short); got != "Short Document" {
		t.Errorf("short text classified as %q", got)
	}
	if got := Classify(medium); got != "Medium Document" {
		t.Errorf("medium text classified as %q", got)
	}
	if got := Classify(long); got != "Long Document" {
		t.Errorf("long text classified as %q", got)
	}
}

// Multi-byte text buckets by character count, not byte length.
func TestClassifyLengthBucketsCountRunes(t *testing.T) {
	short := strings.Repeat("é", 60) // 60 runes, 120 bytes
	if got := Classify(short); got != "Short Document" {
		t.Errorf("60-rune text classified as %q, want %q", got, "Short Document")
	}

	medium := strings.Repeat("é", 600) // 600 runes, 1200 bytes
	if got := Classify(medium); got != "Medium Document" {
		t.Errorf("600-rune text classified as %q, want %q", got, "Medium Document")
	}
}

func TestClassifyIsPure(t *testing.T) {
	text := "Invoice due March 1, amount $500"
	first := Classify(text)
	for i := 0; i < 10; i++ {
		if got := Classify(text); got != first {
			t.Fatalf("Classify not deterministic: %q then %q", first, got)
		}
	}
}

func TestIsGenericType(t *testing.T) {
	for _, generic := range []string{"GeneralDocument", "Document", "Unknown", ""} {
		if !IsGenericType(generic) {
			t.Errorf("IsGenericType(%q) = false, want true", generic)
		}
	}
	for _, specific := range []string{"Invoice", "Resume", "Long Document"} {
		if IsGenericType(specific) {
			t.Errorf("IsGenericType(%q) = true, want false", specific)
		}
	}
}
