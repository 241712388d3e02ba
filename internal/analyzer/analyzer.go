// Package analyzer turns extracted document text into a structured
// AnalysisRecord using a remote generative model. The model is treated
// as unreliable on every axis: it may be down, rate limited, silent,
// or answer with something that only vaguely resembles the requested
// JSON. Analyze absorbs all of it and always returns a well-formed
// record.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/LAXMAN-NALLA/document-analysis-api/internal/models"
	"github.com/LAXMAN-NALLA/document-analysis-api/internal/utils"
)

const maxRetries = 3

// summaryLimit bounds, in runes, the summary built from non-JSON
// model output.
const summaryLimit = 500

const (
	defaultDocumentType = "Document"
	defaultSummary      = "Document analyzed successfully"

	msgNotConfigured  = "Analysis backend not configured"
	msgRateLimited    = "Rate limit exceeded. Please try again later."
	msgParseFailed    = "JSON parsing failed, using text analysis"
	msgFallbackMethod = "Analysis completed with fallback method"
)

// state of the per-request retry machine. stateAttempt loops up to
// maxRetries times; the other three are terminal and each maps to
// exactly one record constructor.
type state int

const (
	stateAttempt state = iota
	stateNormalize
	stateReconstruct
	stateFallback
)

// outcome is the result of one attempt: the next state plus whatever
// that state needs to build the final record.
type outcome struct {
	next   state
	parsed map[string]any // stateNormalize
	raw    string         // stateReconstruct
	errMsg string         // stateFallback
}

// RateLimitDetector reports whether a generation failure was caused by
// rate limiting. Pluggable because the signal is backend specific.
type RateLimitDetector func(error) bool

// DefaultRateLimitDetector checks the typed status first and falls
// back to scanning the error text for the usual indicators.
func DefaultRateLimitDetector(err error) bool {
	var remote *RemoteError
	if errors.As(err, &remote) && remote.StatusCode == http.StatusTooManyRequests {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota")
}

type Analyzer struct {
	gen           Generator
	logger        *utils.Logger
	isRateLimited RateLimitDetector
}

type Option func(*Analyzer)

// WithRateLimitDetector replaces the default rate-limit predicate.
func WithRateLimitDetector(d RateLimitDetector) Option {
	return func(a *Analyzer) {
		a.isRateLimited = d
	}
}

// New builds an Analyzer. A nil Generator is allowed and makes every
// Analyze call return the unconfigured fallback record.
func New(gen Generator, logger *utils.Logger, opts ...Option) *Analyzer {
	a := &Analyzer{
		gen:           gen,
		logger:        logger,
		isRateLimited: DefaultRateLimitDetector,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the retry loop and builds the record for whichever
// terminal state it lands in. It never returns nil and never fails.
func (a *Analyzer) Analyze(ctx context.Context, text string) *models.AnalysisRecord {
	if a.gen == nil {
		a.logger.Error("generation backend not configured")
		return a.fallbackRecord(msgNotConfigured)
	}

	out := outcome{next: stateAttempt}
	for n := 1; n <= maxRetries && out.next == stateAttempt; n++ {
		out = a.attempt(ctx, text, n)
	}

	switch out.next {
	case stateNormalize:
		return a.normalizeRecord(out.parsed)
	case stateReconstruct:
		return a.reconstructRecord(out.raw)
	default:
		return a.fallbackRecord(out.errMsg)
	}
}

// attempt performs one call to the generation backend and decides the
// transition. Returning stateAttempt means "retry"; on the final
// attempt every branch resolves to a terminal state instead.
func (a *Analyzer) attempt(ctx context.Context, text string, n int) outcome {
	final := n == maxRetries

	a.logger.Info("sending analysis request", "attempt", n, "text_length", len(text))

	prompt := analysisPrompt + "\n\nDocument text to analyze:\n" + text

	response, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		a.logger.Warn("generation attempt failed", "attempt", n, "error", err)
		if !final {
			return outcome{next: stateAttempt}
		}
		if a.isRateLimited(err) {
			return outcome{next: stateFallback, errMsg: msgRateLimited}
		}
		return outcome{
			next:   stateFallback,
			errMsg: fmt.Sprintf("Analysis completed with limited information after %d retries: %v", maxRetries, err),
		}
	}

	content := strings.TrimSpace(response)
	if content == "" {
		a.logger.Warn("empty response from generation backend", "attempt", n)
		if !final {
			return outcome{next: stateAttempt}
		}
		return outcome{next: stateFallback, errMsg: msgFallbackMethod}
	}

	parsed, parseErr := extractJSONObject(content)
	if parseErr != nil {
		a.logger.Warn("response is not valid JSON", "attempt", n, "error", parseErr)
		if !final {
			return outcome{next: stateAttempt}
		}
		return outcome{next: stateReconstruct, raw: content}
	}
	if parsed == nil {
		a.logger.Warn("response JSON is not an object", "attempt", n)
		if !final {
			return outcome{next: stateAttempt}
		}
		return outcome{next: stateFallback, errMsg: msgFallbackMethod}
	}

	a.logger.Info("document analyzed successfully", "attempt", n)
	return outcome{next: stateNormalize, parsed: parsed}
}

// normalizeRecord fills defaults for whatever the model left out so
// the caller always sees a complete record.
func (a *Analyzer) normalizeRecord(m map[string]any) *models.AnalysisRecord {
	rec := &models.AnalysisRecord{
		Language:       stringField(m, "language"),
		DocumentType:   stringField(m, "document_type"),
		Summary:        stringField(m, "summary"),
		KeyInformation: keyInformationField(m, "key_information"),
		ExtractedData:  mapField(m, "extracted_data"),
	}

	if rec.DocumentType == "" {
		rec.DocumentType = defaultDocumentType
	}
	if rec.Summary == "" {
		rec.Summary = defaultSummary
	}

	return rec
}

// reconstructRecord salvages a record from prose the model returned
// instead of JSON.
func (a *Analyzer) reconstructRecord(text string) *models.AnalysisRecord {
	// Truncate by runes, not bytes: cutting mid-rune would emit
	// invalid UTF-8 into the JSON response.
	summary := text
	if runes := []rune(summary); len(runes) > summaryLimit {
		summary = string(runes[:summaryLimit]) + "..."
	}

	ki := models.NewKeyInformation()
	ki.ImportantDetails = []string{"Document processed with text analysis"}

	return &models.AnalysisRecord{
		Language:       "Unknown",
		DocumentType:   defaultDocumentType,
		Summary:        summary,
		KeyInformation: ki,
		ExtractedData:  map[string]any{"raw_analysis": text},
		Error:          msgParseFailed,
	}
}

// fallbackRecord is the fixed degraded record for exhausted retries or
// a missing backend.
func (a *Analyzer) fallbackRecord(errMsg string) *models.AnalysisRecord {
	ki := models.NewKeyInformation()
	ki.ImportantDetails = []string{"Document processed with limited analysis"}

	return &models.AnalysisRecord{
		Language:       "Unknown",
		DocumentType:   defaultDocumentType,
		Summary:        "Document analysis completed with limited information due to API errors.",
		KeyInformation: ki,
		ExtractedData:  map[string]any{},
		Error:          errMsg,
	}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func mapField(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return map[string]any{}
}

func keyInformationField(m map[string]any, key string) models.KeyInformation {
	ki := models.NewKeyInformation()

	v, ok := m[key].(map[string]any)
	if !ok {
		return ki
	}

	ki.ImportantDetails = stringListField(v, "important_details")
	ki.Dates = stringListField(v, "dates")
	ki.Amounts = stringListField(v, "amounts")
	ki.Names = stringListField(v, "names")
	ki.ActionsRequired = stringListField(v, "actions_required")
	return ki
}

func stringListField(m map[string]any, key string) []string {
	out := []string{}

	items, ok := m[key].([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		switch t := item.(type) {
		case string:
			out = append(out, t)
		default:
			// The model sometimes emits numbers or nested values
			// where strings were asked for.
			out = append(out, fmt.Sprint(t))
		}
	}
	return out
}
