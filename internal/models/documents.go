package models

// UploadRequest carries one uploaded document through a single analysis
// request. It is created by the handler and discarded once text has
// been produced.
type UploadRequest struct {
	File     []byte
	Filename string
}

// KeyInformation groups the detail lists the analysis prompt asks for.
// Slices are always non-nil so the JSON response renders [] rather
// than null.
type KeyInformation struct {
	ImportantDetails []string `json:"important_details"`
	Dates            []string `json:"dates"`
	Amounts          []string `json:"amounts"`
	Names            []string `json:"names"`
	ActionsRequired  []string `json:"actions_required"`
}

// AnalysisRecord is the structured outcome of document analysis. Every
// record handed to a caller has Language, DocumentType, Summary and
// KeyInformation populated, defaults substituted where the model left
// them out. Error is set only on degraded paths.
type AnalysisRecord struct {
	Language       string         `json:"language"`
	DocumentType   string         `json:"document_type"`
	Summary        string         `json:"summary"`
	KeyInformation KeyInformation `json:"key_information"`
	ExtractedData  map[string]any `json:"extracted_data"`
	Error          string         `json:"error,omitempty"`
}

// NewKeyInformation returns an empty but fully allocated structure.
func NewKeyInformation() KeyInformation {
	return KeyInformation{
		ImportantDetails: []string{},
		Dates:            []string{},
		Amounts:          []string{},
		Names:            []string{},
		ActionsRequired:  []string{},
	}
}

// AnalyzeResponse is the body returned by POST /analyze.
type AnalyzeResponse struct {
	Filename     string          `json:"filename"`
	DocumentType string          `json:"document_type"`
	Analysis     *AnalysisRecord `json:"analysis"`
}
