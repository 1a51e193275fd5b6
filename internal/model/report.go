package model

// AnalysisReport is the complete result of one text analysis request
type AnalysisReport struct {
	Claims         []Claim        `json:"claims"`
	ProcessingTime float64        `json:"processing_time"` // Seconds
	TotalClaims    int            `json:"total_claims"`
	Metadata       ReportMetadata `json:"metadata"`
}

// ReportMetadata carries diagnostic information about the analysis
type ReportMetadata struct {
	TextLength          int    `json:"text_length"`
	ExtractionMethod    string `json:"extraction_method"`
	VerificationSources int    `json:"verification_sources"`
}
