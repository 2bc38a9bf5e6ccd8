package models

// AnalyzeRequest is the inbound body of POST /api/analyze.
type AnalyzeRequest struct {
	URL string `json:"url"`
}

// AnalysisResponse is the outbound contract of a successful analysis.
type AnalysisResponse struct {
	Greeting    string           `json:"greeting"`
	Summary     []string         `json:"summary"`
	SummaryText string           `json:"summaryText"`
	Transcript  string           `json:"transcript"`
	RelatedNews []RelatedArticle `json:"relatedNews"`
	Meta        ResponseMeta     `json:"meta"`
}

type ResponseMeta struct {
	Title   *string `json:"title"`
	Channel *string `json:"channel"`
	VideoID string  `json:"videoId"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// NewAnalysisResponse assembles the wire payload. Nil slices are replaced
// with empty ones so they encode as [] rather than null.
func NewAnalysisResponse(ref VideoRef, meta VideoMeta, transcript string, summary SummaryResult, related []RelatedArticle) *AnalysisResponse {
	bullets := summary.Bullets
	if bullets == nil {
		bullets = []string{}
	}
	if related == nil {
		related = []RelatedArticle{}
	}

	return &AnalysisResponse{
		Greeting:    summary.Greeting,
		Summary:     bullets,
		SummaryText: summary.Narrative,
		Transcript:  transcript,
		RelatedNews: related,
		Meta: ResponseMeta{
			Title:   meta.Title,
			Channel: meta.Channel,
			VideoID: ref.ID,
		},
	}
}
