package models

// VideoRef identifies the video a request is about. ID is never empty once
// the URL has been resolved.
type VideoRef struct {
	URL string
	ID  string
}

// VideoMeta is best-effort oEmbed data. Nil fields mean the source failed or
// did not provide the value.
type VideoMeta struct {
	Title   *string
	Channel *string
}

// TitleOrEmpty returns the title, or "" when it is unknown.
func (m VideoMeta) TitleOrEmpty() string {
	if m.Title == nil {
		return ""
	}
	return *m.Title
}

// ChannelOrEmpty returns the channel name, or "" when it is unknown.
func (m VideoMeta) ChannelOrEmpty() string {
	if m.Channel == nil {
		return ""
	}
	return *m.Channel
}

// SummaryResult has the same shape whether it came from the LLM or from the
// local fallback.
type SummaryResult struct {
	Greeting  string   `json:"greeting"`
	Bullets   []string `json:"summary"`
	Narrative string   `json:"summary_text"`
}

type RelatedArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}
