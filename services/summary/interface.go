package summary

import (
	"context"

	"github.com/nijaru/yt-digest/models"
)

type Service interface {
	// Summarize returns an error only from the LLM path; callers fall back
	// to Fallback on error.
	Summarize(ctx context.Context, in Input) (models.SummaryResult, error)
}

type Input struct {
	Transcript string
	Meta       models.VideoMeta
	URL        string
}

type Config struct {
	Model              string
	Temperature        float64
	MaxTranscriptChars int
}

func DefaultConfig() Config {
	return Config{
		Temperature:        0.4,
		MaxTranscriptChars: 8000,
	}
}
