package analysis

import (
	"context"

	"github.com/nijaru/yt-digest/models"
)

// Service runs the full pipeline for one video URL. Only URL validation can
// fail the request; every later stage degrades.
type Service interface {
	Analyze(ctx context.Context, rawURL string) (*models.AnalysisResponse, error)
}

// Resolver turns raw input into a video reference.
type Resolver interface {
	ResolveVideo(raw string) (models.VideoRef, error)
}
