package related

import (
	"context"

	"github.com/nijaru/yt-digest/models"
)

// Service searches for news related to an analyzed video. It never fails:
// an unconfigured or failing search yields an empty list.
type Service interface {
	Find(ctx context.Context, title string, bullets []string, videoURL string) []models.RelatedArticle
}

type Config struct {
	Model       string
	Temperature float64
	MaxResults  int
}

func DefaultConfig() Config {
	return Config{
		Temperature: 0.2,
		MaxResults:  5,
	}
}
