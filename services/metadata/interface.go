package metadata

import (
	"context"

	"github.com/nijaru/yt-digest/models"
)

// Service looks up a video's public title and channel. It never fails: any
// problem yields an empty VideoMeta.
type Service interface {
	Fetch(ctx context.Context, videoURL string) models.VideoMeta
}

type Config struct {
	Endpoint string
}
