package transcript

import "context"

// Service fetches the full transcript of a video. It never fails: any
// problem yields "".
type Service interface {
	Fetch(ctx context.Context, videoID string) string
}

type Config struct {
	Endpoint string
}
