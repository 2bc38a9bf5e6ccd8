package transcript

import (
	"context"
	"net/url"
	"strings"

	"github.com/nijaru/yt-digest/upstream"
	"github.com/sirupsen/logrus"
)

// segment is one time-stamped piece of the transcript. Timing fields vary in
// type between sources and are ignored.
type segment struct {
	Text string `json:"text"`
}

type service struct {
	client *upstream.Client
	config Config
	logger *logrus.Logger
}

// NewService creates a transcript service
func NewService(client *upstream.Client, config Config, logger *logrus.Logger) Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &service{
		client: client,
		config: config,
		logger: logger,
	}
}

func (s *service) Fetch(ctx context.Context, videoID string) string {
	logger := s.logger.WithContext(ctx).WithFields(logrus.Fields{
		"component": "transcript",
		"video_id":  videoID,
	})

	var segments []segment
	query := url.Values{"server_vid2": {videoID}}
	if err := s.client.GetJSON(ctx, s.config.Endpoint, query, &segments); err != nil {
		logger.WithError(err).Warn("Transcript lookup failed")
		return ""
	}

	lines := make([]string, len(segments))
	for i, seg := range segments {
		lines[i] = seg.Text
	}

	logger.WithField("segments", len(segments)).Debug("Transcript fetched")
	return strings.Join(lines, "\n")
}
