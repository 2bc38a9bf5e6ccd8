package metadata

import (
	"context"
	"net/url"
	"strings"

	"github.com/nijaru/yt-digest/models"
	"github.com/nijaru/yt-digest/upstream"
	"github.com/sirupsen/logrus"
)

type oembedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

type service struct {
	client *upstream.Client
	config Config
	logger *logrus.Logger
}

// NewService creates a metadata service backed by the oEmbed endpoint
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

func (s *service) Fetch(ctx context.Context, videoURL string) models.VideoMeta {
	logger := s.logger.WithContext(ctx).WithFields(logrus.Fields{
		"component": "metadata",
		"url":       videoURL,
	})

	query := url.Values{
		"format": {"json"},
		"url":    {videoURL},
	}

	var out oembedResponse
	if err := s.client.GetJSON(ctx, s.config.Endpoint, query, &out); err != nil {
		logger.WithError(err).Warn("Metadata lookup failed")
		return models.VideoMeta{}
	}

	return models.VideoMeta{
		Title:   optional(out.Title),
		Channel: optional(out.AuthorName),
	}
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
