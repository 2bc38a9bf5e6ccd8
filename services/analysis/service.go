package analysis

import (
	"context"
	"time"

	"github.com/nijaru/yt-digest/models"
	"github.com/nijaru/yt-digest/services/metadata"
	"github.com/nijaru/yt-digest/services/related"
	"github.com/nijaru/yt-digest/services/summary"
	"github.com/nijaru/yt-digest/services/transcript"
	"github.com/sirupsen/logrus"
)

type service struct {
	resolver   Resolver
	metadata   metadata.Service
	transcript transcript.Service
	summary    summary.Service
	related    related.Service
	logger     *logrus.Logger
}

// NewService creates the analysis orchestrator
func NewService(
	resolver Resolver,
	metadataService metadata.Service,
	transcriptService transcript.Service,
	summaryService summary.Service,
	relatedService related.Service,
	logger *logrus.Logger,
) Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &service{
		resolver:   resolver,
		metadata:   metadataService,
		transcript: transcriptService,
		summary:    summaryService,
		related:    relatedService,
		logger:     logger,
	}
}

func (s *service) Analyze(ctx context.Context, rawURL string) (*models.AnalysisResponse, error) {
	start := time.Now()

	ref, err := s.resolver.ResolveVideo(rawURL)
	if err != nil {
		return nil, err
	}

	logger := s.logger.WithContext(ctx).WithFields(logrus.Fields{
		"component": "analysis",
		"video_id":  ref.ID,
		"url":       ref.URL,
	})

	meta := s.metadata.Fetch(ctx, ref.URL)
	title := meta.TitleOrEmpty()

	text := s.transcript.Fetch(ctx, ref.ID)

	result, err := s.summary.Summarize(ctx, summary.Input{
		Transcript: text,
		Meta:       meta,
		URL:        ref.URL,
	})
	if err != nil {
		logger.WithError(err).Warn("Summarize failed, using fallback")
		result = summary.Fallback(text, title)
	}

	articles := s.related.Find(ctx, title, result.Bullets, ref.URL)

	logger.WithFields(logrus.Fields{
		"has_title":      meta.Title != nil,
		"transcript_len": len(text),
		"bullets":        len(result.Bullets),
		"related":        len(articles),
		"duration":       time.Since(start).String(),
	}).Info("Analysis completed")

	return models.NewAnalysisResponse(ref, meta, text, result, articles), nil
}
