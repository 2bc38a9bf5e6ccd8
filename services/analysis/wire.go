package analysis

import (
	"github.com/nijaru/yt-digest/config"
	"github.com/nijaru/yt-digest/llm"
	"github.com/nijaru/yt-digest/services/metadata"
	"github.com/nijaru/yt-digest/services/related"
	"github.com/nijaru/yt-digest/services/summary"
	"github.com/nijaru/yt-digest/services/transcript"
	"github.com/nijaru/yt-digest/upstream"
	"github.com/nijaru/yt-digest/validation"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// NewFromConfig wires the full pipeline. An LLM stage whose key is missing
// runs in its degraded mode.
func NewFromConfig(cfg *config.Config, logger *logrus.Logger) (Service, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	web := upstream.NewClient(cfg.Upstream.Timeout, upstream.WithUserAgent(cfg.Upstream.UserAgent))

	summaryCfg := summary.DefaultConfig()
	summaryCfg.Model = cfg.Summary.Model
	var summarizer llm.Completer
	if cfg.Summary.Enabled() {
		client, err := llm.NewClient(cfg.Summary)
		if err != nil {
			return nil, errors.Wrap(err, "summary client")
		}
		summarizer = client
	}

	relatedCfg := related.DefaultConfig()
	relatedCfg.Model = cfg.Related.Model
	var searcher llm.Completer
	if cfg.Related.Enabled() {
		client, err := llm.NewClient(cfg.Related)
		if err != nil {
			return nil, errors.Wrap(err, "related client")
		}
		searcher = client
	}

	return NewService(
		validation.NewValidator(),
		metadata.NewService(web, metadata.Config{Endpoint: cfg.Upstream.OEmbedURL}, logger),
		transcript.NewService(web, transcript.Config{Endpoint: cfg.Upstream.TranscriptURL}, logger),
		summary.NewService(summarizer, summaryCfg, logger),
		related.NewService(searcher, relatedCfg, logger),
		logger,
	), nil
}
