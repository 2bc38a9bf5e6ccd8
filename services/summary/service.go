package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nijaru/yt-digest/llm"
	"github.com/nijaru/yt-digest/models"
	"github.com/nijaru/yt-digest/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const systemPrompt = `You are a concise but insightful news assistant. Given a video transcript, produce:
1) A friendly one-sentence greeting to the user.
2) A 3–6 bullet summary of the key points (Portuguese if the content is Portuguese; otherwise match the content language, keep bullets short).
3) An analytical narrative summary that is deeper and more elaborate than the bullets: write 3–10 paragraphs (you may exceed six when helpful), ~300–900 words total. Synthesize arguments, provide context, actors, motivations, timeline, consequences, and relevant counterpoints; avoid list formatting, avoid repeating the bullets verbatim, and use smooth transitions.
Return ONLY valid JSON matching: {"greeting": string, "summary": string[], "summary_text": string}.`

var (
	ErrNoBullets   = errors.New("summary has no bullets")
	ErrNoNarrative = errors.New("summary has no narrative")
)

type service struct {
	completer llm.Completer
	config    Config
	logger    *logrus.Logger
}

// NewService returns the LLM-backed summarizer, or the local fallback when
// completer is nil.
func NewService(completer llm.Completer, config Config, logger *logrus.Logger) Service {
	if completer == nil {
		return fallbackService{}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if config.MaxTranscriptChars <= 0 {
		config.MaxTranscriptChars = DefaultConfig().MaxTranscriptChars
	}
	return &service{
		completer: completer,
		config:    config,
		logger:    logger,
	}
}

func (s *service) Summarize(ctx context.Context, in Input) (models.SummaryResult, error) {
	logger := s.logger.WithContext(ctx).WithFields(logrus.Fields{
		"component":      "summary",
		"url":            in.URL,
		"transcript_len": len(in.Transcript),
	})

	content, err := s.completer.Complete(ctx, llm.Request{
		Model:          s.config.Model,
		Temperature:    s.config.Temperature,
		ResponseFormat: &llm.ResponseFormat{Type: "json_object"},
		Messages: []llm.Message{
			llm.System(systemPrompt),
			llm.User(s.userPrompt(in)),
		},
	})
	if err != nil {
		return models.SummaryResult{}, errors.Wrap(err, "summarize")
	}

	result, err := parseResult(content)
	if err != nil {
		logger.WithError(err).Debug("Unusable summary content")
		return models.SummaryResult{}, err
	}

	logger.WithField("bullets", len(result.Bullets)).Debug("Summary generated")
	return result, nil
}

func (s *service) userPrompt(in Input) string {
	return fmt.Sprintf("Video title: %s\nChannel: %s\nURL: %s\nTranscript (may be truncated):\n---\n%s\n---",
		orUnknown(in.Meta.TitleOrEmpty()),
		orUnknown(in.Meta.ChannelOrEmpty()),
		in.URL,
		utils.Truncate(in.Transcript, s.config.MaxTranscriptChars),
	)
}

func parseResult(content string) (models.SummaryResult, error) {
	var result models.SummaryResult
	if err := json.Unmarshal([]byte(utils.StripCodeFence(content)), &result); err != nil {
		return models.SummaryResult{}, errors.Wrap(err, "decode summary")
	}

	bullets := result.Bullets[:0]
	for _, b := range result.Bullets {
		if b = strings.TrimSpace(b); b != "" {
			bullets = append(bullets, b)
		}
	}
	result.Bullets = bullets

	if len(result.Bullets) == 0 {
		return models.SummaryResult{}, ErrNoBullets
	}
	if strings.TrimSpace(result.Narrative) == "" {
		return models.SummaryResult{}, ErrNoNarrative
	}
	if strings.TrimSpace(result.Greeting) == "" {
		result.Greeting = DefaultGreeting
	}
	return result, nil
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
