package related

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

const systemPrompt = "You are a research assistant that finds recent, credible related news articles. Always return only JSON."

const userPromptTemplate = `Based on the following context, find 3-5 recent related news articles in Portuguese when appropriate (pt-BR), otherwise the content language. Prefer major outlets. Return ONLY a JSON array of items like {"title": string, "description": string, "link": string}.
Context:
Title: %s
URL: %s
Summary bullets:
- %s`

type service struct {
	completer llm.Completer
	config    Config
	logger    *logrus.Logger
}

// NewService creates a related-news finder. A nil completer disables the
// search and Find always returns an empty list.
func NewService(completer llm.Completer, config Config, logger *logrus.Logger) Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if config.MaxResults <= 0 {
		config.MaxResults = DefaultConfig().MaxResults
	}
	return &service{
		completer: completer,
		config:    config,
		logger:    logger,
	}
}

func (s *service) Find(ctx context.Context, title string, bullets []string, videoURL string) []models.RelatedArticle {
	if s.completer == nil {
		return []models.RelatedArticle{}
	}
	logger := s.logger.WithContext(ctx).WithFields(logrus.Fields{
		"component": "related",
		"url":       videoURL,
	})

	content, err := s.completer.Complete(ctx, llm.Request{
		Model:       s.config.Model,
		Temperature: s.config.Temperature,
		Messages: []llm.Message{
			llm.System(systemPrompt),
			llm.User(fmt.Sprintf(userPromptTemplate, title, videoURL, strings.Join(bullets, "\n- "))),
		},
	})
	if err != nil && !errors.Is(err, llm.ErrEmptyContent) {
		logger.WithError(err).Warn("Related news search failed")
		return []models.RelatedArticle{}
	}

	articles, err := ParseArticles(content)
	if err != nil {
		logger.WithError(err).Warn("Unusable related news content")
		return []models.RelatedArticle{}
	}

	if len(articles) > s.config.MaxResults {
		articles = articles[:s.config.MaxResults]
	}
	return articles
}

// ParseArticles accepts a JSON array of articles, or an object with an
// "items" array, optionally wrapped in a code fence. Blank content is an
// empty list.
func ParseArticles(content string) ([]models.RelatedArticle, error) {
	cleaned := utils.StripCodeFence(content)
	if cleaned == "" {
		return []models.RelatedArticle{}, nil
	}

	var articles []models.RelatedArticle
	if err := json.Unmarshal([]byte(cleaned), &articles); err == nil {
		return nonNil(articles), nil
	}

	var wrapped struct {
		Items []models.RelatedArticle `json:"items"`
	}
	if err := json.Unmarshal([]byte(cleaned), &wrapped); err != nil {
		return nil, errors.Wrap(err, "decode related articles")
	}
	if wrapped.Items == nil {
		return nil, errors.New("related articles: no items array")
	}
	return wrapped.Items, nil
}

func nonNil(articles []models.RelatedArticle) []models.RelatedArticle {
	if articles == nil {
		return []models.RelatedArticle{}
	}
	return articles
}
