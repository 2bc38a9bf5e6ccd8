package summary

import (
	"context"
	"strings"

	"github.com/nijaru/yt-digest/models"
	"github.com/nijaru/yt-digest/utils"
)

const (
	DefaultGreeting = "Análise concluída! Aqui estão os principais pontos do vídeo."

	maxFallbackSentences  = 36
	sentencesPerParagraph = 5
)

// Fallback builds a summary locally from the transcript and title. It is
// deterministic and never fails.
func Fallback(transcript, title string) models.SummaryResult {
	return models.SummaryResult{
		Greeting:  DefaultGreeting,
		Bullets:   fallbackBullets(transcript, title),
		Narrative: fallbackNarrative(transcript, title),
	}
}

func fallbackBullets(transcript, title string) []string {
	var bullets []string
	if title != "" {
		bullets = append(bullets, "Resumo automático do vídeo: "+title)
	}
	if transcript != "" {
		bullets = append(bullets, "Transcrição obtida; análise resumida indisponível sem OpenAI.")
	}
	if len(bullets) == 0 {
		bullets = append(bullets, "Não foi possível gerar o resumo.")
	}
	return bullets
}

func fallbackNarrative(transcript, title string) string {
	if transcript == "" {
		if title != "" {
			return "Resumo do vídeo: " + title + ". O conteúdo não pôde ser transcrito automaticamente."
		}
		return "Resumo indisponível."
	}

	sentences := utils.SplitSentences(utils.CollapseWhitespace(transcript))
	if len(sentences) > maxFallbackSentences {
		sentences = sentences[:maxFallbackSentences]
	}

	paragraphs := []string{""}
	for i := 0; i < len(sentences); i += sentencesPerParagraph {
		end := i + sentencesPerParagraph
		if end > len(sentences) {
			end = len(sentences)
		}
		p := strings.Join(sentences[i:end], " ")
		if i == 0 {
			paragraphs[0] = p
			continue
		}
		paragraphs = append(paragraphs, p)
	}

	if title != "" {
		paragraphs[0] = title + ". " + paragraphs[0]
	}
	return strings.Join(paragraphs, "\n\n")
}

// fallbackService is used when no LLM credential is configured.
type fallbackService struct{}

func (fallbackService) Summarize(_ context.Context, in Input) (models.SummaryResult, error) {
	return Fallback(in.Transcript, in.Meta.TitleOrEmpty()), nil
}
