package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nijaru/yt-digest/errors"
	"github.com/nijaru/yt-digest/models"
	"github.com/sirupsen/logrus"
)

const truncationMarker = "\n…[truncated]"

func HandleError(w http.ResponseWriter, message string, statusCode int) {
	RespondWithJSON(w, statusCode, models.ErrorResponse{Error: message})
}

// RespondWithError writes err as {"error": msg}. Only client errors carry
// their own message; anything else is reported as a generic 500.
func RespondWithError(w http.ResponseWriter, err error) {
	appErr, ok := errors.As(err)
	if !ok || appErr.Code >= http.StatusInternalServerError {
		logrus.WithError(err).Error("Request failed")
		HandleError(w, errors.MsgInternal, http.StatusInternalServerError)
		return
	}

	logrus.WithFields(logrus.Fields{
		"status_code": appErr.Code,
		"op":          appErr.Op,
		"error":       appErr.Error(),
	}).Warn("Request rejected")
	HandleError(w, appErr.Message, appErr.Code)
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Failed to encode JSON response")
	}
}

// Truncate cuts text to at most max runes and appends a marker when it did.
func Truncate(text string, max int) string {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return string(runes[:max]) + truncationMarker
}

// CollapseWhitespace replaces every run of whitespace with a single space and
// trims the ends.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// SplitSentences breaks text after '.', '!' or '?' when whitespace follows.
// The terminator stays with its sentence and empty pieces are dropped.
func SplitSentences(text string) []string {
	var (
		sentences []string
		builder   strings.Builder
		prev      rune
	)

	flush := func() {
		if s := strings.TrimSpace(builder.String()); s != "" {
			sentences = append(sentences, s)
		}
		builder.Reset()
	}

	for _, r := range text {
		if unicode.IsSpace(r) && isTerminator(prev) {
			flush()
		}
		builder.WriteRune(r)
		prev = r
	}
	flush()

	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// StripCodeFence removes a leading ```json or ``` fence and a trailing ```
// from model output.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if len(text) >= 4 && strings.EqualFold(text[:4], "json") {
			text = text[4:]
		}
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// DecodeJSONBody decodes the request body into v. An empty body leaves v
// untouched. Malformed JSON is an internal error, not a client one.
func DecodeJSONBody(r *http.Request, v interface{}) error {
	const op = "utils.DecodeJSONBody"

	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || err == io.EOF {
		return nil
	}
	return errors.Internal(op, err, errors.MsgInternal)
}
