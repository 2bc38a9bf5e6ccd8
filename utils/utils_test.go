package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nijaru/yt-digest/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandleError(t *testing.T) {
	rr := httptest.NewRecorder()
	HandleError(rr, "Test error", http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Test error"}`, rr.Body.String())
}

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "client error keeps message",
			err:        errors.ErrMissingVideoID,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Unable to extract video ID"}`,
		},
		{
			name:       "internal error is generic",
			err:        errors.Internal("op", assert.AnError, "secret detail"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
		{
			name:       "plain error is generic",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			RespondWithError(rr, tt.err)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "abc\n…[truncated]", Truncate("abcdef", 3))
	assert.Equal(t, "ção\n…[truncated]", Truncate("çãoção", 3))
	assert.Equal(t, "untouched", Truncate("untouched", 0))
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("  a \n\t b   c \n"))
	assert.Equal(t, "", CollapseWhitespace(" \n "))
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "mixed terminators",
			input:    "This is a test. This is only a test! Is it? Yes",
			expected: []string{"This is a test.", "This is only a test!", "Is it?", "Yes"},
		},
		{
			name:     "terminator without space",
			input:    "Version 1.2 is out. Done.",
			expected: []string{"Version 1.2 is out.", "Done."},
		},
		{
			name:     "repeated whitespace",
			input:    "One.   Two.\n\nThree.",
			expected: []string{"One.", "Two.", "Three."},
		},
		{
			name:     "empty",
			input:    "   ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitSentences(tt.input))
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "```json\n[{\"title\":\"A\"}]\n```", expected: `[{"title":"A"}]`},
		{input: "```\n{\"items\":[]}\n```", expected: `{"items":[]}`},
		{input: "```JSON[]```", expected: "[]"},
		{input: "  []  ", expected: "[]"},
	}

	for _, tt := range tests {
		t.Run(strings.ReplaceAll(tt.input, "\n", " "), func(t *testing.T) {
			assert.Equal(t, tt.expected, StripCodeFence(tt.input))
		})
	}
}

func TestDecodeJSONBody(t *testing.T) {
	type body struct {
		URL string `json:"url"`
	}

	var got body
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"url":"https://youtu.be/x"}`))
	assert.NoError(t, DecodeJSONBody(req, &got))
	assert.Equal(t, "https://youtu.be/x", got.URL)

	got = body{}
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.NoError(t, DecodeJSONBody(req, &got))
	assert.Empty(t, got.URL)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"url":`))
	err := DecodeJSONBody(req, &got)
	assert.Error(t, err)
	assert.False(t, errors.IsClientError(err))
}
