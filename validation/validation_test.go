package validation

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nijaru/yt-digest/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveVideo(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name    string
		url     string
		wantID  string
		wantErr error
	}{
		{name: "short link", url: "https://youtu.be/abc123", wantID: "abc123"},
		{name: "short link with query", url: "https://youtu.be/abc123?si=xyz", wantID: "abc123"},
		{name: "short link extra segments", url: "https://youtu.be/abc123/extra", wantID: "abc123"},
		{name: "watch with extra params", url: "https://www.youtube.com/watch?v=abc123&t=10", wantID: "abc123"},
		{name: "watch without www", url: "http://youtube.com/watch?v=abc123", wantID: "abc123"},
		{name: "embed", url: "https://www.youtube.com/embed/abc123", wantID: "abc123"},
		{name: "schemeless", url: "www.youtube.com/watch?v=abc123", wantID: "abc123"},
		{name: "schemeless short link", url: "youtu.be/abc123", wantID: "abc123"},
		{name: "uppercase host", url: "HTTPS://WWW.YOUTUBE.COM/watch?v=abc123", wantID: "abc123"},
		{name: "surrounding whitespace", url: "  https://youtu.be/abc123\n", wantID: "abc123"},
		{name: "v wins over embed", url: "https://www.youtube.com/embed/zzz?v=abc123", wantID: "abc123"},

		{name: "empty", url: "", wantErr: errors.ErrInvalidURL},
		{name: "whitespace only", url: "   ", wantErr: errors.ErrInvalidURL},
		{name: "not a url", url: "not a url", wantErr: errors.ErrInvalidURL},
		{name: "other host", url: "https://example.com/watch?v=abc123", wantErr: errors.ErrInvalidURL},
		{name: "lookalike host", url: "https://youtube.com.evil.test/watch?v=abc123", wantErr: errors.ErrInvalidURL},
		{name: "mobile host", url: "https://m.youtube.com/watch?v=abc123", wantErr: errors.ErrInvalidURL},
		{name: "host without path", url: "https://www.youtube.com", wantErr: errors.ErrInvalidURL},
		{name: "ftp scheme", url: "ftp://youtube.com/watch?v=abc123", wantErr: errors.ErrInvalidURL},

		{name: "channel", url: "https://www.youtube.com/channel/UC123", wantErr: errors.ErrMissingVideoID},
		{name: "playlist", url: "https://www.youtube.com/playlist?list=PL123", wantErr: errors.ErrMissingVideoID},
		{name: "empty v", url: "https://www.youtube.com/watch?v=", wantErr: errors.ErrMissingVideoID},
		{name: "embed without id", url: "https://www.youtube.com/embed/", wantErr: errors.ErrMissingVideoID},
		{name: "short link root", url: "https://youtu.be/", wantErr: errors.ErrMissingVideoID},
		{name: "unparsable", url: "https://youtube.com/%zz", wantErr: errors.ErrMissingVideoID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := validator.ResolveVideo(tt.url)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, stderrors.Is(err, tt.wantErr), "got %v", err)
				assert.Empty(t, ref.ID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, ref.ID)
			assert.Equal(t, strings.TrimSpace(tt.url), ref.URL)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	validator := NewValidator()
	opts := RequestValidationOpts{
		MaxContentLength: 16,
		AllowedMethods:   []string{http.MethodPost},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"url":""}`))
	require.NoError(t, validator.ValidateRequest(req, opts))

	req = httptest.NewRequest(http.MethodGet, "/api/analyze", nil)
	err := validator.ValidateRequest(req, opts)
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusMethodNotAllowed, appErr.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(strings.Repeat("x", 32)))
	err = validator.ValidateRequest(req, opts)
	require.Error(t, err)
	assert.True(t, errors.IsClientError(err))
}
