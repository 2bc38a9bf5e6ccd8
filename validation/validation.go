package validation

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/nijaru/yt-digest/errors"
	"github.com/nijaru/yt-digest/models"
)

const shortLinkHost = "youtu.be"

// youtubeURLPattern accepts youtube.com, www.youtube.com and youtu.be with an
// optional http(s) scheme. The host must be followed by a path.
var youtubeURLPattern = regexp.MustCompile(`(?i)^(https?://)?(www\.)?(youtube\.com|youtu\.be)/`)

type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// IsYouTubeURL reports whether raw looks like a URL on an accepted YouTube host.
func (v *Validator) IsYouTubeURL(raw string) bool {
	return youtubeURLPattern.MatchString(strings.TrimSpace(raw))
}

// ResolveVideo checks that raw is a YouTube URL and extracts the video id.
// It returns errors.ErrInvalidURL for empty or non-YouTube input and
// errors.ErrMissingVideoID when the URL has no recoverable id.
func (v *Validator) ResolveVideo(raw string) (models.VideoRef, error) {
	const op = "Validator.ResolveVideo"

	raw = strings.TrimSpace(raw)
	if raw == "" || !v.IsYouTubeURL(raw) {
		return models.VideoRef{}, errors.InvalidInput(op, nil, errors.MsgInvalidURL)
	}

	id, ok := ExtractVideoID(raw)
	if !ok {
		return models.VideoRef{}, errors.InvalidInput(op, nil, errors.MsgMissingVideoID)
	}

	return models.VideoRef{URL: raw, ID: id}, nil
}

// ExtractVideoID pulls the id out of a YouTube URL. The first matching rule
// wins: short-link path, "v" query parameter, then the segment after "embed".
func ExtractVideoID(raw string) (string, bool) {
	candidate := raw
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}

	u, err := url.Parse(candidate)
	if err != nil {
		return "", false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host == shortLinkHost {
		return firstSegment(u.Path)
	}

	if id := u.Query().Get("v"); id != "" {
		return id, true
	}

	segments := strings.Split(u.Path, "/")
	for i, seg := range segments {
		if seg == "embed" && i+1 < len(segments) && segments[i+1] != "" {
			return segments[i+1], true
		}
	}

	return "", false
}

func firstSegment(path string) (string, bool) {
	path = strings.TrimPrefix(path, "/")
	seg, _, _ := strings.Cut(path, "/")
	return seg, seg != ""
}

// RequestValidationOpts holds options for request validation
type RequestValidationOpts struct {
	MaxContentLength int64
	AllowedMethods   []string
}

// ValidateRequest validates HTTP requests
func (v *Validator) ValidateRequest(r *http.Request, opts RequestValidationOpts) error {
	const op = "Validator.ValidateRequest"

	if len(opts.AllowedMethods) > 0 {
		methodAllowed := false
		for _, method := range opts.AllowedMethods {
			if r.Method == method {
				methodAllowed = true
				break
			}
		}
		if !methodAllowed {
			return errors.MethodNotAllowed(op)
		}
	}

	if opts.MaxContentLength > 0 && r.ContentLength > opts.MaxContentLength {
		return errors.InvalidInput(op, nil, "Request body too large")
	}

	return nil
}
