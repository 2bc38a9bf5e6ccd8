package api

import (
	"net/http"

	"github.com/nijaru/yt-digest/models"
	"github.com/nijaru/yt-digest/services/analysis"
	"github.com/nijaru/yt-digest/validation"
	"github.com/sirupsen/logrus"
)

type AnalyzeHandler struct {
	service   analysis.Service
	validator *validation.Validator
	logger    *logrus.Logger
}

func NewAnalyzeHandler(service analysis.Service, validator *validation.Validator, logger *logrus.Logger) *AnalyzeHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &AnalyzeHandler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// HandleAnalyze handles POST /api/analyze
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := h.validator.ValidateRequest(r, validation.RequestValidationOpts{
		MaxContentLength: maxBodyBytes,
		AllowedMethods:   []string{http.MethodPost},
	}); err != nil {
		respondError(w, r, err)
		return
	}

	var req models.AnalyzeRequest
	if err := readJSON(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	h.logger.WithContext(r.Context()).WithField("url", req.URL).Info("Received analysis request")

	resp, err := h.service.Analyze(r.Context(), req.URL)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}
