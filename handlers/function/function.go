// Package function exposes the analysis pipeline as a single http.HandlerFunc
// for serverless platforms that route one function per path.
package function

import (
	"net/http"
	"sync"

	"github.com/nijaru/yt-digest/config"
	"github.com/nijaru/yt-digest/errors"
	"github.com/nijaru/yt-digest/logger"
	"github.com/nijaru/yt-digest/middleware"
	"github.com/nijaru/yt-digest/models"
	"github.com/nijaru/yt-digest/services/analysis"
	"github.com/nijaru/yt-digest/utils"
	"github.com/sirupsen/logrus"
)

// New returns a handler that answers CORS preflights, rejects anything but
// POST and runs one analysis per request. It carries the same recovery,
// request id, logging and deadline middleware as the standalone server.
func New(svc analysis.Service, cfg *config.Config, logger *logrus.Logger) http.Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		middleware.SetCORSHeaders(w, cfg.CORS)

		switch r.Method {
		case http.MethodOptions:
			middleware.Preflight(w, cfg.CORS)
			return
		case http.MethodPost:
		default:
			utils.HandleError(w, errors.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
			return
		}

		var req models.AnalyzeRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			utils.RespondWithError(w, err)
			return
		}

		resp, err := svc.Analyze(r.Context(), req.URL)
		if err != nil {
			utils.RespondWithError(w, err)
			return
		}

		utils.RespondWithJSON(w, http.StatusOK, resp)
	})

	return middleware.Chain(handler,
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logging(logger),
		middleware.Timeout(cfg.RequestTimeout),
	)
}

var (
	entryOnce sync.Once
	entry     http.Handler
)

// Handler is the platform entry point. Configuration is read from the
// environment on the first request.
func Handler(w http.ResponseWriter, r *http.Request) {
	entryOnce.Do(func() {
		entry = build()
	})
	entry.ServeHTTP(w, r)
}

func build() http.Handler {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Error("Failed to load configuration")
		return unavailable(err)
	}

	appLogger, err := logger.New(cfg.Log)
	if err != nil {
		logrus.WithError(err).Error("Failed to initialize logger")
		return unavailable(err)
	}
	for _, warning := range cfg.Warnings() {
		appLogger.Warn(warning)
	}

	svc, err := analysis.NewFromConfig(cfg, appLogger)
	if err != nil {
		appLogger.WithError(err).Error("Failed to initialize analysis service")
		return unavailable(err)
	}

	return New(svc, cfg, appLogger)
}

func unavailable(err error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithError(w, errors.Internal("function.Handler", err, errors.MsgInternal))
	}
}
