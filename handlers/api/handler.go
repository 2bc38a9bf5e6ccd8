package api

import (
	"net/http"

	"github.com/nijaru/yt-digest/errors"
	"github.com/nijaru/yt-digest/middleware"
	"github.com/nijaru/yt-digest/utils"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	utils.RespondWithJSON(w, code, payload)
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	msg := errors.MsgInternal

	if appErr, ok := errors.As(err); ok && appErr.Code < http.StatusInternalServerError {
		code = appErr.Code
		msg = appErr.Message
	}

	entry := logrus.WithFields(logrus.Fields{
		"error":      err,
		"status":     code,
		"request_id": middleware.GetRequestID(r.Context()),
		"path":       r.URL.Path,
		"method":     r.Method,
	})
	if code >= http.StatusInternalServerError {
		entry.Error("Request error")
	} else {
		entry.Debug("Request rejected")
	}

	utils.HandleError(w, msg, code)
}

func readJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return utils.DecodeJSONBody(r, v)
}
