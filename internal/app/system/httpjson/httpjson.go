// Package httpjson holds the JSON request/response helpers shared by all
// feature handlers: body decoding, success responses, and the mapping
// from the apperr taxonomy to HTTP status codes.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lifelinkhq/lifelink/internal/domain/apperr"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies; every payload in this API is small.
const maxBodyBytes = 1 << 20

// Decode reads the request body into dst. Unknown fields are ignored so
// allow-listed patch structs naturally drop anything outside the list.
func Decode(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("invalid JSON body")
	}
	return nil
}

// Respond writes v as a JSON response with the given status.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the machine-readable failure shape returned on every
// error path: {"error": {"kind": "...", "message": "..."}}.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// StatusFor maps an error kind to its HTTP status. Conflict maps to 409;
// callers that need the terminal-state 403 pass an explicit status to
// RespondErrorStatus instead.
func StatusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RespondError maps err to a status via StatusFor and writes the error
// body. Internal and upstream causes are logged, never returned.
func RespondError(w http.ResponseWriter, log *zap.Logger, err error) {
	RespondErrorStatus(w, log, err, StatusFor(err))
}

// RespondErrorStatus writes the error body with an explicit status,
// keeping the kind/message from the error itself.
func RespondErrorStatus(w http.ResponseWriter, log *zap.Logger, err error, status int) {
	kind := apperr.KindOf(err)
	if log != nil && (kind == apperr.KindInternal || kind == apperr.KindUpstream) {
		var ae *apperr.Error
		if errors.As(err, &ae) && ae.Err != nil {
			log.Error("request failed", zap.String("kind", string(kind)), zap.Error(ae.Err))
		} else {
			log.Error("request failed", zap.String("kind", string(kind)), zap.Error(err))
		}
	}
	Respond(w, status, errorBody{Error: errorDetail{
		Kind:    string(kind),
		Message: apperr.MessageOf(err),
	}})
}
