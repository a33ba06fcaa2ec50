package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/leximind/internal/domain"
	"github.com/heartmarshall/leximind/internal/service/lookup"
)

// Error codes of the API error envelope.
const (
	codeValidation  = "VALIDATION"
	codeNotFound    = "NOT_FOUND"
	codeUpstream    = "UPSTREAM_FAILED"
	codeSuperseded  = "SUPERSEDED"
	codeUnavailable = "UNAVAILABLE"
	codeInternal    = "INTERNAL"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 << 10

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// decodeJSON reads a single JSON object from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "required")
		}
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

// handleError maps service errors to status codes. It is the only place
// that does so.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, codeValidation, validationMessage(ve))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidation, err.Error())
	case errors.Is(err, lookup.ErrSuperseded):
		writeError(w, http.StatusConflict, codeSuperseded, "a newer search replaced this one")
	case errors.Is(err, lookup.ErrClosed), errors.Is(err, domain.ErrUnavailable):
		log.WarnContext(r.Context(), "service unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, codeUnavailable, "service unavailable")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}

func validationMessage(ve *domain.ValidationError) string {
	if len(ve.Errors) == 1 {
		return ve.Errors[0].Field + ": " + ve.Errors[0].Message
	}
	return ve.Error()
}
