package handler

import (
	"encoding/json"
	"net/http"

	"brand-pricing/internal/model"

	"github.com/rs/zerolog"
)

// Envelope is the canonical response shape: {success, data} on the happy
// path, {success:false, message} for every recovered failure.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// writeJSON writes a JSON response with the given status code. The status
// line is already on the wire when encoding runs, so an encode failure
// cannot be reported to the client and is dropped.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeSuccess writes a success envelope.
func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{Success: true, Data: data})
}

// writeFailure writes a failure envelope with the given status and message.
func writeFailure(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, Envelope{Success: false, Message: message})
}

// writeError translates a service error into a failure envelope. Domain
// errors keep their message; anything else is surfaced as an internal
// fault without leaking details.
func writeError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	code := model.ErrorCode(err)
	status := statusForCode(code)

	message := err.Error()
	if code == model.ErrCodeInternalError {
		message = "internal server error"
	}
	writeFailure(w, status, message, logger)
}

// statusForCode maps domain error codes onto HTTP status classes.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeDuplicateBrand, model.ErrCodeConflict:
		return http.StatusConflict
	case model.ErrCodeNotFound:
		return http.StatusNotFound
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeInvalidJSON,
		model.ErrCodeInvalidInput,
		model.ErrCodeInvalidCategory,
		model.ErrCodeInvalidPrice,
		model.ErrCodeUnknownBrand,
		model.ErrCodeEmptyCategory:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
