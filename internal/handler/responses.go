package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/skinforge/lootbox/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgLootboxNotFoundError  = "Lootbox not found"
	ErrMsgSkinNotFoundError     = "Skin not found"
	ErrMsgSkinNotInLootboxError = "One of the named skins is not in this lootbox"
	ErrMsgDuplicateNameError    = "A lootbox with that name already exists"
	ErrMsgLootboxEmptyError     = "Lootbox has no skins yet"
	ErrMsgDropRateSumError      = "Drop rates must sum to 1"
	ErrMsgInvalidArgumentError  = "Invalid request. Please check your inputs."
	ErrMsgStoreFailureError     = "The catalog store did not confirm the operation. Please retry."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrLootboxNotFound):
		return http.StatusNotFound, ErrMsgLootboxNotFoundError
	case errors.Is(err, domain.ErrSkinNotFound):
		return http.StatusNotFound, ErrMsgSkinNotFoundError
	case errors.Is(err, domain.ErrSkinNotInLootbox):
		return http.StatusBadRequest, ErrMsgSkinNotInLootboxError
	case errors.Is(err, domain.ErrDuplicateName):
		return http.StatusConflict, ErrMsgDuplicateNameError
	case errors.Is(err, domain.ErrLootboxEmpty):
		return http.StatusBadRequest, ErrMsgLootboxEmptyError
	case errors.Is(err, domain.ErrInvalidDropRateSum):
		return http.StatusBadRequest, ErrMsgDropRateSumError
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest, ErrMsgInvalidArgumentError
	case errors.Is(err, domain.ErrStoreFailure):
		return http.StatusBadGateway, ErrMsgStoreFailureError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
