package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/blaisecz/sleep-bot/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// userIDParam parses the {userId} path parameter, writing a 400 on failure.
func userIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return uuid.Nil, false
	}
	return userID, true
}

// writeServiceError maps domain errors to problem responses. fallback is
// the detail used for unexpected errors.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var timeErr *domain.TimeFieldError
	switch {
	case errors.As(err, &timeErr):
		problem.InvalidTime(timeErr.Field).Write(w)
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("User not found").Write(w)
	case errors.Is(err, domain.ErrNoData):
		problem.NotFound("No sleep records logged yet").Write(w)
	case errors.Is(err, domain.ErrNoContent):
		problem.NotFound("Nothing to suggest right now").Write(w)
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidPeriod):
		problem.ValidationError(err.Error(), nil).Write(w)
	case errors.Is(err, domain.ErrLLMUnavailable):
		problem.ServiceUnavailable("Summary generation is not configured").Write(w)
	default:
		log.Printf("%s: %v", fallback, err)
		problem.InternalError(fallback).Write(w)
	}
}
