package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/blaisecz/sleep-bot/internal/api/validation"
	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/blaisecz/sleep-bot/internal/langfuse"
	"github.com/blaisecz/sleep-bot/internal/service"
	"github.com/blaisecz/sleep-bot/pkg/problem"
)

type InsightsHandler struct {
	service service.InsightsService
	scorer  langfuse.Scorer
}

func NewInsightsHandler(service service.InsightsService, scorer langfuse.Scorer) *InsightsHandler {
	return &InsightsHandler{service: service, scorer: scorer}
}

// Get handles GET /v1/users/{userId}/insights
// @Summary Narrative insights
// @Description Short LLM-written summary of the user's reports, advice and achievements
// @Tags insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.InsightsResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Failure 503 {object} problem.Problem "OpenAI is not configured"
// @Router /users/{userId}/insights [get]
func (h *InsightsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	response, err := h.service.Generate(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Failed to generate insights")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Feedback handles POST /v1/users/{userId}/insights/feedback
// @Summary Rate an insights response
// @Description Attach a 1-5 rating to the trace of a previous insights response
// @Tags insights
// @Accept json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.FeedbackRequest true "Feedback"
// @Success 204 "Feedback accepted"
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Router /users/{userId}/insights/feedback [post]
func (h *InsightsHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var req domain.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	// A lost score must not fail the user's request.
	err := h.scorer.Score(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "insights_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})
	if err != nil {
		log.Printf("[insights] feedback score for user %s not recorded: %v", userID, err)
	}

	w.WriteHeader(http.StatusNoContent)
}
