package handler

import (
	"net/http"

	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/blaisecz/sleep-bot/internal/service"
)

type AdviceHandler struct {
	service service.AdviceService
}

func NewAdviceHandler(service service.AdviceService) *AdviceHandler {
	return &AdviceHandler{service: service}
}

// Advice handles GET /v1/users/{userId}/advice
// @Summary Personal advice
// @Description Advice derived from the last 7 records. available is false until a week is logged.
// @Tags advice
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.AdviceResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/advice [get]
func (h *AdviceHandler) Advice(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	advice, err := h.service.PersonalAdvice(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Failed to analyze sleep")
		return
	}

	writeJSON(w, http.StatusOK, domain.AdviceResponse{Available: advice != nil, Advice: advice})
}

// Tip handles GET /v1/users/{userId}/tips
// @Summary Sleep tip
// @Description Personal advice when a week is logged, otherwise a general tip different from the last one sent
// @Tags advice
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.TipResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/tips [get]
func (h *AdviceHandler) Tip(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	tip, err := h.service.Tip(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Failed to pick a tip")
		return
	}

	writeJSON(w, http.StatusOK, tip)
}

// Exercise handles GET /v1/users/{userId}/exercises
// @Summary Relaxation exercise
// @Description A relaxation exercise different from the last one sent
// @Tags advice
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.TipResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/exercises [get]
func (h *AdviceHandler) Exercise(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	exercise, err := h.service.Exercise(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Failed to pick an exercise")
		return
	}

	writeJSON(w, http.StatusOK, exercise)
}
