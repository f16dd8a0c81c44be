package handler

import (
	"net/http"

	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/blaisecz/sleep-bot/internal/service"
)

type AchievementHandler struct {
	service service.AchievementService
}

func NewAchievementHandler(service service.AchievementService) *AchievementHandler {
	return &AchievementHandler{service: service}
}

// List handles GET /v1/users/{userId}/achievements
// @Summary List achievements
// @Description Badges the user has earned, oldest first, with a description and share text
// @Tags achievements
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.AchievementListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/achievements [get]
func (h *AchievementHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	response, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Failed to list achievements")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Evaluate handles POST /v1/users/{userId}/achievements/evaluate
// @Summary Evaluate achievements
// @Description Re-run the achievement rules over the user's records and grant anything new
// @Tags achievements
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.EvaluateAchievementsResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/achievements/evaluate [post]
func (h *AchievementHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	earned, err := h.service.Evaluate(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Failed to evaluate achievements")
		return
	}

	writeJSON(w, http.StatusOK, domain.EvaluateAchievementsResponse{NewAchievements: earned})
}
