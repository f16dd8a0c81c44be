package handler

import (
	"net/http"

	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/blaisecz/sleep-bot/internal/service"
	"github.com/blaisecz/sleep-bot/pkg/clock"
	"github.com/blaisecz/sleep-bot/pkg/problem"
	"github.com/go-chi/chi/v5"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(service service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Get handles GET /v1/users/{userId}/reports/{period}
// @Summary Sleep report
// @Description Duration series and statistics over the last 7 (weekly) or 30 (monthly) records
// @Tags reports
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param period path string true "Report period" Enums(weekly, monthly)
// @Success 200 {object} domain.Report
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found or nothing logged"
// @Failure 422 {object} problem.Problem "Unknown period"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/reports/{period} [get]
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	period := domain.ReportPeriod(chi.URLParam(r, "period"))
	report, err := h.service.Build(r.Context(), userID, period)
	if err != nil {
		writeServiceError(w, err, "Failed to build report")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Schedule handles GET /v1/sleep-schedule
// @Summary Bedtime schedule
// @Description Bedtimes that end a whole number of 90-minute cycles at the wake time. Without wake_time, returns the table for 06:00 to 09:30.
// @Tags reports
// @Produce json
// @Param wake_time query string false "Wake time (HH:MM)" example(07:00)
// @Success 200 {object} domain.ScheduleResponse
// @Failure 422 {object} problem.Problem
// @Router /sleep-schedule [get]
func Schedule(w http.ResponseWriter, r *http.Request) {
	wakeStr := r.URL.Query().Get("wake_time")
	if wakeStr == "" {
		writeJSON(w, http.StatusOK, domain.ScheduleResponse{Data: service.DefaultSchedule()})
		return
	}

	wake, err := clock.Parse(wakeStr)
	if err != nil {
		problem.InvalidTime("wake_time").Write(w)
		return
	}
	writeJSON(w, http.StatusOK, domain.ScheduleResponse{Data: []domain.ScheduleEntry{service.ScheduleFor(wake)}})
}
