package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/sleep-bot/internal/api/validation"
	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/blaisecz/sleep-bot/internal/service"
	"github.com/blaisecz/sleep-bot/pkg/problem"
)

type SleepRecordHandler struct {
	service service.SleepRecordService
}

func NewSleepRecordHandler(service service.SleepRecordService) *SleepRecordHandler {
	return &SleepRecordHandler{service: service}
}

// Log handles POST /v1/users/{userId}/sleep-records
// @Summary Log a night of sleep
// @Description Store bedtime and wake time for a date (today in the user's timezone by default). Logging the same date again replaces the earlier record. Newly earned achievements are returned.
// @Tags sleep-records
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.LogSleepRequest true "Bedtime and wake time"
// @Success 201 {object} domain.LogSleepResponse "New record stored"
// @Success 200 {object} domain.LogSleepResponse "Existing record for the date replaced"
// @Failure 400 {object} problem.Problem "Malformed body or user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid time or date"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-records [post]
func (h *SleepRecordHandler) Log(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var req domain.LogSleepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Log(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, "Failed to log sleep")
		return
	}

	status := http.StatusCreated
	if resp.Replaced {
		status = http.StatusOK
	}
	writeJSON(w, status, resp)
}

// List handles GET /v1/users/{userId}/sleep-records
// @Summary List sleep records
// @Description Paginated sleep history, newest date first. Filter by inclusive date range.
// @Tags sleep-records
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string false "First date (YYYY-MM-DD)" example(2024-01-01)
// @Param to query string false "Last date (YYYY-MM-DD)" example(2024-01-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SleepRecordListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep-records [get]
func (h *SleepRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, err, "Failed to list sleep records")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Today handles GET /v1/users/{userId}/sleep-records/today
// @Summary Check today's record
// @Description Whether the user already logged a night for today's date in their timezone. Logging again would replace it.
// @Tags sleep-records
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.TodayResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep-records/today [get]
func (h *SleepRecordHandler) Today(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	response, err := h.service.Today(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Failed to check today's record")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func parseListFilter(r *http.Request) (domain.SleepRecordFilter, []problem.FieldError) {
	var filter domain.SleepRecordFilter
	var fieldErrors []problem.FieldError
	q := r.URL.Query()

	for _, p := range []struct {
		name string
		dest *string
	}{{"from", &filter.From}, {"to", &filter.To}} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		if _, err := time.Parse(domain.DateLayout, v); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   p.name,
				Message: "must be a date in YYYY-MM-DD format",
			})
			continue
		}
		*p.dest = v
	}

	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = q.Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}
