package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/raushankrgupta/ayush-ai/models"
	"github.com/raushankrgupta/ayush-ai/report"
	"github.com/raushankrgupta/ayush-ai/store"
	"github.com/raushankrgupta/ayush-ai/utils"
	"github.com/raushankrgupta/ayush-ai/wellness"
)

// Tracking actions
const (
	ActionGenerate = "generate"
	ActionComplete = "complete"
)

// TrackingRequest is the body of POST /api/tracking.
type TrackingRequest struct {
	Action      string               `json:"action"`
	Date        string               `json:"date"` // YYYY-MM-DD, defaults to today
	Tasks       []models.TrackedTask `json:"tasks"`
	WaterIntake float64              `json:"waterIntake"`
}

// Track either plans the day or records completed tasks, depending on the
// action.
func (h *Handler) Track(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(r.Context(), h.logger, &logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Tracking API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req TrackingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	switch req.Action {
	case ActionGenerate:
		plan := h.planner.PlanDay(r.Context(), req.WaterIntake)
		utils.AddToLogMessage(&logMessageBuilder, "Day plan source: "+string(plan.Source))
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"data": plan})

	case ActionComplete:
		h.completeDay(w, r, &logMessageBuilder, userID, req)

	default:
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Unknown action %q, expected generate or complete", req.Action), http.StatusBadRequest)
	}
}

func (h *Handler) completeDay(w http.ResponseWriter, r *http.Request, b *strings.Builder, userID string, req TrackingRequest) {
	date := req.Date
	if date == "" {
		date = h.now().Format(time.DateOnly)
	} else if _, err := time.Parse(time.DateOnly, date); err != nil {
		utils.RespondError(w, b, "date must be in YYYY-MM-DD format", http.StatusBadRequest)
		return
	}
	if req.WaterIntake < 0 {
		utils.RespondError(w, b, "waterIntake must not be negative", http.StatusBadRequest)
		return
	}

	oid, err := store.ParseID(userID)
	if err != nil {
		utils.RespondError(w, b, "Unauthorized", http.StatusUnauthorized)
		return
	}

	completed := 0
	for _, t := range req.Tasks {
		if t.Completed {
			completed++
		}
	}
	tasks := req.Tasks
	if tasks == nil {
		tasks = []models.TrackedTask{}
	}

	activity, err := h.store.UpsertActivity(r.Context(), models.Activity{
		UserID:           oid,
		Date:             date,
		Tasks:            tasks,
		ConsistencyScore: wellness.ConsistencyScore(completed, len(req.Tasks)),
		WaterIntake:      req.WaterIntake,
	})
	if err != nil {
		utils.AddToLogMessage(b, fmt.Sprintf("Error saving activity: %v", err))
		utils.RespondError(w, b, "Failed to save activity", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(b, fmt.Sprintf("Recorded %s with consistency %d", date, activity.ConsistencyScore))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"data": activity})
}

// trackingWindow returns the lower date bound from ?days=N, or zero for all
// history.
func trackingWindow(r *http.Request, now time.Time) time.Time {
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days <= 0 {
		return time.Time{}
	}
	return now.AddDate(0, 0, -(days - 1))
}

// ListTracking returns tracked days and the current streak.
func (h *Handler) ListTracking(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(r.Context(), h.logger, &logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[List Tracking API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	activities, err := h.store.ListActivities(r.Context(), userID, trackingWindow(r, h.now()))
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Database error: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to fetch activities", http.StatusInternalServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"activities": activities,
			"streak":     wellness.Streak(models.DailyLogs(activities)),
		},
	})
}

// ExportTracking downloads tracked days as an XLSX workbook.
func (h *Handler) ExportTracking(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(r.Context(), h.logger, &logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Export Tracking API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	activities, err := h.store.ListActivities(r.Context(), userID, trackingWindow(r, h.now()))
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Database error: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to fetch activities", http.StatusInternalServerError)
		return
	}

	data, filename, contentType, err := report.ActivityWorkbook(activities)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Workbook error: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to build export", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
