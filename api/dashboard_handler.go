package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/ayush-ai/models"
	"github.com/raushankrgupta/ayush-ai/store"
	"github.com/raushankrgupta/ayush-ai/utils"
	"github.com/raushankrgupta/ayush-ai/wellness"
)

// DashboardResponse gathers everything the home screen shows. Sections the
// user has not produced yet are null.
type DashboardResponse struct {
	Profile        *models.ProfileDocument        `json:"profile"`
	Metrics        *models.HealthMetricDocument   `json:"metrics"`
	RiskDisplay    *wellness.RiskDisplay          `json:"riskDisplay"`
	Recommendation *models.RecommendationDocument `json:"recommendation"`
	Suggestions    []wellness.Suggestion          `json:"suggestions"`
	Streak         int                            `json:"streak"`
}

// Dashboard returns the caller's profile, scores, latest recommendation,
// suggestions and tracking streak.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(r.Context(), h.logger, &logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Dashboard API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	resp := DashboardResponse{Suggestions: []wellness.Suggestion{}}

	profile, err := h.store.GetProfile(r.Context(), userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.dashboardFailure(w, &logMessageBuilder, "profile", err)
		return
	}
	resp.Profile = profile

	metrics, err := h.store.GetMetrics(r.Context(), userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.dashboardFailure(w, &logMessageBuilder, "metrics", err)
		return
	}
	resp.Metrics = metrics
	if metrics != nil {
		display := metrics.Metrics().Display()
		resp.RiskDisplay = &display
	}

	resp.Recommendation, err = h.store.GetLatestRecommendation(r.Context(), userID)
	if err != nil {
		h.dashboardFailure(w, &logMessageBuilder, "recommendation", err)
		return
	}

	if profile != nil && metrics != nil {
		resp.Suggestions = wellness.Suggest(profile.Profile(), metrics.Metrics())
	}

	activities, err := h.store.ListActivities(r.Context(), userID, h.now().AddDate(0, 0, -90))
	if err != nil {
		h.dashboardFailure(w, &logMessageBuilder, "activities", err)
		return
	}
	resp.Streak = wellness.Streak(models.DailyLogs(activities))

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"data": resp})
}

func (h *Handler) dashboardFailure(w http.ResponseWriter, b *strings.Builder, what string, err error) {
	utils.AddToLogMessage(b, fmt.Sprintf("Failed to load %s: %v", what, err))
	utils.RespondError(w, b, "Failed to load dashboard", http.StatusInternalServerError)
}
