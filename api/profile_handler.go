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

// AssessmentResponse is returned after a profile submission.
type AssessmentResponse struct {
	Dosha          wellness.Constitution   `json:"dosha"`
	Dominant       wellness.Dosha          `json:"dominant"`
	Metrics        wellness.Metrics        `json:"metrics"`
	RiskDisplay    wellness.RiskDisplay    `json:"riskDisplay"`
	Recommendation wellness.Recommendation `json:"recommendation"`
	Persisted      bool                    `json:"persisted"`
}

// SubmitProfile validates and assesses a questionnaire, then stores the
// profile, metrics and recommendation. Storage failures do not fail the
// request: the computed assessment is returned with persisted=false.
func (h *Handler) SubmitProfile(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(r.Context(), h.logger, &logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Submit Profile API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var p wellness.Profile
	if err := decodeJSON(w, r, &p); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	a, err := h.engine.Assess(r.Context(), p)
	if err != nil {
		if respondValidation(w, &logMessageBuilder, err) {
			return
		}
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Assessment failed: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to assess profile", http.StatusInternalServerError)
		return
	}
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Assessed profile: dominant=%s source=%s", a.Dominant, a.Recommendation.Source))

	persisted := h.persistAssessment(r, &logMessageBuilder, userID, p, a)

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Profile assessed successfully",
		"data": AssessmentResponse{
			Dosha:          a.Constitution,
			Dominant:       a.Dominant,
			Metrics:        a.Metrics,
			RiskDisplay:    a.Metrics.Display(),
			Recommendation: a.Recommendation,
			Persisted:      persisted,
		},
	})
}

func (h *Handler) persistAssessment(r *http.Request, b *strings.Builder, userID string, p wellness.Profile, a wellness.Assessment) bool {
	oid, err := store.ParseID(userID)
	if err != nil {
		utils.AddToLogMessage(b, fmt.Sprintf("Not persisting, bad user id: %v", err))
		return false
	}

	ok := true
	if _, err := h.store.UpsertProfile(r.Context(), models.NewProfileDocument(oid, p, a.Constitution)); err != nil {
		utils.AddToLogMessage(b, fmt.Sprintf("Error saving profile: %v", err))
		ok = false
	}
	if _, err := h.store.UpsertMetrics(r.Context(), models.NewHealthMetricDocument(oid, a.Metrics)); err != nil {
		utils.AddToLogMessage(b, fmt.Sprintf("Error saving metrics: %v", err))
		ok = false
	}
	rec := models.NewRecommendationDocument(oid, a.Recommendation, a.Dominant)
	if err := h.store.AppendRecommendation(r.Context(), &rec); err != nil {
		utils.AddToLogMessage(b, fmt.Sprintf("Error saving recommendation: %v", err))
		ok = false
	}
	return ok
}

// GetProfile returns the caller's stored profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(r.Context(), h.logger, &logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Get Profile API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	doc, err := h.store.GetProfile(r.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondError(w, &logMessageBuilder, "Profile not found", http.StatusNotFound)
		return
	} else if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Database error: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"data": doc})
}

// GetHealth returns the caller's stored scores with display percentages.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(r.Context(), h.logger, &logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Get Health API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	doc, err := h.store.GetMetrics(r.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondError(w, &logMessageBuilder, "Health metrics not found", http.StatusNotFound)
		return
	} else if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Database error: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to fetch health metrics", http.StatusInternalServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"metrics":     doc,
			"riskDisplay": doc.Metrics().Display(),
		},
	})
}
