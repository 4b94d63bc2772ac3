package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/raushankrgupta/ayush-ai/models"
	"github.com/raushankrgupta/ayush-ai/report"
	"github.com/raushankrgupta/ayush-ai/store"
	"github.com/raushankrgupta/ayush-ai/utils"
	"github.com/raushankrgupta/ayush-ai/wellness"
)

var errNoRecommendation = errors.New("no recommendation yet")

// HistoryResponse is one page of recommendation history.
type HistoryResponse struct {
	Recommendations []models.RecommendationDocument `json:"recommendations"`
	Total           int64                           `json:"total"`
	CurrentPage     int                             `json:"current_page"`
	TotalPages      int                             `json:"total_pages"`
}

// LatestRecommendation returns the newest recommendation, with null data
// when none exists yet.
func (h *Handler) LatestRecommendation(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(r.Context(), h.logger, &logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Latest Recommendation API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	rec, err := h.store.GetLatestRecommendation(r.Context(), userID)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Database error: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to fetch recommendation", http.StatusInternalServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"data": rec})
}

// RecommendationHistory returns the caller's recommendations, newest first.
func (h *Handler) RecommendationHistory(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(r.Context(), h.logger, &logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Recommendation History API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	page := 1
	limit := 10
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
		limit = min(l, store.MaxPageSize)
	}

	docs, total, err := h.store.ListRecommendations(r.Context(), userID, page, limit)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Database error: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to fetch data", http.StatusInternalServerError)
		return
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	utils.RespondJSON(w, http.StatusOK, HistoryResponse{
		Recommendations: docs,
		Total:           total,
		CurrentPage:     page,
		TotalPages:      totalPages,
	})
}

// PreviewRecommendation renders the local template for a posted profile
// without storing anything.
func (h *Handler) PreviewRecommendation(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(r.Context(), h.logger, &logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Preview Recommendation API]")

	var p wellness.Profile
	if err := decodeJSON(w, r, &p); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := wellness.Validate(p); err != nil {
		respondValidation(w, &logMessageBuilder, err)
		return
	}

	c, err := wellness.Classify(p.DoshaAnswers)
	if err != nil {
		respondValidation(w, &logMessageBuilder, err)
		return
	}
	metrics := wellness.DeriveMetrics(p)

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"dosha":       c,
			"dominant":    c.Dominant(),
			"metrics":     metrics,
			"riskDisplay": metrics.Display(),
			"recommendation": wellness.Recommendation{
				Content:   wellness.RenderLocal(p, c),
				Source:    wellness.SourceLocalFallback,
				CreatedAt: h.now(),
			},
		},
	})
}

// latestReportPDF renders the caller's newest recommendation as a PDF.
func (h *Handler) latestReportPDF(r *http.Request, userID string) ([]byte, string, string, error) {
	rec, err := h.store.GetLatestRecommendation(r.Context(), userID)
	if err != nil {
		return nil, "", "", err
	}
	if rec == nil {
		return nil, "", "", errNoRecommendation
	}

	in := report.RecommendationInput{
		Recommendation: wellness.Recommendation{
			Content:   rec.Content,
			Source:    wellness.Source(rec.Source),
			CreatedAt: rec.CreatedAt,
		},
	}
	if profile, err := h.store.GetProfile(r.Context(), userID); err == nil {
		in.Name = profile.Name
		in.Constitution = profile.Constitution()
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, "", "", err
	}
	if metrics, err := h.store.GetMetrics(r.Context(), userID); err == nil {
		m := metrics.Metrics()
		in.Metrics = &m
	}

	return report.RecommendationPDF(in)
}

func (h *Handler) respondReportError(w http.ResponseWriter, b *strings.Builder, err error) {
	if errors.Is(err, errNoRecommendation) {
		utils.RespondError(w, b, "No recommendation found", http.StatusNotFound)
		return
	}
	utils.AddToLogMessage(b, fmt.Sprintf("Failed to build report: %v", err))
	utils.RespondError(w, b, "Failed to build report", http.StatusInternalServerError)
}

// DownloadRecommendationPDF streams the newest recommendation as a PDF.
func (h *Handler) DownloadRecommendationPDF(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(r.Context(), h.logger, &logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Recommendation PDF API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	data, filename, contentType, err := h.latestReportPDF(r, userID)
	if err != nil {
		h.respondReportError(w, &logMessageBuilder, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// EmailRecommendation mails the newest recommendation PDF to the caller.
func (h *Handler) EmailRecommendation(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(r.Context(), h.logger, &logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Email Recommendation API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if h.mailer == nil {
		utils.RespondError(w, &logMessageBuilder, "Email delivery is not configured", http.StatusServiceUnavailable)
		return
	}

	user, err := h.store.FindUserByID(r.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondError(w, &logMessageBuilder, "User not found", http.StatusNotFound)
		return
	} else if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Database error: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to fetch user", http.StatusInternalServerError)
		return
	}

	data, filename, contentType, err := h.latestReportPDF(r, userID)
	if err != nil {
		h.respondReportError(w, &logMessageBuilder, err)
		return
	}

	err = h.mailer.Send(r.Context(), utils.Email{
		ToName:      user.Name,
		ToEmail:     user.Email,
		Subject:     "Your Ayurvedic Health Report",
		Text:        "Your personalised Ayurvedic health report is attached.",
		HTML:        "<p>Your personalised Ayurvedic health report is attached.</p>",
		Attachments: []utils.Attachment{{Filename: filename, ContentType: contentType, Data: data}},
	})
	if errors.Is(err, utils.ErrMailerDisabled) {
		utils.RespondError(w, &logMessageBuilder, "Email delivery is not configured", http.StatusServiceUnavailable)
		return
	} else if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to send email: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to send email", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Report emailed")
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Report sent to " + user.Email})
}

// ArchiveRecommendation uploads the newest recommendation PDF and returns a
// temporary download link.
func (h *Handler) ArchiveRecommendation(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(r.Context(), h.logger, &logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Archive Recommendation API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if h.archiver == nil {
		utils.RespondError(w, &logMessageBuilder, "Report archive is not configured", http.StatusServiceUnavailable)
		return
	}

	data, _, contentType, err := h.latestReportPDF(r, userID)
	if err != nil {
		h.respondReportError(w, &logMessageBuilder, err)
		return
	}

	key, err := h.archiver.Upload(r.Context(), utils.ReportKey(userID, h.now()), contentType, data)
	if errors.Is(err, utils.ErrArchiveDisabled) {
		utils.RespondError(w, &logMessageBuilder, "Report archive is not configured", http.StatusServiceUnavailable)
		return
	} else if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Upload failed: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to archive report", http.StatusInternalServerError)
		return
	}

	url, err := h.archiver.PresignedURL(r.Context(), key)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Presign failed: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to sign download link", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Report archived at "+key)
	utils.RespondJSON(w, http.StatusOK, map[string]string{"key": key, "url": url})
}
