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

const sageUnavailable = "The Sage is currently unavailable. Please check API settings."

// ChatRequest is the body of POST /api/chat. SessionID is empty on the first
// turn and echoes the id from the previous reply afterwards.
type ChatRequest struct {
	SessionID string              `json:"sessionId"`
	Message   string              `json:"message"`
	Context   string              `json:"context"` // pose being practiced
	History   []wellness.ChatTurn `json:"history"`
}

// Chat answers a question from the yoga sage. Unlike recommendations there
// is no local fallback: a generator failure is reported as 503.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(r.Context(), h.logger, &logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Sage Chat API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req ChatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		utils.RespondError(w, &logMessageBuilder, "message is required", http.StatusBadRequest)
		return
	}

	if h.chat == nil {
		utils.RespondError(w, &logMessageBuilder, sageUnavailable, http.StatusServiceUnavailable)
		return
	}

	reply, err := h.chat.Generate(r.Context(), wellness.SageInstruction, wellness.BuildSagePrompt(req.Context, req.History, req.Message))
	if err != nil || strings.TrimSpace(reply) == "" {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Sage generation failed: %v", err))
		utils.RespondError(w, &logMessageBuilder, sageUnavailable, http.StatusServiceUnavailable)
		return
	}

	sessionID := h.saveChat(r, &logMessageBuilder, userID, req, reply)
	utils.RespondJSON(w, http.StatusOK, map[string]string{"reply": reply, "sessionId": sessionID})
}

// saveChat appends the new exchange to the caller's session, or starts a
// session seeded with the replayed history when there is none. Failures are
// logged and the returned id is empty.
func (h *Handler) saveChat(r *http.Request, b *strings.Builder, userID string, req ChatRequest, reply string) string {
	exchange := []wellness.ChatTurn{
		{Role: "user", Content: req.Message},
		{Role: "sage", Content: reply},
	}

	if req.SessionID != "" {
		err := h.store.AppendChatTurns(r.Context(), req.SessionID, userID, exchange...)
		if err == nil {
			return req.SessionID
		}
		if !errors.Is(err, store.ErrNotFound) && !errors.Is(err, store.ErrInvalidID) {
			utils.AddToLogMessage(b, fmt.Sprintf("Error appending to chat session: %v", err))
			return ""
		}
		utils.AddToLogMessage(b, "Unknown chat session, starting a new one")
	}

	oid, err := store.ParseID(userID)
	if err != nil {
		return ""
	}
	session := &models.ChatSession{
		UserID:   oid,
		Context:  req.Context,
		Messages: append(append([]wellness.ChatTurn{}, req.History...), exchange...),
	}
	if err := h.store.CreateChatSession(r.Context(), session); err != nil {
		utils.AddToLogMessage(b, fmt.Sprintf("Error saving chat session: %v", err))
		return ""
	}
	return session.ID.Hex()
}
