package api

import (
	"net/http"

	"github.com/raushankrgupta/ayush-ai/utils"
	"github.com/raushankrgupta/ayush-ai/wellness"
)

// Questionnaire lists the dosha questions in answer order.
func (h *Handler) Questionnaire(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"questions": wellness.Questions,
		"count":     wellness.QuestionCount,
	})
}

func (h *Handler) ListPoses(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"data": wellness.Poses})
}

func (h *Handler) GetPose(w http.ResponseWriter, r *http.Request) {
	pose, ok := wellness.PoseByID(r.PathValue("id"))
	if !ok {
		utils.RespondError(w, nil, "Pose not found", http.StatusNotFound)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"data": pose})
}
