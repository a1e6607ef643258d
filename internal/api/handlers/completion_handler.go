// filepath: internal/api/handlers/completion_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"habithub/internal/logging"
	"habithub/internal/models"
)

// @Summary Complete a habit
// @Description Records a completion of the habit now, or at completed_at when given.
// @Tags habits
// @Accept  json
// @Produce  json
// @Param   id       path  int                     true   "Habit ID"
// @Param   payload  body  models.CompletePayload  false  "Completion time"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid id or payload"
// @Failure 404 {object} ErrorResponse "Habit not found"
// @Router /habits/{id}/complete [post]
func (h *Handlers) CompleteHabit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var payload models.CompletePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		logging.FromContext(r.Context()).Warnf("Failed to decode completion body: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	completion, err := h.Completion.CompleteHabit(id, payload.CompletedAt)
	if err != nil {
		respondWithServiceError(w, r, err, "Failed to complete habit.")
		return
	}

	h.Auditor.Log(r.Context(), "habit.complete", actorFromRequest(r), fmt.Sprintf("Habit:%d", id), map[string]interface{}{
		"completed_at": completion.CompletedAt.Format(time.RFC3339),
	})

	respondWithJSON(w, http.StatusCreated, MessageResponse{Message: "Habit completed."})
}

// @Summary List completions of a habit
// @Tags habits
// @Produce  json
// @Param   id  path  int  true  "Habit ID"
// @Success 200 {array} models.Completion "Oldest first"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Habit not found"
// @Router /habits/{id}/completions [get]
func (h *Handlers) GetCompletions(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	completions, err := h.Completion.GetCompletions(id)
	if err != nil {
		respondWithServiceError(w, r, err, "Failed to retrieve completions.")
		return
	}

	if completions == nil {
		completions = []models.Completion{}
	}
	respondWithJSON(w, http.StatusOK, completions)
}
