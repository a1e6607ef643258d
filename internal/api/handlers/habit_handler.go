// filepath: internal/api/handlers/habit_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"habithub/internal/logging"
	"habithub/internal/models"

	"github.com/gorilla/mux"
)

// @Summary Create a new habit
// @Description Creates a habit tracked at a daily or weekly periodicity.
// @Tags habits
// @Accept  json
// @Produce  json
// @Param   habit  body  models.HabitCreatePayload  true  "Habit"
// @Success 201 {object} models.Habit
// @Failure 400 {object} ErrorResponse "Invalid request payload, missing name or unknown periodicity"
// @Failure 500 {object} ErrorResponse "Failed to create habit"
// @Router /habits [post]
func (h *Handlers) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var payload models.HabitCreatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logging.FromContext(r.Context()).Warnf("Failed to decode request body: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if payload.Name == "" {
		respondWithError(w, http.StatusBadRequest, "Missing required field: name")
		return
	}
	if payload.Periodicity == "" {
		respondWithError(w, http.StatusBadRequest, "Missing required field: periodicity")
		return
	}

	habit, err := h.Habit.CreateHabit(payload)
	if err != nil {
		respondWithServiceError(w, r, err, "Failed to create habit.")
		return
	}

	h.Auditor.Log(r.Context(), "habit.create", actorFromRequest(r), fmt.Sprintf("Habit:%d", habit.ID), map[string]interface{}{
		"name":        habit.Name,
		"periodicity": habit.Periodicity,
	})

	respondWithJSON(w, http.StatusCreated, habit)
}

// @Summary List all habits
// @Description Retrieves all habits ordered by id.
// @Tags habits
// @Produce  json
// @Success 200 {array} models.Habit "Returns an empty array if no habits exist"
// @Failure 500 {object} ErrorResponse "Failed to retrieve habits"
// @Router /habits [get]
func (h *Handlers) GetHabits(w http.ResponseWriter, r *http.Request) {
	habits, err := h.Habit.GetHabits()
	if err != nil {
		respondWithServiceError(w, r, err, "Failed to retrieve habits.")
		return
	}

	if habits == nil {
		habits = []models.Habit{}
	}
	respondWithJSON(w, http.StatusOK, habits)
}

// @Summary Get a habit
// @Tags habits
// @Produce  json
// @Param   id  path  int  true  "Habit ID"
// @Success 200 {object} models.Habit
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Habit not found"
// @Router /habits/{id} [get]
func (h *Handlers) GetHabit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	habit, err := h.Habit.GetHabit(id)
	if err != nil {
		respondWithServiceError(w, r, err, "Failed to retrieve habit.")
		return
	}
	respondWithJSON(w, http.StatusOK, habit)
}

// @Summary List habits by periodicity
// @Description Retrieves all habits tracked at the given periodicity.
// @Tags habits
// @Produce  json
// @Param   periodicity  path  string  true  "daily or weekly"
// @Success 200 {array} models.Habit
// @Failure 400 {object} ErrorResponse "Unknown periodicity"
// @Router /habits/periodicity/{periodicity} [get]
func (h *Handlers) GetHabitsByPeriodicity(w http.ResponseWriter, r *http.Request) {
	periodicity := mux.Vars(r)["periodicity"]

	habits, err := h.Habit.GetHabitsByPeriodicity(periodicity)
	if err != nil {
		respondWithServiceError(w, r, err, "Failed to retrieve habits.")
		return
	}

	if habits == nil {
		habits = []models.Habit{}
	}
	respondWithJSON(w, http.StatusOK, habits)
}

// @Summary Delete a habit
// @Description Deletes a habit together with all of its completions.
// @Tags habits
// @Param   id  path  int  true  "Habit ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Habit not found"
// @Router /habits/{id} [delete]
func (h *Handlers) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Habit.DeleteHabit(id); err != nil {
		respondWithServiceError(w, r, err, "Failed to delete habit.")
		return
	}

	h.Auditor.Log(r.Context(), "habit.delete", actorFromRequest(r), fmt.Sprintf("Habit:%d", id), nil)
	w.WriteHeader(http.StatusNoContent)
}
