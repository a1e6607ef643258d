// filepath: internal/api/handlers/analytics_handler.go
package handlers

import (
	"net/http"
)

// @Summary Longest streak overall
// @Description Returns the habit with the longest streak. habit_id is null when no habit has a streak.
// @Tags analytics
// @Produce  json
// @Success 200 {object} models.BestStreak
// @Failure 500 {object} ErrorResponse "Failed to compute streaks"
// @Router /analytics/longest-streak [get]
func (h *Handlers) GetLongestStreakOverall(w http.ResponseWriter, r *http.Request) {
	best, err := h.Analytics.LongestStreakOverall()
	if err != nil {
		respondWithServiceError(w, r, err, "Failed to compute streaks.")
		return
	}
	respondWithJSON(w, http.StatusOK, best)
}

// @Summary Longest streak of a habit
// @Tags analytics
// @Produce  json
// @Param   id  path  int  true  "Habit ID"
// @Success 200 {object} models.HabitStreak
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Habit not found"
// @Router /analytics/{id}/longest-streak [get]
func (h *Handlers) GetLongestStreakForHabit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	s, err := h.Analytics.LongestStreakForHabit(id)
	if err != nil {
		respondWithServiceError(w, r, err, "Failed to compute streak.")
		return
	}
	respondWithJSON(w, http.StatusOK, s)
}
