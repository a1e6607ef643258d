// filepath: internal/api/handlers/housekeeping_handler.go
package handlers

import (
	"net/http"
)

// @Summary Trigger housekeeping
// @Description Repairs stored completion timestamps and applies the retention window immediately. Unparseable completions are only deleted when housekeeping.delete_unparseable is set.
// @Tags maintenance
// @Produce  json
// @Success 200 {object} models.HousekeepingReport
// @Failure 500 {object} ErrorResponse "Housekeeping failed"
// @Router /housekeeping [post]
func (h *Handlers) TriggerHousekeeping(w http.ResponseWriter, r *http.Request) {
	report, err := h.Housekeeping.TriggerHousekeeping()
	if err != nil {
		respondWithServiceError(w, r, err, "Housekeeping failed.")
		return
	}

	h.Auditor.Log(r.Context(), "housekeeping.trigger", actorFromRequest(r), "Completions", map[string]interface{}{
		"rewritten":  report.CompletionsRewritten,
		"unreadable": report.CompletionsUnreadable,
		"deleted":    report.CompletionsDeleted,
		"expired":    report.CompletionsExpired,
	})

	respondWithJSON(w, http.StatusOK, report)
}
