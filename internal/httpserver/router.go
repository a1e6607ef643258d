package httpserver

import (
	"net/http"

	"habithub/internal/api/handlers"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter configures the main router and its sub-routers.
func SetupRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware, recoverMiddleware, loggingMiddleware)
	r.NotFoundHandler = requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "Not found")
	}))

	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
	r.HandleFunc("/api/info", h.GetInfo).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	apiRouter := r.PathPrefix("/api").Subrouter()
	addHabitRoutes(apiRouter, h)
	addAnalyticsRoutes(apiRouter, h)
	apiRouter.HandleFunc("/housekeeping", h.TriggerHousekeeping).Methods("POST")

	return r
}

// addHabitRoutes configures habit and completion routes.
func addHabitRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/habits", h.CreateHabit).Methods("POST")
	r.HandleFunc("/habits", h.GetHabits).Methods("GET")
	r.HandleFunc("/habits/periodicity/{periodicity}", h.GetHabitsByPeriodicity).Methods("GET")
	r.HandleFunc("/habits/{id:[0-9]+}", h.GetHabit).Methods("GET")
	r.HandleFunc("/habits/{id:[0-9]+}", h.DeleteHabit).Methods("DELETE")
	r.HandleFunc("/habits/{id:[0-9]+}/complete", h.CompleteHabit).Methods("POST")
	r.HandleFunc("/habits/{id:[0-9]+}/completions", h.GetCompletions).Methods("GET")
}

// addAnalyticsRoutes configures streak analytics routes.
func addAnalyticsRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/analytics/longest-streak", h.GetLongestStreakOverall).Methods("GET")
	r.HandleFunc("/analytics/{id:[0-9]+}/longest-streak", h.GetLongestStreakForHabit).Methods("GET")
}
