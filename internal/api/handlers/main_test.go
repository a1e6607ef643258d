// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"habithub/internal/models"
	"habithub/internal/services/mocks"

	"github.com/gorilla/mux"
)

type testAPI struct {
	server       *httptest.Server
	habit        *mocks.MockHabitService
	completion   *mocks.MockCompletionService
	analytics    *mocks.MockAnalyticsService
	housekeeping *mocks.MockHousekeepingService
	auditor      *mocks.MockAuditor
}

// setupHabitTestAPI wires mocked services into a router serving the habit endpoints.
func setupHabitTestAPI(t *testing.T) *testAPI {
	t.Helper()

	infoSvc := new(mocks.MockInfoService)
	infoSvc.On("GetInfo").Return(models.Info{
		ServiceName: "HabitHub-API",
		Version:     "test",
		UptimeSince: time.Now(),
	})

	api := &testAPI{
		habit:        new(mocks.MockHabitService),
		completion:   new(mocks.MockCompletionService),
		analytics:    new(mocks.MockAnalyticsService),
		housekeeping: new(mocks.MockHousekeepingService),
		auditor:      new(mocks.MockAuditor),
	}

	h := NewHandlers(infoSvc, api.habit, api.completion, api.analytics, api.housekeeping, api.auditor)

	r := mux.NewRouter()
	r.HandleFunc("/habits", h.CreateHabit).Methods("POST")
	r.HandleFunc("/habits", h.GetHabits).Methods("GET")
	r.HandleFunc("/habits/periodicity/{periodicity}", h.GetHabitsByPeriodicity).Methods("GET")
	r.HandleFunc("/habits/{id}", h.GetHabit).Methods("GET")
	r.HandleFunc("/habits/{id}", h.DeleteHabit).Methods("DELETE")
	r.HandleFunc("/habits/{id}/complete", h.CompleteHabit).Methods("POST")
	r.HandleFunc("/habits/{id}/completions", h.GetCompletions).Methods("GET")
	r.HandleFunc("/analytics/longest-streak", h.GetLongestStreakOverall).Methods("GET")
	r.HandleFunc("/analytics/{id}/longest-streak", h.GetLongestStreakForHabit).Methods("GET")
	r.HandleFunc("/housekeeping", h.TriggerHousekeeping).Methods("POST")

	api.server = httptest.NewServer(r)
	t.Cleanup(api.server.Close)
	return api
}
