// filepath: internal/initconfig/init.go
package initconfig

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"habithub/internal/logging"
	"habithub/internal/models"
	"habithub/internal/services"
	"habithub/internal/streak"

	"github.com/BurntSushi/toml"
)

// Load reads habit definitions from a TOML init file.
func Load(path string) ([]InitHabit, error) {
	var config InitConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse TOML init config file '%s': %w", path, err)
	}
	logging.Log.Infof("Found %d habit(s) in init config '%s'.", len(config.Habits), path)
	return config.Habits, nil
}

// Run creates every habit that does not exist yet and backfills it with
// completions for the last days days, counted back from now. Habits that
// already exist are left untouched. It returns the number of habits created.
func Run(habitSvc services.HabitService, habits []InitHabit, days int, now time.Time) (int, error) {
	created := 0
	for _, h := range habits {
		if h.Name == "" {
			logging.Log.Warnf("Skipping habit with empty name.")
			continue
		}

		_, err := habitSvc.GetHabitByName(h.Name)
		if err == nil {
			logging.Log.Infof("Skipping habit: '%s' already exists.", h.Name)
			continue
		}
		if !errors.Is(err, services.ErrNotFound) {
			return created, fmt.Errorf("failed to check if habit '%s' exists: %w", h.Name, err)
		}

		p, err := streak.ParsePeriodicity(h.Periodicity)
		if err != nil {
			logging.Log.Errorf("Skipping habit '%s': %v", h.Name, err)
			continue
		}

		payload := models.HabitCreatePayload{Name: h.Name, Periodicity: p.String()}
		if h.Description != "" {
			desc := h.Description
			payload.Description = &desc
		}

		if _, err := habitSvc.CreateHabitWithHistory(payload, Backfill(p, now, days)); err != nil {
			return created, fmt.Errorf("failed to seed habit '%s': %w", h.Name, err)
		}
		logging.Log.Infof("Successfully seeded habit: '%s'", h.Name)
		created++
	}
	return created, nil
}

// Backfill returns UTC midnight timestamps for the last days days ending
// today, oldest first. Daily habits get every day, weekly habits every
// seventh day starting from today.
func Backfill(p streak.Periodicity, now time.Time, days int) []time.Time {
	step := 1
	if p == streak.Weekly {
		step = 7
	}

	y, m, d := now.UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	var times []time.Time
	for i := 0; i < days; i += step {
		times = append(times, today.AddDate(0, 0, -i))
	}
	slices.Reverse(times)
	return times
}
