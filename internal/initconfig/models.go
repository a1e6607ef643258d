// filepath: internal/initconfig/models.go
package initconfig

// InitConfig is the root struct for parsing the TOML initialization file.
type InitConfig struct {
	Habits []InitHabit `toml:"habit"`
}

// InitHabit represents a habit entry in the TOML init file.
type InitHabit struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Periodicity string `toml:"periodicity"`
}

// PredefinedHabits is the habit set seeded when no init file is given.
var PredefinedHabits = []InitHabit{
	{Name: "Drink 2l water", Description: "Hydrate properly", Periodicity: "daily"},
	{Name: "Meditate 10 min", Description: "Mindfulness session", Periodicity: "daily"},
	{Name: "Read 20 pages", Description: "Deep reading time", Periodicity: "daily"},
	{Name: "Grocery shopping", Description: "Restock fridge & pantry", Periodicity: "weekly"},
	{Name: "Weekly review", Description: "Plan upcoming week & reflect", Periodicity: "weekly"},
}
