// filepath: cmd/habithub/main.go
package main

import (
	"habithub/internal/cli"

	// Import docs for Swagger
	_ "habithub/docs"
)

// @title HabitHub-API
// @version 1.0.0
// @description Habit tracking service with daily and weekly streak analytics.
// @BasePath /api
// @schemes http

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
