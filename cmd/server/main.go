package main

import (
	"os"

	"carmatch/backend/internal/app"
)

// @title        CarMatch Recommendation API
// @version      1.0
// @description  Conversational vehicle recommendation backend.
// @BasePath     /api/v1
func main() {
	os.Exit(app.Run())
}
