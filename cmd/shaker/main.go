package main

import (
	"github.com/joho/godotenv"
	"github.com/shakerlab/shaker/internal/app"
)

func main() {
	// Load .env file if it exists (local development)
	_ = godotenv.Load()

	err := app.NewServerApp().Run()
	if err != nil {
		panic(err)
	}
}
