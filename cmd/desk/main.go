package main

import (
	"errors"
	"io/fs"
	"log"
	_ "time/tzdata" // TIMEZONE must resolve in minimal images

	"github.com/aussiebroadwan/clientdesk/internal/desk/app"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("failed to load .env: %v", err)
	}

	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
