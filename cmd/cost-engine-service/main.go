package main

import (
	"log"

	"cost-engine-service/internal"
)

func main() {
	app, err := internal.NewApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("Application terminated with error: %v", err)
	}
}
