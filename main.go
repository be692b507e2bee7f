package main

import (
	"log"

	"github.com/joho/godotenv"

	"airdash/cmd"
)

func main() {
	// Optional .env for local development; env vars win either way.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cmd.Execute()
}
