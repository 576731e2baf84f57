package main

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/cardroom/blackjack/server"
)

func main() {
	fmt.Println("Starting Blackjack Table Backend...")

	// A missing .env file is fine; the environment still applies
	_ = godotenv.Load()

	var config server.Config
	if err := env.Parse(&config); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	s := server.NewServer(config)
	if err := s.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
