package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"pulse/pkg/config"
	"pulse/pkg/database/postgresql"
	"pulse/seeders"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found")
	}

	cfg := config.New()
	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	if err := seeders.Run(context.Background(), db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}
