package main

import (
	"log"

	"tvh-attendance-backend/config"
	"tvh-attendance-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	config.ConnectDB()
	database.SeedAll(config.DB)
	log.Println("Seeding finished successfully")
}
