package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/MaksLuk/Diploma/internal/api"
	"github.com/MaksLuk/Diploma/internal/cache"
	"github.com/MaksLuk/Diploma/internal/config"
	"github.com/MaksLuk/Diploma/internal/cron"
	"github.com/MaksLuk/Diploma/internal/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system env")
	}

	cfg := config.Load()

	db.InitDB(cfg.DBUrl)
	cache.Init(context.Background(), cfg.RedisAddr, cfg.CacheTTL)
	defer cache.Close()

	r := api.SetupRouter(cfg)

	// Start cron jobs
	jobs, err := cron.StartJobs(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to schedule jobs: %v", err)
	}
	defer jobs.Stop()

	log.Println("Server running on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
