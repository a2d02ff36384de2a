package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DBUrl       string
	Port        string
	RedisAddr   string
	CacheTTL    time.Duration
	CORSOrigins []string

	// Spreadsheet imported by the cron job. Empty disables the job.
	ImportPath         string
	ImportSchedule     string
	CollisionsSchedule string

	// Base URL of the API used by the command-line client.
	APIURL string
}

// Load reads the configuration from the environment. The caller loads .env
// beforehand when it wants one.
func Load() *Config {
	v := viper.New()
	v.SetDefault("DATABASE_URL", "sqlite://schedule.sqlite")
	v.SetDefault("PORT", "8000")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("CACHE_TTL", 5*time.Minute)
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("IMPORT_PATH", "")
	v.SetDefault("IMPORT_SCHEDULE", "@daily")
	v.SetDefault("COLLISIONS_SCHEDULE", "@hourly")
	v.SetDefault("API_URL", "http://localhost:8000")
	v.AutomaticEnv()

	return &Config{
		DBUrl:              v.GetString("DATABASE_URL"),
		Port:               v.GetString("PORT"),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		CacheTTL:           v.GetDuration("CACHE_TTL"),
		CORSOrigins:        splitList(v.GetString("CORS_ORIGINS")),
		ImportPath:         v.GetString("IMPORT_PATH"),
		ImportSchedule:     v.GetString("IMPORT_SCHEDULE"),
		CollisionsSchedule: v.GetString("COLLISIONS_SCHEDULE"),
		APIURL:             strings.TrimRight(v.GetString("API_URL"), "/"),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
