package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port       int
	DataDir    string
	SessionTTL time.Duration // idle sessions older than this are swept
}

func Load() *Config {
	port := 8081
	// Prefer PORT (Render, Fly.io, Railway, etc.) then YAHTZEE_PORT
	if p := os.Getenv("PORT"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			port = v
		}
	} else if p := os.Getenv("YAHTZEE_PORT"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			port = v
		}
	}
	dataDir := os.Getenv("YAHTZEE_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	ttl := 120 * time.Minute
	if m := os.Getenv("SESSION_TTL_MINUTES"); m != "" {
		if v, err := strconv.Atoi(m); err == nil && v > 0 {
			ttl = time.Duration(v) * time.Minute
		}
	}
	return &Config{
		Port:       port,
		DataDir:    dataDir,
		SessionTTL: ttl,
	}
}
