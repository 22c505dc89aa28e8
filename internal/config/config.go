package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	Port      string
	DBDSN     string
	JWTSecret string
	TokenTTL  time.Duration
	LogFile   string
	SeedDemo  bool
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "stockroom.db"
	} // sqlite file in project root
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "supersecretkey"
		log.Println("[config] JWT_SECRET not set, using insecure default")
	}
	ttl := 24 * time.Hour
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			ttl = d
		} else {
			log.Printf("[config] bad TOKEN_TTL %q, keeping %s", raw, ttl)
		}
	}
	logFile := os.Getenv("LOG_FILE")
	seed := os.Getenv("SEED_DEMO") == "1"

	cfg := Config{Port: port, DBDSN: dsn, JWTSecret: secret, TokenTTL: ttl, LogFile: logFile, SeedDemo: seed}
	log.Printf("[config] PORT=%s DB_DSN=%s TOKEN_TTL=%s LOG_FILE=%s SEED_DEMO=%v", cfg.Port, cfg.DBDSN, cfg.TokenTTL, cfg.LogFile, cfg.SeedDemo)
	return cfg
}
