package config

import (
	"log"
	"os"
)

type Config struct {
	DBDSN   string
	LogFile string
}

func Load() Config {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "monamart.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./monamart.log" // default log sink in project root
	}

	cfg := Config{DBDSN: dsn, LogFile: logFile}
	log.Printf("[config] DB_DSN=%s LOG_FILE=%s", cfg.DBDSN, cfg.LogFile)
	return cfg
}
