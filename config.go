package main

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service.
type Config struct {
	Port     string // HTTP port (default: 8085)
	Env      string // "production" switches logging to JSON
	MongoURI string // MongoDB connection string; empty means file store
	MongoDB  string // MongoDB database name
	DataFile string // local JSON fallback store path

	SMTPServer   string
	SMTPPort     string
	SMTPEmail    string
	SMTPPassword string
}

// LoadConfig loads environment variables into a Config struct. A .env file
// is honored when present. SMTP credentials are optional: without them the
// service runs with email notifications disabled.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         os.Getenv("PORT"),
		Env:          os.Getenv("ENV"),
		MongoURI:     os.Getenv("MONGO_URI"),
		MongoDB:      os.Getenv("MONGO_DB"),
		DataFile:     os.Getenv("DATA_FILE"),
		SMTPServer:   os.Getenv("SMTP_SERVER"),
		SMTPPort:     os.Getenv("SMTP_PORT"),
		SMTPEmail:    os.Getenv("SMTP_EMAIL"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
	}

	if cfg.Port == "" {
		cfg.Port = "8085"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "physiotherapy-detail"
	}
	if cfg.DataFile == "" {
		cfg.DataFile = "data.json"
	}
	if cfg.SMTPServer == "" {
		cfg.SMTPServer = "smtp.gmail.com"
	}
	if cfg.SMTPPort == "" {
		cfg.SMTPPort = "587"
	}

	return cfg
}

// EmailEnabled reports whether SMTP credentials are configured.
func (c *Config) EmailEnabled() bool {
	return c.SMTPEmail != "" && c.SMTPPassword != ""
}
