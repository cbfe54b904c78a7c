package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DataDir string

	KafkaBrokers []string
	AuditTopic   string

	CORSOrigins []string
}

// Load reads a .env file when one is present and falls back to process
// environment variables with defaults.
func Load() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("Error loading .env file: %v", err)
		}
	}

	return &Config{
		Port:         getEnv("PORT", "8000"),
		DataDir:      getEnv("DATA_DIR", "."),
		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		AuditTopic:   getEnv("AUDIT_TOPIC", "audit_logs"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS",
			"http://localhost:5173,http://127.0.0.1:5173")),
	}
}

func (c *Config) ProductsFile() string { return filepath.Join(c.DataDir, "products.json") }
func (c *Config) OrdersFile() string   { return filepath.Join(c.DataDir, "orders.json") }
func (c *Config) AdminFile() string    { return filepath.Join(c.DataDir, "admin.json") }

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
