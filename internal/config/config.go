package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendFirebase = "firebase"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"

	EventsNone  = "none"
	EventsKafka = "kafka"
	EventsAMQP  = "amqp"
)

type Config struct {
	// Discord Bot
	DiscordToken string

	// Ledger store
	LedgerBackend           string
	FirebaseDatabaseURL     string
	FirebaseCredentialsFile string
	DatabaseURL             string
	SQLiteDBPath            string

	// Ledger events
	EventsBackend string
	KafkaBrokers  []string
	KafkaTopic    string
	AMQPURL       string
	AMQPExchange  string

	// Web Server; empty disables the HTTP API
	WebBind string

	// Logging
	LogLevel  string
	LogFormat string
}

func Load() (*Config, error) {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:            os.Getenv("DISCORD_TOKEN"),
		LedgerBackend:           getEnvDefault("LEDGER_BACKEND", BackendFirebase),
		FirebaseDatabaseURL:     os.Getenv("FIREBASE_DATABASE_URL"),
		FirebaseCredentialsFile: os.Getenv("FIREBASE_CREDENTIALS_FILE"),
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		SQLiteDBPath:            getEnvDefault("SQLITE_DB_PATH", "./data/cajachica.db"),
		EventsBackend:           getEnvDefault("EVENTS_BACKEND", EventsNone),
		KafkaBrokers:            splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:              getEnvDefault("KAFKA_TOPIC", "cajachica.transactions"),
		AMQPURL:                 os.Getenv("AMQP_URL"),
		AMQPExchange:            getEnvDefault("AMQP_EXCHANGE", "cajachica"),
		WebBind:                 getEnvDefault("WEB_BIND", "0.0.0.0:3000"),
		LogLevel:                getEnvDefault("LOG_LEVEL", "info"),
		LogFormat:               getEnvDefault("LOG_FORMAT", "text"),
	}
	if v, ok := os.LookupEnv("WEB_BIND"); ok && v == "" {
		cfg.WebBind = ""
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first missing or malformed setting.
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}

	switch c.LedgerBackend {
	case BackendFirebase:
		if c.FirebaseDatabaseURL == "" {
			return fmt.Errorf("FIREBASE_DATABASE_URL is required when LEDGER_BACKEND is %s", BackendFirebase)
		}
		if u, err := url.Parse(c.FirebaseDatabaseURL); err != nil || u.Scheme != "https" || u.Host == "" {
			return fmt.Errorf("FIREBASE_DATABASE_URL must be an https URL, got %q", c.FirebaseDatabaseURL)
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when LEDGER_BACKEND is %s", BackendPostgres)
		}
	case BackendSQLite:
		if c.SQLiteDBPath == "" {
			return fmt.Errorf("SQLITE_DB_PATH is required when LEDGER_BACKEND is %s", BackendSQLite)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("invalid LEDGER_BACKEND %q: must be one of %s, %s, %s, %s",
			c.LedgerBackend, BackendFirebase, BackendPostgres, BackendSQLite, BackendMemory)
	}

	switch c.EventsBackend {
	case EventsNone:
	case EventsKafka:
		if len(c.KafkaBrokers) == 0 {
			return fmt.Errorf("KAFKA_BROKERS is required when EVENTS_BACKEND is %s", EventsKafka)
		}
		if c.KafkaTopic == "" {
			return fmt.Errorf("KAFKA_TOPIC cannot be empty")
		}
	case EventsAMQP:
		if c.AMQPURL == "" {
			return fmt.Errorf("AMQP_URL is required when EVENTS_BACKEND is %s", EventsAMQP)
		}
		if u, err := url.Parse(c.AMQPURL); err != nil || (u.Scheme != "amqp" && u.Scheme != "amqps") {
			return fmt.Errorf("invalid AMQP_URL %q: scheme must be amqp or amqps", c.AMQPURL)
		}
		if c.AMQPExchange == "" {
			return fmt.Errorf("AMQP_EXCHANGE cannot be empty")
		}
	default:
		return fmt.Errorf("invalid EVENTS_BACKEND %q: must be one of %s, %s, %s",
			c.EventsBackend, EventsNone, EventsKafka, EventsAMQP)
	}

	return nil
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
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
