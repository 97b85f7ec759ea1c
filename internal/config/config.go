package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	AllowOrigins    []string
	LogstashTCPAddr string

	SessionTTL    time.Duration
	ResetTokenTTL time.Duration
	MailTimeout   time.Duration

	FrontendBaseURL string
	SMTPHost        string
	SMTPPort        string
	SMTPUsername    string
	SMTPPassword    string
	SMTPFrom        string
	ResetMailTo     string

	SeedDefaultUsers  bool
	SeedAdminPassword string
	SeedUser1Password string
	SeedUser2Password string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	smtpFrom := getenv("SMTP_FROM", "")

	return Config{
		Port:            getenv("PORT", "8080"),
		DatabaseURL:     must("DATABASE_URL"),
		AllowOrigins:    splitAndTrim(getenv("ALLOW_ORIGINS", "http://localhost:5173")),
		LogstashTCPAddr: getenv("LOGSTASH_TCP_ADDR", ""),

		SessionTTL:    duration("SESSION_TTL", time.Hour),
		ResetTokenTTL: duration("RESET_TOKEN_TTL", time.Hour),
		MailTimeout:   duration("MAIL_TIMEOUT", 10*time.Second),

		FrontendBaseURL: getenv("FRONTEND_BASE_URL", "http://localhost:3000"),
		SMTPHost:        getenv("SMTP_HOST", ""),
		SMTPPort:        getenv("SMTP_PORT", ""),
		SMTPUsername:    getenv("SMTP_USERNAME", ""),
		SMTPPassword:    getenv("SMTP_PASSWORD", ""),
		SMTPFrom:        smtpFrom,
		ResetMailTo:     getenv("RESET_MAIL_TO", smtpFrom),

		SeedDefaultUsers:  getenv("SEED_DEFAULT_USERS", "false") == "true",
		SeedAdminPassword: getenv("SEED_ADMIN_PASSWORD", "admin123"),
		SeedUser1Password: getenv("SEED_USER1_PASSWORD", "user123"),
		SeedUser2Password: getenv("SEED_USER2_PASSWORD", "user456"),
	}
}

func duration(k string, d time.Duration) time.Duration {
	raw := getenv(k, "")
	if raw == "" {
		return d
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		log.Printf("Warning: invalid %s=%q, using %s", k, raw, d)
		return d
	}
	return v
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
