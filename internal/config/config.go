package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr      string
	SMTPServer    string
	SMTPPort      int
	EmailUsername string
	EmailPassword string
	AdminEmail    string
	SessionSecret string
	OperatorEmail string
	OperatorPass  string
	GelfAddr      string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or couldn't be loaded")
	}
	return &Config{
		HTTPAddr:      getEnv("PORTAL_ADDR", ":8080"),
		SMTPServer:    getEnv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		EmailUsername: getEnv("EMAIL_USERNAME", ""),
		EmailPassword: getEnv("EMAIL_PASSWORD", ""),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		SessionSecret: getEnv("SESSION_SECRET", ""),
		OperatorEmail: getEnv("OPERATOR_EMAIL", "operator@visaportal.local"),
		OperatorPass:  getEnv("OPERATOR_PASS", ""),
		GelfAddr:      getEnv("GELF_ADDR", ""),
	}
}

// Complete reports whether every setting required to process a submission is
// present: the relay endpoint, the sender credential pair, the administrator
// address, and the session signing secret. The submission service refuses to
// dispatch when this returns false.
func (c *Config) Complete() bool {
	return c.SMTPServer != "" &&
		c.SMTPPort != 0 &&
		c.EmailUsername != "" &&
		c.EmailPassword != "" &&
		c.AdminEmail != "" &&
		c.SessionSecret != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n := 0
	for _, c := range v {
		if c < '0' || c > '9' {
			return fallback
		}
		n = n*10 + int(c-'0')
	}
	return n
}
