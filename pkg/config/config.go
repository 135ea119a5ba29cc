package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Classifier ClassifierConfig
	Logger     LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

// ClassifierConfig selects the classification strategy and tunes the
// UX-only thinking delay.
type ClassifierConfig struct {
	// Strategy is "heuristic" (scoring pipeline, the default) or
	// "similarity" (TF-IDF pattern matching).
	Strategy string
	// ThinkDelay pauses each detection to make the suggestion feel
	// deliberate in a UI. Zero disables it; correctness never depends
	// on it.
	ThinkDelay time.Duration
	// LoadPatterns pulls the similarity knowledge base from the
	// pattern store at startup instead of the built-in set.
	LoadPatterns bool
}

func Load() (*Config, error) {
	// .env is optional; environment variables alone are fine for
	// Docker/K8s deployments
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	refreshExp, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168"))
	thinkDelayMs, _ := strconv.Atoi(getEnv("CLASSIFIER_THINK_DELAY_MS", "0"))
	loadPatterns := getEnv("CLASSIFIER_LOAD_PATTERNS", "false") == "true"

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "smartfinance"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		Classifier: ClassifierConfig{
			Strategy:     getEnv("CLASSIFIER_STRATEGY", "heuristic"),
			ThinkDelay:   time.Duration(thinkDelayMs) * time.Millisecond,
			LoadPatterns: loadPatterns,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
