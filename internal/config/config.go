package config

import (
	"context"
	"log"
	"os"
	"strconv"

	"medichat-be/pkg/secrets"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Storage  StorageConfig
	Bot      BotConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	TracingEnabled     bool
	OtlpEndpoint       string
}

type DatabaseConfig struct {
	Connection string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type StorageConfig struct {
	AccessKey     string
	SecretKey     string
	Region        string
	Bucket        string
	Folder        string
	PresignTTLSec int
}

type BotConfig struct {
	URL            string
	Token          string
	TimeoutSeconds int
}

// Load builds the configuration once at process start. Values come from
// .env / the process environment; when SECRETS_TOKEN is set outside the
// test environment, missing keys are filled in from the remote secret
// manager before the struct is built. The result is passed by reference
// to every component, there is no package-level config state.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	environment := getEnv("ENVIRONMENT", "test")
	if token := getEnv("SECRETS_TOKEN", ""); token != "" && environment != "test" {
		client := secrets.NewClient(
			getEnv("SECRETS_URL", "https://app.infisical.com"),
			token,
			environment,
		)
		fetched, err := client.Fetch(context.Background())
		if err != nil {
			return nil, err
		}
		for key, value := range fetched {
			if _, exists := os.LookupEnv(key); !exists {
				os.Setenv(key, value)
			}
		}
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8001"),
			Environment:        environment,
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			TracingEnabled:     getEnv("OTEL_ENABLED", "false") == "true",
			OtlpEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DATABASE_URL", ""),
		},
		JWT: JWTConfig{
			Secret:      getEnv("SECRET_KEY", ""),
			ExpiryHours: getEnvAsInt("JWT_ACCESS_TOKEN_EXPIRES", 24),
		},
		Storage: StorageConfig{
			AccessKey:     getEnv("AWS_ACCESS_PHOTO_BUCKET_KEY", ""),
			SecretKey:     getEnv("AWS_ACCESS_PHOTO_BUCKET_SECRET_KEY", ""),
			Region:        getEnv("AWS_PHOTO_BUCKET_REGION", "us-east-1"),
			Bucket:        getEnv("AWS_BUCKET_NAME", ""),
			Folder:        getEnv("AWS_BUCKET_FOLDER", "photos"),
			PresignTTLSec: getEnvAsInt("PRESIGN_TTL_SECONDS", 600),
		},
		Bot: BotConfig{
			URL:            getEnv("FLOWISE_URL", ""),
			Token:          getEnv("FLOWISE_TOKEN", ""),
			TimeoutSeconds: getEnvAsInt("BOT_TIMEOUT_SECONDS", 120),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
