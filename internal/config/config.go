package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Gemini   GeminiConfig
	Speech   SpeechConfig
	Storage  StorageConfig
	Upload   UploadConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type GeminiConfig struct {
	APIKey           string
	RetryMaxAttempts int
}

type SpeechConfig struct {
	CredentialsFile string
	LanguageCode    string
}

type StorageConfig struct {
	Endpoint        string
	Region          string
	AccessKey       string
	SecretKey       string
	PublicBaseURL   string
	ResponsesBucket string
	VideosBucket    string
}

type UploadConfig struct {
	StagingPath string
	MaxFileSize int64
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "interview_api"),
		},
		Gemini: GeminiConfig{
			APIKey:           getEnv("GEMINI_API_KEY", ""),
			RetryMaxAttempts: getEnvAsInt("GEMINI_RETRY_MAX_ATTEMPTS", 3),
		},
		Speech: SpeechConfig{
			CredentialsFile: getEnv("SPEECH_CREDENTIALS_FILE", "google-credentials.json"),
			LanguageCode:    getEnv("SPEECH_LANGUAGE_CODE", "fr-FR"),
		},
		Storage: StorageConfig{
			Endpoint:        getEnv("STORAGE_ENDPOINT", "http://localhost:9000"),
			Region:          getEnv("STORAGE_REGION", "us-east-1"),
			AccessKey:       getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey:       getEnv("STORAGE_SECRET_KEY", ""),
			PublicBaseURL:   getEnv("STORAGE_PUBLIC_BASE_URL", ""),
			ResponsesBucket: getEnv("STORAGE_RESPONSES_BUCKET", "responses"),
			VideosBucket:    getEnv("STORAGE_VIDEOS_BUCKET", "interviews"),
		},
		Upload: UploadConfig{
			StagingPath: getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 52428800),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}
