package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Keys     APIKeys
	Ai       AIConfig
	Cloud    CloudConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string // APP_URL: absolute base URL used for OAuth and email links
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	SessionSecret      string // mandatory; fatal at startup if absent
	AdminEmail         string
	MockMode           bool // forces both transcription and extraction to mock implementations
}

type DatabaseConfig struct {
	Connection string // DATABASE_PATH: connection string for the persisted store
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type APIKeys struct {
	Geoapify       string
	Binderbyte     string
	GoogleGemini   string
	HuggingFace    string
	Jina           string
	ExampleTopic   string // Embedding topic
	TranscribeKey  string // TRANSCRIBE_API_KEY: enables real transcription
	ExtractKey     string // EXTRACT_API_KEY: enables real extraction
	TranscribeURL  string
	ExtractBaseURL string
}

type AIConfig struct {
	EmbeddingProvider string // "gemini", "ollama", or "jina"
	OllamaBaseURL     string
	OllamaModel       string
	LLMProvider       string // "ollama", "huggingface"
	LLMModel          string
}

// CloudConfig holds the third-party recording provider's OAuth app
// credentials, used by MeetingIngest's cloud-import flow.
type CloudConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	sessionSecret := getEnv("SESSION_SECRET", "")
	if sessionSecret == "" {
		log.Fatal("[FATAL] SESSION_SECRET is required and was not set")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			SessionSecret:      sessionSecret,
			AdminEmail:         strings.ToLower(strings.TrimSpace(getEnv("ADMIN_EMAIL", ""))),
			MockMode:           getEnvAsBool("MOCK_MODE", false),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DATABASE_PATH", getEnv("DB_CONNECTION_STRING", "")),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "MeetingScribe"),
		},
		Keys: APIKeys{
			Geoapify:       getEnv("GEOAPIFY_API_KEY", ""),
			Binderbyte:     getEnv("BINDERBYTE_API_KEY", ""),
			GoogleGemini:   getEnv("GOOGLE_GEMINI_API_KEY", ""),
			HuggingFace:    getEnv("HUGGINGFACE_API_KEY", ""),
			Jina:           getEnv("JINA_API_KEY", ""),
			ExampleTopic:   getEnv("EMBED_MEETING_CONTENT_TOPIC_NAME", "EMBED_MEETING_CONTENT"),
			TranscribeKey:  getEnv("TRANSCRIBE_API_KEY", ""),
			ExtractKey:     getEnv("EXTRACT_API_KEY", ""),
			TranscribeURL:  getEnv("TRANSCRIBE_API_BASE_URL", ""),
			ExtractBaseURL: getEnv("EXTRACT_API_BASE_URL", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:          getEnv("LLM_MODEL", "llama3"),
		},
		Cloud: CloudConfig{
			BaseURL:      getEnv("CLOUD_RECORDING_BASE_URL", "https://api.zoom.us/v2"),
			ClientID:     getEnv("CLOUD_RECORDING_CLIENT_ID", ""),
			ClientSecret: getEnv("CLOUD_RECORDING_CLIENT_SECRET", ""),
		},
	}
}

// IsAdmin compares an email against ADMIN_EMAIL case-insensitively.
func (c *Config) IsAdmin(email string) bool {
	if c.App.AdminEmail == "" {
		return false
	}
	return strings.ToLower(strings.TrimSpace(email)) == c.App.AdminEmail
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

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
