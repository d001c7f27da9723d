// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSOrigins() []string
}

// EnhanceConfig provides settings for the OpenRouter chat-completion gateway.
// An empty API key is reported per request, not at startup.
type EnhanceConfig interface {
	GetOpenRouterAPIKey() string
	GetOpenRouterAPIURL() string
	GetOpenRouterModel() string
	GetAppBaseURL() string
	GetBrandName() string
}

// EPCConfig provides settings for the EPC open data registry.
type EPCConfig interface {
	GetEPCAPIKey() string
	GetEPCAPIBaseURL() string
}

// MapsConfig provides settings for the Google Maps web services.
type MapsConfig interface {
	GetGoogleMapsAPIKey() string
}

// MailConfig provides settings for the inquiry mail relay.
type MailConfig interface {
	GetEmailUser() string
	GetEmailPass() string
	GetSMTPHost() string
	GetSMTPPort() int
	GetBrevoAPIKey() string
	GetInquiryRecipient() string
	GetEmailFromName() string
}

// RendererConfig provides settings for the brochure PDF renderer.
type RendererConfig interface {
	GetChromeBin() string
	GetGotenbergURL() string
	GetGotenbergUsername() string
	GetGotenbergPassword() string
	IsGotenbergEnabled() bool
}

// MinIOConfig provides settings for MinIO S3-compatible storage.
type MinIOConfig interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinIOMaxFileSize() int64
	GetMinioBucketPropertyPhotos() string
	GetMinIOPublicBaseURL() string
	IsMinIOEnabled() bool
}

// BrochureConfig provides the renderer settings and brand for brochures.
type BrochureConfig interface {
	RendererConfig
	GetBrandName() string
}

// AgentsConfig provides the optional override file for the agent directory.
type AgentsConfig interface {
	GetAgentsFile() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                       string
	HTTPAddr                  string
	AppBaseURL                string
	BrandName                 string
	CORSOrigins               []string
	OpenRouterAPIKey          string
	OpenRouterAPIURL          string
	OpenRouterModel           string
	EPCAPIKey                 string
	EPCAPIBaseURL             string
	GoogleMapsAPIKey          string
	EmailUser                 string
	EmailPass                 string
	SMTPHost                  string
	SMTPPort                  int
	BrevoAPIKey               string
	InquiryRecipient          string
	EmailFromName             string
	ChromeBin                 string
	GotenbergURL              string
	GotenbergUsername         string
	GotenbergPassword         string
	MinIOEndpoint             string
	MinIOAccessKey            string
	MinIOSecretKey            string
	MinIOUseSSL               bool
	MinIOMaxFileSize          int64
	MinioBucketPropertyPhotos string
	MinIOPublicBaseURL        string
	AgentsFile                string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// EnhanceConfig implementation
func (c *Config) GetOpenRouterAPIKey() string { return c.OpenRouterAPIKey }
func (c *Config) GetOpenRouterAPIURL() string { return c.OpenRouterAPIURL }
func (c *Config) GetOpenRouterModel() string  { return c.OpenRouterModel }
func (c *Config) GetAppBaseURL() string       { return c.AppBaseURL }
func (c *Config) GetBrandName() string        { return c.BrandName }

// EPCConfig implementation
func (c *Config) GetEPCAPIKey() string     { return c.EPCAPIKey }
func (c *Config) GetEPCAPIBaseURL() string { return c.EPCAPIBaseURL }

// MapsConfig implementation
func (c *Config) GetGoogleMapsAPIKey() string { return c.GoogleMapsAPIKey }

// MailConfig implementation
func (c *Config) GetEmailUser() string        { return c.EmailUser }
func (c *Config) GetEmailPass() string        { return c.EmailPass }
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetBrevoAPIKey() string      { return c.BrevoAPIKey }
func (c *Config) GetInquiryRecipient() string { return c.InquiryRecipient }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }

// RendererConfig implementation
func (c *Config) GetChromeBin() string         { return c.ChromeBin }
func (c *Config) GetGotenbergURL() string      { return c.GotenbergURL }
func (c *Config) GetGotenbergUsername() string { return c.GotenbergUsername }
func (c *Config) GetGotenbergPassword() string { return c.GotenbergPassword }
func (c *Config) IsGotenbergEnabled() bool     { return c.GotenbergURL != "" }

// MinIOConfig implementation
func (c *Config) GetMinIOEndpoint() string   { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string  { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string  { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool       { return c.MinIOUseSSL }
func (c *Config) GetMinIOMaxFileSize() int64 { return c.MinIOMaxFileSize }
func (c *Config) GetMinioBucketPropertyPhotos() string {
	return c.MinioBucketPropertyPhotos
}
func (c *Config) GetMinIOPublicBaseURL() string { return c.MinIOPublicBaseURL }
func (c *Config) IsMinIOEnabled() bool          { return c.MinIOEndpoint != "" }

// AgentsConfig implementation
func (c *Config) GetAgentsFile() string { return c.AgentsFile }

// Load reads configuration from environment variables.
// Gateway credentials are optional here; handlers reject requests that need a
// missing credential.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:                       getEnv("APP_ENV", "development"),
		HTTPAddr:                  getEnv("HTTP_ADDR", ":8080"),
		AppBaseURL:                getEnv("APP_BASE_URL", "http://localhost:3000"),
		BrandName:                 getEnv("BRAND_NAME", "Vail Williams"),
		CORSOrigins:               splitCSV(getEnv("CORS_ORIGINS", "*")),
		OpenRouterAPIKey:          getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterAPIURL:          getEnv("OPENROUTER_API_URL", "https://openrouter.ai/api/v1"),
		OpenRouterModel:           getEnv("OPENROUTER_MODEL", "anthropic/claude-3.5-sonnet"),
		EPCAPIKey:                 getEnv("EPC_API_KEY", ""),
		EPCAPIBaseURL:             getEnv("EPC_API_BASE_URL", "https://epc.opendatacommunities.org/api/v1"),
		GoogleMapsAPIKey:          getEnv("GOOGLE_MAPS_API_KEY", ""),
		EmailUser:                 getEnv("EMAIL_USER", ""),
		EmailPass:                 getEnv("EMAIL_PASS", ""),
		SMTPHost:                  getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:                  mustInt(getEnv("SMTP_PORT", "587")),
		BrevoAPIKey:               getEnv("BREVO_API_KEY", ""),
		InquiryRecipient:          getEnv("INQUIRY_RECIPIENT", "phil@vu.co.uk"),
		EmailFromName:             getEnv("EMAIL_FROM_NAME", "The Ai Business"),
		ChromeBin:                 getEnv("CHROME_BIN", ""),
		GotenbergURL:              getEnv("GOTENBERG_URL", ""),
		GotenbergUsername:         getEnv("GOTENBERG_USERNAME", ""),
		GotenbergPassword:         getEnv("GOTENBERG_PASSWORD", ""),
		MinIOEndpoint:             getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:            getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:            getEnv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:               strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		MinIOMaxFileSize:          mustInt64(getEnv("MINIO_MAX_FILE_SIZE", "10485760")),
		MinioBucketPropertyPhotos: getEnv("MINIO_BUCKET_PROPERTY_PHOTOS", "property-photos"),
		MinIOPublicBaseURL:        getEnv("MINIO_PUBLIC_BASE_URL", ""),
		AgentsFile:                getEnv("AGENTS_FILE", ""),
	}

	if cfg.SMTPPort <= 0 {
		return nil, fmt.Errorf("SMTP_PORT must be a positive integer")
	}
	if cfg.IsMinIOEnabled() && (cfg.MinIOAccessKey == "" || cfg.MinIOSecretKey == "") {
		return nil, fmt.Errorf("MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required when MINIO_ENDPOINT is set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}

func mustInt64(value string) int64 {
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}
