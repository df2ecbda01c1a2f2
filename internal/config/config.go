package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	Parser     ParserConfig
	Recovery   RecoveryConfig
	Extraction ExtractionConfig
	Reconcile  ReconcileConfig
	Upload     UploadConfig
	Worker     WorkerConfig
	S3         S3Config
	CORS       CORSConfig
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ParserProviderConfig holds settings for a single model provider.
type ParserProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// ParserConfig holds model service settings with multi-provider support.
type ParserConfig struct {
	// Legacy flat fields (single provider)
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`

	// Multi-provider fields
	Primary   ParserProviderConfig `mapstructure:"primary"`
	Secondary ParserProviderConfig `mapstructure:"secondary"`
	Tertiary  ParserProviderConfig `mapstructure:"tertiary"`
}

// PrimaryConfig returns the primary provider config, falling back to legacy flat fields.
func (p *ParserConfig) PrimaryConfig() *ParserProviderConfig {
	if p.Primary.Provider != "" {
		return &p.Primary
	}
	return &ParserProviderConfig{
		Provider:     p.Provider,
		APIKey:       p.APIKey,
		DefaultModel: p.DefaultModel,
		TimeoutSecs:  p.TimeoutSecs,
	}
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (p *ParserConfig) SecondaryConfig() *ParserProviderConfig {
	if p.Secondary.Provider != "" {
		return &p.Secondary
	}
	return nil
}

// TertiaryConfig returns the tertiary provider config, or nil if not configured.
func (p *ParserConfig) TertiaryConfig() *ParserProviderConfig {
	if p.Tertiary.Provider != "" {
		return &p.Tertiary
	}
	return nil
}

// Providers returns the configured providers in fallback order.
func (p *ParserConfig) Providers() []*ParserProviderConfig {
	out := []*ParserProviderConfig{p.PrimaryConfig()}
	if s := p.SecondaryConfig(); s != nil {
		out = append(out, s)
	}
	if t := p.TertiaryConfig(); t != nil {
		out = append(out, t)
	}
	return out
}

// RecoveryConfig holds the thresholds of the binary text scraper.
type RecoveryConfig struct {
	MinLineLength int `mapstructure:"min_line_length"`
	MinTextChars  int `mapstructure:"min_text_chars"`
}

// ExtractionConfig holds request-size limits for extraction calls.
type ExtractionConfig struct {
	MaxPromptChars int `mapstructure:"max_prompt_chars"`
	MaxTokens      int `mapstructure:"max_tokens"`
}

// ReconcileConfig toggles the model-assisted reconciliation path.
type ReconcileConfig struct {
	ModelEnabled bool `mapstructure:"model_enabled"`
}

// UploadConfig bounds file intake.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
	MaxFiles      int   `mapstructure:"max_files"`
}

// WorkerConfig holds analysis worker settings.
type WorkerConfig struct {
	Concurrency    int `mapstructure:"concurrency"`
	QueueSize      int `mapstructure:"queue_size"`
	RunTimeoutSecs int `mapstructure:"run_timeout_secs"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// S3Config holds settings for the report archive bucket. An empty bucket disables archiving.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the LEXASTA_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LEXASTA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "text")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173")

	// Parser defaults (legacy flat)
	v.SetDefault("parser.provider", "claude")
	v.SetDefault("parser.api_key", "")
	v.SetDefault("parser.default_model", "claude-opus-4-6")
	v.SetDefault("parser.timeout_secs", 120)

	// Parser primary/secondary/tertiary defaults
	for _, tier := range []string{"primary", "secondary", "tertiary"} {
		v.SetDefault("parser."+tier+".provider", "")
		v.SetDefault("parser."+tier+".api_key", "")
		v.SetDefault("parser."+tier+".default_model", "")
		v.SetDefault("parser."+tier+".timeout_secs", 120)
	}

	// Pipeline defaults
	v.SetDefault("recovery.min_line_length", 8)
	v.SetDefault("recovery.min_text_chars", 100)
	v.SetDefault("extraction.max_prompt_chars", 15000)
	v.SetDefault("extraction.max_tokens", 4096)
	v.SetDefault("reconcile.model_enabled", true)

	// Upload and worker defaults
	v.SetDefault("upload.max_file_size_mb", 25)
	v.SetDefault("upload.max_files", 20)
	v.SetDefault("worker.concurrency", 2)
	v.SetDefault("worker.queue_size", 32)
	v.SetDefault("worker.run_timeout_secs", 900)

	// S3 defaults
	v.SetDefault("s3.region", "eu-south-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                 "LEXASTA_SERVER_PORT",
		"server.read_timeout":         "LEXASTA_SERVER_READ_TIMEOUT",
		"server.write_timeout":        "LEXASTA_SERVER_WRITE_TIMEOUT",
		"server.environment":          "LEXASTA_SERVER_ENVIRONMENT",
		"log.level":                   "LEXASTA_LOG_LEVEL",
		"log.format":                  "LEXASTA_LOG_FORMAT",
		"cors.allowed_origins":        "LEXASTA_CORS_ALLOWED_ORIGINS",
		"parser.provider":             "LEXASTA_PARSER_PROVIDER",
		"parser.api_key":              "LEXASTA_PARSER_API_KEY",
		"parser.default_model":        "LEXASTA_PARSER_DEFAULT_MODEL",
		"parser.timeout_secs":         "LEXASTA_PARSER_TIMEOUT_SECS",
		"recovery.min_line_length":    "LEXASTA_RECOVERY_MIN_LINE_LENGTH",
		"recovery.min_text_chars":     "LEXASTA_RECOVERY_MIN_TEXT_CHARS",
		"extraction.max_prompt_chars": "LEXASTA_EXTRACTION_MAX_PROMPT_CHARS",
		"extraction.max_tokens":       "LEXASTA_EXTRACTION_MAX_TOKENS",
		"reconcile.model_enabled":     "LEXASTA_RECONCILE_MODEL_ENABLED",
		"upload.max_file_size_mb":     "LEXASTA_UPLOAD_MAX_FILE_SIZE_MB",
		"upload.max_files":            "LEXASTA_UPLOAD_MAX_FILES",
		"worker.concurrency":          "LEXASTA_WORKER_CONCURRENCY",
		"worker.queue_size":           "LEXASTA_WORKER_QUEUE_SIZE",
		"worker.run_timeout_secs":     "LEXASTA_WORKER_RUN_TIMEOUT_SECS",
		"s3.region":                   "LEXASTA_S3_REGION",
		"s3.bucket":                   "LEXASTA_S3_BUCKET",
		"s3.endpoint":                 "LEXASTA_S3_ENDPOINT",
		"s3.access_key":               "LEXASTA_S3_ACCESS_KEY",
		"s3.secret_key":               "LEXASTA_S3_SECRET_KEY",
		"s3.presign_expiry":           "LEXASTA_S3_PRESIGN_EXPIRY",
	}
	for _, tier := range []string{"primary", "secondary", "tertiary"} {
		for _, field := range []string{"provider", "api_key", "default_model", "timeout_secs"} {
			key := "parser." + tier + "." + field
			envBindings[key] = "LEXASTA_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		}
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if LEXASTA_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LEXASTA_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	providerConfig := func(tier string) ParserProviderConfig {
		return ParserProviderConfig{
			Provider:     v.GetString("parser." + tier + ".provider"),
			APIKey:       v.GetString("parser." + tier + ".api_key"),
			DefaultModel: v.GetString("parser." + tier + ".default_model"),
			TimeoutSecs:  v.GetInt("parser." + tier + ".timeout_secs"),
		}
	}
	cfg.Parser = ParserConfig{
		Provider:     v.GetString("parser.provider"),
		APIKey:       v.GetString("parser.api_key"),
		DefaultModel: v.GetString("parser.default_model"),
		TimeoutSecs:  v.GetInt("parser.timeout_secs"),
		Primary:      providerConfig("primary"),
		Secondary:    providerConfig("secondary"),
		Tertiary:     providerConfig("tertiary"),
	}

	cfg.Recovery = RecoveryConfig{
		MinLineLength: v.GetInt("recovery.min_line_length"),
		MinTextChars:  v.GetInt("recovery.min_text_chars"),
	}
	cfg.Extraction = ExtractionConfig{
		MaxPromptChars: v.GetInt("extraction.max_prompt_chars"),
		MaxTokens:      v.GetInt("extraction.max_tokens"),
	}
	cfg.Reconcile = ReconcileConfig{
		ModelEnabled: v.GetBool("reconcile.model_enabled"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
		MaxFiles:      v.GetInt("upload.max_files"),
	}
	cfg.Worker = WorkerConfig{
		Concurrency:    v.GetInt("worker.concurrency"),
		QueueSize:      v.GetInt("worker.queue_size"),
		RunTimeoutSecs: v.GetInt("worker.run_timeout_secs"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}

	return cfg, nil
}
