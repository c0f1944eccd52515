package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Workflow WorkflowConfig `mapstructure:"workflow"`
	Upload   UploadConfig   `mapstructure:"upload"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
	Debug       bool   `mapstructure:"debug"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	HTTPPort        int           `mapstructure:"http_port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	TimeFormat string `mapstructure:"time_format"`
}

// WorkflowConfig holds the stage completion thresholds, as fractions.
type WorkflowConfig struct {
	ScopingThreshold float64 `mapstructure:"scoping_threshold"`
	GapThreshold     float64 `mapstructure:"gap_threshold"`
	PolicyThreshold  float64 `mapstructure:"policy_threshold"`
}

// UploadConfig bounds uploaded document metadata.
type UploadConfig struct {
	MaxFileSize int64 `mapstructure:"max_file_size"`
}

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/isms-lab")
	}

	// Environment variables
	v.SetEnvPrefix("ISMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind nested env vars explicitly (viper doesn't auto-bind nested struct fields)
	v.BindEnv("app.environment", "ISMS_APP_ENVIRONMENT")
	v.BindEnv("server.host", "ISMS_SERVER_HOST")
	v.BindEnv("server.http_port", "ISMS_SERVER_HTTP_PORT")
	v.BindEnv("logger.level", "ISMS_LOGGER_LEVEL")
	v.BindEnv("logger.format", "ISMS_LOGGER_FORMAT")
	v.BindEnv("workflow.scoping_threshold", "ISMS_WORKFLOW_SCOPING_THRESHOLD")
	v.BindEnv("workflow.gap_threshold", "ISMS_WORKFLOW_GAP_THRESHOLD")
	v.BindEnv("workflow.policy_threshold", "ISMS_WORKFLOW_POLICY_THRESHOLD")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// Missing file is fine, defaults and env cover everything
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadDefault loads configuration with default path
func LoadDefault() (*Config, error) {
	return Load("")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "isms-lab")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.version", "dev")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Accept", "Content-Type", "Authorization"})
	v.SetDefault("cors.max_age", 300)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("workflow.scoping_threshold", 0.5)
	v.SetDefault("workflow.gap_threshold", 0.8)
	v.SetDefault("workflow.policy_threshold", 0.7)

	v.SetDefault("upload.max_file_size", 25<<20)
}
