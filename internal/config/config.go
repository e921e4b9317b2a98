package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Logger  LoggerConfig  `mapstructure:"logger"`
	Data    DataConfig    `mapstructure:"data"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	HTTPPort        int           `mapstructure:"http_port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.HTTPPort)
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

// DataConfig points at the static compliance snapshot files. The files are
// read once per process; a refreshed snapshot requires a restart.
type DataConfig struct {
	Dir               string `mapstructure:"dir"`
	RequirementsFile  string `mapstructure:"requirements_file"`
	ControlStatusFile string `mapstructure:"control_status_file"`
	FindingsFile      string `mapstructure:"findings_file"`
	TrendFile         string `mapstructure:"trend_file"`
}

// RequirementsPath returns the absolute path of the requirement catalog
func (c DataConfig) RequirementsPath() string {
	return filepath.Join(c.Dir, c.RequirementsFile)
}

// ControlStatusPath returns the absolute path of the control status snapshot
func (c DataConfig) ControlStatusPath() string {
	return filepath.Join(c.Dir, c.ControlStatusFile)
}

// FindingsPath returns the absolute path of the findings collection
func (c DataConfig) FindingsPath() string {
	return filepath.Join(c.Dir, c.FindingsFile)
}

// TrendPath returns the absolute path of the trend data file
func (c DataConfig) TrendPath() string {
	return filepath.Join(c.Dir, c.TrendFile)
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/pcimon")
	}

	// Environment variables
	v.SetEnvPrefix("PCIMON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind nested env vars explicitly (viper doesn't auto-bind nested struct fields)
	v.BindEnv("app.environment", "PCIMON_APP_ENVIRONMENT")
	v.BindEnv("server.host", "PCIMON_SERVER_HOST")
	v.BindEnv("server.http_port", "PCIMON_SERVER_HTTP_PORT")
	v.BindEnv("data.dir", "PCIMON_DATA_DIR")
	v.BindEnv("logger.level", "PCIMON_LOGGER_LEVEL")
	v.BindEnv("logger.format", "PCIMON_LOGGER_FORMAT")
	v.BindEnv("metrics.enabled", "PCIMON_METRICS_ENABLED")

	setDefaults(v)

	// Read config file; defaults alone are a valid configuration
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

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
	v.SetDefault("app.name", "pcimon")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.version", "1.0.0")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Accept", "Content-Type"})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 300)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.time_format", time.RFC3339)

	v.SetDefault("data.dir", "data")
	v.SetDefault("data.requirements_file", "pci_requirements.yaml")
	v.SetDefault("data.control_status_file", "simulated_control_status.json")
	v.SetDefault("data.findings_file", "simulated_findings.json")
	v.SetDefault("data.trend_file", "simulated_trend.json")

	v.SetDefault("metrics.enabled", true)
}
