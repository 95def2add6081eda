package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kurihiro0119/codespaces-dashboard/internal/collector"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "DASHBOARD"

// flagKeys maps command-line flag names to the configuration keys they override
var flagKeys = map[string]string{
	"host":         "server.host",
	"port":         "server.port",
	"debug":        "server.debug",
	"days":         "sample.days",
	"seed":         "sample.seed",
	"distribution": "sample.distribution",
	"rate":         "cost.hourly_rate",
	"endpoint":     "client.endpoint",
}

// Config holds the application configuration
type Config struct {
	// API Server
	Host  string
	Port  int
	Debug bool

	// Sample data
	SampleDays   int
	SampleSeed   uint64
	Distribution string

	// Cost
	HourlyRate float64

	// Site
	Environment  string
	Organization string

	// CLI
	APIEndpoint string
}

// Load loads the configuration from defaults, an optional YAML file,
// environment variables and, when flags is non-nil, any of its flags named in
// flagKeys that were set on the command line. An empty configFile searches for
// dashboard.yaml in the working directory and ./config; a missing file there
// is not an error.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("dashboard")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	return &Config{
		Host:         v.GetString("server.host"),
		Port:         v.GetInt("server.port"),
		Debug:        v.GetBool("server.debug"),
		SampleDays:   v.GetInt("sample.days"),
		SampleSeed:   v.GetUint64("sample.seed"),
		Distribution: v.GetString("sample.distribution"),
		HourlyRate:   v.GetFloat64("cost.hourly_rate"),
		Environment:  v.GetString("site.environment"),
		Organization: v.GetString("site.organization"),
		APIEndpoint:  v.GetString("client.endpoint"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.debug", true)
	v.SetDefault("sample.days", collector.DefaultDays)
	v.SetDefault("sample.seed", 0)
	v.SetDefault("sample.distribution", string(collector.DistributionPoisson))
	v.SetDefault("cost.hourly_rate", 0.18)
	v.SetDefault("site.environment", "GitHub Codespaces")
	v.SetDefault("site.organization", "Demo Organization")
	v.SetDefault("client.endpoint", "http://localhost:5000")
}

// Addr returns the host:port the API server binds to
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return &ConfigError{Field: "server.port", Message: "must be between 1 and 65535"}
	}
	if c.SampleDays < 1 {
		return &ConfigError{Field: "sample.days", Message: "must be positive"}
	}
	if _, err := collector.ParseDistribution(c.Distribution); err != nil {
		return &ConfigError{Field: "sample.distribution", Message: "must be 'poisson' or 'uniform'"}
	}
	if c.HourlyRate < 0 {
		return &ConfigError{Field: "cost.hourly_rate", Message: "must not be negative"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
