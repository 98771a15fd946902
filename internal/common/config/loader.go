// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like DELIVERY_SMS_FROM_NUMBER
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = viper.MergeInConfig() // environment overlay is optional

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile tries .env in the working directory and the project root so
// the loader behaves the same from cmd/, tests, and the repo root.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// expandEnvVars resolves ${VAR} placeholders left in YAML values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "towncar-relay"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 10000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Delivery.AWS.Region == "" {
		cfg.Delivery.AWS.Region = "us-east-1"
	}
	if cfg.Booking.CarSeatRate == 0 {
		cfg.Booking.CarSeatRate = 15
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

// overrideEmptyConfig falls back to direct env keys when YAML expansion
// left values empty. Keeps parity with the legacy deployment env names.
func overrideEmptyConfig(cfg *Config) {
	if cfg.Delivery.SMS.FromNumber == "" {
		if val := os.Getenv("RELAY_FROM_NUMBER"); val != "" {
			cfg.Delivery.SMS.FromNumber = val
		}
	}
	if cfg.Delivery.Email.FromEmail == "" {
		if val := os.Getenv("RELAY_FROM_EMAIL"); val != "" {
			cfg.Delivery.Email.FromEmail = val
		}
	}
	if val := os.Getenv("AWS_REGION"); val != "" {
		cfg.Delivery.AWS.Region = val
	}
	if val := os.Getenv("PORT"); val != "" {
		var port int
		if _, err := fmt.Sscanf(val, "%d", &port); err == nil && port > 0 {
			cfg.Server.Port = port
		}
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server port out of range: %d", cfg.Server.Port)
	}
	if cfg.Booking.CarSeatRate < 0 {
		return fmt.Errorf("car seat rate must not be negative: %d", cfg.Booking.CarSeatRate)
	}
	if cfg.Delivery.Email.Enabled && cfg.Delivery.Email.FromEmail == "" {
		return fmt.Errorf("email delivery enabled but delivery.email.from_email is empty")
	}
	return nil
}
