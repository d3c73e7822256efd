package config

import (
	"errors"
	"fmt"
	"strings"

	apperrors "hashlab/pkg/errors"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

type Config struct {
	Host string
	Port int

	StorageDriver string
	DataDir       string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	CrackedPassword string
	MinSeconds      float64
	SpreadSeconds   float64
	AttackConfigDir string

	LogLevel string
	Verbose  bool
}

var defaults = map[string]interface{}{
	"server.host":             "0.0.0.0",
	"server.port":             5000,
	"storage.driver":          DriverFile,
	"storage.data_dir":        ".",
	"database.host":           "localhost",
	"database.port":           5432,
	"database.user":           "hashlab",
	"database.password":       "hashlab",
	"database.name":           "hashlab",
	"attack.cracked_password": "hello123",
	"attack.min_seconds":      0.5,
	"attack.spread_seconds":   3.0,
	"attack.config_dir":       "./config/attacks",
	"log.level":               "info",
	"log.verbose":             false,
}

// legacyEnv keeps the plain DB_* variable names working alongside the
// HASHLAB_ prefixed ones.
var legacyEnv = map[string]string{
	"database.host":     "DB_HOST",
	"database.port":     "DB_PORT",
	"database.user":     "DB_USER",
	"database.password": "DB_PASSWORD",
	"database.name":     "DB_NAME",
}

// LoadConfig reads hashlab.yaml (optional) from configPath and the usual
// search paths, then applies HASHLAB_* environment overrides.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("hashlab")

	configPaths := []string{}
	if configPath != "" {
		configPaths = append(configPaths, configPath)
	}
	configPaths = append(configPaths, "./config", "/etc/hashlab", "$HOME/.hashlab")
	for _, path := range configPaths {
		v.AddConfigPath(path)
	}

	v.SetEnvPrefix("HASHLAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for key, env := range legacyEnv {
		if err := v.BindEnv(key, "HASHLAB_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debugf("No hashlab.yaml found in %v, using defaults and environment", configPaths)
	} else {
		log.Infof("Loaded config file: %s", v.ConfigFileUsed())
	}

	return &Config{
		Host:            v.GetString("server.host"),
		Port:            v.GetInt("server.port"),
		StorageDriver:   strings.ToLower(v.GetString("storage.driver")),
		DataDir:         v.GetString("storage.data_dir"),
		DBHost:          v.GetString("database.host"),
		DBPort:          v.GetInt("database.port"),
		DBUser:          v.GetString("database.user"),
		DBPassword:      v.GetString("database.password"),
		DBName:          v.GetString("database.name"),
		CrackedPassword: v.GetString("attack.cracked_password"),
		MinSeconds:      v.GetFloat64("attack.min_seconds"),
		SpreadSeconds:   v.GetFloat64("attack.spread_seconds"),
		AttackConfigDir: v.GetString("attack.config_dir"),
		LogLevel:        v.GetString("log.level"),
		Verbose:         v.GetBool("log.verbose"),
	}, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DSN is the postgres connection string for the postgres storage driver.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, apperrors.NewConfigError("server.port", c.Port, "must be between 1 and 65535"))
	}

	switch c.StorageDriver {
	case DriverFile:
		if c.DataDir == "" {
			errs = append(errs, apperrors.NewConfigError("storage.data_dir", c.DataDir, "required for the file driver"))
		}
	case DriverPostgres:
		if c.DBHost == "" || c.DBName == "" {
			errs = append(errs, apperrors.NewConfigError("database.host", c.DBHost, "host and name are required for the postgres driver"))
		}
	default:
		errs = append(errs, apperrors.NewConfigError("storage.driver", c.StorageDriver, "must be one of: file, postgres"))
	}

	if c.CrackedPassword == "" {
		errs = append(errs, apperrors.NewConfigError("attack.cracked_password", c.CrackedPassword, "must not be empty"))
	}
	if c.MinSeconds < 0 {
		errs = append(errs, apperrors.NewConfigError("attack.min_seconds", c.MinSeconds, "must not be negative"))
	}
	if c.SpreadSeconds <= 0 {
		errs = append(errs, apperrors.NewConfigError("attack.spread_seconds", c.SpreadSeconds, "must be positive"))
	}

	return errors.Join(errs...)
}
