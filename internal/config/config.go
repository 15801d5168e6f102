package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/addfont-dev/addfont/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys. Each one may also be set through the environment as
// <PREFIX>_<KEY>, e.g. ADDFONT_REGISTRY.
const (
	KeyCatalog  = "catalog"
	KeyRegistry = "registry"
	KeyLogLevel = "log_level"
)

// Defaults used when neither a flag, the environment nor the config file
// provides a value. Paths are relative to the working directory.
const (
	DefaultCatalogPath  = "google-fonts.json"
	DefaultRegistryPath = "fonts.json"
	DefaultLogLevel     = "warn"
)

// Dir returns the path to the config directory (~/.addfont/).
// The <PREFIX>_HOME environment variable overrides it.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.addfont/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyCatalog, DefaultCatalogPath)
	viper.SetDefault(KeyRegistry, DefaultRegistryPath)
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// CatalogPath returns the resolved path of the font catalog file.
func CatalogPath() string { return viper.GetString(KeyCatalog) }

// RegistryPath returns the resolved path of the font registry file.
func RegistryPath() string { return viper.GetString(KeyRegistry) }

// LogLevel returns the configured log level name.
func LogLevel() string { return viper.GetString(KeyLogLevel) }

// Set writes a config key-value pair and saves the config file.
// Only keys already in the file and the new key are written. Values that
// came from flags or the environment stay out of the file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)

	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	file.Set(key, value)
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}
