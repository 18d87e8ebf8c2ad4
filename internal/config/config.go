// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	customValidation "github.com/allisson/secure/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	// SecureKey is the fallback decryption key used when no explicit key is given.
	SecureKey string
	// SecureKeyEncoding is how SecureKey encodes the key bytes ("base64", "hex" or "raw").
	SecureKeyEncoding string

	// KMSKeyURI, when set, is the keeper URL used to unwrap SecureKey.
	KMSKeyURI string

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string

	// DecodeConcurrency bounds the number of payload files decoded at once.
	DecodeConcurrency int
}

// Load loads configuration from environment variables and the nearest .env
// file. Process environment values take precedence over .env entries. The
// .env contents are never copied into the process environment.
func Load() *Config {
	return load(readDotEnv())
}

// LoadEnv loads configuration from environment variables only.
func LoadEnv() *Config {
	return load(nil)
}

// load builds the configuration. fileValues supplies the defaults for keys
// absent from the process environment.
func load(fileValues dotEnvValues) *Config {
	return &Config{
		// Key configuration
		SecureKey:         env.GetString("KPOW_SECURE_KEY", fileValues.getString("KPOW_SECURE_KEY", "")),
		SecureKeyEncoding: env.GetString("SECURE_KEY_ENCODING", fileValues.getString("SECURE_KEY_ENCODING", "base64")),

		// KMS configuration
		KMSKeyURI: env.GetString("KMS_KEY_URI", fileValues.getString("KMS_KEY_URI", "")),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", fileValues.getString("LOG_LEVEL", "info")),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", fileValues.getBool("METRICS_ENABLED", false)),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", fileValues.getString("METRICS_NAMESPACE", "secure")),

		// Batch decoding
		DecodeConcurrency: env.GetInt("DECODE_CONCURRENCY", fileValues.getInt("DECODE_CONCURRENCY", 4)),
	}
}

// Validate checks the configuration values.
//
// SecureKey itself is not checked here: it is only decoded when a call falls
// back to the environment key, and a bad value is reported then.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.SecureKeyEncoding,
			validation.Required,
			validation.In("base64", "hex", "raw"),
		),
		validation.Field(&c.KMSKeyURI, customValidation.KMSKeyURI),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.MetricsNamespace,
			validation.When(c.MetricsEnabled, customValidation.NotBlank, customValidation.NoWhitespace),
		),
		validation.Field(&c.DecodeConcurrency, validation.Min(1)),
	)
	return customValidation.WrapValidationError(err)
}

// dotEnvValues holds the entries of a .env file.
type dotEnvValues map[string]string

func (v dotEnvValues) getString(key, defaultValue string) string {
	val, ok := v[key]
	if !ok {
		return defaultValue
	}
	return val
}

func (v dotEnvValues) getInt(key string, defaultValue int) int {
	result, err := strconv.Atoi(v.getString(key, ""))
	if err != nil {
		return defaultValue
	}
	return result
}

func (v dotEnvValues) getBool(key string, defaultValue bool) bool {
	result, err := strconv.ParseBool(v.getString(key, ""))
	if err != nil {
		return defaultValue
	}
	return result
}

// readDotEnv searches for a .env file from the current directory up to the
// root directory and returns its entries. Returns nil when no file is found
// or it cannot be parsed.
func readDotEnv() dotEnvValues {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return nil
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			values, err := godotenv.Read(envPath)
			if err != nil {
				return nil
			}
			return values
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			return nil
		}
		dir = parent
	}
}
