// Package config handles connector configuration and environment loading.
package config

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"athena-connect/domain"
)

// Config holds construction-time settings for the connector. Fields other
// than Region are optional at construction; operations that need a missing
// field fail at the point of use with a ConfigurationError.
type Config struct {
	Region         string // service region, e.g. "us-west-1"
	Database       string // default database for query execution
	Workgroup      string // default workgroup for saved-query operations
	DataCatalog    string // data catalog name
	OutputBucket   string // bucket receiving query results
	OutputLocation string // key prefix under OutputBucket

	// Static credential pair. When either is empty the ambient credential
	// chain is used instead.
	AccessKeyID     string
	SecretAccessKey string

	LogLevel string // debug, info, warn, error (default "info")
}

// HasStaticCredentials returns true when both halves of the credential pair
// are set.
func (c *Config) HasStaticCredentials() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DatabaseName returns the configured database, or a ConfigurationError when
// it was never provided.
func (c *Config) DatabaseName() (string, error) {
	if c.Database == "" {
		return "", domain.ErrConfiguration("database name")
	}
	return c.Database, nil
}

// WorkgroupName returns the configured workgroup, or a ConfigurationError
// when it was never provided.
func (c *Config) WorkgroupName() (string, error) {
	if c.Workgroup == "" {
		return "", domain.ErrConfiguration("workgroup")
	}
	return c.Workgroup, nil
}

// DataCatalogName returns the configured data catalog, or a
// ConfigurationError when it was never provided.
func (c *Config) DataCatalogName() (string, error) {
	if c.DataCatalog == "" {
		return "", domain.ErrConfiguration("data catalog")
	}
	return c.DataCatalog, nil
}

// ResultLocation returns the output URI the service writes results to. The
// string is built by plain concatenation, without slash normalization, to
// stay wire-compatible with the backing service's location convention.
func (c *Config) ResultLocation() (string, error) {
	if c.OutputBucket == "" {
		return "", domain.ErrConfiguration("output bucket")
	}
	if c.OutputLocation == "" {
		return "", domain.ErrConfiguration("output location")
	}
	return fmt.Sprintf("s3://%s/%s", c.OutputBucket, c.OutputLocation), nil
}

// SetDatabase replaces the configured database name.
func (c *Config) SetDatabase(database string) error {
	if database == "" {
		return domain.ErrValidation("database: expected a non-empty string")
	}
	c.Database = database
	return nil
}

// SetWorkgroup replaces the configured workgroup name.
func (c *Config) SetWorkgroup(workgroup string) error {
	if workgroup == "" {
		return domain.ErrValidation("workgroup: expected a non-empty string")
	}
	c.Workgroup = workgroup
	return nil
}

// SetDataCatalog replaces the configured data catalog name.
func (c *Config) SetDataCatalog(dataCatalog string) error {
	if dataCatalog == "" {
		return domain.ErrValidation("data_catalog: expected a non-empty string")
	}
	c.DataCatalog = dataCatalog
	return nil
}

// SetOutputBucket replaces the configured output bucket.
func (c *Config) SetOutputBucket(bucket string) error {
	if bucket == "" {
		return domain.ErrValidation("output_bucket: expected a non-empty string")
	}
	c.OutputBucket = bucket
	return nil
}

// SetOutputLocation replaces the configured output location prefix.
func (c *Config) SetOutputLocation(location string) error {
	if location == "" {
		return domain.ErrValidation("output_location: expected a non-empty string")
	}
	c.OutputLocation = location
	return nil
}

// LoadFromEnv loads configuration from ATHENA_* environment variables.
// Every field is optional here; validation happens lazily per operation.
func LoadFromEnv() *Config {
	cfg := &Config{
		Region:          os.Getenv("ATHENA_REGION"),
		Database:        os.Getenv("ATHENA_DATABASE"),
		Workgroup:       os.Getenv("ATHENA_WORKGROUP"),
		DataCatalog:     os.Getenv("ATHENA_DATA_CATALOG"),
		OutputBucket:    os.Getenv("ATHENA_OUTPUT_BUCKET"),
		OutputLocation:  os.Getenv("ATHENA_OUTPUT_LOCATION"),
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg
}

// LoadDotEnv reads a .env file and sets any variables not already in the
// environment. Lines must be in KEY=VALUE format. Comments (#) and blank
// lines are skipped.
func LoadDotEnv(path string) error {
	f, err := os.Open(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return nil // .env not found is not an error
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = stripQuotes(strings.TrimSpace(value))
		// Only set if not already in the environment (env vars take precedence)
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("setenv %s: %w", key, err)
			}
		}
	}
	return scanner.Err()
}

// stripQuotes removes surrounding double or single quotes from a value.
// Only strips if both the first and last characters are matching quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
