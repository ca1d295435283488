package ciutil

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

const (
	// StandardCIUser is the standard username used in CI environments
	StandardCIUser = "postgres"

	// StandardCIPassword is the standard password used in CI environments
	StandardCIPassword = "postgres"

	// StandardCIPort is the standard port used in CI environments
	StandardCIPort = "5432"

	// StandardCIDatabase is the standard database name used in CI environments
	StandardCIDatabase = "armoury_test"

	// StandardCIOptions contains standard connection options for CI environments
	StandardCIOptions = "sslmode=disable"
)

// GetTestDatabaseURL returns a database URL for integration tests.
// It checks DATABASE_URL, ARMOURY_TEST_DB_URL and ARMOURY_DATABASE_URL in
// that order. In CI the URL is rewritten to the standard service container
// credentials. An empty string means no database is available.
func GetTestDatabaseURL(logger *slog.Logger) string {
	dbURL := GetEnvWithFallbacks(
		[]string{EnvDatabaseURL, EnvArmouryTestDBURL, EnvArmouryDatabaseURL}, "", logger)
	if dbURL == "" || !IsCI() {
		return dbURL
	}

	standardized, err := StandardizeDatabaseURL(dbURL)
	if err != nil {
		if logger != nil {
			logger.Error("Failed to standardize database URL",
				"error", err,
				"original_url", MaskSensitiveValue(dbURL),
			)
		}
		return dbURL
	}
	if standardized != dbURL && logger != nil {
		logger.Info("Standardized database URL for CI environment",
			"original", MaskSensitiveValue(dbURL),
			"standardized", MaskSensitiveValue(standardized),
		)
	}
	return standardized
}

// StandardizeDatabaseURL replaces the credentials of a postgres URL with the
// CI defaults and fills in a missing port, database name and options.
// Non-postgres URLs are returned unchanged.
func StandardizeDatabaseURL(dbURL string) (string, error) {
	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse database URL: %w", err)
	}
	if parsed.Scheme != "postgres" && parsed.Scheme != "postgresql" {
		return dbURL, nil
	}

	out := *parsed
	out.User = url.UserPassword(StandardCIUser, StandardCIPassword)

	host := parsed.Hostname()
	if (host == "" || host == "localhost" || host == "127.0.0.1") && parsed.Port() == "" {
		out.Host = host + ":" + StandardCIPort
	}
	if strings.TrimPrefix(parsed.Path, "/") == "" {
		out.Path = "/" + StandardCIDatabase
	}
	if parsed.RawQuery == "" {
		out.RawQuery = StandardCIOptions
	}
	return out.String(), nil
}
