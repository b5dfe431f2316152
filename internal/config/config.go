// Package config implements loading of pathrouter route tables from configuration files.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/renbou/pathrouter"
	"github.com/renbou/pathrouter/routelog"
)

const envPrefix = "PATHROUTER_"

//go:generate stringer -type=discoveryOrigin -trimprefix=discoveryOrigin
type discoveryOrigin int

const (
	discoveryOriginNone discoveryOrigin = iota
	discoveryOriginEnv
	discoveryOriginAuto
)

var discoveryFilenames = []string{
	"pathrouter.hcl", "pathrouter.json", "pathrouter.yaml",
	"routes.hcl", "routes.json", "routes.yaml",
}

func discoverPath() (string, discoveryOrigin, bool) {
	if value, ok := os.LookupEnv(envPrefix + "CONFIG"); ok {
		return value, discoveryOriginEnv, true
	}

	for _, filename := range discoveryFilenames {
		if _, err := os.Stat(filename); err == nil {
			return filename, discoveryOriginAuto, true
		}
	}

	return "", discoveryOriginNone, false
}

// LogLevel returns the log level set via the PATHROUTER_LOG_LEVEL environment variable, info by default.
func LogLevel() slog.Level {
	levelMapping := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	if level, ok := levelMapping[os.Getenv(envPrefix+"LOG_LEVEL")]; ok {
		return level
	}

	return slog.LevelInfo
}

// Load reads the route table from the file at path, or from an autodiscovered file if path is empty.
// Autodiscovery first checks the PATHROUTER_CONFIG environment variable,
// then looks for pathrouter.{hcl,json,yaml} and routes.{hcl,json,yaml} in the working directory.
// An empty route table is returned when no file is found.
func Load(logger routelog.Logger, path string) (*pathrouter.Config, error) {
	logger = logger.WithComponent("pathrouter.config")

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %q does not exist or is inaccessible: %w", path, err)
		}
	} else {
		discovered, origin, ok := discoverPath()
		if !ok {
			logger.Warn("No config file found, and no --config flag was provided. Will use an empty route table.")
			return new(pathrouter.Config), nil
		}

		path = discovered
		logger.Info(fmt.Sprintf("Using discovered config file %q", path), "discovery_origin", origin.String())
	}

	return Read(path)
}
