// This file contains environment variable utilities for configuration
// override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false
// (case-insensitive). Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the CONVCALC_ prefix) to the CLI flag
// name it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable
// overrides, grouped as numeric, duration, string, and boolean.
var envOverrides = []envOverride{
	// Numeric overrides
	{"N", "n", func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.BenchSize = parsed
		}
	}},
	{"SEED", "seed", func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}},

	// Duration overrides
	{"TIMEOUT", "timeout", func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// String overrides
	{"ALGO", "algo", func(c *AppConfig, v string) {
		c.Algo = v
	}},
	{"OUTPUT", "o", func(c *AppConfig, v string) {
		c.OutputFile = v
	}},
	{"ADDR", "addr", func(c *AppConfig, v string) {
		c.Addr = v
	}},

	// Boolean overrides
	{"QUIET", "q", func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"VERBOSE", "v", func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
	{"NO_COLOR", "no-color", func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
	{"SERVE", "serve", func(c *AppConfig, v string) {
		c.Serve = parseBoolEnv(v, c.Serve)
	}},
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// The raw sequence flags are handled separately because they are parsed
// after override resolution.
//
// Supported environment variables (all prefixed with CONVCALC_):
//   - A, B, ALGO, N, SEED, TIMEOUT, QUIET, VERBOSE, OUTPUT, ADDR,
//     NO_COLOR, SERVE
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet, rawA, rawB *string) {
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flag) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}

	if !isFlagSet(fs, "a") {
		if val := os.Getenv(EnvPrefix + "A"); val != "" {
			*rawA = val
		}
	}
	if !isFlagSet(fs, "b") {
		if val := os.Getenv(EnvPrefix + "B"); val != "" {
			*rawB = val
		}
	}
}
