// Package config provides configuration loading and defaults for incpath.
package config

// DefaultConfigDir is the default location for incpath configuration.
const DefaultConfigDir = "~/.config/incpath"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// EnvPrefix prefixes environment overrides, e.g. INCPATH_CONCURRENCY.
const EnvPrefix = "INCPATH"

// DefaultPathEnv names the environment variable holding an extra
// path-list of search directories.
const DefaultPathEnv = "INCPATH_PATH"

// DefaultConcurrency bounds parallel lookups in a single resolve run.
const DefaultConcurrency = 8

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
}
