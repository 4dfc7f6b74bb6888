package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level incpath configuration.
type Config struct {
	// SearchPaths are consulted after any -I flags, in order.
	SearchPaths []string `mapstructure:"search_paths"`
	// PathEnv names an environment variable whose path-list is appended
	// after SearchPaths. Empty disables it.
	PathEnv     string `mapstructure:"path_env"`
	Concurrency int    `mapstructure:"concurrency"`
	Output      Output `mapstructure:"output"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. INCPATH_* environment
// variables override file values.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("search_paths", []string{})
	v.SetDefault("path_env", DefaultPathEnv)
	v.SetDefault("concurrency", DefaultConcurrency)
	v.SetDefault("output.color", DefaultOutput.Color)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	for i, p := range cfg.SearchPaths {
		cfg.SearchPaths[i] = expandPath(p)
	}

	return &cfg, nil
}

// SearchList builds the effective search list: extra (usually -I flags)
// first, then the configured search paths, then the entries of the
// PathEnv variable. Order and duplicates are kept.
func (c *Config) SearchList(extra []string) []string {
	list := make([]string, 0, len(extra)+len(c.SearchPaths))
	list = append(list, extra...)
	list = append(list, c.SearchPaths...)
	return append(list, c.EnvSearchPaths()...)
}

// EnvSearchPaths returns the host path-list held in the PathEnv variable.
// An empty element is kept as "", the explicit current-directory entry.
func (c *Config) EnvSearchPaths() []string {
	if c.PathEnv == "" {
		return nil
	}
	val, ok := os.LookupEnv(c.PathEnv)
	if !ok || val == "" {
		return nil
	}
	return filepath.SplitList(val)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
