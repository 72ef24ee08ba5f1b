package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Options, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{rootDir: rootDir}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (ZENLS_*)
// 2. Config file (.zenls/config.yml or .zenls/config.yaml)
// 3. Default values
func (l *loader) Load() (*Options, error) {
	v := viper.New()

	configDir := filepath.Join(l.rootDir, ".zenls")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("ZENLS")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., ZENLS_PARSER_INDENT_UNIT)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("parser.indent_unit")
	v.BindEnv("parser.max_array_depth")
	v.BindEnv("fuzzy.cutoff")
	v.BindEnv("actions.catalog_path")
	v.BindEnv("actions.case_sensitive")
	v.BindEnv("cache.capacity")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - we'll use defaults + env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("parser.indent_unit", defaults.Parser.IndentUnit)
	v.SetDefault("parser.max_array_depth", defaults.Parser.MaxArrayDepth)
	v.SetDefault("fuzzy.cutoff", defaults.Fuzzy.Cutoff)
	v.SetDefault("actions.catalog_path", defaults.Actions.CatalogPath)
	v.SetDefault("actions.case_sensitive", defaults.Actions.CaseSensitive)
	v.SetDefault("cache.capacity", defaults.Cache.Capacity)
}
