// Package config loads engine options with the precedence defaults → config
// file → environment variables.
package config

// Options is the complete engine configuration.
type Options struct {
	Parser  ParserOptions  `yaml:"parser" mapstructure:"parser"`
	Fuzzy   FuzzyOptions   `yaml:"fuzzy" mapstructure:"fuzzy"`
	Actions ActionsOptions `yaml:"actions" mapstructure:"actions"`
	Cache   CacheOptions   `yaml:"cache" mapstructure:"cache"`
}

// ParserOptions configures the tokenizer.
type ParserOptions struct {
	IndentUnit    int `yaml:"indent_unit" mapstructure:"indent_unit"`         // canonical indentation width
	MaxArrayDepth int `yaml:"max_array_depth" mapstructure:"max_array_depth"` // nested bracket-array guard
}

// FuzzyOptions configures "did you mean" suggestions.
type FuzzyOptions struct {
	Cutoff float64 `yaml:"cutoff" mapstructure:"cutoff"` // minimum similarity ratio, 0..1
}

// ActionsOptions configures the code action registry.
type ActionsOptions struct {
	CatalogPath   string `yaml:"catalog_path" mapstructure:"catalog_path"`     // declarative action catalog file
	CaseSensitive bool   `yaml:"case_sensitive" mapstructure:"case_sensitive"` // diagnostic substring matching
}

// CacheOptions configures the per-document result cache.
type CacheOptions struct {
	Capacity int `yaml:"capacity" mapstructure:"capacity"` // max cached documents
}

// Default returns options with sensible defaults.
func Default() *Options {
	return &Options{
		Parser: ParserOptions{
			IndentUnit:    2,
			MaxArrayDepth: 32,
		},
		Fuzzy: FuzzyOptions{
			Cutoff: 0.6,
		},
		Actions: ActionsOptions{
			CatalogPath:   "",
			CaseSensitive: false,
		},
		Cache: CacheOptions{
			Capacity: 256,
		},
	}
}
