package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndentUnit indicates a non-positive indent unit
	ErrInvalidIndentUnit = errors.New("invalid indent unit")

	// ErrInvalidArrayDepth indicates a non-positive array depth guard
	ErrInvalidArrayDepth = errors.New("invalid max array depth")

	// ErrInvalidCutoff indicates a fuzzy cutoff outside (0, 1]
	ErrInvalidCutoff = errors.New("invalid fuzzy cutoff")

	// ErrInvalidCapacity indicates a non-positive cache capacity
	ErrInvalidCapacity = errors.New("invalid cache capacity")
)

// Validate checks that the options are valid and complete.
func Validate(opts *Options) error {
	var errs []error

	if opts.Parser.IndentUnit <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d (must be positive)", ErrInvalidIndentUnit, opts.Parser.IndentUnit))
	}
	if opts.Parser.MaxArrayDepth <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d (must be positive)", ErrInvalidArrayDepth, opts.Parser.MaxArrayDepth))
	}
	if opts.Fuzzy.Cutoff <= 0 || opts.Fuzzy.Cutoff > 1 {
		errs = append(errs, fmt.Errorf("%w: %g (must be in (0, 1])", ErrInvalidCutoff, opts.Fuzzy.Cutoff))
	}
	if opts.Cache.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d (must be positive)", ErrInvalidCapacity, opts.Cache.Capacity))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
}
