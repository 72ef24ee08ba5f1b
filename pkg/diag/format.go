// Package diag builds human-readable diagnostic messages and fuzzy key
// suggestions. It is a leaf package: the tokenizer and the analysis engine
// both format through it so message text never drifts between emitters.
package diag

import (
	"fmt"
	"strings"
)

// DuplicateKey describes a key repeated at the same nesting level, citing
// both line numbers (1-based) and both raw key forms when they differ.
func DuplicateKey(key string, firstLine, dupLine int, firstRaw, dupRaw string) string {
	if firstRaw != dupRaw {
		return fmt.Sprintf("duplicate key %q on line %d (as %q), first defined on line %d (as %q)",
			key, dupLine, dupRaw, firstLine, firstRaw)
	}
	return fmt.Sprintf("duplicate key %q on line %d, first defined on line %d", key, dupLine, firstLine)
}

// InvalidEnumValue describes a value outside its accepted literal set.
func InvalidEnumValue(what, got string, allowed []string) string {
	return fmt.Sprintf("invalid %s %q, accepted values: %s", what, got, strings.Join(allowed, ", "))
}

// CoercionFailure describes a value that could not be coerced to its hinted
// type.
func CoercionFailure(key, hint, raw string) string {
	if raw == "" {
		return fmt.Sprintf("key %q declares type %s but has no value", key, hint)
	}
	return fmt.Sprintf("cannot coerce value %q of key %q to %s", raw, key, hint)
}

// UnclosedBracket describes a bracket array without a matching closer.
func UnclosedBracket(line int) string {
	return fmt.Sprintf("unclosed bracket opened on line %d", line)
}

// UnclosedQuote describes a triple-quote block without a closer.
func UnclosedQuote(line int) string {
	return fmt.Sprintf("unclosed triple-quote block opened on line %d", line)
}

// OddIndent describes indentation that is not a multiple of the indent unit.
func OddIndent(line, got, unit int) string {
	return fmt.Sprintf("indentation on line %d is %d spaces, expected a multiple of %d", line, got, unit)
}

// InconsistentIndent describes indentation deeper than the enclosing
// container allows.
func InconsistentIndent(line, got, want int) string {
	return fmt.Sprintf("inconsistent indentation on line %d: %d spaces, expected %d", line, got, want)
}

// PositionError is the generic message for a problem at a known position.
func PositionError(msg string, line, col int) string {
	return fmt.Sprintf("%s at line %d, column %d", msg, line, col)
}
