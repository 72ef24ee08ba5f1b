// Package schema defines the shared data types exchanged between the Zen
// language engine's components: positions, semantic tokens, diagnostics,
// parse results, and the file-type dialect enumeration.
package schema

import "fmt"

// Position is a zero-based line/character location in a document.
type Position struct {
	Line      int
	Character int
}

// Range is a half-open span between two positions.
type Range struct {
	Start Position
	End   Position
}

// NewRange builds a single-line range from a line, a start character, and a length.
func NewRange(line, startChar, length int) Range {
	return Range{
		Start: Position{Line: line, Character: startChar},
		End:   Position{Line: line, Character: startChar + length},
	}
}

// Contains reports whether the range covers the given position.
func (r Range) Contains(p Position) bool {
	if p.Line < r.Start.Line || p.Line > r.End.Line {
		return false
	}
	if p.Line == r.Start.Line && p.Character < r.Start.Character {
		return false
	}
	if p.Line == r.End.Line && p.Character >= r.End.Character {
		return false
	}
	return true
}

// Length returns the character length of a single-line range.
func (r Range) Length() int {
	return r.End.Character - r.Start.Character
}

// SemanticToken classifies a span of document text for client-side rendering.
type SemanticToken struct {
	Range     Range
	Category  TokenCategory
	Modifiers TokenModifier
}

// Severity follows the LSP diagnostic severity numbering.
type Severity int

const (
	SeverityError       Severity = 1
	SeverityWarning     Severity = 2
	SeverityInformation Severity = 3
	SeverityHint        Severity = 4
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInformation:
		return "information"
	case SeverityHint:
		return "hint"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// Diagnostic is a structured problem report. Diagnostics never halt parsing.
type Diagnostic struct {
	Range    Range
	Message  string
	Severity Severity
	Source   string
}

// ParseResult is the complete output of one tokenize call. Data is nil only
// for degenerate (empty) input; malformed input yields a best-effort tree
// plus diagnostics, never an error.
type ParseResult struct {
	Data        map[string]any
	Tokens      []SemanticToken
	Diagnostics []Diagnostic
}

// TextEdit is the only mutation artifact the engine produces. The engine
// never applies edits itself.
type TextEdit struct {
	Range   Range
	NewText string
}

// FileType is the filename-convention-driven dialect of a document.
type FileType int

const (
	FileGeneric FileType = iota
	FileSpark
	FileEnv
	FileUI
	FileConfig
	FileSchema
)

// String returns the dialect name.
func (ft FileType) String() string {
	switch ft {
	case FileGeneric:
		return "generic"
	case FileSpark:
		return "spark"
	case FileEnv:
		return "env"
	case FileUI:
		return "ui"
	case FileConfig:
		return "config"
	case FileSchema:
		return "schema"
	}
	return fmt.Sprintf("filetype(%d)", int(ft))
}
