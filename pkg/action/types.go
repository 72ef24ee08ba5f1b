// Package action loads the declarative quick-fix catalog and executes its
// actions into text edits. The engine never applies edits itself.
package action

// Execution kinds the executor understands.
const (
	KindInsertAtEndOfLine       = "insert-at-end-of-line"
	KindReplaceIndentation      = "replace-indentation"
	KindInsertMultilineTemplate = "insert-multiline-template"
)

// Definition is one validated catalog entry.
type Definition struct {
	ID       string    `mapstructure:"id"`
	Title    string    `mapstructure:"title"`
	Category string    `mapstructure:"category"`
	Priority int       `mapstructure:"priority"`
	Enabled  bool      `mapstructure:"enabled"`
	Triggers Triggers  `mapstructure:"triggers"`
	Execute  Execution `mapstructure:"execution"`
}

// Triggers decide when an action is offered.
type Triggers struct {
	// DiagnosticPatterns are matched as substrings of diagnostic messages.
	DiagnosticPatterns []string `mapstructure:"diagnostic_patterns"`
	// FilePatterns are *-globs matched against the document filename.
	FilePatterns []string `mapstructure:"file_patterns"`
}

// Execution is the kind-specific configuration.
type Execution struct {
	Kind string `mapstructure:"kind"`

	// insert-at-end-of-line: ordered condition/text rules; the first match
	// appends its text.
	Append []AppendRule `mapstructure:"append"`

	// replace-indentation.
	IndentUnit    int  `mapstructure:"indent_unit"`
	NormalizeTabs bool `mapstructure:"normalize_tabs"`

	// insert-multiline-template: templates keyed by inferred field kind,
	// with a "default" fallback.
	Templates map[string]string `mapstructure:"templates"`
}

// AppendRule is one ordered condition of an insert-at-end-of-line action.
// Exactly one of Regex, Values, or Default should be set; they are evaluated
// in that order per rule.
type AppendRule struct {
	Regex   string   `mapstructure:"regex"`
	Values  []string `mapstructure:"values"`
	Default bool     `mapstructure:"default"`
	Text    string   `mapstructure:"text"`
}
