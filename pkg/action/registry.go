package action

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/viper"
)

// LoadCatalog reads the declarative action catalog (YAML) and returns its
// raw definitions. Entries are not validated here; NewRegistry drops the
// invalid ones.
func LoadCatalog(path string) ([]Definition, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read action catalog: %w", err)
	}
	var defs []Definition
	if err := v.UnmarshalKey("actions", &defs); err != nil {
		return nil, fmt.Errorf("failed to decode action catalog: %w", err)
	}
	return defs, nil
}

type compiledAction struct {
	def          Definition
	filePatterns []glob.Glob
}

// Registry answers which actions apply to a diagnostic or a file. Built once
// from the validated catalog; safe for unsynchronized concurrent reads.
type Registry struct {
	actions       []compiledAction
	caseSensitive bool
}

// NewRegistry validates, sorts, and compiles catalog definitions. Entries
// missing required fields (id, title, execution kind) or disabled entries are
// dropped. Higher priority sorts first. caseSensitive controls diagnostic
// substring matching.
func NewRegistry(defs []Definition, caseSensitive bool) (*Registry, error) {
	kept := make([]Definition, 0, len(defs))
	for _, def := range defs {
		if def.ID == "" || def.Title == "" || !validKind(def.Execute.Kind) {
			continue
		}
		if !def.Enabled {
			continue
		}
		kept = append(kept, def)
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Priority > kept[j].Priority })

	r := &Registry{caseSensitive: caseSensitive}
	for _, def := range kept {
		ca := compiledAction{def: def}
		for _, pattern := range def.Triggers.FilePatterns {
			g, err := glob.Compile(pattern)
			if err != nil {
				return nil, fmt.Errorf("action %s: invalid file pattern %q: %w", def.ID, pattern, err)
			}
			ca.filePatterns = append(ca.filePatterns, g)
		}
		r.actions = append(r.actions, ca)
	}
	return r, nil
}

func validKind(kind string) bool {
	switch kind {
	case KindInsertAtEndOfLine, KindReplaceIndentation, KindInsertMultilineTemplate:
		return true
	}
	return false
}

// Len returns the number of enabled, valid actions.
func (r *Registry) Len() int {
	return len(r.actions)
}

// MatchDiagnostic returns the actions whose diagnostic patterns appear in the
// message, in priority order.
func (r *Registry) MatchDiagnostic(message string) []Definition {
	subject := message
	if !r.caseSensitive {
		subject = strings.ToLower(message)
	}
	var out []Definition
	for _, ca := range r.actions {
		for _, pattern := range ca.def.Triggers.DiagnosticPatterns {
			if !r.caseSensitive {
				pattern = strings.ToLower(pattern)
			}
			if strings.Contains(subject, pattern) {
				out = append(out, ca.def)
				break
			}
		}
	}
	return out
}

// MatchFile returns the actions whose file patterns match the filename, in
// priority order. Patterns match against the base name and the full path.
func (r *Registry) MatchFile(filename string) []Definition {
	base := filepath.Base(filename)
	var out []Definition
	for _, ca := range r.actions {
		for _, g := range ca.filePatterns {
			if g.Match(base) || g.Match(filename) {
				out = append(out, ca.def)
				break
			}
		}
	}
	return out
}
