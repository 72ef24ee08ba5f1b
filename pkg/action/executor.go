package action

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zen-lang/zenls/pkg/lang"
	"github.com/zen-lang/zenls/pkg/schema"
)

// Executor turns a matched action into text edits against one document line.
// Zero edits means "not applicable", never an error; errors are reserved for
// malformed action configuration.
type Executor struct {
	indentUnit int
}

// NewExecutor builds an executor with the engine's indent unit.
func NewExecutor(indentUnit int) *Executor {
	if indentUnit <= 0 {
		indentUnit = lang.IndentUnit
	}
	return &Executor{indentUnit: indentUnit}
}

// Execute dispatches on the action's declared execution kind.
func (e *Executor) Execute(def Definition, text string, line int) ([]schema.TextEdit, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if line < 0 || line >= len(lines) {
		return nil, nil
	}
	switch def.Execute.Kind {
	case KindInsertAtEndOfLine:
		return e.insertAtEndOfLine(def, lines[line], line)
	case KindReplaceIndentation:
		return e.replaceIndentation(def, lines[line], line), nil
	case KindInsertMultilineTemplate:
		return e.insertTemplate(def, lines[line], line), nil
	}
	return nil, fmt.Errorf("action %s: unknown execution kind %q", def.ID, def.Execute.Kind)
}

// insertAtEndOfLine evaluates the ordered append rules against the line's
// value text and appends the first match's text at end of line.
func (e *Executor) insertAtEndOfLine(def Definition, lineText string, line int) ([]schema.TextEdit, error) {
	value := lineValue(lineText)
	for _, rule := range def.Execute.Append {
		matched := false
		switch {
		case rule.Regex != "":
			re, err := regexp.Compile(rule.Regex)
			if err != nil {
				return nil, fmt.Errorf("action %s: invalid regex %q: %w", def.ID, rule.Regex, err)
			}
			matched = re.MatchString(value)
		case len(rule.Values) > 0:
			for _, v := range rule.Values {
				if v == value {
					matched = true
					break
				}
			}
		case rule.Default:
			matched = true
		}
		if matched {
			end := len(strings.TrimRight(lineText, " \t"))
			return []schema.TextEdit{{
				Range:   schema.NewRange(line, end, 0),
				NewText: rule.Text,
			}}, nil
		}
	}
	return nil, nil
}

// replaceIndentation recomputes the line's leading whitespace to the nearest
// multiple of the indent unit, optionally normalizing tabs first.
func (e *Executor) replaceIndentation(def Definition, lineText string, line int) []schema.TextEdit {
	unit := def.Execute.IndentUnit
	if unit <= 0 {
		unit = e.indentUnit
	}
	ws := 0
	width := 0
scan:
	for ws < len(lineText) {
		switch lineText[ws] {
		case ' ':
			width++
		case '\t':
			if def.Execute.NormalizeTabs {
				width += unit
			} else {
				width++
			}
		default:
			break scan
		}
		ws++
	}
	if ws == 0 {
		return nil
	}
	rounded := ((width + unit/2) / unit) * unit
	replacement := strings.Repeat(" ", rounded)
	if lineText[:ws] == replacement {
		return nil
	}
	return []schema.TextEdit{{
		Range:   schema.NewRange(line, 0, ws),
		NewText: replacement,
	}}
}

// insertTemplate infers a field kind from the line and inserts the matching
// indented template block below it.
func (e *Executor) insertTemplate(def Definition, lineText string, line int) []schema.TextEdit {
	kind := inferFieldKind(lineText)
	tpl, ok := def.Execute.Templates[kind]
	if !ok {
		tpl, ok = def.Execute.Templates["default"]
		if !ok {
			return nil
		}
	}

	indent := 0
	for indent < len(lineText) && lineText[indent] == ' ' {
		indent++
	}
	pad := strings.Repeat(" ", indent+e.indentUnit)
	var sb strings.Builder
	for _, tplLine := range strings.Split(tpl, "\n") {
		sb.WriteString(pad)
		sb.WriteString(tplLine)
		sb.WriteString("\n")
	}
	return []schema.TextEdit{{
		Range:   schema.NewRange(line+1, 0, 0),
		NewText: sb.String(),
	}}
}

// inferFieldKind reads an explicit type declaration off the line, falling
// back to special-cased key names.
func inferFieldKind(lineText string) string {
	content, _ := lang.SplitComment(lineText)
	trimmed := strings.TrimSpace(content)
	colon := strings.IndexByte(trimmed, ':')
	if colon < 0 {
		return "default"
	}
	rawKey := strings.TrimSpace(trimmed[:colon])
	stripped, _ := lang.StripModifiers(rawKey)
	key, hint, hasHint := lang.ParseHint(stripped)
	if hasHint && hint.Name != "" {
		return hint.Name
	}
	switch key {
	case "fields":
		return "schema"
	case "routes":
		return "navigation"
	case "access":
		return "access"
	case "bridge":
		return "bridge"
	}
	return "default"
}

// lineValue extracts the scalar value text after the key's colon.
func lineValue(lineText string) string {
	content, _ := lang.SplitComment(lineText)
	colon := strings.IndexByte(content, ':')
	if colon < 0 {
		return strings.TrimSpace(content)
	}
	return strings.TrimSpace(content[colon+1:])
}
