// Package analysis normalizes every diagnostic source into one protocol
// shape: structured diagnostics from the tokenizer pass through untouched,
// legacy free-text messages are scraped for positions and severity, and two
// extra passes flag style issues and dialect-specific value violations.
package analysis

import (
	"regexp"
	"strings"

	"github.com/zen-lang/zenls/pkg/diag"
	"github.com/zen-lang/zenls/pkg/lang"
	"github.com/zen-lang/zenls/pkg/schema"
)

// Engine runs the diagnostic passes. Safe for concurrent use once built.
type Engine struct {
	fuzzyCutoff float64
}

// NewEngine builds a diagnostics engine. A non-positive cutoff selects the
// default fuzzy-suggestion threshold.
func NewEngine(fuzzyCutoff float64) *Engine {
	if fuzzyCutoff <= 0 {
		fuzzyCutoff = diag.DefaultFuzzyCutoff
	}
	return &Engine{fuzzyCutoff: fuzzyCutoff}
}

// Analyze merges structured diagnostics with the style and value passes.
// Structured diagnostics pass through as-is; the tokenizer is the preferred
// source and legacy scraping exists only for uncontrolled message producers.
func (e *Engine) Analyze(text, filename string, structured []schema.Diagnostic) []schema.Diagnostic {
	out := make([]schema.Diagnostic, 0, len(structured)+4)
	out = append(out, structured...)
	out = append(out, e.StylePass(text)...)
	out = append(out, e.ValuePass(text, filename)...)
	return out
}

var (
	lineRe = regexp.MustCompile(`(?i)\bline\s+(\d+)`)
	colRe  = regexp.MustCompile(`(?i)\b(?:col(?:umn)?)\s+(\d+)`)
	spanRe = regexp.MustCompile(`(\d+):(\d+)-(\d+)`)
)

// FromLegacy converts free-text messages into diagnostics, scraping a
// best-effort position via pattern matching and inferring severity from
// embedded keywords. Unrecognizable positions default to the document start.
func (e *Engine) FromLegacy(messages []string) []schema.Diagnostic {
	out := make([]schema.Diagnostic, 0, len(messages))
	for _, msg := range messages {
		d := schema.Diagnostic{
			Range:    schema.NewRange(0, 0, 1),
			Message:  msg,
			Severity: inferSeverity(msg),
			Source:   "legacy",
		}
		if m := spanRe.FindStringSubmatch(msg); m != nil {
			line := atoiOr(m[1], 1) - 1
			start := atoiOr(m[2], 1) - 1
			end := atoiOr(m[3], 1) - 1
			if end <= start {
				end = start + 1
			}
			d.Range = schema.NewRange(line, start, end-start)
		} else if m := lineRe.FindStringSubmatch(msg); m != nil {
			line := atoiOr(m[1], 1) - 1
			col := 0
			if c := colRe.FindStringSubmatch(msg); c != nil {
				col = atoiOr(c[1], 1) - 1
			}
			d.Range = schema.NewRange(line, col, 1)
		}
		out = append(out, d)
	}
	return out
}

func inferSeverity(msg string) schema.Severity {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "warning"):
		return schema.SeverityWarning
	case strings.Contains(lower, "hint"):
		return schema.SeverityHint
	case strings.Contains(lower, "info"):
		return schema.SeverityInformation
	default:
		return schema.SeverityError
	}
}

func atoiOr(s string, fallback int) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return fallback
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// StylePass flags purely cosmetic issues at Information severity.
func (e *Engine) StylePass(text string) []schema.Diagnostic {
	var out []schema.Diagnostic
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimRight(line, " \t")
		if len(trimmed) < len(line) && trimmed != "" {
			out = append(out, schema.Diagnostic{
				Range:    schema.NewRange(i, len(trimmed), len(line)-len(trimmed)),
				Message:  "trailing whitespace",
				Severity: schema.SeverityInformation,
				Source:   lang.DiagnosticSource,
			})
		}
		if strings.HasPrefix(line, "\t") {
			out = append(out, schema.Diagnostic{
				Range:    schema.NewRange(i, 0, 1),
				Message:  "tab indentation, use spaces",
				Severity: schema.SeverityInformation,
				Source:   lang.DiagnosticSource,
			})
		}
	}
	return out
}

// ValuePass checks dialect-specific enumerated keys against their accepted
// literal sets and suggests corrections for likely typos of reserved keys.
func (e *Engine) ValuePass(text, filename string) []schema.Diagnostic {
	ft, _ := lang.DetectFileType(filename)
	if ft == schema.FileGeneric {
		return nil
	}

	// Only lines the parser recognized as key lines are checked; lines a
	// multiline collector consumed are literal content, not keys. The
	// key/value separator token marks exactly the key lines.
	res := lang.Tokenize(text, filename)
	keyLines := make(map[int]bool)
	for _, tok := range res.Tokens {
		if tok.Category == schema.TokenOperator {
			keyLines[tok.Range.Start.Line] = true
		}
	}

	var out []schema.Diagnostic
	known := lang.KnownKeys(ft)
	lines := strings.Split(text, "\n")
	for i, raw := range lines {
		if !keyLines[i] {
			continue
		}
		key, value, keyStart, valueStart, ok := splitKeyValue(raw)
		if !ok {
			continue
		}
		if allowed, special := lang.SpecialValues(ft, key); special {
			if value != "" && !contains(allowed, value) {
				out = append(out, schema.Diagnostic{
					Range:    schema.NewRange(i, valueStart, len(value)),
					Message:  diag.InvalidEnumValue(key, value, allowed),
					Severity: schema.SeverityError,
					Source:   lang.DiagnosticSource,
				})
			}
			continue
		}
		if contains(known, key) {
			continue
		}
		if suggestion, found := diag.Suggest(key, known, e.fuzzyCutoff); found {
			out = append(out, schema.Diagnostic{
				Range:    schema.NewRange(i, keyStart, len(key)),
				Message:  diag.DidYouMean(key, suggestion),
				Severity: schema.SeverityWarning,
				Source:   lang.DiagnosticSource,
			})
		}
	}
	return out
}

// splitKeyValue extracts the bare key and scalar value from one line,
// stripping comments, modifier affixes, and type hints.
func splitKeyValue(raw string) (key, value string, keyStart, valueStart int, ok bool) {
	content, _ := lang.SplitComment(raw)
	if strings.TrimSpace(content) == "" {
		return "", "", 0, 0, false
	}
	colon := strings.IndexByte(content, ':')
	if colon < 0 {
		return "", "", 0, 0, false
	}
	indent := len(content) - len(strings.TrimLeft(content, " "))
	rawKey := strings.TrimSpace(content[indent:colon])
	stripped, _ := lang.StripModifiers(rawKey)
	clean, _, _ := lang.ParseHint(stripped)

	vs := colon + 1
	for vs < len(content) && content[vs] == ' ' {
		vs++
	}
	return clean, strings.TrimRight(content[vs:], " "), indent, vs, clean != ""
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
