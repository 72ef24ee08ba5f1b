package lang

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zen-lang/zenls/pkg/diag"
	"github.com/zen-lang/zenls/pkg/schema"
)

// IndentUnit is the canonical indentation width.
const IndentUnit = 2

// DiagnosticSource labels diagnostics emitted by the engine.
const DiagnosticSource = "zenls"

type options struct {
	maxArrayDepth int
}

// Option adjusts tokenizer behavior.
type Option func(*options)

// WithMaxArrayDepth overrides the nested-array depth guard.
func WithMaxArrayDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxArrayDepth = n
		}
	}
}

// Tokenize parses a Zen document into a data tree, an ordered semantic token
// stream, and diagnostics. It never returns an error for malformed input:
// structural and semantic problems become diagnostics and parsing continues.
// Empty input yields a nil data tree. Any unexpected internal failure is
// converted into a single catch-all diagnostic.
func Tokenize(text, filename string, opts ...Option) (res *schema.ParseResult) {
	o := options{maxArrayDepth: DefaultMaxArrayDepth}
	for _, opt := range opts {
		opt(&o)
	}

	res = &schema.ParseResult{}
	if strings.TrimSpace(text) == "" {
		return res
	}

	defer func() {
		if r := recover(); r != nil {
			res = &schema.ParseResult{
				Diagnostics: []schema.Diagnostic{{
					Range:    schema.NewRange(0, 0, 1),
					Message:  fmt.Sprintf("internal parse failure: %v", r),
					Severity: schema.SeverityError,
					Source:   DiagnosticSource,
				}},
			}
		}
	}()

	t := newTokenizer(text, filename, o)
	t.run()

	// Collectors report positions out of band; one stable sort restores the
	// non-decreasing (line, startChar) order the wire encoding depends on.
	sort.SliceStable(t.res.Tokens, func(i, j int) bool {
		a, b := t.res.Tokens[i].Range.Start, t.res.Tokens[j].Range.Start
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Character < b.Character
	})
	return t.res
}

type keyInfo struct {
	line int
	raw  string
}

// frame is one level of the container stack.
type frame struct {
	childIndent int
	m           map[string]any
	seen        map[string]keyInfo
}

type tokenizer struct {
	o        options
	ft       schema.FileType
	lines    []string
	contents []string
	tracker  *Tracker
	frames   []frame
	res      *schema.ParseResult
}

func newTokenizer(text, filename string, o options) *tokenizer {
	ft, _ := DetectFileType(filename)
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	root := map[string]any{}
	return &tokenizer{
		o:        o,
		ft:       ft,
		lines:    lines,
		contents: make([]string, len(lines)),
		tracker:  NewTracker(),
		frames:   []frame{{childIndent: 0, m: root, seen: map[string]keyInfo{}}},
		res:      &schema.ParseResult{Data: root},
	}
}

func (t *tokenizer) run() {
	for i := 0; i < len(t.contents); i++ {
		consumed := t.processLine(i)
		i += consumed
	}
}

// processLine handles one key line and returns how many extra lines a
// multiline collector consumed.
func (t *tokenizer) processLine(i int) int {
	// Comments are a key-line concern only. Lines a collector consumes are
	// never processed here, so their text stays verbatim.
	content, spans := SplitComment(t.lines[i])
	t.contents[i] = content
	for _, sp := range spans {
		t.addToken(i, sp.Start, sp.End-sp.Start, schema.TokenComment, 0)
	}
	if strings.TrimSpace(content) == "" {
		return 0
	}

	indent := leadingSpaces(content)
	if indent%IndentUnit != 0 {
		t.addDiag(i, 0, indent, diag.OddIndent(i+1, indent, IndentUnit), schema.SeverityWarning)
	}

	if indent == 0 {
		t.tracker.ClearAll()
	} else {
		t.tracker.CloseAt(indent)
	}

	// Dedent closes containers.
	for len(t.frames) > 1 && indent < t.frames[len(t.frames)-1].childIndent {
		t.frames = t.frames[:len(t.frames)-1]
	}
	fr := &t.frames[len(t.frames)-1]
	if indent > fr.childIndent {
		t.addDiag(i, 0, indent, diag.InconsistentIndent(i+1, indent, fr.childIndent), schema.SeverityWarning)
	}

	colon := findColon(content, indent)
	if colon < 0 {
		trimmed := strings.TrimSpace(content)
		t.addDiag(i, indent, len(trimmed), diag.PositionError("expected 'key: value'", i+1, indent+1), schema.SeverityError)
		return 0
	}

	rawKey := strings.TrimSpace(content[indent:colon])
	keyNoMods, flags := StripModifiers(rawKey)
	cleanKey, hint, hasHint := ParseHint(keyNoMods)

	prefixLen := 0
	for prefixLen < len(rawKey) && (rawKey[prefixLen] == '^' || rawKey[prefixLen] == '~') {
		prefixLen++
	}
	keyStart := indent + prefixLen

	if !validKeyText(cleanKey) {
		t.addDiag(i, keyStart, max(len(cleanKey), 1), fmt.Sprintf("invalid key %q", cleanKey), schema.SeverityError)
		return 0
	}

	cls := Classify(cleanKey, indent, indent == 0, t.tracker, t.ft)

	// Duplicate keys at the same nesting level: first occurrence wins, the
	// duplicate gets exactly one diagnostic citing both lines.
	duplicate := false
	if info, ok := fr.seen[cleanKey]; ok {
		duplicate = true
		t.addDiag(i, keyStart, len(cleanKey), diag.DuplicateKey(cleanKey, info.line+1, i+1, info.raw, rawKey), schema.SeverityError)
	} else {
		fr.seen[cleanKey] = keyInfo{line: i, raw: rawKey}
	}

	mods := flags.TokenModifiers()
	if cls.OpensBlock {
		mods |= schema.ModDeclaration
	}
	t.addToken(i, keyStart, len(cleanKey), cls.Category.TokenCategory(), mods)

	if hasHint {
		t.addToken(i, keyStart+hint.Offset, len(hint.Name), schema.TokenTypeHint, 0)
		if hint.Kind == KindNone {
			t.addDiag(i, keyStart+hint.Offset, len(hint.Name), diag.InvalidEnumValue("type hint", hint.Name, HintNames()), schema.SeverityError)
		}
	}
	t.addToken(i, colon, 1, schema.TokenOperator, 0)

	if cls.OpensBlock {
		if cls.Single {
			t.tracker.EnterSingle(cls.Opens, indent, i)
		} else {
			t.tracker.Enter(cls.Opens, indent, i)
		}
	}

	vs := colon + 1
	for vs < len(content) && content[vs] == ' ' {
		vs++
	}
	value := strings.TrimRight(content[vs:], " ")

	return t.resolveValue(i, indent, vs, value, cleanKey, hint, hasHint, fr, duplicate)
}

// resolveValue dispatches on the value form and returns extra lines consumed.
func (t *tokenizer) resolveValue(i, indent, vs int, value, key string, hint Hint, hasHint bool, fr *frame, duplicate bool) int {
	switch {
	case value == "":
		// A bare key opens a container, a dash list, or a freeform block.
		if t.peekDashList(i, indent) {
			cr := collectDashList(t.contents, i, indent)
			t.emitListTokens(cr)
			t.assign(fr, key, cr.Value, duplicate)
			t.collectDiags(cr)
			return cr.LinesConsumed
		}
		if hasHint && hint.Kind == KindStr {
			cr := collectFreeform(t.contents, i, indent, key)
			t.emitTextTokens(cr, schema.TokenMultilineText)
			t.assign(fr, key, cr.Value, duplicate)
			return cr.LinesConsumed
		}
		if hasHint && hint.Kind == KindList {
			t.assign(fr, key, []any{}, duplicate)
			return 0
		}
		if hasHint && hint.Kind == KindNull {
			t.assign(fr, key, nil, duplicate)
			return 0
		}
		if hasHint && hint.Kind != KindDict {
			v, err := Coerce("", hint.Kind)
			if err != nil {
				t.addDiag(i, vs, 1, diag.CoercionFailure(key, hint.Name, ""), schema.SeverityError)
			}
			t.assign(fr, key, v, duplicate)
			return 0
		}
		child := map[string]any{}
		t.assign(fr, key, child, duplicate)
		t.frames = append(t.frames, frame{
			childIndent: indent + IndentUnit,
			m:           child,
			seen:        map[string]keyInfo{},
		})
		return 0

	case value == "|":
		t.addToken(i, vs, 1, schema.TokenOperator, 0)
		cr := collectPipe(t.contents, i, indent)
		t.emitTextTokens(cr, schema.TokenMultilineText)
		t.assign(fr, key, cr.Value, duplicate)
		return cr.LinesConsumed

	case strings.HasPrefix(value, `"""`):
		cr := collectTripleQuote(t.contents, i, vs, indent)
		t.emitTextTokens(cr, schema.TokenString)
		t.assign(fr, key, cr.Value, duplicate)
		t.collectDiags(cr)
		return cr.LinesConsumed

	case strings.HasPrefix(value, "["):
		cr := collectBracketArray(t.contents, i, vs, t.o.maxArrayDepth)
		t.emitListTokens(cr)
		t.assign(fr, key, cr.Value, duplicate)
		t.collectDiags(cr)
		return cr.LinesConsumed

	default:
		v, err := Coerce(value, hint.Kind)
		if err != nil {
			t.addDiag(i, vs, len(value), diag.CoercionFailure(key, hint.Name, value), schema.SeverityError)
		}
		t.assign(fr, key, v, duplicate)
		t.emitScalarToken(i, vs, value)
		return 0
	}
}

// peekDashList reports whether the next non-blank line starts a dash list one
// level below the key.
func (t *tokenizer) peekDashList(i, indent int) bool {
	for j := i + 1; j < len(t.contents); j++ {
		line := t.contents[j]
		if strings.TrimSpace(line) == "" {
			continue
		}
		if leadingSpaces(line) != indent+IndentUnit {
			return false
		}
		rest := line[indent+IndentUnit:]
		return rest == "-" || strings.HasPrefix(rest, "- ")
	}
	return false
}

func (t *tokenizer) assign(fr *frame, key string, v any, duplicate bool) {
	if !duplicate {
		fr.m[key] = v
	}
}

func (t *tokenizer) collectDiags(cr CollectResult) {
	t.res.Diagnostics = append(t.res.Diagnostics, cr.Diags...)
}

// emitScalarToken classifies one scalar value span.
func (t *tokenizer) emitScalarToken(line, start int, raw string) {
	if raw == "" {
		return
	}
	cat := scalarCategory(raw)
	t.addToken(line, start, len(raw), cat, 0)
	if cat == schema.TokenString && strings.HasPrefix(raw, `"`) {
		for _, esc := range ScanEscapes(raw, start) {
			t.addToken(line, esc.Start, esc.End-esc.Start, schema.TokenEscape, 0)
		}
	}
}

// emitListTokens emits tokens for collected array or dash-list items.
func (t *tokenizer) emitListTokens(cr CollectResult) {
	for _, item := range cr.Items {
		t.emitScalarToken(item.Line, item.Start, item.Raw)
	}
}

// emitTextTokens emits one token per collected text line.
func (t *tokenizer) emitTextTokens(cr CollectResult, cat schema.TokenCategory) {
	for _, item := range cr.Items {
		if item.Length == 0 {
			continue
		}
		t.addToken(item.Line, item.Start, item.Length, cat, 0)
	}
}

func scalarCategory(raw string) schema.TokenCategory {
	switch InferScalar(raw).(type) {
	case bool:
		return schema.TokenBoolean
	case nil:
		return schema.TokenNull
	case int64, float64:
		return schema.TokenNumber
	default:
		return schema.TokenString
	}
}

func (t *tokenizer) addToken(line, start, length int, cat schema.TokenCategory, mods schema.TokenModifier) {
	if length <= 0 {
		return
	}
	t.res.Tokens = append(t.res.Tokens, schema.SemanticToken{
		Range:     schema.NewRange(line, start, length),
		Category:  cat,
		Modifiers: mods,
	})
}

func (t *tokenizer) addDiag(line, start, length int, msg string, sev schema.Severity) {
	if length <= 0 {
		length = 1
	}
	t.res.Diagnostics = append(t.res.Diagnostics, schema.Diagnostic{
		Range:    schema.NewRange(line, start, length),
		Message:  msg,
		Severity: sev,
		Source:   DiagnosticSource,
	})
}

// findColon locates the key/value separator outside quoted regions.
func findColon(s string, from int) int {
	inQuote := false
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if inQuote {
				i++
			}
		case '"':
			inQuote = !inQuote
		case ':':
			if !inQuote {
				return i
			}
		}
	}
	return -1
}
