package lang

import (
	"fmt"
	"strings"

	"github.com/zen-lang/zenls/pkg/diag"
	"github.com/zen-lang/zenls/pkg/schema"
)

// DefaultMaxArrayDepth bounds nested bracket-array collection. Exceeding it
// yields a diagnostic instead of unbounded recursion.
const DefaultMaxArrayDepth = 32

// ItemPos records where one collected item (or text line) sits in the source,
// so the tokenizer can emit accurate tokens for multiline content.
type ItemPos struct {
	Line   int
	Start  int
	Length int
	Raw    string
}

// CollectResult is the common return shape of every multiline collector.
type CollectResult struct {
	Value any
	// LinesConsumed counts lines consumed beyond the key line itself.
	LinesConsumed int
	Items         []ItemPos
	Diags         []schema.Diagnostic
}

// joinSeparators keys the multiline join character off known property names.
// One explicit table; everything else joins with a space.
var joinSeparators = map[string]string{
	"description": " ",
	"summary":     " ",
	"title":       " ",
	"content":     "\n",
	"body":        "\n",
	"text":        "\n",
}

// JoinSeparator returns the join string for freeform multiline values of the
// given key.
func JoinSeparator(key string) string {
	if sep, ok := joinSeparators[key]; ok {
		return sep
	}
	return " "
}

// collectPipe gathers a `key: |` block: every following line indented past
// the key joins with newlines, dedented by one indent unit.
func collectPipe(contents []string, start, parentIndent int) CollectResult {
	var out []string
	var items []ItemPos
	consumed := 0
	pending := 0 // blank lines held back until more content follows
	for i := start + 1; i < len(contents); i++ {
		line := contents[i]
		if strings.TrimSpace(line) == "" {
			pending++
			continue
		}
		indent := leadingSpaces(line)
		if indent <= parentIndent {
			break
		}
		for ; pending > 0; pending-- {
			out = append(out, "")
		}
		text := dedent(line, parentIndent+IndentUnit)
		out = append(out, text)
		items = append(items, ItemPos{
			Line:   i,
			Start:  len(line) - len(strings.TrimLeft(line, " ")),
			Length: len(strings.TrimRight(strings.TrimLeft(line, " "), " ")),
			Raw:    text,
		})
		consumed = i - start
	}
	return CollectResult{
		Value:         strings.Join(out, "\n"),
		LinesConsumed: consumed,
		Items:         items,
	}
}

// collectTripleQuote gathers a `key: """` block until the closing `"""`,
// preserving inner indentation relative to one level below the key.
func collectTripleQuote(contents []string, start, openerCol, parentIndent int) CollectResult {
	opener := contents[start][openerCol:]
	rest := opener[len(`"""`):]
	if end := strings.Index(rest, `"""`); end >= 0 {
		// Opened and closed on the key line.
		return CollectResult{
			Value: rest[:end],
			Items: []ItemPos{{
				Line:   start,
				Start:  openerCol,
				Length: len(`"""`) + end + len(`"""`),
				Raw:    rest[:end],
			}},
		}
	}

	var out []string
	var items []ItemPos
	if rest != "" {
		// Text after the opener on the key line is the first content line.
		out = append(out, rest)
		items = append(items, ItemPos{
			Line:   start,
			Start:  openerCol + len(`"""`),
			Length: len(rest),
			Raw:    rest,
		})
	}
	for i := start + 1; i < len(contents); i++ {
		line := contents[i]
		if strings.TrimSpace(line) == `"""` {
			return CollectResult{
				Value:         strings.Join(out, "\n"),
				LinesConsumed: i - start,
				Items:         items,
			}
		}
		text := dedent(line, parentIndent+IndentUnit)
		out = append(out, text)
		if strings.TrimSpace(line) != "" {
			items = append(items, ItemPos{
				Line:   i,
				Start:  leadingSpaces(line),
				Length: len(strings.TrimSpace(line)),
				Raw:    text,
			})
		}
	}
	return CollectResult{
		Value:         strings.Join(out, "\n"),
		LinesConsumed: len(contents) - 1 - start,
		Items:         items,
		Diags: []schema.Diagnostic{{
			Range:    schema.NewRange(start, openerCol, len(`"""`)),
			Message:  diag.UnclosedQuote(start + 1),
			Severity: schema.SeverityError,
			Source:   DiagnosticSource,
		}},
	}
}

// collectFreeform gathers the continuation lines of a (str)-hinted key:
// every following non-blank line indented past the key, joined per the join
// table for the key.
func collectFreeform(contents []string, start, parentIndent int, key string) CollectResult {
	var parts []string
	var items []ItemPos
	consumed := 0
	for i := start + 1; i < len(contents); i++ {
		line := contents[i]
		if strings.TrimSpace(line) == "" {
			break
		}
		indent := leadingSpaces(line)
		if indent <= parentIndent {
			break
		}
		text := strings.TrimSpace(line)
		parts = append(parts, text)
		items = append(items, ItemPos{Line: i, Start: indent, Length: len(text), Raw: text})
		consumed = i - start
	}
	return CollectResult{
		Value:         strings.Join(parts, JoinSeparator(key)),
		LinesConsumed: consumed,
		Items:         items,
	}
}

// collectDashList gathers consecutive `- item` lines one level below the key.
func collectDashList(contents []string, start, parentIndent int) CollectResult {
	childIndent := parentIndent + IndentUnit
	var values []any
	var items []ItemPos
	consumed := 0
	for i := start + 1; i < len(contents); i++ {
		line := contents[i]
		if strings.TrimSpace(line) == "" {
			if len(values) == 0 {
				continue // blank lines may separate the key from its first item
			}
			break
		}
		if leadingSpaces(line) != childIndent {
			break
		}
		trimmed := line[childIndent:]
		if trimmed != "-" && !strings.HasPrefix(trimmed, "- ") {
			break
		}
		raw := strings.TrimSpace(strings.TrimPrefix(trimmed, "-"))
		values = append(values, InferScalar(raw))
		itemStart := childIndent + len(trimmed) - len(strings.TrimLeft(strings.TrimPrefix(trimmed, "-"), " "))
		if raw == "" {
			itemStart = childIndent + 1
		}
		items = append(items, ItemPos{Line: i, Start: itemStart, Length: len(raw), Raw: raw})
		consumed = i - start
	}
	return CollectResult{
		Value:         values,
		LinesConsumed: consumed,
		Items:         items,
	}
}

// collectBracketArray parses a bracket array beginning at contents[startLine]
// [startCol], possibly spanning lines and nesting. Nesting is tracked with an
// explicit stack bounded by maxDepth; the scan never recurses.
func collectBracketArray(contents []string, startLine, startCol, maxDepth int) CollectResult {
	var res CollectResult
	var stack []*[]any
	var root []any
	closed := false

	line, col := startLine, startCol
	tokenStartLine, tokenStartCol := -1, -1
	var token strings.Builder
	inQuote := false

	flush := func() {
		raw := strings.TrimSpace(token.String())
		token.Reset()
		if raw == "" {
			tokenStartLine, tokenStartCol = -1, -1
			return
		}
		top := stack[len(stack)-1]
		*top = append(*top, InferScalar(raw))
		res.Items = append(res.Items, ItemPos{
			Line:   tokenStartLine,
			Start:  tokenStartCol,
			Length: len(raw),
			Raw:    raw,
		})
		tokenStartLine, tokenStartCol = -1, -1
	}

scan:
	for line < len(contents) {
		text := contents[line]
		for col < len(text) {
			c := text[col]
			switch {
			case inQuote:
				if c == '\\' {
					token.WriteByte(c)
					col++
					if col < len(text) {
						token.WriteByte(text[col])
					}
				} else {
					token.WriteByte(c)
					if c == '"' {
						inQuote = false
					}
				}
			case c == '"':
				if tokenStartLine < 0 {
					tokenStartLine, tokenStartCol = line, col
				}
				token.WriteByte(c)
				inQuote = true
			case c == '[':
				if len(stack) >= maxDepth {
					res.Diags = append(res.Diags, schema.Diagnostic{
						Range:    schema.NewRange(line, col, 1),
						Message:  fmt.Sprintf("array nesting exceeds maximum depth %d", maxDepth),
						Severity: schema.SeverityError,
						Source:   DiagnosticSource,
					})
					closed = true
					break scan
				}
				a := new([]any)
				stack = append(stack, a)
			case c == ']':
				flush()
				a := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if *a == nil {
					*a = []any{}
				}
				if len(stack) == 0 {
					root = *a
					closed = true
					col++
					break scan
				}
				top := stack[len(stack)-1]
				*top = append(*top, *a)
			case c == ',':
				flush()
			case c == ' ' || c == '\t':
				if token.Len() > 0 {
					token.WriteByte(c)
				}
			default:
				if tokenStartLine < 0 {
					tokenStartLine, tokenStartCol = line, col
				}
				token.WriteByte(c)
			}
			col++
		}
		if closed {
			break
		}
		flush()
		line++
		col = 0
	}

	if !closed && len(stack) > 0 {
		res.Diags = append(res.Diags, schema.Diagnostic{
			Range:    schema.NewRange(startLine, startCol, 1),
			Message:  diag.UnclosedBracket(startLine + 1),
			Severity: schema.SeverityError,
			Source:   DiagnosticSource,
		})
		// Best effort: keep whatever items were collected at the top level.
		root = *stack[0]
	}
	if root == nil {
		root = []any{}
	}
	if line >= len(contents) {
		line = len(contents) - 1
	}
	res.Value = root
	res.LinesConsumed = line - startLine
	return res
}

// leadingSpaces counts leading space characters, counting a tab as one
// indent unit.
func leadingSpaces(line string) int {
	n := 0
	for _, r := range line {
		switch r {
		case ' ':
			n++
		case '\t':
			n += IndentUnit
		default:
			return n
		}
	}
	return n
}

// dedent strips up to n leading spaces, preserving deeper relative indent.
func dedent(line string, n int) string {
	i := 0
	for i < len(line) && i < n && line[i] == ' ' {
		i++
	}
	return line[i:]
}
