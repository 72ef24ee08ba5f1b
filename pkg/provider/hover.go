package provider

import (
	"fmt"
	"strings"

	"github.com/zen-lang/zenls/pkg/docs"
	"github.com/zen-lang/zenls/pkg/lang"
	"github.com/zen-lang/zenls/pkg/schema"
)

// AccessibilityDescriber resolves a pictograph codepoint to a human
// description. The lookup service itself is an external collaborator.
type AccessibilityDescriber interface {
	Describe(r rune) (string, bool)
}

// HoverRenderer renders markdown hover content for the token under the
// cursor. Build once; safe for concurrent use.
type HoverRenderer struct {
	reg       *docs.Registry
	describer AccessibilityDescriber
}

// NewHoverRenderer wires the renderer. The registry is required; the
// describer may be nil, in which case pictograph escapes render without a
// description.
func NewHoverRenderer(reg *docs.Registry, describer AccessibilityDescriber) *HoverRenderer {
	if reg == nil {
		panic("provider: hover renderer requires a documentation registry")
	}
	return &HoverRenderer{reg: reg, describer: describer}
}

// Hover locates the token covering (line, char) and renders its
// documentation. The bool is false when nothing hoverable is there.
func (h *HoverRenderer) Hover(text string, line, char int, tokens []schema.SemanticToken) (string, bool) {
	tok, ok := coveringToken(tokens, line, char)
	if !ok {
		return "", false
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if tok.Range.Start.Line >= len(lines) {
		return "", false
	}
	content := lines[tok.Range.Start.Line]
	span := tokenText(content, tok)

	switch tok.Category {
	case schema.TokenTypeHint, schema.TokenBoolean, schema.TokenNull:
		if rec, ok := h.reg.Lookup(span); ok {
			return rec.Markdown(), true
		}
	case schema.TokenEscape:
		return h.renderEscape(span)
	case schema.TokenDirective, schema.TokenConfigKey, schema.TokenMetadataKey, schema.TokenUIElement,
		schema.TokenRootKey, schema.TokenBridgeKey, schema.TokenNavigationKey, schema.TokenAccessKey:
		if rec, ok := h.reg.Lookup(span); ok {
			return rec.Markdown(), true
		}
	}
	return "", false
}

// renderEscape decodes an escape sequence to its character, annotating
// pictographs with an accessibility description when available.
func (h *HoverRenderer) renderEscape(raw string) (string, bool) {
	r, ok := lang.DecodeEscape(raw)
	if !ok {
		return "", false
	}
	switch r {
	case '\n':
		return fmt.Sprintf("`%s` — line feed", raw), true
	case '\t':
		return fmt.Sprintf("`%s` — horizontal tab", raw), true
	case '\r':
		return fmt.Sprintf("`%s` — carriage return", raw), true
	case '\\':
		return fmt.Sprintf("`%s` — backslash", raw), true
	case '"':
		return fmt.Sprintf("`%s` — double quote", raw), true
	}
	out := fmt.Sprintf("`%s` — %q (U+%04X)", raw, string(r), r)
	if lang.IsPictograph(r) && h.describer != nil {
		if desc, ok := h.describer.Describe(r); ok {
			out += " — " + desc
		}
	}
	return out, true
}

// coveringToken finds the innermost token containing the position. Escape
// tokens overlap their string token; the later (narrower) token wins.
func coveringToken(tokens []schema.SemanticToken, line, char int) (schema.SemanticToken, bool) {
	pos := schema.Position{Line: line, Character: char}
	var found schema.SemanticToken
	ok := false
	for _, tok := range tokens {
		if tok.Range.Contains(pos) {
			found = tok
			ok = true
		}
	}
	return found, ok
}

func tokenText(lineText string, tok schema.SemanticToken) string {
	start := tok.Range.Start.Character
	end := tok.Range.End.Character
	if start < 0 || start > len(lineText) {
		return ""
	}
	if end > len(lineText) {
		end = len(lineText)
	}
	return lineText[start:end]
}
