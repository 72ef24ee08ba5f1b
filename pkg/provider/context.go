// Package provider implements the cursor-driven features: completion and
// hover. Both render from the documentation registry so their content never
// diverges.
package provider

import (
	"strings"

	"github.com/zen-lang/zenls/pkg/lang"
	"github.com/zen-lang/zenls/pkg/schema"
)

// ContextKind labels what surrounds the cursor.
type ContextKind int

const (
	// ContextNone means no identifiable context; completion fails closed.
	ContextNone ContextKind = iota
	// ContextTypeHint is inside the parentheses of a type hint.
	ContextTypeHint
	// ContextValue is after a key's colon.
	ContextValue
	// ContextKeyStart is at line start with no key typed yet.
	ContextKeyStart
)

// CompletionContext describes the text around the cursor.
type CompletionContext struct {
	Kind     ContextKind
	FileType schema.FileType
	// Key is the bare key of the current line for ContextValue.
	Key string
	// Partial is the word fragment already typed before the cursor.
	Partial string
}

// AnalyzeContext inspects the document around (line, char) and classifies the
// completion position.
func AnalyzeContext(text string, line, char int, filename string) CompletionContext {
	ft, _ := lang.DetectFileType(filename)
	ctx := CompletionContext{Kind: ContextNone, FileType: ft}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if line < 0 || line >= len(lines) {
		return ctx
	}
	content, _ := lang.SplitComment(lines[line])
	if char < 0 || char > len(content) {
		return ctx
	}
	before := content[:char]

	// Inside type-hint parentheses: an unclosed ( after the key text.
	if open := strings.LastIndexByte(before, '('); open > 0 {
		if !strings.ContainsAny(before[open+1:], "): ") {
			ctx.Kind = ContextTypeHint
			ctx.Partial = before[open+1:]
			return ctx
		}
	}

	// After a key's colon.
	if colon := findColonBefore(before); colon >= 0 {
		indent := len(before) - len(strings.TrimLeft(before, " "))
		rawKey := strings.TrimSpace(before[indent:colon])
		stripped, _ := lang.StripModifiers(rawKey)
		key, _, _ := lang.ParseHint(stripped)
		if key == "" {
			return ctx
		}
		ctx.Kind = ContextValue
		ctx.Key = key
		ctx.Partial = strings.TrimLeft(before[colon+1:], " ")
		return ctx
	}

	// Line start with no key yet: blank prefix or a bare word fragment.
	trimmed := strings.TrimLeft(before, " ")
	if trimmed == "" || isWordFragment(trimmed) {
		ctx.Kind = ContextKeyStart
		ctx.Partial = trimmed
		return ctx
	}
	return ctx
}

func findColonBefore(s string) int {
	inQuote := false
	for i := 0; i < len(s); i++ {
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

func isWordFragment(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return s != ""
}
