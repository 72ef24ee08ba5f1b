package provider

import (
	"sort"
	"strings"

	"github.com/zen-lang/zenls/pkg/docs"
	"github.com/zen-lang/zenls/pkg/lang"
	"github.com/zen-lang/zenls/pkg/schema"
)

// CompletionItemKind follows the LSP completion item kind numbering for the
// kinds the engine emits.
type CompletionItemKind int

const (
	ItemKindKeyword  CompletionItemKind = 14
	ItemKindValue    CompletionItemKind = 12
	ItemKindProperty CompletionItemKind = 10
	ItemKindClass    CompletionItemKind = 7
)

// CompletionItem is one completion candidate.
type CompletionItem struct {
	Label         string
	Detail        string
	Documentation string
	Kind          CompletionItemKind
}

// CompletionEngine produces context-aware completions from the documentation
// registry. Build once; safe for concurrent use.
type CompletionEngine struct {
	reg *docs.Registry
}

// NewCompletionEngine wires the engine to its registry. A nil registry is a
// caller bug and panics immediately rather than failing later.
func NewCompletionEngine(reg *docs.Registry) *CompletionEngine {
	if reg == nil {
		panic("provider: completion engine requires a documentation registry")
	}
	return &CompletionEngine{reg: reg}
}

// Complete returns candidates for the cursor position. No identifiable
// context yields an empty result, never an error.
func (c *CompletionEngine) Complete(text string, line, char int, filename string) []CompletionItem {
	ctx := AnalyzeContext(text, line, char, filename)
	switch ctx.Kind {
	case ContextTypeHint:
		return c.filter(c.typeHints(), ctx.Partial)
	case ContextValue:
		return c.filter(c.values(ctx), ctx.Partial)
	case ContextKeyStart:
		return c.filter(c.keys(ctx), ctx.Partial)
	default:
		return nil
	}
}

func (c *CompletionEngine) typeHints() []CompletionItem {
	var out []CompletionItem
	for _, rec := range c.reg.ByKind(docs.KindTypeHint) {
		out = append(out, CompletionItem{
			Label:         rec.Label,
			Detail:        rec.Title,
			Documentation: rec.Description,
			Kind:          ItemKindKeyword,
		})
	}
	return out
}

// values proposes literals after a colon: the dialect-specific enumerated set
// when (fileType, key) is special, else the boolean and null literals.
func (c *CompletionEngine) values(ctx CompletionContext) []CompletionItem {
	if allowed, ok := lang.SpecialValues(ctx.FileType, ctx.Key); ok {
		out := make([]CompletionItem, 0, len(allowed))
		for _, v := range allowed {
			out = append(out, CompletionItem{
				Label:  v,
				Detail: ctx.Key + " value",
				Kind:   ItemKindValue,
			})
		}
		return out
	}
	out := make([]CompletionItem, 0, 3)
	for _, lit := range []string{"true", "false", "null"} {
		item := CompletionItem{Label: lit, Kind: ItemKindValue}
		if rec, ok := c.reg.Lookup(lit); ok {
			item.Detail = rec.Title
			item.Documentation = rec.Description
		}
		out = append(out, item)
	}
	return out
}

// keys proposes construct names at line start: UI element names in UI files,
// metadata and dialect keys elsewhere.
func (c *CompletionEngine) keys(ctx CompletionContext) []CompletionItem {
	var out []CompletionItem
	if ctx.FileType == schema.FileUI {
		for _, rec := range c.reg.ByKind(docs.KindElement) {
			out = append(out, CompletionItem{
				Label:         rec.Label,
				Detail:        rec.Title,
				Documentation: rec.Description,
				Kind:          ItemKindClass,
			})
		}
		return out
	}
	for _, rec := range c.reg.ByKind(docs.KindMetadata) {
		out = append(out, CompletionItem{
			Label:         rec.Label,
			Detail:        rec.Title,
			Documentation: rec.Description,
			Kind:          ItemKindProperty,
		})
	}
	for _, rec := range c.reg.ByKind(docs.KindSpecialKey) {
		if rec.Category != schema.FileGeneric && rec.Category != ctx.FileType {
			continue
		}
		out = append(out, CompletionItem{
			Label:         rec.Label,
			Detail:        rec.Title,
			Documentation: rec.Description,
			Kind:          ItemKindProperty,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

func (c *CompletionEngine) filter(items []CompletionItem, partial string) []CompletionItem {
	if partial == "" {
		return items
	}
	out := items[:0:0]
	for _, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), strings.ToLower(partial)) {
			out = append(out, item)
		}
	}
	return out
}
