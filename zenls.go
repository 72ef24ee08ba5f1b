// Package zenls is the language-intelligence engine for Zen documents: an
// indentation-nested key/value configuration format with type hints, five
// multiline forms, and filename-driven dialects. The engine turns raw text
// into a data tree, a positioned semantic token stream, and diagnostics, and
// powers completion, hover, and declaratively-configured quick fixes.
//
// The engine performs no I/O on document content and no network transport;
// it is a pure, synchronous text-in/structured-data-out library that a
// protocol server wraps.
package zenls

import (
	"fmt"

	"github.com/zen-lang/zenls/pkg/action"
	"github.com/zen-lang/zenls/pkg/analysis"
	"github.com/zen-lang/zenls/pkg/cache"
	"github.com/zen-lang/zenls/pkg/config"
	"github.com/zen-lang/zenls/pkg/docs"
	"github.com/zen-lang/zenls/pkg/lang"
	"github.com/zen-lang/zenls/pkg/provider"
	"github.com/zen-lang/zenls/pkg/schema"
	"github.com/zen-lang/zenls/pkg/semtok"
)

// Engine ties the registries, analyzers, and cache together. Build it once
// with New; it is immutable afterwards and safe for concurrent use, except
// that each Tokenize call owns its own parser state internally.
type Engine struct {
	opts      *config.Options
	registry  *docs.Registry
	actions   *action.Registry
	executor  *action.Executor
	analyzer  *analysis.Engine
	completer *provider.CompletionEngine
	hover     *provider.HoverRenderer
	results   *cache.ResultCache
}

// New builds an engine. nil opts selects defaults. The describer may be nil;
// pictograph escapes then hover without a human description.
func New(opts *config.Options, describer provider.AccessibilityDescriber) (*Engine, error) {
	if opts == nil {
		opts = config.Default()
	}
	if err := config.Validate(opts); err != nil {
		return nil, err
	}

	registry := docs.BuildRegistry()

	var defs []action.Definition
	if opts.Actions.CatalogPath != "" {
		loaded, err := action.LoadCatalog(opts.Actions.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load action catalog: %w", err)
		}
		defs = loaded
	}
	actions, err := action.NewRegistry(defs, opts.Actions.CaseSensitive)
	if err != nil {
		return nil, err
	}

	results, err := cache.NewResultCache(opts.Cache.Capacity)
	if err != nil {
		return nil, err
	}

	return &Engine{
		opts:      opts,
		registry:  registry,
		actions:   actions,
		executor:  action.NewExecutor(opts.Parser.IndentUnit),
		analyzer:  analysis.NewEngine(opts.Fuzzy.Cutoff),
		completer: provider.NewCompletionEngine(registry),
		hover:     provider.NewHoverRenderer(registry, describer),
		results:   results,
	}, nil
}

// Tokenize parses a document. It never returns an error for malformed input.
func (e *Engine) Tokenize(text, filename string) *schema.ParseResult {
	return lang.Tokenize(text, filename, lang.WithMaxArrayDepth(e.opts.Parser.MaxArrayDepth))
}

// ParseDocument parses and caches the result under the document URI. Callers
// must Invalidate the URI on every change notification; the cache never
// invalidates implicitly.
func (e *Engine) ParseDocument(uri, text, filename string) *schema.ParseResult {
	if res, ok := e.results.Get(uri); ok {
		return res
	}
	res := e.Tokenize(text, filename)
	e.results.Put(uri, res)
	return res
}

// Invalidate drops the cached result for a URI.
func (e *Engine) Invalidate(uri string) {
	e.results.Invalidate(uri)
}

// Diagnostics runs the full diagnostic pipeline: the tokenizer's structured
// diagnostics plus the style and value-validation passes.
func (e *Engine) Diagnostics(text, filename string, res *schema.ParseResult) []schema.Diagnostic {
	if res == nil {
		res = e.Tokenize(text, filename)
	}
	return e.analyzer.Analyze(text, filename, res.Diagnostics)
}

// LegacyDiagnostics converts free-text messages from uncontrolled producers
// into structured diagnostics, scraping best-effort positions and severities.
func (e *Engine) LegacyDiagnostics(messages []string) []schema.Diagnostic {
	return e.analyzer.FromLegacy(messages)
}

// EncodeTokens converts a result's token stream to the wire delta format.
func (e *Engine) EncodeTokens(res *schema.ParseResult) []uint32 {
	if res == nil {
		return nil
	}
	return semtok.Encode(res.Tokens)
}

// Legend returns the versioned token legend shared with client renderers.
func (e *Engine) Legend() semtok.Legend {
	return semtok.NewLegend()
}

// Complete returns completion candidates for a cursor position.
func (e *Engine) Complete(text string, line, char int, filename string) []provider.CompletionItem {
	return e.completer.Complete(text, line, char, filename)
}

// Hover renders markdown for the token under the cursor.
func (e *Engine) Hover(text string, line, char int, filename string) (string, bool) {
	res := e.Tokenize(text, filename)
	return e.hover.Hover(text, line, char, res.Tokens)
}

// ActionsForDiagnostic returns the catalog actions triggered by a diagnostic
// message, in priority order.
func (e *Engine) ActionsForDiagnostic(message string) []action.Definition {
	return e.actions.MatchDiagnostic(message)
}

// ActionsForFile returns the catalog actions whose file patterns match.
func (e *Engine) ActionsForFile(filename string) []action.Definition {
	return e.actions.MatchFile(filename)
}

// ExecuteAction runs one action against a document line. Zero edits means
// the action does not apply there.
func (e *Engine) ExecuteAction(def action.Definition, text string, line int) ([]schema.TextEdit, error) {
	return e.executor.Execute(def, text, line)
}

// Close releases the engine's cache resources.
func (e *Engine) Close() {
	e.results.Close()
}
