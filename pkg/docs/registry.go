// Package docs holds the authoritative documentation registry. Completion
// and hover both render from the same records so the two never drift apart.
package docs

import (
	"fmt"
	"sort"

	"github.com/zen-lang/zenls/pkg/schema"
)

// Kind groups registry records.
type Kind int

const (
	KindTypeHint Kind = iota
	KindLiteral
	KindSpecialKey
	KindElement
	KindMetadata
)

// Record documents one label: a type hint, a literal, a dialect-specific key,
// or a UI construct.
type Record struct {
	Label       string
	Title       string
	Description string
	Example     string
	Kind        Kind
	// Category restricts dialect-specific records to one file type.
	Category schema.FileType
}

// Markdown renders the record for hover display.
func (r Record) Markdown() string {
	out := fmt.Sprintf("**%s**\n\n%s", r.Title, r.Description)
	if r.Example != "" {
		out += fmt.Sprintf("\n\n```zen\n%s\n```", r.Example)
	}
	return out
}

// Registry is an immutable label → record map built once at process start.
// Reads are safe without synchronization.
type Registry struct {
	records map[string]Record
}

// BuildRegistry constructs the registry. It is the single entry point; the
// result is never mutated afterwards.
func BuildRegistry() *Registry {
	r := &Registry{records: make(map[string]Record, 64)}
	for _, rec := range builtinRecords() {
		r.records[rec.Label] = rec
	}
	return r
}

// Lookup finds the record for a label.
func (r *Registry) Lookup(label string) (Record, bool) {
	rec, ok := r.records[label]
	return rec, ok
}

// ByKind returns every record of a kind, sorted by label.
func (r *Registry) ByKind(kind Kind) []Record {
	var out []Record
	for _, rec := range r.records {
		if rec.Kind == kind {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// Len returns the number of records.
func (r *Registry) Len() int {
	return len(r.records)
}

func builtinRecords() []Record {
	recs := []Record{
		// Type hints.
		{Label: "str", Title: "str — string value", Description: "Coerces the value to a string. Quoted strings resolve escape sequences; with indented continuation lines the value collects as a freeform text block.", Example: "greeting(str): hello", Kind: KindTypeHint},
		{Label: "int", Title: "int — integer value", Description: "Coerces the value to a 64-bit integer. A non-numeric value is a diagnostic and falls back to 0.", Example: "port(int): 8080", Kind: KindTypeHint},
		{Label: "float", Title: "float — floating-point value", Description: "Coerces the value to a 64-bit float.", Example: "ratio(float): 0.75", Kind: KindTypeHint},
		{Label: "bool", Title: "bool — boolean value", Description: "Coerces the value to true or false.", Example: "enabled(bool): true", Kind: KindTypeHint},
		{Label: "list", Title: "list — array value", Description: "Declares an array value: a bracket array or a dash list.", Example: "items(list): [1, 2, 3]", Kind: KindTypeHint},
		{Label: "dict", Title: "dict — nested block", Description: "Declares a nested key/value block indented below the key.", Example: "server(dict):", Kind: KindTypeHint},
		{Label: "null", Title: "null — explicit null", Description: "Declares an intentionally empty value.", Example: "override(null):", Kind: KindTypeHint},
		{Label: "raw", Title: "raw — verbatim string", Description: "Keeps the value exactly as written: no quoting, escapes, or inference.", Example: "pattern(raw): \\d+", Kind: KindTypeHint},
		{Label: "date", Title: "date — calendar date", Description: "Validates the value as a YYYY-MM-DD date.", Example: "released(date): 2024-06-01", Kind: KindTypeHint},
		{Label: "time", Title: "time — time of day", Description: "Validates the value as HH:MM or HH:MM:SS.", Example: "start(time): 09:30", Kind: KindTypeHint},
		{Label: "url", Title: "url — resource locator", Description: "Validates the value as an absolute URL.", Example: "endpoint(url): https://api.example.com", Kind: KindTypeHint},
		{Label: "path", Title: "path — filesystem path", Description: "Normalizes the value as a filesystem path.", Example: "logDir(path): /var/log/app", Kind: KindTypeHint},

		// Literals. The null literal shares the "null" type-hint record.
		{Label: "true", Title: "true", Description: "Boolean true literal.", Kind: KindLiteral},
		{Label: "false", Title: "false", Description: "Boolean false literal.", Kind: KindLiteral},

		// Metadata keys.
		{Label: "name", Title: "name", Description: "Component or document name.", Example: "name: checkout", Kind: KindMetadata},
		{Label: "version", Title: "version", Description: "Document version string.", Example: "version: 1.2.0", Kind: KindMetadata},
		{Label: "author", Title: "author", Description: "Document author.", Kind: KindMetadata},
		{Label: "description", Title: "description", Description: "Freeform description. Indented continuation lines join with spaces.", Kind: KindMetadata},
		{Label: "license", Title: "license", Description: "License identifier.", Kind: KindMetadata},

		// Dialect-specific keys.
		{Label: "zMode", Title: "zMode — spark evaluation mode", Description: "Selects how the component re-evaluates: `reactive` re-runs on every dependency change, `static` evaluates once.", Example: "zMode: reactive", Kind: KindSpecialKey, Category: schema.FileSpark},
		{Label: "zSync", Title: "zSync — spark synchronization", Description: "Selects dependency synchronization: `eager` or `lazy`.", Example: "zSync: lazy", Kind: KindSpecialKey, Category: schema.FileSpark},
		{Label: "zRetry", Title: "zRetry — retry budget", Description: "Number of retries before the component reports failure.", Example: "zRetry: 3", Kind: KindSpecialKey, Category: schema.FileSpark},
		{Label: "zTimeout", Title: "zTimeout — evaluation timeout", Description: "Per-evaluation timeout in milliseconds.", Example: "zTimeout: 5000", Kind: KindSpecialKey, Category: schema.FileSpark},
		{Label: "bridge", Title: "bridge — protocol bridge block", Description: "Opens the protocol bridge block mapping component events to external endpoints.", Kind: KindSpecialKey, Category: schema.FileSpark},
		{Label: "mode", Title: "mode — run mode", Description: "Run mode: development, production, or test.", Example: "mode: production", Kind: KindSpecialKey, Category: schema.FileConfig},
		{Label: "deployment", Title: "deployment — deployment target", Description: "Deployment target: local, staging, or production.", Kind: KindSpecialKey, Category: schema.FileConfig},
		{Label: "logLevel", Title: "logLevel — logger level", Description: "Logger level: debug, info, warn, or error.", Example: "logLevel: info", Kind: KindSpecialKey, Category: schema.FileConfig},
		{Label: "protocol", Title: "protocol — transport protocol", Description: "Transport protocol: http, https, or grpc.", Kind: KindSpecialKey, Category: schema.FileConfig},
		{Label: "fields", Title: "fields — schema field block", Description: "Opens the field definitions block of a schema document.", Kind: KindSpecialKey, Category: schema.FileSchema},
		{Label: "access", Title: "access — access control block", Description: "Opens the access-control block with allow and deny rules.", Kind: KindSpecialKey},
		{Label: "routes", Title: "routes — navigation block", Description: "Opens the navigation routes block.", Kind: KindSpecialKey},
	}

	for _, el := range []string{"App", "Window", "Row", "Column", "Button", "Text", "Input", "Image", "List"} {
		recs = append(recs, Record{
			Label:       el,
			Title:       el + " — UI element",
			Description: fmt.Sprintf("Declares a %s element. Properties and child elements nest below it.", el),
			Example:     el + ":\n  id: main",
			Kind:        KindElement,
			Category:    schema.FileUI,
		})
	}
	return recs
}
