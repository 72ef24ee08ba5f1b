// Package lang implements the Zen document scanner: file-type detection,
// indentation-scoped block tracking, key classification, the five multiline
// collectors, type-hint coercion, and the tokenizer that orchestrates them.
package lang

import (
	"path/filepath"
	"strings"

	"github.com/zen-lang/zenls/pkg/schema"
)

// filePrefixes maps the lowercase first segment of a Prefix.Component.ext
// filename to its dialect.
var filePrefixes = map[string]schema.FileType{
	"spark":  schema.FileSpark,
	"env":    schema.FileEnv,
	"ui":     schema.FileUI,
	"config": schema.FileConfig,
	"schema": schema.FileSchema,
}

// DetectFileType derives the dialect and component name from a filename.
// The convention is Prefix.Component.ext with a known prefix; anything else,
// including an absent filename, is Generic with no component.
func DetectFileType(filename string) (schema.FileType, string) {
	if filename == "" {
		return schema.FileGeneric, ""
	}
	base := filepath.Base(filename)
	parts := strings.Split(base, ".")
	if len(parts) != 3 {
		return schema.FileGeneric, ""
	}
	ft, ok := filePrefixes[strings.ToLower(parts[0])]
	if !ok || parts[1] == "" {
		return schema.FileGeneric, ""
	}
	return ft, parts[1]
}
