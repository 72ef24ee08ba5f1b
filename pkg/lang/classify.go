package lang

import (
	"sort"

	"github.com/zen-lang/zenls/pkg/schema"
)

// KeyCategory is the semantic role of a key, decided from the key text, the
// current indent, the open blocks, and the file dialect. No lookahead.
type KeyCategory int

const (
	KeyRoot KeyCategory = iota
	KeyNested
	KeyMetadata
	KeySchemaField
	KeySchemaOption
	KeyBridge
	KeyDirective
	KeyUIElement
	KeyUIProperty
	KeyConfig
	KeyAccess
	KeyAccessOption
	KeyNavigation
	KeyEnvVar
	KeyUnknown
)

// String returns the category name.
func (c KeyCategory) String() string {
	switch c {
	case KeyRoot:
		return "root"
	case KeyNested:
		return "nested"
	case KeyMetadata:
		return "metadata"
	case KeySchemaField:
		return "schemaField"
	case KeySchemaOption:
		return "schemaOption"
	case KeyBridge:
		return "bridge"
	case KeyDirective:
		return "directive"
	case KeyUIElement:
		return "uiElement"
	case KeyUIProperty:
		return "uiProperty"
	case KeyConfig:
		return "config"
	case KeyAccess:
		return "access"
	case KeyAccessOption:
		return "accessOption"
	case KeyNavigation:
		return "navigation"
	case KeyEnvVar:
		return "envVar"
	case KeyUnknown:
		return "unknown"
	}
	return "unknown"
}

// TokenCategory maps the key category to its legend entry.
func (c KeyCategory) TokenCategory() schema.TokenCategory {
	switch c {
	case KeyRoot:
		return schema.TokenRootKey
	case KeyNested:
		return schema.TokenNestedKey
	case KeyMetadata:
		return schema.TokenMetadataKey
	case KeySchemaField:
		return schema.TokenSchemaField
	case KeySchemaOption:
		return schema.TokenSchemaOption
	case KeyBridge:
		return schema.TokenBridgeKey
	case KeyDirective:
		return schema.TokenDirective
	case KeyUIElement:
		return schema.TokenUIElement
	case KeyUIProperty:
		return schema.TokenUIProperty
	case KeyConfig:
		return schema.TokenConfigKey
	case KeyAccess:
		return schema.TokenAccessKey
	case KeyAccessOption:
		return schema.TokenAccessOption
	case KeyNavigation:
		return schema.TokenNavigationKey
	case KeyEnvVar:
		return schema.TokenEnvKey
	case KeyUnknown:
		return schema.TokenVariable
	}
	return schema.TokenVariable
}

// KeyFlags are the modifier affixes attached to a key. They never affect the
// value type.
type KeyFlags uint8

const (
	FlagComputed KeyFlags = 1 << 0 // ^ prefix
	FlagPrivate  KeyFlags = 1 << 1 // ~ prefix
	FlagRequired KeyFlags = 1 << 2 // ! suffix
	FlagWatched  KeyFlags = 1 << 3 // * suffix
)

// TokenModifiers maps key flags to legend modifier bits.
func (f KeyFlags) TokenModifiers() schema.TokenModifier {
	var m schema.TokenModifier
	if f&FlagComputed != 0 {
		m |= schema.ModComputed
	}
	if f&FlagPrivate != 0 {
		m |= schema.ModPrivate
	}
	if f&FlagRequired != 0 {
		m |= schema.ModRequired
	}
	if f&FlagWatched != 0 {
		m |= schema.ModWatched
	}
	return m
}

// StripModifiers removes modifier affixes from a key and reports them.
// Prefixes: ^ (computed), ~ (private). Suffixes: ! (required), * (watched).
func StripModifiers(key string) (string, KeyFlags) {
	var flags KeyFlags
	for len(key) > 0 {
		switch key[0] {
		case '^':
			flags |= FlagComputed
			key = key[1:]
			continue
		case '~':
			flags |= FlagPrivate
			key = key[1:]
			continue
		}
		break
	}
	for len(key) > 0 {
		switch key[len(key)-1] {
		case '!':
			flags |= FlagRequired
			key = key[:len(key)-1]
			continue
		case '*':
			flags |= FlagWatched
			key = key[:len(key)-1]
			continue
		}
		break
	}
	return key, flags
}

var metadataKeys = map[string]bool{
	"name":        true,
	"version":     true,
	"author":      true,
	"description": true,
	"license":     true,
}

var schemaOptionKeys = map[string]bool{
	"type":     true,
	"required": true,
	"default":  true,
	"min":      true,
	"max":      true,
	"pattern":  true,
}

var sparkDirectives = map[string]bool{
	"zMode":    true,
	"zSync":    true,
	"zRetry":   true,
	"zTimeout": true,
}

var uiElements = map[string]bool{
	"App":    true,
	"Window": true,
	"Row":    true,
	"Column": true,
	"Button": true,
	"Text":   true,
	"Input":  true,
	"Image":  true,
	"List":   true,
}

var configKeys = map[string]bool{
	"mode":       true,
	"deployment": true,
	"logLevel":   true,
	"port":       true,
	"host":       true,
	"protocol":   true,
}

var accessKeys = map[string]bool{
	"allow": true,
	"deny":  true,
}

// Classification is the classifier's verdict for one key.
type Classification struct {
	Category KeyCategory
	// Opens is set when the key opens a tracked block for subsequent lines.
	Opens      BlockKind
	OpensBlock bool
	// Single marks blocks entered via EnterSingle.
	Single bool
}

// Classify labels a key. Modifier affixes must already be stripped.
func Classify(key string, indent int, atRoot bool, tr *Tracker, ft schema.FileType) Classification {
	if !validKeyText(key) {
		return Classification{Category: KeyUnknown}
	}

	// Dialect-wide key forms win over block context.
	if ft == schema.FileEnv && isUpperSnake(key) {
		return Classification{Category: KeyEnvVar}
	}
	if ft == schema.FileSpark && sparkDirectives[key] {
		return Classification{Category: KeyDirective}
	}

	// Schema field blocks.
	if tr.IsInside(BlockSchemaFields, indent) {
		if tr.IsFirstLevel(BlockSchemaFields, indent) {
			return Classification{Category: KeySchemaField, Opens: BlockSchemaField, OpensBlock: true}
		}
		if tr.IsInside(BlockSchemaField, indent) && schemaOptionKeys[key] {
			return Classification{Category: KeySchemaOption}
		}
		return Classification{Category: KeyNested}
	}

	// Access control: allow/deny directly inside the block, options deeper.
	if tr.IsInside(BlockAccess, indent) {
		if tr.IsFirstLevel(BlockAccess, indent) && accessKeys[key] {
			return Classification{Category: KeyAccess}
		}
		if tr.IsAtDepth(BlockAccess, indent, 2) {
			return Classification{Category: KeyAccessOption}
		}
		return Classification{Category: KeyNested}
	}

	if tr.IsInside(BlockBridge, indent) {
		return Classification{Category: KeyBridge}
	}
	if tr.IsInside(BlockRoutes, indent) {
		return Classification{Category: KeyNavigation}
	}

	// UI elements may nest; a new element key replaces the innermost one.
	if ft == schema.FileUI && uiElements[key] {
		return Classification{Category: KeyUIElement, Opens: BlockUIElement, OpensBlock: true, Single: true}
	}
	if ft == schema.FileUI && tr.IsInside(BlockUIElement, indent) {
		return Classification{Category: KeyUIProperty}
	}

	// Block openers.
	switch {
	case ft == schema.FileSchema && key == "fields" && atRoot:
		return Classification{Category: KeyRoot, Opens: BlockSchemaFields, OpensBlock: true}
	case ft == schema.FileSpark && key == "bridge" && atRoot:
		return Classification{Category: KeyBridge, Opens: BlockBridge, OpensBlock: true}
	case key == "access":
		return Classification{Category: KeyAccess, Opens: BlockAccess, OpensBlock: true}
	case key == "routes":
		return Classification{Category: KeyNavigation, Opens: BlockRoutes, OpensBlock: true}
	}

	if ft == schema.FileConfig && configKeys[key] {
		return Classification{Category: KeyConfig}
	}
	if atRoot && metadataKeys[key] {
		return Classification{Category: KeyMetadata}
	}
	if atRoot {
		return Classification{Category: KeyRoot}
	}
	return Classification{Category: KeyNested}
}

// validKeyText reports whether a stripped key is a well-formed identifier:
// letters, digits, underscore, dash, not starting with a digit or dash.
func validKeyText(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9', r == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func isUpperSnake(key string) bool {
	hasLetter := false
	for _, r := range key {
		switch {
		case r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return hasLetter
}

// SpecialValues returns the accepted literal set for a dialect-specific key,
// shared by value validation and completion so the two never drift apart.
func SpecialValues(ft schema.FileType, key string) ([]string, bool) {
	switch ft {
	case schema.FileSpark:
		switch key {
		case "zMode":
			return []string{"reactive", "static"}, true
		case "zSync":
			return []string{"eager", "lazy"}, true
		}
	case schema.FileConfig:
		switch key {
		case "mode":
			return []string{"development", "production", "test"}, true
		case "deployment":
			return []string{"local", "staging", "production"}, true
		case "logLevel":
			return []string{"debug", "info", "warn", "error"}, true
		case "protocol":
			return []string{"http", "https", "grpc"}, true
		}
	}
	return nil, false
}

// KnownKeys returns the reserved keyword set for a dialect, used for fuzzy
// "did you mean" suggestions.
func KnownKeys(ft schema.FileType) []string {
	keys := make([]string, 0, 32)
	for k := range metadataKeys {
		keys = append(keys, k)
	}
	switch ft {
	case schema.FileSpark:
		for k := range sparkDirectives {
			keys = append(keys, k)
		}
		keys = append(keys, "bridge")
	case schema.FileConfig:
		for k := range configKeys {
			keys = append(keys, k)
		}
	case schema.FileSchema:
		for k := range schemaOptionKeys {
			keys = append(keys, k)
		}
		keys = append(keys, "fields")
	case schema.FileUI:
		for k := range uiElements {
			keys = append(keys, k)
		}
	}
	keys = append(keys, "access", "routes")
	sort.Strings(keys)
	return keys
}
