package schema

// TokenCategory indexes into the token legend. The constant order below IS
// the wire contract: clients map the encoded integer back to a name by
// position, so the order must never change without a legend version bump.
type TokenCategory int

const (
	TokenNamespace TokenCategory = iota
	TokenType
	TokenClass
	TokenEnum
	TokenInterface
	TokenStruct
	TokenTypeParameter
	TokenParameter
	TokenVariable
	TokenProperty
	TokenEnumMember
	TokenEvent
	TokenFunction
	TokenMethod
	TokenMacro
	TokenKeyword
	TokenModifierKeyword
	TokenComment
	TokenString
	TokenNumber
	TokenRegexp
	TokenOperator
	TokenDecorator
	TokenRootKey
	TokenNestedKey
	TokenMetadataKey
	TokenSchemaField
	TokenSchemaOption
	TokenBridgeKey
	TokenDirective
	TokenUIElement
	TokenUIProperty
	TokenConfigKey
	TokenAccessKey
	TokenAccessOption
	TokenNavigationKey
	TokenEnvKey
	TokenTypeHint
	TokenBoolean
	TokenNull
	TokenEscape
	TokenMultilineText

	tokenCategoryCount
)

// TokenCategoryCount is the number of legend entries.
const TokenCategoryCount = int(tokenCategoryCount)

// tokenCategoryNames is ordered by TokenCategory value.
var tokenCategoryNames = [...]string{
	"namespace",
	"type",
	"class",
	"enum",
	"interface",
	"struct",
	"typeParameter",
	"parameter",
	"variable",
	"property",
	"enumMember",
	"event",
	"function",
	"method",
	"macro",
	"keyword",
	"modifier",
	"comment",
	"string",
	"number",
	"regexp",
	"operator",
	"decorator",
	"rootKey",
	"nestedKey",
	"metadataKey",
	"schemaField",
	"schemaOption",
	"bridgeKey",
	"directive",
	"uiElement",
	"uiProperty",
	"configKey",
	"accessKey",
	"accessOption",
	"navigationKey",
	"envKey",
	"typeHint",
	"boolean",
	"null",
	"escape",
	"multilineText",
}

// String returns the legend name for the category.
func (c TokenCategory) String() string {
	if c < 0 || int(c) >= len(tokenCategoryNames) {
		return "unknown"
	}
	return tokenCategoryNames[c]
}

// Valid reports whether the category is a legend entry.
func (c TokenCategory) Valid() bool {
	return c >= 0 && int(c) < TokenCategoryCount
}

// TokenModifier is a bitmask of token modifiers. Bit order is part of the
// legend contract, same as TokenCategory order.
type TokenModifier uint32

const (
	ModDeclaration   TokenModifier = 1 << 0
	ModReadonly      TokenModifier = 1 << 1
	ModRequired      TokenModifier = 1 << 2
	ModWatched       TokenModifier = 1 << 3
	ModPrivate       TokenModifier = 1 << 4
	ModComputed      TokenModifier = 1 << 5
	ModDeprecated    TokenModifier = 1 << 6
	ModDocumentation TokenModifier = 1 << 7
)

// tokenModifierNames is ordered by bit position.
var tokenModifierNames = [...]string{
	"declaration",
	"readonly",
	"required",
	"watched",
	"private",
	"computed",
	"deprecated",
	"documentation",
}

// TokenModifierCount is the number of modifier bits in the legend.
const TokenModifierCount = len(tokenModifierNames)

// TokenCategoryNames returns a copy of the ordered category legend.
func TokenCategoryNames() []string {
	out := make([]string, len(tokenCategoryNames))
	copy(out, tokenCategoryNames[:])
	return out
}

// TokenModifierNames returns a copy of the ordered modifier legend.
func TokenModifierNames() []string {
	out := make([]string, len(tokenModifierNames))
	copy(out, tokenModifierNames[:])
	return out
}
