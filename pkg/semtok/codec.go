// Package semtok encodes semantic tokens into the 5-integer delta wire
// format and decodes them back. The legend it exposes is an ordered,
// versioned contract shared with client renderers: reordering entries
// misclassifies every token already rendered, so order changes require a
// LegendVersion bump.
package semtok

import (
	"fmt"

	"github.com/zen-lang/zenls/pkg/schema"
)

// LegendVersion identifies the current legend ordering.
const LegendVersion = 1

// Legend is the ordered category and modifier name lists shared with clients.
type Legend struct {
	TokenTypes     []string
	TokenModifiers []string
}

// NewLegend returns the current legend.
func NewLegend() Legend {
	return Legend{
		TokenTypes:     schema.TokenCategoryNames(),
		TokenModifiers: schema.TokenModifierNames(),
	}
}

// Encode converts an ordered token sequence into groups of five integers:
// deltaLine, deltaStartChar (absolute when the line changes), length,
// category index, modifier bitmask. Tokens must be non-decreasing in
// (line, startChar); the tokenizer guarantees this.
func Encode(tokens []schema.SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	prevLine, prevChar := 0, 0
	for _, tok := range tokens {
		line := tok.Range.Start.Line
		char := tok.Range.Start.Character
		deltaLine := line - prevLine
		deltaChar := char
		if deltaLine == 0 {
			deltaChar = char - prevChar
		}
		data = append(data,
			uint32(deltaLine),
			uint32(deltaChar),
			uint32(tok.Range.Length()),
			uint32(tok.Category),
			uint32(tok.Modifiers),
		)
		prevLine, prevChar = line, char
	}
	return data
}

// Decode exactly reverses Encode. It fails on truncated data or a category
// index outside the legend.
func Decode(data []uint32) ([]schema.SemanticToken, error) {
	if len(data)%5 != 0 {
		return nil, fmt.Errorf("token data length %d is not a multiple of 5", len(data))
	}
	tokens := make([]schema.SemanticToken, 0, len(data)/5)
	line, char := 0, 0
	for i := 0; i < len(data); i += 5 {
		deltaLine := int(data[i])
		deltaChar := int(data[i+1])
		length := int(data[i+2])
		category := schema.TokenCategory(data[i+3])
		if !category.Valid() {
			return nil, fmt.Errorf("token %d: category index %d outside legend", i/5, data[i+3])
		}
		if deltaLine > 0 {
			line += deltaLine
			char = deltaChar
		} else {
			char += deltaChar
		}
		tokens = append(tokens, schema.SemanticToken{
			Range:     schema.NewRange(line, char, length),
			Category:  category,
			Modifiers: schema.TokenModifier(data[i+4]),
		})
	}
	return tokens, nil
}
