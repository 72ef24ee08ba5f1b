package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zen-lang/zenls/pkg/docs"
	"github.com/zen-lang/zenls/pkg/lang"
)

type stubDescriber map[rune]string

func (s stubDescriber) Describe(r rune) (string, bool) {
	desc, ok := s[r]
	return desc, ok
}

func TestHover_TypeHint(t *testing.T) {
	t.Parallel()

	h := NewHoverRenderer(docs.BuildRegistry(), nil)
	text := "port(int): 8080"
	res := lang.Tokenize(text, "")

	md, ok := h.Hover(text, 0, 6, res.Tokens)
	require.True(t, ok)
	assert.Contains(t, md, "int")
	assert.Contains(t, md, "64-bit integer")
}

func TestHover_Directive(t *testing.T) {
	t.Parallel()

	h := NewHoverRenderer(docs.BuildRegistry(), nil)
	text := "zMode: reactive"
	res := lang.Tokenize(text, "Spark.Payment.zen")

	md, ok := h.Hover(text, 0, 2, res.Tokens)
	require.True(t, ok)
	assert.Contains(t, md, "zMode")
	assert.Contains(t, md, "reactive")
}

func TestHover_BooleanLiteral(t *testing.T) {
	t.Parallel()

	h := NewHoverRenderer(docs.BuildRegistry(), nil)
	text := "enabled: true"
	res := lang.Tokenize(text, "")

	md, ok := h.Hover(text, 0, 10, res.Tokens)
	require.True(t, ok)
	assert.Contains(t, md, "Boolean true literal")
}

func TestHover_Escape(t *testing.T) {
	t.Parallel()

	h := NewHoverRenderer(docs.BuildRegistry(), nil)
	text := `msg: "a\tb"`
	res := lang.Tokenize(text, "")

	// Char 7 sits on the escape inside the string; the narrower token wins.
	md, ok := h.Hover(text, 0, 7, res.Tokens)
	require.True(t, ok)
	assert.Contains(t, md, "horizontal tab")
}

func TestHover_PictographDescription(t *testing.T) {
	t.Parallel()

	describer := stubDescriber{0x1F680: "rocket"}
	h := NewHoverRenderer(docs.BuildRegistry(), describer)
	text := `icon: "\u{1F680}"`
	res := lang.Tokenize(text, "")

	md, ok := h.Hover(text, 0, 9, res.Tokens)
	require.True(t, ok)
	assert.Contains(t, md, "U+1F680")
	assert.Contains(t, md, "rocket")

	// Without a describer the escape still hovers, minus the description.
	bare := NewHoverRenderer(docs.BuildRegistry(), nil)
	md, ok = bare.Hover(text, 0, 9, res.Tokens)
	require.True(t, ok)
	assert.NotContains(t, md, "rocket")
}

func TestHover_NothingThere(t *testing.T) {
	t.Parallel()

	h := NewHoverRenderer(docs.BuildRegistry(), nil)
	text := "custom: plainvalue"
	res := lang.Tokenize(text, "")

	_, ok := h.Hover(text, 0, 12, res.Tokens)
	assert.False(t, ok, "ordinary string values have no documentation")

	_, ok = h.Hover(text, 5, 0, res.Tokens)
	assert.False(t, ok, "no token at the position")
}

func TestNewHoverRenderer_NilRegistry(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewHoverRenderer(nil, nil) })
}
