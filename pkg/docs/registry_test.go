package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zen-lang/zenls/pkg/schema"
)

func TestBuildRegistry(t *testing.T) {
	t.Parallel()

	reg := BuildRegistry()

	rec, ok := reg.Lookup("int")
	require.True(t, ok)
	assert.Equal(t, KindTypeHint, rec.Kind)
	assert.NotEmpty(t, rec.Description)

	rec, ok = reg.Lookup("zMode")
	require.True(t, ok)
	assert.Equal(t, KindSpecialKey, rec.Kind)
	assert.Equal(t, schema.FileSpark, rec.Category)

	rec, ok = reg.Lookup("Button")
	require.True(t, ok)
	assert.Equal(t, KindElement, rec.Kind)
	assert.Equal(t, schema.FileUI, rec.Category)

	_, ok = reg.Lookup("nosuchlabel")
	assert.False(t, ok)
}

func TestRegistry_ByKind(t *testing.T) {
	t.Parallel()

	reg := BuildRegistry()

	hints := reg.ByKind(KindTypeHint)
	assert.Len(t, hints, 12, "one record per type hint")
	for i := 1; i < len(hints); i++ {
		assert.Less(t, hints[i-1].Label, hints[i].Label, "records sort by label")
	}

	elements := reg.ByKind(KindElement)
	assert.Len(t, elements, 9)

	literals := reg.ByKind(KindLiteral)
	assert.Len(t, literals, 2, "true and false; null is documented as a type hint")
}

func TestRecord_Markdown(t *testing.T) {
	t.Parallel()

	rec := Record{Title: "int", Description: "An integer.", Example: "port(int): 8080"}
	md := rec.Markdown()
	assert.Contains(t, md, "**int**")
	assert.Contains(t, md, "An integer.")
	assert.Contains(t, md, "```zen\nport(int): 8080\n```")

	noExample := Record{Title: "x", Description: "d"}
	assert.NotContains(t, noExample.Markdown(), "```")
}
