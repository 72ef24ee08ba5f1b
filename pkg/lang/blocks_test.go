package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_EnterAndIsInside(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	assert.False(t, tr.IsInside(BlockAccess, 2))

	tr.Enter(BlockAccess, 0, 3)
	assert.True(t, tr.IsInside(BlockAccess, 2))
	assert.True(t, tr.IsInside(BlockAccess, 4))
	assert.False(t, tr.IsInside(BlockAccess, 0), "the opening indent itself is outside the block")
	assert.False(t, tr.IsInside(BlockRoutes, 2), "other kinds are unaffected")
}

func TestTracker_FirstLevelAndDepth(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	tr.Enter(BlockSchemaFields, 0, 0)

	assert.True(t, tr.IsFirstLevel(BlockSchemaFields, 2))
	assert.False(t, tr.IsFirstLevel(BlockSchemaFields, 4))

	assert.True(t, tr.IsAtDepth(BlockSchemaFields, 2, 1))
	assert.True(t, tr.IsAtDepth(BlockSchemaFields, 4, 2))
	assert.False(t, tr.IsAtDepth(BlockSchemaFields, 2, 2))
}

func TestTracker_CloseAt(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	tr.Enter(BlockAccess, 0, 0)
	tr.Enter(BlockAccess, 2, 1)

	// A sibling at indent 2 closes the inner entry but not the outer.
	tr.CloseAt(2)
	assert.True(t, tr.IsInside(BlockAccess, 2))
	assert.Equal(t, 0, tr.EntryLine(BlockAccess))

	tr.CloseAt(0)
	assert.False(t, tr.IsInside(BlockAccess, 2))
	assert.Equal(t, -1, tr.EntryLine(BlockAccess))
}

func TestTracker_EnterSingle(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	tr.Enter(BlockUIElement, 0, 0)
	tr.Enter(BlockUIElement, 2, 1)
	tr.EnterSingle(BlockUIElement, 4, 2)

	assert.Equal(t, 2, tr.EntryLine(BlockUIElement))
	tr.CloseAt(4)
	// EnterSingle replaced the whole stack, so nothing outer remains.
	assert.Equal(t, -1, tr.EntryLine(BlockUIElement))
}

func TestTracker_Data(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	assert.Nil(t, tr.Data(BlockBridge))

	tr.Enter(BlockBridge, 0, 5)
	tr.SetData(BlockBridge, "endpoint")
	assert.Equal(t, "endpoint", tr.Data(BlockBridge))

	tr.ClearAll()
	assert.Nil(t, tr.Data(BlockBridge))
}
