package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, Similarity("zMode", "zMode"))
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.InDelta(t, 0.8, Similarity("zMode", "zMod"), 0.01)
	assert.Less(t, Similarity("zMode", "bridge"), 0.3)
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	known := []string{"zMode", "zSync", "bridge", "access"}

	got, ok := Suggest("zMod", known, DefaultFuzzyCutoff)
	assert.True(t, ok)
	assert.Equal(t, "zMode", got)

	_, ok = Suggest("completely_different", known, DefaultFuzzyCutoff)
	assert.False(t, ok)

	// An exact match is not a typo; nothing to suggest.
	_, ok = Suggest("bridge", known, DefaultFuzzyCutoff)
	assert.False(t, ok)

	// Non-positive cutoff falls back to the default rather than matching all.
	_, ok = Suggest("qqqqqq", known, 0)
	assert.False(t, ok)
}

func TestDidYouMean(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `unknown key "zMod", did you mean "zMode"?`, DidYouMean("zMod", "zMode"))
}
