package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zen-lang/zenls/pkg/schema"
)

func TestFromLegacy(t *testing.T) {
	t.Parallel()

	e := NewEngine(0)

	tests := []struct {
		name     string
		message  string
		wantLine int
		wantChar int
		wantLen  int
		wantSev  schema.Severity
	}{
		{
			name:     "span form wins",
			message:  "bad token at 12:4-9",
			wantLine: 11, wantChar: 3, wantLen: 5,
			wantSev: schema.SeverityError,
		},
		{
			name:     "line and column",
			message:  "Warning: stray value on line 3, column 7",
			wantLine: 2, wantChar: 6, wantLen: 1,
			wantSev: schema.SeverityWarning,
		},
		{
			name:     "line only",
			message:  "hint: consider quoting on line 10",
			wantLine: 9, wantChar: 0, wantLen: 1,
			wantSev: schema.SeverityHint,
		},
		{
			name:     "info keyword",
			message:  "info: nothing located here",
			wantLine: 0, wantChar: 0, wantLen: 1,
			wantSev: schema.SeverityInformation,
		},
		{
			name:     "no position defaults to document start",
			message:  "something went wrong",
			wantLine: 0, wantChar: 0, wantLen: 1,
			wantSev: schema.SeverityError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := e.FromLegacy([]string{tt.message})
			require.Len(t, got, 1)
			d := got[0]
			assert.Equal(t, tt.message, d.Message)
			assert.Equal(t, tt.wantLine, d.Range.Start.Line)
			assert.Equal(t, tt.wantChar, d.Range.Start.Character)
			assert.Equal(t, tt.wantLen, d.Range.Length())
			assert.Equal(t, tt.wantSev, d.Severity)
			assert.Equal(t, "legacy", d.Source)
		})
	}
}

func TestStylePass(t *testing.T) {
	t.Parallel()

	e := NewEngine(0)
	got := e.StylePass("port: 8080  \n\tbad: indent\nclean: 1")

	require.Len(t, got, 2)

	assert.Equal(t, "trailing whitespace", got[0].Message)
	assert.Equal(t, 0, got[0].Range.Start.Line)
	assert.Equal(t, 10, got[0].Range.Start.Character)
	assert.Equal(t, 2, got[0].Range.Length())
	assert.Equal(t, schema.SeverityInformation, got[0].Severity)

	assert.Equal(t, "tab indentation, use spaces", got[1].Message)
	assert.Equal(t, 1, got[1].Range.Start.Line)
}

func TestValuePass(t *testing.T) {
	t.Parallel()

	e := NewEngine(0)

	t.Run("enum violation", func(t *testing.T) {
		t.Parallel()
		got := e.ValuePass("zMode: fast", "Spark.Payment.zen")
		require.Len(t, got, 1)
		assert.Contains(t, got[0].Message, `invalid zMode "fast"`)
		assert.Contains(t, got[0].Message, "reactive, static")
		assert.Equal(t, schema.SeverityError, got[0].Severity)
		assert.Equal(t, 7, got[0].Range.Start.Character)
	})

	t.Run("enum value accepted", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, e.ValuePass("zMode: reactive\nzSync: lazy", "Spark.Payment.zen"))
	})

	t.Run("did you mean", func(t *testing.T) {
		t.Parallel()
		got := e.ValuePass("zMod: reactive", "Spark.Payment.zen")
		require.Len(t, got, 1)
		assert.Contains(t, got[0].Message, `did you mean "zMode"?`)
		assert.Equal(t, schema.SeverityWarning, got[0].Severity)
	})

	t.Run("generic files are not checked", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, e.ValuePass("zMode: fast", "notes.zen"))
	})

	t.Run("unrelated keys pass", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, e.ValuePass("somethingelse: 1", "Spark.Payment.zen"))
	})

	t.Run("multiline block content is not checked", func(t *testing.T) {
		t.Parallel()
		text := "script: |\n" +
			"  mode: weird\n" +
			"  zMod: x\n" +
			"banner: \"\"\"\n" +
			"  logLevel: loud\n" +
			"\"\"\"\n" +
			"mode: weird"
		got := e.ValuePass(text, "Config.App.zen")
		require.Len(t, got, 1, "only the real key line is validated")
		assert.Contains(t, got[0].Message, `invalid mode "weird"`)
		assert.Equal(t, 6, got[0].Range.Start.Line)
	})

	t.Run("hint and affixes are stripped before lookup", func(t *testing.T) {
		t.Parallel()
		got := e.ValuePass("logLevel(str): loud", "Config.App.zen")
		require.Len(t, got, 1)
		assert.Contains(t, got[0].Message, `invalid logLevel "loud"`)
	})
}

func TestAnalyze_MergesPasses(t *testing.T) {
	t.Parallel()

	e := NewEngine(0)
	structured := []schema.Diagnostic{{
		Range:    schema.NewRange(0, 0, 1),
		Message:  "from the tokenizer",
		Severity: schema.SeverityError,
	}}

	got := e.Analyze("zMode: fast   ", "Spark.Payment.zen", structured)

	require.Len(t, got, 3)
	assert.Equal(t, "from the tokenizer", got[0].Message, "structured diagnostics pass through first")
	assert.Equal(t, "trailing whitespace", got[1].Message)
	assert.Contains(t, got[2].Message, "invalid zMode")
}
