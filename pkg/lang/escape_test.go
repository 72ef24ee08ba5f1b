package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanEscapes(t *testing.T) {
	t.Parallel()

	spans := ScanEscapes(`say \"hi\"\n`, 10)
	assert.Len(t, spans, 3)

	assert.Equal(t, 14, spans[0].Start)
	assert.Equal(t, 16, spans[0].End)
	assert.Equal(t, '"', spans[0].Value)

	assert.Equal(t, `\n`, spans[2].Raw)
	assert.Equal(t, '\n', spans[2].Value)
}

func TestScanEscapes_Unicode(t *testing.T) {
	t.Parallel()

	spans := ScanEscapes("a\\u00E9b", 0)
	assert.Len(t, spans, 1)
	assert.Equal(t, 1, spans[0].Start)
	assert.Equal(t, 7, spans[0].End)
	assert.Equal(t, 'é', spans[0].Value)

	spans = ScanEscapes(`\u{1F600}`, 0)
	assert.Len(t, spans, 1)
	assert.Equal(t, rune(0x1F600), spans[0].Value)
	assert.Equal(t, 9, spans[0].End)
}

func TestScanEscapes_InvalidSkipped(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ScanEscapes(`\q\uZZZZ`, 0))
}

func TestDecodeEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		want   rune
		wantOK bool
	}{
		{raw: `\n`, want: '\n', wantOK: true},
		{raw: `\t`, want: '\t', wantOK: true},
		{raw: `\r`, want: '\r', wantOK: true},
		{raw: `\\`, want: '\\', wantOK: true},
		{raw: `\"`, want: '"', wantOK: true},
		{raw: `A`, want: 'A', wantOK: true},
		{raw: `\u{2764}`, want: '❤', wantOK: true},
		{raw: `\u{110000}`, wantOK: false},
		{raw: `\q`, wantOK: false},
		{raw: `\uZZ`, wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			got, ok := DecodeEscape(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestUnescapeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\tb\nc", UnescapeString(`a\tb\nc`))
	assert.Equal(t, "no escapes", UnescapeString("no escapes"))
	assert.Equal(t, `left \q alone`, UnescapeString(`left \q alone`))
	assert.Equal(t, "\U0001F680", UnescapeString(`\u{1F680}`))
}

func TestIsPictograph(t *testing.T) {
	t.Parallel()

	assert.True(t, IsPictograph(0x1F600)) // grinning face
	assert.True(t, IsPictograph(0x2764))  // heavy black heart
	assert.False(t, IsPictograph('A'))
	assert.False(t, IsPictograph('é'))
}
