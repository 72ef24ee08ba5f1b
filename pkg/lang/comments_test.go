package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		line        string
		wantContent string
		wantSpans   []CommentSpan
	}{
		{
			name:        "no comment",
			line:        "port: 8080",
			wantContent: "port: 8080",
		},
		{
			name:        "full line comment",
			line:        "  # all of this",
			wantContent: "               ",
			wantSpans:   []CommentSpan{{Start: 2, End: 15}},
		},
		{
			name:        "inline comment",
			line:        "port: 8080 #> dev port <#",
			wantContent: "port: 8080               ",
			wantSpans:   []CommentSpan{{Start: 11, End: 25}},
		},
		{
			name:        "content after inline comment survives",
			line:        "a: #> x <# 1",
			wantContent: "a:         1",
			wantSpans:   []CommentSpan{{Start: 3, End: 10}},
		},
		{
			name:        "unterminated inline comment runs to end",
			line:        "a: 1 #> forgot",
			wantContent: "a: 1          ",
			wantSpans:   []CommentSpan{{Start: 5, End: 14}},
		},
		{
			name:        "hash inside quotes is text",
			line:        `tag: "#gold"`,
			wantContent: `tag: "#gold"`,
		},
		{
			name:        "marker inside quotes is text",
			line:        `msg: "#> kept <#"`,
			wantContent: `msg: "#> kept <#"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			content, spans := SplitComment(tt.line)
			assert.Equal(t, tt.wantContent, content)
			assert.Equal(t, tt.wantSpans, spans)
			assert.Len(t, content, len(tt.line), "columns must be preserved")
		})
	}
}
