package lang

import "strings"

// CommentSpan is a comment region within one raw line, in character offsets.
type CommentSpan struct {
	Start int
	End   int
}

// SplitComment separates a raw line into its effective content and comment
// spans. A full-line comment is a line whose first non-blank character is #.
// An inline comment is a #> ... <# region; # inside quoted strings is text.
// The returned content has comment regions blanked with spaces so every
// character keeps its original column.
func SplitComment(line string) (string, []CommentSpan) {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		start := len(line) - len(trimmed)
		return strings.Repeat(" ", len(line)), []CommentSpan{{Start: start, End: len(line)}}
	}

	var spans []CommentSpan
	content := []byte(line)
	inQuote := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '\\' && inQuote:
			i++ // skip the escaped character
		case c == '"':
			inQuote = !inQuote
		case c == '#' && !inQuote && i+1 < len(line) && line[i+1] == '>':
			end := strings.Index(line[i:], "<#")
			if end < 0 {
				// Unterminated inline comment runs to end of line.
				spans = append(spans, CommentSpan{Start: i, End: len(line)})
				blank(content, i, len(line))
				return string(content), spans
			}
			stop := i + end + len("<#")
			spans = append(spans, CommentSpan{Start: i, End: stop})
			blank(content, i, stop)
			i = stop - 1
		}
	}
	return string(content), spans
}

func blank(b []byte, from, to int) {
	for i := from; i < to; i++ {
		b[i] = ' '
	}
}
