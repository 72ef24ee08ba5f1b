package lang

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Serialize renders a data tree back to Zen text. Round-tripping the output
// through Tokenize yields an equivalent tree. Keys emit in sorted order
// because the tree does not preserve source order.
func Serialize(data map[string]any) string {
	var sb strings.Builder
	writeMap(&sb, data, 0)
	return sb.String()
}

func writeMap(sb *strings.Builder, m map[string]any, indent int) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pad := strings.Repeat(" ", indent)
	for _, k := range keys {
		switch v := m[k].(type) {
		case map[string]any:
			fmt.Fprintf(sb, "%s%s:\n", pad, k)
			writeMap(sb, v, indent+IndentUnit)
		case []any:
			fmt.Fprintf(sb, "%s%s: %s\n", pad, k, renderArray(v))
		case string:
			if strings.Contains(v, "\n") {
				fmt.Fprintf(sb, "%s%s: |\n", pad, k)
				inner := strings.Repeat(" ", indent+IndentUnit)
				for _, line := range strings.Split(v, "\n") {
					if line == "" {
						sb.WriteString("\n")
						continue
					}
					fmt.Fprintf(sb, "%s%s\n", inner, line)
				}
				continue
			}
			fmt.Fprintf(sb, "%s%s: %s\n", pad, k, renderString(v))
		default:
			fmt.Fprintf(sb, "%s%s: %s\n", pad, k, renderScalar(v))
		}
	}
}

func renderArray(items []any) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case []any:
			parts = append(parts, renderArray(v))
		case string:
			parts = append(parts, renderString(v))
		default:
			parts = append(parts, renderScalar(v))
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func renderScalar(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		s := strconv.FormatFloat(x, 'g', -1, 64)
		// Keep a float a float across a round-trip.
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	default:
		return renderString(fmt.Sprintf("%v", x))
	}
}

// renderString quotes a string when bare emission would reparse differently.
func renderString(s string) string {
	if s == "" || needsQuoting(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuoting(s string) bool {
	switch s {
	case "true", "false", "null", "|":
		return true
	}
	if looksNumeric(s) {
		return true
	}
	if s != strings.TrimSpace(s) {
		return true
	}
	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, `"`) || strings.HasPrefix(s, "- ") {
		return true
	}
	return strings.ContainsAny(s, ":#,\"\\[]")
}
