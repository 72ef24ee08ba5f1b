package lang

import (
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// ValueKind is a declared value type from a (type) hint.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindStr
	KindInt
	KindFloat
	KindBool
	KindList
	KindDict
	KindNull
	KindRaw
	KindDate
	KindTime
	KindURL
	KindPath
)

var hintNames = map[string]ValueKind{
	"str":   KindStr,
	"int":   KindInt,
	"float": KindFloat,
	"bool":  KindBool,
	"list":  KindList,
	"dict":  KindDict,
	"null":  KindNull,
	"raw":   KindRaw,
	"date":  KindDate,
	"time":  KindTime,
	"url":   KindURL,
	"path":  KindPath,
}

// HintNames returns every recognized type-hint label.
func HintNames() []string {
	out := make([]string, 0, len(hintNames))
	for name := range hintNames {
		out = append(out, name)
	}
	return out
}

// String returns the hint label for the kind.
func (k ValueKind) String() string {
	for name, kind := range hintNames {
		if kind == k {
			return name
		}
	}
	return "none"
}

// Hint is a parsed (type) annotation.
type Hint struct {
	Kind ValueKind
	// Name is the raw hint text inside the parentheses.
	Name string
	// Offset is the character position of Name relative to the key start.
	Offset int
}

// ParseHint splits a raw key of the form name(type) into the bare key and its
// hint. Keys without parentheses return ok=false. An unrecognized hint name
// still parses; the caller reports it and treats the value as untyped.
func ParseHint(rawKey string) (string, Hint, bool) {
	open := strings.IndexByte(rawKey, '(')
	if open <= 0 || !strings.HasSuffix(rawKey, ")") {
		return rawKey, Hint{}, false
	}
	name := rawKey[open+1 : len(rawKey)-1]
	return rawKey[:open], Hint{
		Kind:   hintNames[name],
		Name:   name,
		Offset: open + 1,
	}, true
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// Coerce converts a raw scalar to the hinted type. On failure it returns the
// kind's fallback value and an error describing the mismatch; the caller
// records the error as a diagnostic and keeps the fallback.
func Coerce(raw string, kind ValueKind) (any, error) {
	switch kind {
	case KindNone:
		return InferScalar(raw), nil
	case KindStr:
		return unquote(raw), nil
	case KindRaw:
		return raw, nil
	case KindInt:
		// strconv, not cast: cast.ToInt64E accepts float literals and
		// truncates them, which would hide a real type mismatch.
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return int64(0), fmt.Errorf("expected int, got %q", raw)
		}
		return n, nil
	case KindFloat:
		f, err := cast.ToFloat64E(raw)
		if err != nil {
			return float64(0), fmt.Errorf("expected float, got %q", raw)
		}
		return f, nil
	case KindBool:
		b, err := cast.ToBoolE(raw)
		if err != nil {
			return false, fmt.Errorf("expected bool, got %q", raw)
		}
		return b, nil
	case KindNull:
		if raw != "" && raw != "null" {
			return nil, fmt.Errorf("expected null, got %q", raw)
		}
		return nil, nil
	case KindList:
		if raw == "" {
			return []any{}, nil
		}
		return []any{}, fmt.Errorf("expected list value, got scalar %q", raw)
	case KindDict:
		if raw == "" {
			return map[string]any{}, nil
		}
		return map[string]any{}, fmt.Errorf("expected nested block, got scalar %q", raw)
	case KindDate:
		t, err := time.Parse(dateLayout, unquote(raw))
		if err != nil {
			return "", fmt.Errorf("expected date (%s), got %q", dateLayout, raw)
		}
		return t.Format(dateLayout), nil
	case KindTime:
		s := unquote(raw)
		if _, err := time.Parse(timeLayout, s); err != nil {
			if _, err := time.Parse("15:04", s); err != nil {
				return "", fmt.Errorf("expected time (%s), got %q", timeLayout, raw)
			}
		}
		return s, nil
	case KindURL:
		s := unquote(raw)
		if _, err := url.ParseRequestURI(s); err != nil {
			return "", fmt.Errorf("expected url, got %q", raw)
		}
		return s, nil
	case KindPath:
		s := unquote(raw)
		if s == "" {
			return "", fmt.Errorf("expected path, got empty value")
		}
		return path.Clean(s), nil
	}
	return InferScalar(raw), nil
}

// InferScalar parses an untyped scalar: bool and null literals, integers,
// floats, quoted strings (escapes resolved), else the bare string.
func InferScalar(raw string) any {
	switch raw {
	case "":
		return ""
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	if looksNumeric(raw) {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}
	return unquote(raw)
}

func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' || s[0] == '+' {
		i = 1
	}
	if i >= len(s) {
		return false
	}
	for ; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && c != '.' && c != 'e' && c != 'E' && c != '+' && c != '-' && c != '_' {
			return false
		}
	}
	return true
}

// unquote strips one pair of surrounding double quotes and resolves escapes.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return UnescapeString(s[1 : len(s)-1])
	}
	return s
}
