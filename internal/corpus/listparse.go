package corpus

import (
	"fmt"
	"strings"
)

// ParseListLiteral parses a source cell holding a list literal of quoted
// scalars, e.g. `['Gin', 'Grand Marnier']`. Unquoted tokens such as None are
// accepted as bare scalars so sentinel values survive to the normalizer's
// filter. Callers that receive an error fall back to treating the raw cell as
// a single scalar; parse failures never fail a row.
func ParseListLiteral(s string) ([]string, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "[") {
		return nil, fmt.Errorf("not a list literal: %q", s)
	}
	if !strings.HasSuffix(trimmed, "]") {
		return nil, fmt.Errorf("unterminated list literal: %q", s)
	}

	inner := trimmed[1 : len(trimmed)-1]
	if strings.TrimSpace(inner) == "" {
		return []string{}, nil
	}

	var items []string
	rest := inner
	for {
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			return nil, fmt.Errorf("trailing separator in list literal: %q", s)
		}

		item, remainder, err := scanItem(rest)
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		remainder = strings.TrimLeft(remainder, " \t")
		if remainder == "" {
			return items, nil
		}
		if remainder[0] != ',' {
			return nil, fmt.Errorf("unexpected %q in list literal", remainder[0])
		}
		rest = remainder[1:]
	}
}

// scanItem consumes one element, quoted or bare, and returns it with the
// unconsumed remainder.
func scanItem(s string) (string, string, error) {
	quote := s[0]
	if quote != '\'' && quote != '"' {
		// Bare scalar, ends at the next comma.
		end := strings.IndexByte(s, ',')
		if end < 0 {
			return strings.TrimSpace(s), "", nil
		}
		return strings.TrimSpace(s[:end]), s[end:], nil
	}

	var b strings.Builder
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			b.WriteByte(s[i+1])
			i++
			continue
		}
		if c == quote {
			return b.String(), s[i+1:], nil
		}
		b.WriteByte(c)
	}
	return "", "", fmt.Errorf("unterminated string in list literal: %q", s)
}
