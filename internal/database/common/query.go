package common

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
)

// Query is compiled SQL text plus named parameters. Parameters are written
// as :name in the text and are never interpolated into it.
type Query struct {
	sql    string
	params map[string]any
}

func NewQuery(sql string, params map[string]any) Query {
	q := Query{sql: sql}
	if len(params) > 0 {
		q.params = make(map[string]any, len(params))
		for k, v := range params {
			q.params[strings.TrimPrefix(k, ":")] = v
		}
	}
	return q
}

func (q Query) SQL() string { return q.sql }

func (q Query) String() string { return q.sql }

func (q Query) Params() map[string]any {
	out := make(map[string]any, len(q.params))
	for k, v := range q.params {
		out[k] = v
	}
	return out
}

func (q Query) HasParams() bool { return len(q.params) > 0 }

// Bind rewrites every :name placeholder into a positional placeholder of the
// given format and returns the arguments in occurrence order. Quoted
// literals, quoted identifiers and :: casts are left untouched.
func (q Query) Bind(format squirrel.PlaceholderFormat) (string, []any, error) {
	if len(q.params) == 0 {
		return q.sql, nil, nil
	}

	var sb strings.Builder
	sb.Grow(len(q.sql))
	args := make([]any, 0, len(q.params))

	// positional formats read a doubled ?? as a literal question mark
	literal := strings.NewReplacer("?", "?")
	if format != squirrel.Question {
		literal = strings.NewReplacer("?", "??")
	}

	src := q.sql
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '\'' || c == '"' || c == '`':
			end := closingQuote(src, i)
			literal.WriteString(&sb, src[i:end])
			i = end - 1
		case c == '[':
			end := strings.IndexByte(src[i:], ']')
			if end < 0 {
				literal.WriteString(&sb, src[i:])
				i = len(src)
				continue
			}
			literal.WriteString(&sb, src[i:i+end+1])
			i += end
		case c == ':' && i+1 < len(src) && src[i+1] == ':':
			sb.WriteString("::")
			i++
		case c == ':' && i+1 < len(src) && isParamStart(src[i+1]):
			j := i + 1
			for j < len(src) && isParamChar(src[j]) {
				j++
			}
			name := src[i+1 : j]
			value, ok := q.params[name]
			if !ok {
				return "", nil, fmt.Errorf("%w: %s", ErrMissingParam, name)
			}
			sb.WriteByte('?')
			args = append(args, value)
			i = j - 1
		case c == '?':
			literal.WriteString(&sb, "?")
		default:
			sb.WriteByte(c)
		}
	}

	sql, err := format.ReplacePlaceholders(sb.String())
	if err != nil {
		return "", nil, fmt.Errorf("failed to replace placeholders: %w", err)
	}
	return sql, args, nil
}

// closingQuote returns the index just past the literal that starts at start,
// treating a doubled quote character as an escape.
func closingQuote(s string, start int) int {
	quote := s[start]
	for i := start + 1; i < len(s); i++ {
		if s[i] != quote {
			continue
		}
		if i+1 < len(s) && s[i+1] == quote {
			i++
			continue
		}
		return i + 1
	}
	return len(s)
}

func isParamStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isParamChar(c byte) bool {
	return isParamStart(c) || (c >= '0' && c <= '9')
}
