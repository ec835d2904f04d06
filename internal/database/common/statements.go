package common

import (
	"regexp"
	"strings"
)

var (
	lineCommentRegex = regexp.MustCompile(`(?m)^\s*--.*$`)
	quotedRegex      = regexp.MustCompile(`'(?:[^']|'')*'|"(?:[^"]|"")*"|` + "`(?:[^`]|``)*`" + `|\[[^\]]*\]`)
)

// SplitStatements splits a SQL script on semicolons that are not inside a
// quoted literal or identifier. Whole-line `--` comments are dropped.
func SplitStatements(script string) []Query {
	script = lineCommentRegex.ReplaceAllString(script, "")

	quoted := quotedRegex.FindAllStringIndex(script, -1)
	inQuoted := func(pos int) bool {
		for _, span := range quoted {
			if pos < span[0] {
				return false
			}
			if pos < span[1] {
				return true
			}
		}
		return false
	}

	var (
		queries []Query
		start   int
	)
	flush := func(end int) {
		if stmt := strings.TrimSpace(script[start:end]); stmt != "" {
			queries = append(queries, NewQuery(stmt, nil))
		}
	}
	for i := 0; i < len(script); i++ {
		if script[i] == ';' && !inQuoted(i) {
			flush(i)
			start = i + 1
		}
	}
	flush(len(script))
	return queries
}
