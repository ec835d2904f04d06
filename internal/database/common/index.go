package common

import (
	"fmt"
	"regexp"
	"strings"
)

var indexColumnRegex = regexp.MustCompile(`(?i)^(` + "`[^`]*`" + `|"[^"]*"|\S+)(?:\s+(asc|desc))?\s*$`)

// IndexColumn is one parsed entry of an index column list.
type IndexColumn struct {
	Name string
	// Direction is "ASC", "DESC" or empty when the entry named none.
	Direction string
}

// ParseIndexColumn splits an entry such as "`last_name` desc" into the bare
// column name and an upper-cased direction. Quoted names may contain spaces;
// anything after the direction is an error.
func ParseIndexColumn(spec string) (IndexColumn, error) {
	m := indexColumnRegex.FindStringSubmatch(spec)
	if m == nil {
		return IndexColumn{}, fmt.Errorf("%w: %q", ErrMalformedIndexSpec, spec)
	}
	name := strings.Trim(m[1], "`\" ")
	if name == "" {
		return IndexColumn{}, fmt.Errorf("%w: %q", ErrMalformedIndexSpec, spec)
	}
	return IndexColumn{Name: name, Direction: strings.ToUpper(m[2])}, nil
}

// DeriveIndexName joins bare column names into the <a>_<b>_idx form.
func DeriveIndexName(columns []IndexColumn) string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}
	return strings.Join(names, "_") + "_idx"
}
