package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/pr-of-it/running-dbal/internal/types"
)

// Literals renders typed default values as SQL literals for one dialect.
type Literals struct {
	True, False string
	// String quotes an already-textual value. Nil means ANSI single quotes.
	String func(string) string
}

var NumericBoolean = Literals{True: "1", False: "0"}

// QuoteString wraps s in single quotes, doubling embedded ones.
func QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func (l Literals) Bool(value any) (string, error) {
	b, err := cast.ToBoolE(value)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDefault, err)
	}
	if b {
		return l.True, nil
	}
	return l.False, nil
}

// Int renders an integral default. Fractional or out of range values are
// rejected rather than truncated.
func (l Literals) Int(value any) (string, error) {
	var n int64
	switch v := value.(type) {
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q is not an integer", ErrInvalidDefault, v)
		}
		n = parsed
	case float32:
		return l.Int(float64(v))
	case float64:
		// float64(math.MaxInt64) rounds up to 2^63, so the upper bound is exclusive
		if math.IsNaN(v) || v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return "", fmt.Errorf("%w: %v is not an int64", ErrInvalidDefault, v)
		}
		n = int64(v)
	case uint:
		return l.Int(uint64(v))
	case uint64:
		if v > math.MaxInt64 {
			return "", fmt.Errorf("%w: %d overflows int64", ErrInvalidDefault, v)
		}
		n = int64(v)
	default:
		var err error
		if n, err = cast.ToInt64E(value); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidDefault, err)
		}
	}
	return strconv.FormatInt(n, 10), nil
}

func (l Literals) Float(value any) (string, error) {
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDefault, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v has no SQL literal", ErrInvalidDefault, f)
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}

// Text renders value as a quoted string literal. time.Time values are
// formatted according to the column kind first.
func (l Literals) Text(kind types.ColumnKind, value any) (string, error) {
	var s string
	if t, ok := value.(time.Time); ok {
		s = t.Format(timeLayout(kind))
	} else {
		var err error
		if s, err = cast.ToStringE(value); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidDefault, err)
		}
	}
	if l.String != nil {
		return l.String(s), nil
	}
	return QuoteString(s), nil
}

func timeLayout(kind types.ColumnKind) string {
	switch kind {
	case types.ColumnTime:
		return time.TimeOnly
	case types.ColumnDate:
		return time.DateOnly
	default:
		return time.DateTime
	}
}
