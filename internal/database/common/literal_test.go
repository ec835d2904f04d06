package common

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-of-it/running-dbal/internal/types"
)

func TestLiteralsBool(t *testing.T) {
	l := Literals{True: "TRUE", False: "FALSE"}

	for value, want := range map[any]string{true: "TRUE", false: "FALSE", 1: "TRUE", 0: "FALSE", "true": "TRUE"} {
		got, err := l.Bool(value)
		require.NoError(t, err)
		assert.Equal(t, want, got, "value %v", value)
	}

	_, err := l.Bool("maybe")
	assert.ErrorIs(t, err, ErrInvalidDefault)
}

func TestLiteralsNumbers(t *testing.T) {
	got, err := NumericBoolean.Int("42")
	require.NoError(t, err)
	assert.Equal(t, "42", got)

	got, err = NumericBoolean.Float(2.5)
	require.NoError(t, err)
	assert.Equal(t, "2.5", got)

	_, err = NumericBoolean.Int("forty")
	assert.ErrorIs(t, err, ErrInvalidDefault)
}

func TestLiteralsText(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)

	tests := []struct {
		kind  types.ColumnKind
		value any
		want  string
	}{
		{types.ColumnString, "O'Brien", "'O''Brien'"},
		{types.ColumnChar, 12, "'12'"},
		{types.ColumnDate, at, "'2024-03-09'"},
		{types.ColumnTime, at, "'14:05:00'"},
		{types.ColumnDateTime, at, "'2024-03-09 14:05:00'"},
	}
	for _, tt := range tests {
		got, err := NumericBoolean.Text(tt.kind, tt.value)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestLiteralsTextUsesDialectQuoting(t *testing.T) {
	l := Literals{String: func(s string) string { return "N'" + s + "'" }}

	got, err := l.Text(types.ColumnString, "x")
	require.NoError(t, err)
	assert.Equal(t, "N'x'", got)
}

func TestLiteralsIntRejectsLossyValues(t *testing.T) {
	for _, value := range []any{3.7, "1.5", 1e20, -1e20, math.NaN(), math.Inf(1), uint64(math.MaxUint64), "12abc", ""} {
		_, err := NumericBoolean.Int(value)
		assert.ErrorIs(t, err, ErrInvalidDefault, "value %v", value)
	}
}

func TestLiteralsIntAcceptsIntegralValues(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{float64(-12), "-12"},
		{float32(8), "8"},
		{" 7 ", "7"},
		{uint64(math.MaxInt64), "9223372036854775807"},
		{int8(-3), "-3"},
	}
	for _, tt := range tests {
		got, err := NumericBoolean.Int(tt.value)
		require.NoError(t, err, "value %v", tt.value)
		assert.Equal(t, tt.want, got)
	}
}

func TestLiteralsFloatRejectsNonFinite(t *testing.T) {
	for _, value := range []any{"NaN", math.NaN(), math.Inf(1), math.Inf(-1), "-Inf"} {
		_, err := NumericBoolean.Float(value)
		assert.ErrorIs(t, err, ErrInvalidDefault, "value %v", value)
	}
}
