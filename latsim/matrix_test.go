package latsim_test

import (
	"strings"
	"testing"
	"time"

	"github.com/latspace/netcoord/latsim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseMatrix_Valid parses a 3×3 matrix and spot-checks entries.
func TestParseMatrix_Valid(t *testing.T) {
	input := "0 10 20\n10 0 15.5\n20 15.5 0\n"

	m, err := latsim.ParseMatrix(strings.NewReader(input))

	require.NoError(t, err, "well-formed matrix must parse")
	assert.Equal(t, 3, m.Size(), "matrix has three nodes")
	assert.Equal(t, 10*time.Millisecond, m.RTT(0, 1), "entry (0,1)")
	assert.Equal(t, 15500*time.Microsecond, m.RTT(1, 2), "fractional milliseconds survive")
	assert.Equal(t, time.Duration(0), m.RTT(2, 2), "diagonal is zero")
}

// TestParseMatrix_SkipsBlankLines tolerates blank separator lines, which
// appear in some published datasets.
func TestParseMatrix_SkipsBlankLines(t *testing.T) {
	input := "0 5\n\n5 0\n\n"

	m, err := latsim.ParseMatrix(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 2, m.Size())
}

// TestParseMatrix_Empty rejects input with no rows.
func TestParseMatrix_Empty(t *testing.T) {
	_, err := latsim.ParseMatrix(strings.NewReader("\n\n"))

	assert.ErrorIs(t, err, latsim.ErrEmptyMatrix, "empty input must error")
}

// TestParseMatrix_Ragged rejects rows of unequal lengths.
func TestParseMatrix_Ragged(t *testing.T) {
	_, err := latsim.ParseMatrix(strings.NewReader("0 1\n0 1 2\n"))

	assert.ErrorIs(t, err, latsim.ErrRaggedMatrix, "ragged rows must error")
}

// TestParseMatrix_NotSquare rejects a rectangular matrix.
func TestParseMatrix_NotSquare(t *testing.T) {
	_, err := latsim.ParseMatrix(strings.NewReader("0 1 2\n3 0 4\n"))

	assert.ErrorIs(t, err, latsim.ErrNotSquare, "2×3 matrix must error")
}

// TestParseMatrix_BadEntries rejects negative and unparsable values,
// naming the offending cell.
func TestParseMatrix_BadEntries(t *testing.T) {
	_, err := latsim.ParseMatrix(strings.NewReader("0 -5\n5 0\n"))
	require.ErrorIs(t, err, latsim.ErrBadLatency, "negative latency must error")
	assert.Contains(t, err.Error(), "row 0, column 1", "error must locate the entry")

	_, err = latsim.ParseMatrix(strings.NewReader("0 x\n5 0\n"))
	assert.ErrorIs(t, err, latsim.ErrBadLatency, "non-numeric token must error")
}

// TestParseMatrix_NonFiniteEntries rejects NaN and ±Inf tokens, which
// strconv.ParseFloat parses without error but are not latencies.
func TestParseMatrix_NonFiniteEntries(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"NaN entry", "0 NaN\nNaN 0\n"},
		{"+Inf entry", "0 Inf\n5 0\n"},
		{"-Inf entry", "0 -Inf\n5 0\n"},
		{"explicit +Inf", "0 +Inf\n5 0\n"},
		{"spelled-out Infinity", "0 Infinity\n5 0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := latsim.ParseMatrix(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, latsim.ErrBadLatency, "non-finite latency must error")
		})
	}
}
