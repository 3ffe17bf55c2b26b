package latsim

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// Matrix is a square table of measured RTTs between nodes, in
// milliseconds. Entry (i, j) is the RTT from node i to node j; the
// PlanetLab datasets are symmetric but Matrix does not require it.
type Matrix struct {
	cells [][]float64
}

// ParseMatrix reads a whitespace-separated latency matrix: one row per
// line, one millisecond value per column, the format of the public
// PlanetLab / NetLatency datasets. Blank lines are skipped.
//
// Returns ErrEmptyMatrix, ErrRaggedMatrix, ErrNotSquare or a wrapped
// ErrBadLatency naming the offending entry.
func ParseMatrix(r io.Reader) (*Matrix, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var cells [][]float64
	row := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		values := make([]float64, 0, len(tokens))
		for col, token := range tokens {
			// ParseFloat accepts "NaN" and "Inf" tokens; a latency must
			// be a finite non-negative number.
			v, err := strconv.ParseFloat(token, 64)
			if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: row %d, column %d (%q)", ErrBadLatency, row, col, token)
			}
			values = append(values, v)
		}

		if len(cells) > 0 && len(values) != len(cells[0]) {
			return nil, ErrRaggedMatrix
		}
		cells = append(cells, values)
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("latsim: reading matrix: %w", err)
	}

	if len(cells) == 0 {
		return nil, ErrEmptyMatrix
	}
	if len(cells) != len(cells[0]) {
		return nil, ErrNotSquare
	}

	return &Matrix{cells: cells}, nil
}

// Size returns the number of nodes in the matrix.
func (m *Matrix) Size() int {
	return len(m.cells)
}

// RTT returns the measured round-trip time from node i to node j.
func (m *Matrix) RTT(i, j int) time.Duration {
	return time.Duration(m.cells[i][j] * float64(time.Millisecond))
}

// rttMs returns the raw millisecond entry, the unit Stats reports in.
func (m *Matrix) rttMs(i, j int) float64 {
	return m.cells[i][j]
}
