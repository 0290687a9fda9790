package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvgrid/matrix"
	"github.com/stretchr/testify/require"
)

// TestRowMatchesAt: Row(r) == [At(r,0), ..., At(r,cols-1)].
func TestRowMatchesAt(t *testing.T) {
	m := mustSeq(t, 3, 4)
	for r := 0; r < m.Rows(); r++ {
		row, err := m.Row(r)
		require.NoError(t, err)
		require.Len(t, row, m.Cols())
		for c, v := range row {
			want, err := m.At(r, c)
			require.NoError(t, err)
			require.Equal(t, want, v)
		}
	}
}

// TestColMatchesAt: Col(c) == [At(0,c), ..., At(rows-1,c)].
func TestColMatchesAt(t *testing.T) {
	m := mustSeq(t, 3, 4)
	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []int{2, 6, 10}, col)

	for c := 0; c < m.Cols(); c++ {
		col, err = m.Col(c)
		require.NoError(t, err)
		require.Len(t, col, m.Rows())
		for r, v := range col {
			want, err := m.At(r, c)
			require.NoError(t, err)
			require.Equal(t, want, v)
		}
	}
}

// TestRowColSnapshots verifies extraction returns independent copies.
func TestRowColSnapshots(t *testing.T) {
	m := mustSeq(t, 2, 2)
	row, err := m.Row(0)
	require.NoError(t, err)
	col, err := m.Col(0)
	require.NoError(t, err)

	// Later writes to the matrix are not reflected in the snapshots.
	require.NoError(t, m.Set(0, 0, 50))
	require.Equal(t, []int{0, 1}, row)
	require.Equal(t, []int{0, 2}, col)

	// Writes to the snapshots do not reach the matrix.
	row[1] = -9
	col[1] = -9
	v, _ := m.At(0, 1)
	require.Equal(t, 1, v)
	v, _ = m.At(1, 0)
	require.Equal(t, 2, v)
}

// TestRowColOutOfRange checks the axis-specific errors.
func TestRowColOutOfRange(t *testing.T) {
	m := mustSeq(t, 2, 3)

	for _, r := range []int{-1, 2, 10} {
		_, err := m.Row(r)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		var ie *matrix.IndexError
		require.True(t, errors.As(err, &ie))
		require.Equal(t, matrix.AxisRow, ie.Axis)
		require.Equal(t, r, ie.Row)
		require.Equal(t, 2, ie.Rows)
	}
	for _, c := range []int{-1, 3} {
		_, err := m.Col(c)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		var ie *matrix.IndexError
		require.True(t, errors.As(err, &ie))
		require.Equal(t, matrix.AxisCol, ie.Axis)
		require.Equal(t, c, ie.Col)
		require.Equal(t, 3, ie.Cols)
	}
}

// TestRowColDegenerateShapes: only the requested axis is validated.
func TestRowColDegenerateShapes(t *testing.T) {
	wide := mustZeros[int](t, 2, 0)
	row, err := wide.Row(1)
	require.NoError(t, err)
	require.NotNil(t, row)
	require.Empty(t, row)
	_, err = wide.Col(0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	tall := mustZeros[int](t, 0, 2)
	col, err := tall.Col(1)
	require.NoError(t, err)
	require.Empty(t, col)
	_, err = tall.Row(0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestOnEachRowMajor verifies visit order, count and supplied values.
func TestOnEachRowMajor(t *testing.T) {
	m := mustSeq(t, 2, 3)
	var cells []matrix.Cell
	var vals []int
	m.OnEach(func(r, c, v int) {
		cells = append(cells, matrix.Cell{Row: r, Col: c})
		vals = append(vals, v)
	})
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, vals)
	require.Equal(t, matrix.Cell{Row: 0, Col: 2}, cells[2])
	require.Equal(t, matrix.Cell{Row: 1, Col: 0}, cells[3])
	require.Len(t, cells, 6)
}

// TestStringOutput checks the "~ v ~" rendering contract.
func TestStringOutput(t *testing.T) {
	m, err := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "~ 1 ~~ 2 ~\n~ 3 ~~ 4 ~\n", m.String())

	s, err := matrix.FromRows([][]string{{"a", "b", "c"}})
	require.NoError(t, err)
	require.Equal(t, "~ a ~~ b ~~ c ~\n", s.String())

	empty := mustZeros[int](t, 0, 0)
	require.Equal(t, "", empty.String())
}

// TestFormatOptions covers every RenderOption.
func TestFormatOptions(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2.5}, {3, 4}})
	require.NoError(t, err)

	got := m.Format(
		matrix.WithCellDelimiters("[", "]"),
		matrix.WithCellSeparator(", "),
		matrix.WithRowSeparator(";"),
		matrix.WithVerb("%.1f"),
	)
	require.Equal(t, "[1.0], [2.5];[3.0], [4.0];", got)

	// No options: identical to String.
	require.Equal(t, m.String(), m.Format())
	// nil options are skipped.
	require.Equal(t, m.String(), m.Format(nil))
}
