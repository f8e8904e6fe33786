// Package alignment implements Smith-Waterman local alignment with a linear
// gap model over an injected substitution scorer.
//
// The score matrix has one row per base of the first sequence and one column
// per base of the second; there is no boundary row or column. Cell (i, j)
// holds the best score of any local alignment ending exactly at X[i] and
// Y[j], and predecessors that fall off the grid contribute zero.
package alignment

import (
	"fmt"

	"github.com/gqss-bio/gqss-go/internal/submat"
)

// Matrix is a dense row-major Smith-Waterman score matrix.
type Matrix struct {
	rows  int
	cols  int
	cells []int64
}

// Rows returns the number of matrix rows (length of the first sequence).
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of matrix columns (length of the second sequence).
func (m *Matrix) Cols() int {
	return m.cols
}

// At returns the score at row i, column j. It panics when the cell is out of
// range.
func (m *Matrix) At(i, j int) int64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("alignment: cell (%d, %d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
	return m.cells[i*m.cols+j]
}

// pred returns the score at (i, j), treating cells off the grid as zero.
func (m *Matrix) pred(i, j int) int64 {
	if i < 0 || j < 0 {
		return 0
	}
	return m.cells[i*m.cols+j]
}

// Fill computes the score matrix for x against y. Each cell takes the
// maximum of zero, the diagonal predecessor plus the substitution score, and
// either adjacent predecessor minus the gap penalty, so no cell is ever
// negative. Scorer errors abort the fill.
func Fill(x, y string, score submat.Scorer, gap int64) (*Matrix, error) {
	if len(x) == 0 {
		return nil, &EmptyInputError{Side: "x"}
	}
	if len(y) == 0 {
		return nil, &EmptyInputError{Side: "y"}
	}

	m := &Matrix{
		rows:  len(x),
		cols:  len(y),
		cells: make([]int64, len(x)*len(y)),
	}

	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			sub, err := score(x[i], y[j])
			if err != nil {
				return nil, err
			}

			best := m.pred(i-1, j-1) + sub
			if v := m.pred(i-1, j) - gap; v > best {
				best = v
			}
			if v := m.pred(i, j-1) - gap; v > best {
				best = v
			}
			if best < 0 {
				best = 0
			}
			m.cells[i*m.cols+j] = best
		}
	}

	return m, nil
}

// Best returns the highest score in the matrix and its coordinates. The scan
// is row-major with a strictly-greater comparison, so the first of several
// equal maxima wins.
func (m *Matrix) Best() (score int64, i, j int, err error) {
	if m.rows == 0 || m.cols == 0 {
		return 0, 0, 0, &EmptyMatrixError{}
	}

	best := int64(-1)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if v := m.cells[r*m.cols+c]; v > best {
				best, i, j = v, r, c
			}
		}
	}
	return best, i, j, nil
}

// Trace reconstructs the local alignment ending at cell (i, j).
//
// Moves are tried in fixed order: gap in x, diagonal, gap in y. The walk
// stops on a zero cell, after consuming a cell on the top or left edge, or
// after a diagonal step whose predecessor holds zero. When no move
// reproduces the cell's score, the matrix is inconsistent with the scorer
// and gap penalty and an InvariantViolationError is returned.
//
// The returned strings read left to right. startI and startJ are the
// inclusive start coordinates; the entry cell is the inclusive end. A
// zero-score entry cell yields two empty strings.
func Trace(x, y string, m *Matrix, i, j int, score submat.Scorer, gap int64) (alignedX, alignedY string, startI, startJ int, err error) {
	var bufX, bufY []byte

	for m.At(i, j) != 0 {
		if i == 0 || j == 0 {
			bufX = append(bufX, x[i])
			bufY = append(bufY, y[j])
			break
		}

		cur := m.At(i, j)

		if m.At(i, j-1)-gap == cur {
			bufX = append(bufX, '-')
			bufY = append(bufY, y[j])
			j--
			continue
		}

		sub, serr := score(x[i], y[j])
		if serr != nil {
			return "", "", 0, 0, serr
		}
		if diag := m.At(i-1, j-1); diag+sub == cur {
			bufX = append(bufX, x[i])
			bufY = append(bufY, y[j])
			if diag == 0 {
				break
			}
			i--
			j--
			continue
		}

		if m.At(i-1, j)-gap == cur {
			bufX = append(bufX, x[i])
			bufY = append(bufY, '-')
			i--
			continue
		}

		return "", "", 0, 0, &InvariantViolationError{I: i, J: j, Score: cur}
	}

	reverseBytes(bufX)
	reverseBytes(bufY)
	return string(bufX), string(bufY), i, j, nil
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Result holds a completed local alignment.
//
// AlignedX and AlignedY always have equal length, with '-' marking gaps.
// Start and stop coordinates are zero-based and inclusive on both ends. An
// empty alignment (Score zero) has empty aligned strings and keeps the
// best-cell coordinates as both start and stop.
type Result struct {
	AlignedX string
	AlignedY string
	Score    int64
	StartX   int
	StopX    int
	StartY   int
	StopY    int
}

// Length returns the number of alignment columns.
func (r *Result) Length() int {
	return len(r.AlignedX)
}

// Empty reports whether no positive-scoring alignment exists.
func (r *Result) Empty() bool {
	return r.Score == 0
}

// Identity returns the fraction of identical columns, zero for an empty
// alignment.
func (r *Result) Identity() float64 {
	if len(r.AlignedX) == 0 {
		return 0
	}
	st, err := CountStats(r.AlignedX, r.AlignedY)
	if err != nil {
		return 0
	}
	return float64(st.Identical) / float64(len(r.AlignedX))
}

func (r *Result) String() string {
	return fmt.Sprintf("Result { score: %d, length: %d, x: %d..%d, y: %d..%d }",
		r.Score, r.Length(), r.StartX, r.StopX, r.StartY, r.StopY)
}

// Align runs the complete local alignment of x against y. It fills the
// score matrix and traces back from the best cell. The matrix is local to
// the call and released on return.
func Align(x, y string, score submat.Scorer, gap int64) (*Result, error) {
	m, err := Fill(x, y, score, gap)
	if err != nil {
		return nil, err
	}

	best, stopI, stopJ, err := m.Best()
	if err != nil {
		return nil, err
	}

	alignedX, alignedY, startI, startJ, err := Trace(x, y, m, stopI, stopJ, score, gap)
	if err != nil {
		return nil, err
	}

	return &Result{
		AlignedX: alignedX,
		AlignedY: alignedY,
		Score:    best,
		StartX:   startI,
		StopX:    stopI,
		StartY:   startJ,
		StopY:    stopJ,
	}, nil
}

// ScoreOnly computes the best local alignment score without a traceback.
// It keeps two matrix rows instead of the full grid, so memory is O(len(y)).
func ScoreOnly(x, y string, score submat.Scorer, gap int64) (int64, error) {
	if len(x) == 0 {
		return 0, &EmptyInputError{Side: "x"}
	}
	if len(y) == 0 {
		return 0, &EmptyInputError{Side: "y"}
	}

	prev := make([]int64, len(y))
	curr := make([]int64, len(y))
	var best int64

	for i := 0; i < len(x); i++ {
		for j := 0; j < len(y); j++ {
			sub, err := score(x[i], y[j])
			if err != nil {
				return 0, err
			}

			var diag, left int64
			if j > 0 {
				diag = prev[j-1]
				left = curr[j-1]
			}
			up := prev[j]

			v := diag + sub
			if w := up - gap; w > v {
				v = w
			}
			if w := left - gap; w > v {
				v = w
			}
			if v < 0 {
				v = 0
			}
			curr[j] = v
			if v > best {
				best = v
			}
		}
		prev, curr = curr, prev
	}

	return best, nil
}
