package alignment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqss-bio/gqss-go/internal/submat"
)

// uniformScorer applies a flat match/mismatch scheme with exact byte
// comparison, like the classic textbook examples.
func uniformScorer(match, mismatch int64) submat.Scorer {
	return func(a, b byte) (int64, error) {
		if a == b {
			return match, nil
		}
		return mismatch, nil
	}
}

func TestFillWorkedExample(t *testing.T) {
	// GGTTGACTA against TGTTACGG under +3/-3 with gap penalty 2 is the
	// canonical fixture; every cell is pinned.
	m, err := Fill("GGTTGACTA", "TGTTACGG", uniformScorer(3, -3), 2)
	require.NoError(t, err)
	require.Equal(t, 9, m.Rows())
	require.Equal(t, 8, m.Cols())

	want := [][]int64{
		{0, 3, 1, 0, 0, 0, 3, 3},
		{0, 3, 1, 0, 0, 0, 3, 6},
		{3, 1, 6, 4, 2, 0, 1, 4},
		{3, 1, 4, 9, 7, 5, 3, 2},
		{1, 6, 4, 7, 6, 4, 8, 6},
		{0, 4, 3, 5, 10, 8, 6, 5},
		{0, 2, 1, 3, 8, 13, 11, 9},
		{3, 1, 5, 4, 6, 11, 10, 8},
		{1, 0, 3, 2, 7, 9, 8, 7},
	}

	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			assert.Equal(t, want[i][j], m.At(i, j), "cell (%d, %d)", i, j)
		}
	}
}

func TestFillCellsNonNegative(t *testing.T) {
	pairs := [][2]string{
		{"ACGT", "ACGT"},
		{"AAAA", "TTTT"},
		{"GGTTGACTA", "TGTTACGG"},
		{"ACGTNSWRYKMBVHD", "NACGTACGT"},
		{"acgtACGT", "tgcaTGCA"},
	}

	score := submat.EDNAFULL().Scorer()
	for _, p := range pairs {
		m, err := Fill(p[0], p[1], score, 16)
		require.NoError(t, err)
		for i := 0; i < m.Rows(); i++ {
			for j := 0; j < m.Cols(); j++ {
				assert.GreaterOrEqual(t, m.At(i, j), int64(0), "pair %q/%q cell (%d, %d)", p[0], p[1], i, j)
			}
		}
	}
}

func TestFillEmptyInput(t *testing.T) {
	score := submat.EDNAFULL().Scorer()

	_, err := Fill("", "ACGT", score, 16)
	require.Error(t, err)
	var emptyErr *EmptyInputError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, "x", emptyErr.Side)

	_, err = Fill("ACGT", "", score, 16)
	require.Error(t, err)
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, "y", emptyErr.Side)
}

func TestFillInvalidSymbol(t *testing.T) {
	score := submat.EDNAFULL().Scorer()

	_, err := Fill("ACZGT", "ACGT", score, 16)
	require.Error(t, err)

	var symErr *submat.InvalidSymbolError
	require.ErrorAs(t, err, &symErr)
	assert.Equal(t, byte('Z'), symErr.Symbol)
}

func TestBestFirstMaxWins(t *testing.T) {
	// ATA against A scores 3 at both (0,0) and (2,0); the row-major scan
	// must keep the earlier cell.
	m, err := Fill("ATA", "A", uniformScorer(3, -3), 2)
	require.NoError(t, err)

	score, i, j, err := m.Best()
	require.NoError(t, err)
	assert.Equal(t, int64(3), score)
	assert.Equal(t, 0, i)
	assert.Equal(t, 0, j)
}

func TestBestAllZero(t *testing.T) {
	m, err := Fill("A", "T", uniformScorer(3, -3), 2)
	require.NoError(t, err)

	score, i, j, err := m.Best()
	require.NoError(t, err)
	assert.Equal(t, int64(0), score)
	assert.Equal(t, 0, i)
	assert.Equal(t, 0, j)
}

func TestBestEmptyMatrix(t *testing.T) {
	var m Matrix
	_, _, _, err := m.Best()
	require.Error(t, err)
	assert.IsType(t, &EmptyMatrixError{}, err)
}

func TestAlignWorkedExample(t *testing.T) {
	res, err := Align("GGTTGACTA", "TGTTACGG", uniformScorer(3, -3), 2)
	require.NoError(t, err)

	assert.Equal(t, int64(13), res.Score)
	assert.Equal(t, "GTTGAC", res.AlignedX)
	assert.Equal(t, "GTT-AC", res.AlignedY)
	assert.Equal(t, 1, res.StartX)
	assert.Equal(t, 6, res.StopX)
	assert.Equal(t, 1, res.StartY)
	assert.Equal(t, 5, res.StopY)
	assert.Equal(t, 6, res.Length())
	assert.False(t, res.Empty())
}

func TestAlignIdentical(t *testing.T) {
	res, err := Align("ACGT", "ACGT", submat.EDNAFULL().Scorer(), 16)
	require.NoError(t, err)

	assert.Equal(t, int64(20), res.Score)
	assert.Equal(t, "ACGT", res.AlignedX)
	assert.Equal(t, "ACGT", res.AlignedY)
	assert.Equal(t, 0, res.StartX)
	assert.Equal(t, 3, res.StopX)
	assert.Equal(t, 0, res.StartY)
	assert.Equal(t, 3, res.StopY)
	assert.InDelta(t, 1.0, res.Identity(), 0.0001)
}

func TestAlignNoPositiveScore(t *testing.T) {
	// A against T scores -4 everywhere under NUC.4.4, so every cell clamps
	// to zero and the alignment is empty.
	res, err := Align("AAAA", "TTTT", submat.EDNAFULL().Scorer(), 16)
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.Score)
	assert.True(t, res.Empty())
	assert.Equal(t, "", res.AlignedX)
	assert.Equal(t, "", res.AlignedY)
	assert.Equal(t, 0, res.StartX)
	assert.Equal(t, 0, res.StopX)
	assert.Equal(t, 0, res.StartY)
	assert.Equal(t, 0, res.StopY)
	assert.Equal(t, float64(0), res.Identity())
}

func TestAlignBoundaryStop(t *testing.T) {
	// The best path walks back to column 0 with a positive score; the edge
	// cell is consumed as a final column even though it is a mismatch.
	res, err := Align("ACGT", "AT", uniformScorer(3, -3), 0)
	require.NoError(t, err)

	assert.Equal(t, int64(6), res.Score)
	assert.Equal(t, "GT", res.AlignedX)
	assert.Equal(t, "AT", res.AlignedY)
	assert.Equal(t, 2, res.StartX)
	assert.Equal(t, 3, res.StopX)
	assert.Equal(t, 0, res.StartY)
	assert.Equal(t, 1, res.StopY)
}

func TestAlignGapZero(t *testing.T) {
	// With no gap cost the fill reaches 10 through a free vertical step,
	// but the walk back from (2,1) takes the diagonal into the left edge
	// and consumes the boundary cell as a mismatch column.
	res, err := Align("GAT", "GT", submat.EDNAFULL().Scorer(), 0)
	require.NoError(t, err)

	assert.Equal(t, int64(10), res.Score)
	assert.Equal(t, "AT", res.AlignedX)
	assert.Equal(t, "GT", res.AlignedY)
	assert.Equal(t, 1, res.StartX)
	assert.Equal(t, 0, res.StartY)
}

func TestAlignedLengthBound(t *testing.T) {
	pairs := [][2]string{
		{"GGTTGACTA", "TGTTACGG"},
		{"ACGTACGTACGT", "TACG"},
		{"AGGGCT", "AGGCA"},
	}

	score := submat.EDNAFULL().Scorer()
	for _, p := range pairs {
		res, err := Align(p[0], p[1], score, 16)
		require.NoError(t, err)
		assert.Equal(t, len(res.AlignedX), len(res.AlignedY))
		assert.LessOrEqual(t, res.Length(), len(p[0])+len(p[1]))
	}
}

func TestTraceInvariantViolation(t *testing.T) {
	// A cell value no move can reproduce must surface as a fatal
	// inconsistency, not as a silently wrong alignment.
	m := &Matrix{rows: 2, cols: 2, cells: []int64{0, 0, 0, 7}}

	_, _, _, _, err := Trace("AA", "AA", m, 1, 1, uniformScorer(0, 0), 1)
	require.Error(t, err)

	var invErr *InvariantViolationError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, 1, invErr.I)
	assert.Equal(t, 1, invErr.J)
	assert.Equal(t, int64(7), invErr.Score)
}

func TestCountStats(t *testing.T) {
	tests := []struct {
		name     string
		alignedX string
		alignedY string
		want     Stats
	}{
		{
			name:     "mixed gaps and mismatch",
			alignedX: "AC-GT",
			alignedY: "ACGGT",
			want:     Stats{Identical: 4, GapsX: 1, GapsY: 0, Mismatches: 1},
		},
		{
			name:     "perfect",
			alignedX: "ACGT",
			alignedY: "ACGT",
			want:     Stats{Identical: 4},
		},
		{
			name:     "double gap counts everywhere",
			alignedX: "A-C",
			alignedY: "A-C",
			want:     Stats{Identical: 2, GapsX: 1, GapsY: 1, Mismatches: 1},
		},
		{
			name:     "gap in y",
			alignedX: "GTTGAC",
			alignedY: "GTT-AC",
			want:     Stats{Identical: 5, GapsX: 0, GapsY: 1, Mismatches: 1},
		},
		{
			name:     "pure mismatches",
			alignedX: "AAAA",
			alignedY: "TTTT",
			want:     Stats{Identical: 0, Mismatches: 4},
		},
		{
			name:     "empty",
			alignedX: "",
			alignedY: "",
			want:     Stats{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountStats(tt.alignedX, tt.alignedY)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.alignedX), got.Identical+got.Mismatches)
		})
	}
}

func TestCountStatsLengthMismatch(t *testing.T) {
	_, err := CountStats("ACGT", "ACG")
	require.Error(t, err)
}

func TestScoreOnlyMatchesAlign(t *testing.T) {
	pairs := [][2]string{
		{"GGTTGACTA", "TGTTACGG"},
		{"ACGT", "ACGT"},
		{"AAAA", "TTTT"},
		{"AGGGCTAAGGCTA", "GGCTT"},
	}

	score := submat.EDNAFULL().Scorer()
	for _, p := range pairs {
		full, err := Align(p[0], p[1], score, 16)
		require.NoError(t, err)

		only, err := ScoreOnly(p[0], p[1], score, 16)
		require.NoError(t, err)
		assert.Equal(t, full.Score, only, "pair %q/%q", p[0], p[1])
	}

	only, err := ScoreOnly("GGTTGACTA", "TGTTACGG", uniformScorer(3, -3), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(13), only)
}

func TestScoreOnlyEmptyInput(t *testing.T) {
	score := submat.EDNAFULL().Scorer()

	_, err := ScoreOnly("", "ACGT", score, 16)
	require.Error(t, err)
	_, err = ScoreOnly("ACGT", "", score, 16)
	require.Error(t, err)
}

func benchSequences() (string, string) {
	x := strings.Repeat("ACGTGGTCAA", 100)
	y := strings.Repeat("ACGTGCTCTA", 100)
	return x, y
}

func BenchmarkFill(b *testing.B) {
	x, y := benchSequences()
	score := submat.EDNAFULL().Scorer()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Fill(x, y, score, 16)
	}
}

func BenchmarkAlign(b *testing.B) {
	x, y := benchSequences()
	score := submat.EDNAFULL().Scorer()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Align(x, y, score, 16)
	}
}

func BenchmarkScoreOnly(b *testing.B) {
	x, y := benchSequences()
	score := submat.EDNAFULL().Scorer()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ScoreOnly(x, y, score, 16)
	}
}
