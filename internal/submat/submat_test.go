package submat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEDNAFULLScores(t *testing.T) {
	table := EDNAFULL()
	assert.Equal(t, "NUC.4.4", table.Name())

	tests := []struct {
		name string
		a, b byte
		want int64
	}{
		{"identical A", 'A', 'A', 5},
		{"identical C", 'C', 'C', 5},
		{"transversion A/T", 'A', 'T', -4},
		{"transversion G/C", 'G', 'C', -4},
		{"A in W", 'A', 'W', 1},
		{"A in R", 'A', 'R', 1},
		{"A against Y", 'A', 'Y', -4},
		{"G in S", 'G', 'S', 1},
		{"N against base", 'N', 'A', -2},
		{"N against N", 'N', 'N', -1},
		{"N against code", 'N', 'R', -1},
		{"S against S", 'S', 'S', -1},
		{"B against V", 'B', 'V', -2},
		{"U scores zero", 'U', 'U', 0},
		{"U against A", 'U', 'A', 0},
		{"lowercase folded", 'a', 'a', 5},
		{"mixed case folded", 'a', 'T', -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Score(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEDNAFULLSymmetric(t *testing.T) {
	table := EDNAFULL()
	symbols := table.Symbols()

	for i := 0; i < len(symbols); i++ {
		for j := 0; j < len(symbols); j++ {
			ab, err := table.Score(symbols[i], symbols[j])
			require.NoError(t, err)
			ba, err := table.Score(symbols[j], symbols[i])
			require.NoError(t, err)
			assert.Equal(t, ab, ba, "score(%c,%c) != score(%c,%c)", symbols[i], symbols[j], symbols[j], symbols[i])
		}
	}
}

func TestScoreInvalidSymbol(t *testing.T) {
	table := EDNAFULL()

	tests := []struct {
		name string
		a, b byte
	}{
		{"Z first", 'Z', 'A'},
		{"Z second", 'A', 'Z'},
		{"gap character", '-', 'A'},
		{"digit", 'A', '7'},
		{"high byte", 0xC3, 'A'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := table.Score(tt.a, tt.b)
			require.Error(t, err)

			var symErr *InvalidSymbolError
			assert.ErrorAs(t, err, &symErr)
		})
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		symbols string
		scores  [][]int64
		wantErr bool
	}{
		{
			name:    "valid 2x2",
			symbols: "AT",
			scores:  [][]int64{{1, -1}, {-1, 1}},
			wantErr: false,
		},
		{
			name:    "no symbols",
			symbols: "",
			scores:  [][]int64{},
			wantErr: true,
		},
		{
			name:    "row count mismatch",
			symbols: "AT",
			scores:  [][]int64{{1, -1}},
			wantErr: true,
		},
		{
			name:    "column count mismatch",
			symbols: "AT",
			scores:  [][]int64{{1, -1}, {-1}},
			wantErr: true,
		},
		{
			name:    "duplicate symbol",
			symbols: "AA",
			scores:  [][]int64{{1, -1}, {-1, 1}},
			wantErr: true,
		},
		{
			name:    "case duplicate",
			symbols: "Aa",
			scores:  [][]int64{{1, -1}, {-1, 1}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := New("test", tt.symbols, tt.scores)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, table)
			}
		})
	}
}

func TestScorer(t *testing.T) {
	score := EDNAFULL().Scorer()

	got, err := score('G', 'G')
	require.NoError(t, err)
	assert.Equal(t, int64(5), got)

	_, err = score('G', '!')
	require.Error(t, err)
}

func BenchmarkScore(b *testing.B) {
	table := EDNAFULL()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = table.Score('A', 'G')
	}
}
