// Package submat provides named nucleotide substitution tables.
//
// A Table maps ordered symbol pairs to alignment scores. Lookups fold ASCII
// case and reject bytes outside the table's alphabet instead of reading a
// default score, so a corrupt input surfaces as an error rather than a
// silently wrong alignment.
package submat

import "fmt"

// Scorer scores a single pair of nucleotide symbols.
//
// The alignment engine depends on this function type rather than on a
// concrete table, so tests and callers can substitute flat match/mismatch
// schemes without touching the engine.
type Scorer func(a, b byte) (int64, error)

// SubstitutionError is the base error type for substitution table operations.
type SubstitutionError interface {
	error
	IsSubstitutionError()
}

// InvalidSymbolError is returned when a byte has no row in the table.
type InvalidSymbolError struct {
	Symbol byte
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("symbol %q not in substitution table", e.Symbol)
}

func (e *InvalidSymbolError) IsSubstitutionError() {}

// Table is an immutable substitution table over a fixed symbol alphabet.
type Table struct {
	name    string
	symbols string
	index   [256]int16
	scores  [][]int64
}

// New creates a substitution table. The scores grid must be square with one
// row and column per symbol, in symbol order. Both cases of each symbol map
// to the same row.
func New(name, symbols string, scores [][]int64) (*Table, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("substitution table needs at least one symbol")
	}
	if len(scores) != len(symbols) {
		return nil, fmt.Errorf("expected %d score rows, got %d", len(symbols), len(scores))
	}
	for i, row := range scores {
		if len(row) != len(symbols) {
			return nil, fmt.Errorf("score row %d: expected %d columns, got %d", i, len(symbols), len(row))
		}
	}

	t := &Table{name: name, symbols: symbols, scores: scores}
	for i := range t.index {
		t.index[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i] &^ 0x20
		if t.index[c] >= 0 {
			return nil, fmt.Errorf("duplicate symbol %q", symbols[i])
		}
		t.index[c] = int16(i)
		t.index[c|0x20] = int16(i)
	}
	return t, nil
}

func mustNew(name, symbols string, scores [][]int64) *Table {
	t, err := New(name, symbols, scores)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the table's display name.
func (t *Table) Name() string {
	return t.name
}

// Symbols returns the table's alphabet in row order, upper case.
func (t *Table) Symbols() string {
	return t.symbols
}

// Score returns the substitution score for an ordered symbol pair. Case is
// folded; a byte outside the alphabet yields an InvalidSymbolError.
func (t *Table) Score(a, b byte) (int64, error) {
	i := t.index[a]
	if i < 0 {
		return 0, &InvalidSymbolError{Symbol: a}
	}
	j := t.index[b]
	if j < 0 {
		return 0, &InvalidSymbolError{Symbol: b}
	}
	return t.scores[i][j], nil
}

// Scorer returns the table's Score method as an injectable Scorer.
func (t *Table) Scorer() Scorer {
	return t.Score
}
