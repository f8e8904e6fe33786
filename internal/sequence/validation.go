package sequence

import "fmt"

// SequenceError is the base error type for sequence operations.
type SequenceError interface {
	error
	IsSequenceError()
}

// EmptySequenceError is returned when a sequence has no bases.
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string {
	return "sequence must have at least one base"
}

func (e *EmptySequenceError) IsSequenceError() {}

// InvalidSymbolError is returned when a byte outside the IUPAC alphabet is
// encountered. Position is -1 when the offending byte was not part of a
// sequence.
type InvalidSymbolError struct {
	Position int
	Symbol   byte
}

func (e *InvalidSymbolError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("invalid symbol %q", e.Symbol)
	}
	return fmt.Sprintf("invalid symbol %q at position %d", e.Symbol, e.Position)
}

func (e *InvalidSymbolError) IsSequenceError() {}

// Validate checks that every byte is an IUPAC nucleotide code in either case.
func Validate(bases string) error {
	for i := 0; i < len(bases); i++ {
		if !validSymbol[bases[i]] {
			return &InvalidSymbolError{Position: i, Symbol: bases[i]}
		}
	}
	return nil
}

// IsValidSymbol checks whether a byte is an accepted nucleotide code.
func IsValidSymbol(c byte) bool {
	return validSymbol[c]
}
