// Package sequence provides validated nucleotide sequence types.
//
// Sequences carry the 16-letter IUPAC nucleotide alphabet (A, C, G, T, U
// plus the ambiguity codes S, W, R, Y, K, M, B, V, H, D, N) in either case.
// Input casing is preserved; scoring folds case at lookup time instead.
package sequence

import (
	"fmt"
	"strings"
)

// Symbols lists the accepted nucleotide codes, upper case.
const Symbols = "ACGTUSWRYKMBVHDN"

var validSymbol [256]bool

func init() {
	for i := 0; i < len(Symbols); i++ {
		c := Symbols[i]
		validSymbol[c] = true
		validSymbol[c|0x20] = true
	}
}

// Sequence represents a validated nucleotide sequence.
// Bases are single-byte IUPAC symbols with original casing retained.
type Sequence struct {
	Bases       string
	ID          string
	Description string
}

// New creates a sequence from raw bases, validating every symbol.
func New(bases string) (*Sequence, error) {
	if len(bases) == 0 {
		return nil, &EmptySequenceError{}
	}
	if err := Validate(bases); err != nil {
		return nil, err
	}
	return &Sequence{Bases: bases}, nil
}

// WithID creates a validated sequence carrying an identifier.
func WithID(bases, id string) (*Sequence, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ID cannot be empty")
	}
	seq, err := New(bases)
	if err != nil {
		return nil, err
	}
	seq.ID = id
	return seq, nil
}

// WithMetadata creates a validated sequence with identifier and description.
func WithMetadata(bases, id, description string) (*Sequence, error) {
	seq, err := New(bases)
	if err != nil {
		return nil, err
	}
	seq.ID = id
	seq.Description = description
	return seq, nil
}

// Len returns the number of bases.
func (s *Sequence) Len() int {
	return len(s.Bases)
}

// Header returns the identifier followed by the description, space separated.
func (s *Sequence) Header() string {
	if s.Description != "" {
		return s.ID + " " + s.Description
	}
	return s.ID
}

// BaseAt returns the base at index, or false if out of bounds.
func (s *Sequence) BaseAt(index int) (byte, bool) {
	if index < 0 || index >= len(s.Bases) {
		return 0, false
	}
	return s.Bases[index], true
}

// Subsequence returns the half-open slice [start, end) as a new sequence.
func (s *Sequence) Subsequence(start, end int) (*Sequence, error) {
	if start < 0 {
		return nil, fmt.Errorf("start index must be non-negative")
	}
	if end <= start {
		return nil, fmt.Errorf("end must be greater than start")
	}
	if end > len(s.Bases) {
		return nil, fmt.Errorf("end must not exceed sequence length")
	}

	return &Sequence{
		Bases:       s.Bases[start:end],
		ID:          s.ID,
		Description: s.Description,
	}, nil
}

// Complement returns the IUPAC complement of a single base, preserving case.
// U complements to A; the reverse direction maps A back to T.
func Complement(c byte) (byte, error) {
	lower := c&0x20 != 0
	var out byte
	switch c &^ 0x20 {
	case 'A':
		out = 'T'
	case 'T':
		out = 'A'
	case 'U':
		out = 'A'
	case 'C':
		out = 'G'
	case 'G':
		out = 'C'
	case 'B':
		out = 'V'
	case 'V':
		out = 'B'
	case 'D':
		out = 'H'
	case 'H':
		out = 'D'
	case 'M':
		out = 'K'
	case 'K':
		out = 'M'
	case 'R':
		out = 'Y'
	case 'Y':
		out = 'R'
	case 'S':
		out = 'S'
	case 'W':
		out = 'W'
	case 'N':
		out = 'N'
	default:
		return 0, &InvalidSymbolError{Position: -1, Symbol: c}
	}
	if lower {
		out |= 0x20
	}
	return out, nil
}

// Complement returns the base-wise complement of the sequence.
func (s *Sequence) Complement() (*Sequence, error) {
	comp := make([]byte, len(s.Bases))
	for i := 0; i < len(s.Bases); i++ {
		c, err := Complement(s.Bases[i])
		if err != nil {
			return nil, &InvalidSymbolError{Position: i, Symbol: s.Bases[i]}
		}
		comp[i] = c
	}

	return &Sequence{
		Bases:       string(comp),
		ID:          s.ID,
		Description: s.Description,
	}, nil
}

// Reverse returns the sequence with base order reversed.
func (s *Sequence) Reverse() *Sequence {
	b := []byte(s.Bases)
	n := len(b)
	for i := 0; i < n/2; i++ {
		b[i], b[n-1-i] = b[n-1-i], b[i]
	}

	return &Sequence{
		Bases:       string(b),
		ID:          s.ID,
		Description: s.Description,
	}
}

// ReverseComplement returns the reverse complement of the sequence.
func (s *Sequence) ReverseComplement() (*Sequence, error) {
	comp, err := s.Complement()
	if err != nil {
		return nil, err
	}
	return comp.Reverse(), nil
}

// ToFASTA renders the sequence as a FASTA record with 80-column wrapping.
func (s *Sequence) ToFASTA() string {
	var header string
	if s.ID != "" {
		header = ">" + s.Header()
	} else {
		header = ">sequence"
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteByte('\n')

	for i := 0; i < len(s.Bases); i += 80 {
		end := i + 80
		if end > len(s.Bases) {
			end = len(s.Bases)
		}
		sb.WriteString(s.Bases[i:end])
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String returns the FASTA-style representation for identified sequences,
// otherwise the raw bases.
func (s *Sequence) String() string {
	if s.ID != "" {
		return fmt.Sprintf(">%s\n%s", s.ID, s.Bases)
	}
	return s.Bases
}

// Equal reports whether two sequences carry the same bases.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil {
		return false
	}
	return s.Bases == other.Bases
}
