// Package quality handles Phred+33 base quality strings from FASTQ reads.
//
// Phred scores are logarithmically related to base-calling error
// probabilities (Q = -10 * log10(P_error)). Quality travels through the
// aligner as the raw encoded string and is sliced by alignment coordinates;
// numeric scores are decoded only where a summary needs them.
package quality

import (
	"fmt"
	"math"
)

// Phred33Offset is the ASCII offset of the Phred+33 encoding.
const Phred33Offset = 33

// QualityError is the base error type for quality string operations.
type QualityError interface {
	error
	IsQualityError()
}

// InvalidEncodingError is returned when a quality byte falls outside the
// printable Phred+33 range.
type InvalidEncodingError struct {
	Position int
	Char     byte
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid quality character %q at position %d", e.Char, e.Position)
}

func (e *InvalidEncodingError) IsQualityError() {}

// OutOfRangeError is returned when a slice range does not fit the string.
type OutOfRangeError struct {
	Start int
	Stop  int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("quality range [%d, %d] out of range for length %d", e.Start, e.Stop, e.Len)
}

func (e *OutOfRangeError) IsQualityError() {}

// Phred is a Phred+33 encoded quality string, one byte per base.
type Phred string

// New validates an encoded quality string.
func New(encoded string) (Phred, error) {
	p := Phred(encoded)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate checks that every byte is printable ASCII at or above the
// Phred+33 offset. The upper bound is the printable range rather than a
// platform's maximum score, so reads from newer instruments pass through
// unchanged.
func (p Phred) Validate() error {
	for i := 0; i < len(p); i++ {
		if p[i] < Phred33Offset || p[i] > '~' {
			return &InvalidEncodingError{Position: i, Char: p[i]}
		}
	}
	return nil
}

// Len returns the number of quality characters.
func (p Phred) Len() int {
	return len(p)
}

// ScoreAt returns the decoded score at a position, or false if out of
// bounds.
func (p Phred) ScoreAt(index int) (int, bool) {
	if index < 0 || index >= len(p) {
		return 0, false
	}
	return int(p[index]) - Phred33Offset, true
}

// Slice returns the characters from start through stop, both inclusive,
// mirroring the inclusive coordinate ranges alignments carry.
func (p Phred) Slice(start, stop int) (Phred, error) {
	if start < 0 || stop < start || stop >= len(p) {
		return "", &OutOfRangeError{Start: start, Stop: stop, Len: len(p)}
	}
	return p[start : stop+1], nil
}

// Mean returns the average decoded score, zero for an empty string.
func (p Phred) Mean() float64 {
	if len(p) == 0 {
		return 0
	}
	sum := 0
	for i := 0; i < len(p); i++ {
		sum += int(p[i]) - Phred33Offset
	}
	return float64(sum) / float64(len(p))
}

// Min returns the lowest decoded score, zero for an empty string.
func (p Phred) Min() int {
	if len(p) == 0 {
		return 0
	}
	min := int(p[0]) - Phred33Offset
	for i := 1; i < len(p); i++ {
		if q := int(p[i]) - Phred33Offset; q < min {
			min = q
		}
	}
	return min
}

// ErrorProbability converts a decoded score to its base-calling error
// probability.
func ErrorProbability(score int) float64 {
	return math.Pow(10.0, float64(-score)/10.0)
}
