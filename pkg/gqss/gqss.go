// Package gqss provides a high-level API for searching genomic reads with
// the Smith-Waterman algorithm, a linear gap penalty and the EDNAFULL
// substitution matrix.
//
// Example usage:
//
//	query, err := gqss.NewSequence("GGTTGACTA")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	read, err := gqss.NewSequence("TGTTACGG")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := gqss.Align(query, read, gqss.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("score %d: %s / %s\n", res.Score, res.AlignedX, res.AlignedY)
package gqss

import (
	"fmt"
	"io"

	"github.com/gqss-bio/gqss-go/internal/alignment"
	"github.com/gqss-bio/gqss-go/internal/fastx"
	"github.com/gqss-bio/gqss-go/internal/quality"
	"github.com/gqss-bio/gqss-go/internal/sequence"
	"github.com/gqss-bio/gqss-go/internal/submat"
)

// Re-export types for convenience
type (
	Sequence    = sequence.Sequence
	Result      = alignment.Result
	Stats       = alignment.Stats
	Matrix      = alignment.Matrix
	Table       = submat.Table
	Scorer      = submat.Scorer
	Phred       = quality.Phred
	FastqRecord = fastx.FastqRecord
)

// DefaultGapPenalty is the linear gap penalty used when no other value is
// configured.
const DefaultGapPenalty int64 = 16

// Options configures an alignment run. The zero value means a gap penalty
// of zero; use DefaultOptions for the standard configuration.
type Options struct {
	GapPenalty int64
	Table      *Table
}

// DefaultOptions returns options with the EDNAFULL table and the default
// gap penalty.
func DefaultOptions() Options {
	return Options{
		GapPenalty: DefaultGapPenalty,
		Table:      submat.EDNAFULL(),
	}
}

func (o Options) scorer() Scorer {
	table := o.Table
	if table == nil {
		table = submat.EDNAFULL()
	}
	return table.Scorer()
}

// NewSequence creates a validated sequence.
func NewSequence(bases string) (*Sequence, error) {
	return sequence.New(bases)
}

// NewSequenceWithID creates a validated sequence with an identifier.
func NewSequenceWithID(bases, id string) (*Sequence, error) {
	return sequence.WithID(bases, id)
}

// EDNAFULL returns the built-in NUC.4.4 substitution table.
func EDNAFULL() *Table {
	return submat.EDNAFULL()
}

// NewPhred validates a Phred+33 encoded quality string.
func NewPhred(encoded string) (Phred, error) {
	return quality.New(encoded)
}

// ErrorProbability converts a Phred score to its base call error probability.
func ErrorProbability(score int) float64 {
	return quality.ErrorProbability(score)
}

// Align locally aligns the query against a read.
func Align(query, read *Sequence, opts Options) (*Result, error) {
	return alignment.Align(query.Bases, read.Bases, opts.scorer(), opts.GapPenalty)
}

// Score returns only the best local alignment score. It uses two matrix
// rows instead of the full grid.
func Score(query, read *Sequence, opts Options) (int64, error) {
	return alignment.ScoreOnly(query.Bases, read.Bases, opts.scorer(), opts.GapPenalty)
}

// AlignmentStats counts the identical, gap and mismatch columns of an
// alignment result.
func AlignmentStats(res *Result) (Stats, error) {
	return alignment.CountStats(res.AlignedX, res.AlignedY)
}

// SearchResult holds the alignments of both query orientations against one
// read.
type SearchResult struct {
	Forward *Result
	Reverse *Result
}

// Best returns the higher-scoring of the two orientations. Ties go to the
// forward orientation.
func (r *SearchResult) Best() *Result {
	if r.Reverse.Score > r.Forward.Score {
		return r.Reverse
	}
	return r.Forward
}

// Search aligns the query and its reverse complement against the read.
func Search(query, read *Sequence, opts Options) (*SearchResult, error) {
	forward, err := Align(query, read, opts)
	if err != nil {
		return nil, err
	}

	rc, err := query.ReverseComplement()
	if err != nil {
		return nil, fmt.Errorf("reverse complementing query: %w", err)
	}

	reverse, err := Align(rc, read, opts)
	if err != nil {
		return nil, err
	}

	return &SearchResult{Forward: forward, Reverse: reverse}, nil
}

// ReadQuery loads the first FASTA record from a query file.
func ReadQuery(path string) (*Sequence, error) {
	return fastx.ReadQuery(path)
}

// ReadFASTA reads all sequences from a FASTA file.
func ReadFASTA(path string) ([]*Sequence, error) {
	return fastx.ReadFASTA(path)
}

// ParseFASTA parses FASTA format from a reader.
func ParseFASTA(r io.Reader) ([]*Sequence, error) {
	return fastx.ParseFASTA(r)
}

// ReadFASTQ reads all records from a FASTQ file.
func ReadFASTQ(path string) ([]*FastqRecord, error) {
	return fastx.ReadFASTQ(path)
}

// ParseFASTQ parses FASTQ format from a reader.
func ParseFASTQ(r io.Reader) ([]*FastqRecord, error) {
	return fastx.ParseFASTQ(r)
}

// StreamFASTQ calls fn for each FASTQ record read from r without holding
// the whole file in memory.
func StreamFASTQ(r io.Reader, fn func(*FastqRecord) error) error {
	return fastx.StreamFASTQ(r, fn)
}

// Version returns the gqss version.
func Version() string {
	return "1.0.0"
}

// Info returns information about gqss.
func Info() string {
	return fmt.Sprintf(`gqss v%s - EDNAFULL Smith-Waterman read search

Local alignment of genomic reads against a query sequence with a linear
gap penalty and the EDNAFULL (NUC.4.4) substitution matrix.

Features:
  - IUPAC sequence handling with validation
  - Sequence complement and reverse complement
  - Smith-Waterman local alignment without border rows
  - Forward and reverse complement read search
  - Phred+33 base quality handling
  - FASTA query and streaming FASTQ parsing
  - Tab separated and pair-wise alignment reports
`, Version())
}
