package report

import (
	"fmt"
	"io"
)

// TSVHeader is the canonical header row for TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "Reference Sequence Identifier\tSequence Identifier\tSmith-Waterman Score\tLinear Gap Penalty\tSubstitution Matrix\tAlignment Length\tAlignment Identities\tAlignment Gaps\tAlignment Mismatches\tReference Sequence Alignment\tSequence Alignment\tSequence Alignment Base Quality"

// tsvMatrixName is the historical spelling of the matrix name in the
// Substitution Matrix column. Pair output spells it NUC.4.4 instead.
const tsvMatrixName = "NUC4.4"

// WriteTSVHeader prints the column description row.
func WriteTSVHeader(w io.Writer) error {
	_, err := fmt.Fprintln(w, TSVHeader)
	return err
}

// WriteTSVRow prints one alignment as a tab separated row.
func WriteTSVRow(w io.Writer, row Row) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%d\t%d\t%d\t%d\t%s\t%s\t%s\n",
		row.QueryHeader,
		row.ReadHeader,
		row.Score,
		row.GapPenalty,
		tsvMatrixName,
		row.Length(),
		row.Stats.Identical,
		row.Stats.Gaps(),
		row.Stats.Mismatches,
		row.AlignedQuery,
		row.AlignedRead,
		row.Quality,
	)
	return err
}
