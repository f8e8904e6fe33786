package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// sectionWidth is the number of alignment columns shown per section.
const sectionWidth = 50

const rundateLayout = "Mon Jan 02 15:04:05 2006"

// PairWriter renders pair-wise sequence alignment blocks in the EMBOSS
// water report style. One block is written per alignment.
type PairWriter struct {
	Program string
	Matrix  string
	Rundate time.Time
}

// WriteBlock formats one alignment as a pair-wise report block. Sequence 1
// is the read, sequence 2 the query; both are named by the first
// space-delimited token of their headers.
func (pw *PairWriter) WriteBlock(w io.Writer, row Row) error {
	readID := firstToken(row.ReadHeader)
	queryID := firstToken(row.QueryHeader)

	width := len(readID)
	if len(queryID) > width {
		width = len(queryID)
	}

	length := row.Length()

	hashes := strings.Repeat("#", 40)
	equals := "#" + strings.Repeat("=", 39)
	dashes := "#" + strings.Repeat("-", 39)

	var b strings.Builder
	b.WriteString(hashes)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "# Program:  %s\n", pw.Program)
	fmt.Fprintf(&b, "# Rundate:  %s\n", pw.Rundate.Format(rundateLayout))
	b.WriteString("# Report_file: stdout\n")
	b.WriteString(hashes)
	b.WriteByte('\n')
	b.WriteString(equals)
	b.WriteByte('\n')
	b.WriteString("#\n")
	b.WriteString("# Aligned_sequences: 2\n")
	fmt.Fprintf(&b, "# 1: %s\n", readID)
	fmt.Fprintf(&b, "# 2: %s\n", queryID)
	fmt.Fprintf(&b, "# Matrix: %s\n", pw.Matrix)
	fmt.Fprintf(&b, "# Gap_penalty: %d.0\n", row.GapPenalty)
	fmt.Fprintf(&b, "# Extend_penalty: %d.0\n", row.GapPenalty)
	b.WriteString("#\n")
	fmt.Fprintf(&b, "# Length: %d\n", length)
	fmt.Fprintf(&b, "# Identity:   %20d/%d (%.1f%%)\n", row.Stats.Identical, length, percent(row.Stats.Identical, length))
	fmt.Fprintf(&b, "# Similarity: %20d/%d (%.1f%%)\n", row.Stats.Identical, length, percent(row.Stats.Identical, length))
	fmt.Fprintf(&b, "# Gaps:       %20d/%d (%.1f%%)\n", row.Stats.Gaps(), length, percent(row.Stats.Gaps(), length))
	fmt.Fprintf(&b, "# Mismatches: %20d/%d (%.1f%%)\n", row.Stats.Mismatches, length, percent(row.Stats.Mismatches, length))
	fmt.Fprintf(&b, "# Score: %d\n", row.Score)
	b.WriteString("#\n")
	b.WriteString("#\n")
	b.WriteString(equals)
	b.WriteByte('\n')

	// Residue counters are 1-based and skip gap columns. A side whose
	// section holds no residues repeats its previous counter.
	prevQuery := 0
	prevRead := 0
	for offset := 0; offset < length; offset += sectionWidth {
		end := offset + sectionWidth
		if end > length {
			end = length
		}
		querySegment := row.AlignedQuery[offset:end]
		readSegment := row.AlignedRead[offset:end]

		currentQuery := prevQuery + countResidues(querySegment)
		currentRead := prevRead + countResidues(readSegment)

		startQuery := prevQuery
		if currentQuery > prevQuery {
			startQuery = prevQuery + 1
		}
		startRead := prevRead
		if currentRead > prevRead {
			startRead = prevRead + 1
		}

		b.WriteString("\n\n")
		fmt.Fprintf(&b, "%-*s %20d %s %20d\n", width, readID, startRead, readSegment, currentRead)
		b.WriteString(strings.Repeat(" ", width+22))
		b.WriteString(matchLine(querySegment, readSegment))
		b.WriteByte('\n')
		fmt.Fprintf(&b, "%-*s %20d %s %20d\n", width, queryID, startQuery, querySegment, currentQuery)

		prevQuery = currentQuery
		prevRead = currentRead
	}

	b.WriteString("\n\n")
	b.WriteString(dashes)
	b.WriteByte('\n')
	b.WriteString(dashes)
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

func countResidues(segment string) int {
	n := 0
	for i := 0; i < len(segment); i++ {
		if segment[i] != '-' {
			n++
		}
	}
	return n
}

// matchLine marks columns where both sides carry the same base with '|'.
// Columns where both sides are gaps stay blank.
func matchLine(querySegment, readSegment string) string {
	marks := make([]byte, len(querySegment))
	for i := range marks {
		if querySegment[i] == readSegment[i] && querySegment[i] != '-' {
			marks[i] = '|'
		} else {
			marks[i] = ' '
		}
	}
	return string(marks)
}

func firstToken(header string) string {
	if i := strings.IndexByte(header, ' '); i >= 0 {
		return header[:i]
	}
	return header
}
