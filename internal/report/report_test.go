package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqss-bio/gqss-go/internal/alignment"
	"github.com/gqss-bio/gqss-go/internal/quality"
)

func spaces(n int) string {
	return strings.Repeat(" ", n)
}

func sampleRow() Row {
	return Row{
		QueryHeader:  "gene1 test query",
		ReadHeader:   "read1 lane=3",
		Score:        13,
		GapPenalty:   2,
		AlignedQuery: "GTTGAC",
		AlignedRead:  "GTT-AC",
		Quality:      "IIIII",
		Stats:        alignment.Stats{Identical: 5, GapsY: 1, Mismatches: 1},
	}
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSVHeader(&buf))
	require.NoError(t, WriteTSVRow(&buf, sampleRow()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, TSVHeader, lines[0])
	assert.Equal(t,
		"gene1 test query\tread1 lane=3\t13\t2\tNUC4.4\t6\t5\t1\t1\tGTTGAC\tGTT-AC\tIIIII",
		lines[1])
}

func TestWriteTSVRowEmptyAlignment(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSVRow(&buf, Row{QueryHeader: "q", ReadHeader: "r", GapPenalty: 16}))
	assert.Equal(t, "q\tr\t0\t16\tNUC4.4\t0\t0\t0\t0\t\t\t\n", buf.String())
}

func TestBuildRow(t *testing.T) {
	res := &alignment.Result{
		AlignedX: "GTTGAC",
		AlignedY: "GTT-AC",
		Score:    13,
		StartX:   1,
		StopX:    6,
		StartY:   1,
		StopY:    5,
	}

	row, err := BuildRow("gene1", "read1", res, quality.Phred("ABCDEFGH"), 2)
	require.NoError(t, err)
	assert.Equal(t, "BCDEF", row.Quality)
	assert.Equal(t, 5, row.Stats.Identical)
	assert.Equal(t, 1, row.Stats.GapsY)
	assert.Equal(t, 1, row.Stats.Mismatches)
	assert.Equal(t, 6, row.Length())
	assert.Equal(t, int64(13), row.Score)
}

func TestBuildRowEmptyResult(t *testing.T) {
	row, err := BuildRow("gene1", "read1", &alignment.Result{}, quality.Phred("IIII"), 16)
	require.NoError(t, err)
	assert.Equal(t, "", row.Quality)
	assert.Equal(t, 0, row.Length())
	assert.Equal(t, 0, row.Stats.Identical)
}

func TestPairWriterGolden(t *testing.T) {
	pw := &PairWriter{
		Program: "gqss",
		Matrix:  "NUC.4.4",
		Rundate: time.Date(2026, time.March, 5, 14, 30, 9, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, pw.WriteBlock(&buf, sampleRow()))

	hashRule := strings.Repeat("#", 40)
	eqRule := "#" + strings.Repeat("=", 39)
	dashRule := "#" + strings.Repeat("-", 39)

	want := strings.Join([]string{
		hashRule,
		"# Program:  gqss",
		"# Rundate:  Thu Mar 05 14:30:09 2026",
		"# Report_file: stdout",
		hashRule,
		eqRule,
		"#",
		"# Aligned_sequences: 2",
		"# 1: read1",
		"# 2: gene1",
		"# Matrix: NUC.4.4",
		"# Gap_penalty: 2.0",
		"# Extend_penalty: 2.0",
		"#",
		"# Length: 6",
		"# Identity:   " + spaces(19) + "5/6 (83.3%)",
		"# Similarity: " + spaces(19) + "5/6 (83.3%)",
		"# Gaps:       " + spaces(19) + "1/6 (16.7%)",
		"# Mismatches: " + spaces(19) + "1/6 (16.7%)",
		"# Score: 13",
		"#",
		"#",
		eqRule,
		"",
		"",
		"read1 " + spaces(19) + "1 GTT-AC " + spaces(19) + "5",
		spaces(27) + "||| ||",
		"gene1 " + spaces(19) + "1 GTTGAC " + spaces(19) + "6",
		"",
		"",
		dashRule,
		dashRule,
		"",
	}, "\n")

	assert.Equal(t, want, buf.String())
}

func TestPairWriterSections(t *testing.T) {
	pw := &PairWriter{Program: "gqss", Matrix: "NUC.4.4", Rundate: time.Unix(0, 0).UTC()}

	row := Row{
		QueryHeader:  "q1",
		ReadHeader:   "r1",
		Score:        100,
		GapPenalty:   16,
		AlignedQuery: strings.Repeat("A", 60),
		AlignedRead:  strings.Repeat("A", 50) + strings.Repeat("-", 10),
		Stats:        alignment.Stats{Identical: 50, GapsY: 10, Mismatches: 10},
	}

	var buf bytes.Buffer
	require.NoError(t, pw.WriteBlock(&buf, row))
	got := buf.String()

	assert.Contains(t, got, "r1 "+spaces(19)+"1 "+strings.Repeat("A", 50)+" "+spaces(18)+"50\n")
	assert.Contains(t, got, "q1 "+spaces(19)+"1 "+strings.Repeat("A", 50)+" "+spaces(18)+"50\n")
	assert.Contains(t, got, spaces(24)+strings.Repeat("|", 50)+"\n")

	// The read side has no residues in the second section, so its left
	// counter repeats instead of advancing.
	assert.Contains(t, got, "r1 "+spaces(18)+"50 "+strings.Repeat("-", 10)+" "+spaces(18)+"50\n")
	assert.Contains(t, got, "q1 "+spaces(18)+"51 "+strings.Repeat("A", 10)+" "+spaces(18)+"60\n")
}

func TestPairWriterEmptyAlignment(t *testing.T) {
	pw := &PairWriter{Program: "gqss", Matrix: "NUC.4.4", Rundate: time.Unix(0, 0).UTC()}

	var buf bytes.Buffer
	require.NoError(t, pw.WriteBlock(&buf, Row{QueryHeader: "q1", ReadHeader: "r1", GapPenalty: 16}))
	got := buf.String()

	assert.Contains(t, got, "# Length: 0\n")
	assert.Contains(t, got, "# Identity:   "+spaces(19)+"0/0 (0.0%)\n")

	eqRule := "#" + strings.Repeat("=", 39)
	dashRule := "#" + strings.Repeat("-", 39)
	assert.True(t, strings.HasSuffix(got, eqRule+"\n\n\n"+dashRule+"\n"+dashRule+"\n"))
}

func TestPairWriterReverseComplementName(t *testing.T) {
	row := sampleRow()
	row.QueryHeader = ReverseComplementPrefix + row.QueryHeader

	pw := &PairWriter{Program: "gqss", Matrix: "NUC.4.4", Rundate: time.Unix(0, 0).UTC()}
	var buf bytes.Buffer
	require.NoError(t, pw.WriteBlock(&buf, row))
	assert.Contains(t, buf.String(), "# 2: Reverse_Complement_gene1\n")
}
