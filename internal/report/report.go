// Package report renders alignment results as tab separated rows or
// pair-wise sequence alignment blocks.
package report

import (
	"fmt"

	"github.com/gqss-bio/gqss-go/internal/alignment"
	"github.com/gqss-bio/gqss-go/internal/quality"
)

// ReverseComplementPrefix marks rows and blocks produced by aligning the
// reverse complement of the query. Callers prepend it to the query header.
const ReverseComplementPrefix = "Reverse_Complement_"

// Row is one alignment record destined for an output writer. QueryHeader and
// ReadHeader carry the full header lines without their '>' and '@' markers.
type Row struct {
	QueryHeader  string
	ReadHeader   string
	Score        int64
	GapPenalty   int64
	AlignedQuery string
	AlignedRead  string
	Quality      string
	Stats        alignment.Stats
}

// Length returns the number of columns in the aligned region.
func (r Row) Length() int {
	return len(r.AlignedQuery)
}

// BuildRow assembles a Row from an alignment result and the read's base
// qualities. The quality column covers the aligned span of the read; it is
// empty when no cell scored above zero or when no qualities were supplied.
func BuildRow(queryHeader, readHeader string, res *alignment.Result, qual quality.Phred, gapPenalty int64) (Row, error) {
	stats, err := alignment.CountStats(res.AlignedX, res.AlignedY)
	if err != nil {
		return Row{}, err
	}

	row := Row{
		QueryHeader:  queryHeader,
		ReadHeader:   readHeader,
		Score:        res.Score,
		GapPenalty:   gapPenalty,
		AlignedQuery: res.AlignedX,
		AlignedRead:  res.AlignedY,
		Stats:        stats,
	}

	if !res.Empty() && qual.Len() > 0 {
		sliced, err := qual.Slice(res.StartY, res.StopY)
		if err != nil {
			return Row{}, fmt.Errorf("slicing base qualities: %w", err)
		}
		row.Quality = string(sliced)
	}
	return row, nil
}
