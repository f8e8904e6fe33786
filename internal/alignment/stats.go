package alignment

import "fmt"

// Stats breaks a gapped alignment down by column type.
//
// A column with a gap on both sides counts toward both gap totals and the
// mismatch total, so Identical plus Mismatches always equals the alignment
// length while GapsX+GapsY can exceed the number of gap columns.
type Stats struct {
	Identical  int
	GapsX      int
	GapsY      int
	Mismatches int
}

// CountStats tallies the columns of an aligned pair. The strings must have
// equal length.
func CountStats(alignedX, alignedY string) (Stats, error) {
	var st Stats
	if len(alignedX) != len(alignedY) {
		return st, fmt.Errorf("aligned strings differ in length: %d vs %d", len(alignedX), len(alignedY))
	}

	for k := 0; k < len(alignedX); k++ {
		a, b := alignedX[k], alignedY[k]
		switch {
		case a == b && a != '-':
			st.Identical++
		case a == b:
			st.GapsX++
			st.GapsY++
			st.Mismatches++
		default:
			if a == '-' {
				st.GapsX++
			}
			if b == '-' {
				st.GapsY++
			}
			st.Mismatches++
		}
	}
	return st, nil
}

// Gaps returns the combined gap count across both rows.
func (s Stats) Gaps() int {
	return s.GapsX + s.GapsY
}

func (s Stats) String() string {
	return fmt.Sprintf("Stats { identical: %d, mismatches: %d, gaps: %d+%d }",
		s.Identical, s.Mismatches, s.GapsX, s.GapsY)
}
