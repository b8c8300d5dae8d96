package diversity

import (
	"fmt"
	"math"
)

// validateCounts checks that counts is a well-formed abundance matrix: at
// least one row, all rows the same length, and every entry finite and
// non-negative. If ids is non-nil it must hold one unique identifier per row.
func validateCounts(counts [][]float64, ids []string) error {
	if len(counts) == 0 {
		return fmt.Errorf("%w: counts must contain at least one sample", ErrInvalidInput)
	}
	width := len(counts[0])
	if width == 0 {
		return fmt.Errorf("%w: counts must contain at least one feature", ErrInvalidInput)
	}
	for i, row := range counts {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d features, row 0 has %d", ErrInvalidInput, i, len(row), width)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: counts[%d][%d] is not finite", ErrInvalidInput, i, j)
			}
			if v < 0 {
				return fmt.Errorf("%w: counts[%d][%d] is negative (%v)", ErrInvalidInput, i, j, v)
			}
		}
	}
	if ids != nil {
		if len(ids) != len(counts) {
			return fmt.Errorf("%w: %d ids for %d samples", ErrInvalidInput, len(ids), len(counts))
		}
		seen := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				return fmt.Errorf("%w: duplicate sample id %q", ErrInvalidInput, id)
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}

// defaultIDs assigns positional identifiers "0".."n-1" when the caller did
// not provide any.
func defaultIDs(ids []string, n int) []string {
	if ids != nil {
		return ids
	}
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%d", i)
	}
	return out
}
