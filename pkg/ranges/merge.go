package ranges

import (
	"cmp"
	"slices"
)

// Merge returns the union of raw as the smallest sorted list of disjoint
// ranges. Overlapping and touching ranges (5-6 and 7-9) collapse into one.
// The input is not modified. Every input range must satisfy Start <= End.
func Merge(raw []Range) []Range {
	if len(raw) == 0 {
		return nil
	}

	sorted := slices.Clone(raw)
	slices.SortFunc(sorted, compare)

	merged := make([]Range, 0, len(sorted))
	cur := sorted[0]
	for _, r := range sorted[1:] {
		// Start-1 rather than End+1 so End == math.MaxInt cannot wrap.
		if r.Start-1 <= cur.End {
			cur.End = max(cur.End, r.End)
			continue
		}
		merged = append(merged, cur)
		cur = r
	}
	return append(merged, cur)
}

// IsCanonical reports whether rs is sorted, every range is well formed, and
// no two ranges overlap or touch.
func IsCanonical(rs []Range) bool {
	for i, r := range rs {
		if r.Start < 1 || r.Start > r.End {
			return false
		}
		if i > 0 && rs[i-1].End >= r.Start-1 {
			return false
		}
	}
	return true
}

func compare(a, b Range) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	return cmp.Compare(a.End, b.End)
}
