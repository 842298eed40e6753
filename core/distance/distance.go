// core/distance/distance.go
package distance

// Levenshtein returns the exact unit-cost edit distance between a and b:
// the minimum number of single-symbol insertions, deletions, and
// substitutions transforming one into the other.
func Levenshtein(a, b []byte) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}

	prev := make([]int, la+1)
	cur := make([]int, la+1)
	for j := 0; j <= la; j++ {
		prev[j] = j
	}
	for i := 1; i <= lb; i++ {
		cur[0] = i
		for j := 1; j <= la; j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			d := prev[j-1] + cost
			if up := prev[j] + 1; up < d {
				d = up
			}
			if left := cur[j-1] + 1; left < d {
				d = left
			}
			cur[j] = d
		}
		prev, cur = cur, prev
	}
	return prev[la]
}

// Bounded computes the edit distance between a and b under a cap. When the
// true distance is <= limit it returns (distance, true); otherwise it
// returns (limit+1, false), abandoning the computation as soon as the cap is
// provably exceeded. Only cells within limit of the diagonal are evaluated,
// so the cost is O(limit * max(len)) instead of O(len(a)*len(b)).
func Bounded(a, b []byte, limit int) (int, bool) {
	if limit < 0 {
		return 0, false
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	la, lb := len(a), len(b)
	if lb-la > limit {
		return limit + 1, false
	}
	if la == 0 {
		return lb, true // lb <= limit by the length gate above
	}

	prev := make([]int, la+1)
	cur := make([]int, la+1)
	for j := 0; j <= la; j++ {
		prev[j] = j
	}
	for i := 1; i <= lb; i++ {
		lo := i - limit
		if lo < 1 {
			lo = 1
		}
		hi := i + limit
		if hi > la {
			hi = la
		}
		cur[0] = i
		for j := 1; j < lo; j++ {
			cur[j] = limit + 1
		}
		rowMin := limit + 1
		for j := lo; j <= hi; j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			d := prev[j-1] + cost
			if up := prev[j] + 1; up < d {
				d = up
			}
			if left := cur[j-1] + 1; left < d {
				d = left
			}
			cur[j] = d
			if d < rowMin {
				rowMin = d
			}
		}
		for j := hi + 1; j <= la; j++ {
			cur[j] = limit + 1
		}
		if rowMin > limit {
			return limit + 1, false
		}
		prev, cur = cur, prev
	}
	if d := prev[la]; d <= limit {
		return d, true
	}
	return limit + 1, false
}
