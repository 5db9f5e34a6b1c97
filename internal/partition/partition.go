package partition

import (
	"github.com/hupe1980/wordcount/internal/simd"
)

// MinPartitionBytes is the smallest range worth a dedicated worker. Plan
// reduces the worker count so that ranges are at least this large.
const MinPartitionBytes = 4 << 10

// WorkUnit is one worker's half-open byte range [Start, End).
type WorkUnit struct {
	ID    int
	Start int
	End   int
}

// Len returns the number of bytes in the unit.
func (u WorkUnit) Len() int { return u.End - u.Start }

// Cuts returns n+1 cut points for data: cuts[0] is 0, cuts[n] is len(data)
// and every interior cut is the first non-letter at or after i*len(data)/n.
// Cuts are non-decreasing; adjacent equal cuts describe empty ranges.
func Cuts(data []byte, n int) []int {
	n = max(n, 1)
	l := len(data)

	cuts := make([]int, n+1)
	cuts[n] = l
	for i := 1; i < n; i++ {
		c := max(i*l/n, cuts[i-1])
		for c < l && simd.IsLetter(data[c]) {
			c++
		}
		cuts[i] = c
	}
	return cuts
}

// Workers returns the worker count Plan uses for an input of size bytes when
// n workers are requested.
func Workers(size, n int) int {
	n = max(n, 1)
	return max(1, min(n, size/MinPartitionBytes))
}

// Plan splits data into at most n non-empty work units. Fewer units are
// returned for small inputs, and none for empty input.
func Plan(data []byte, n int) []WorkUnit {
	if len(data) == 0 {
		return nil
	}
	cuts := Cuts(data, Workers(len(data), n))

	units := make([]WorkUnit, 0, len(cuts)-1)
	for i := 1; i < len(cuts); i++ {
		if cuts[i] == cuts[i-1] {
			continue
		}
		units = append(units, WorkUnit{ID: len(units), Start: cuts[i-1], End: cuts[i]})
	}
	return units
}
