package gonumstats

import "sort"

// ranks converts values to 1-based ranks, assigning tied values the average
// of the ranks they span. This is the fractional ranking Spearman's rho is
// defined over.
func ranks(data []float64) []float64 {
	n := len(data)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return data[idx[a]] < data[idx[b]] })

	out := make([]float64, n)
	for i := 0; i < n; {
		j := i + 1
		for j < n && data[idx[j]] == data[idx[i]] {
			j++
		}
		// Ranks i+1..j average to (i+j+1)/2.
		avg := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			out[idx[k]] = avg
		}
		i = j
	}
	return out
}

// tiedPairs counts the pairs lost to ties: sum over tie groups of t(t-1)/2.
func tiedPairs(data []float64) float64 {
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	var total float64
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		t := float64(j - i)
		total += t * (t - 1) / 2
		i = j
	}
	return total
}
