package storage

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ScoreStats summarizes the score distribution of a set of runs.
type ScoreStats struct {
	Count  int
	Best   int
	Worst  int
	Mean   float64
	StdDev float64 // Sample standard deviation, 0 for fewer than two runs
	Median float64
}

// ComputeStats summarizes runs. An empty slice yields zero stats.
func ComputeStats(runs []RunEntry) ScoreStats {
	if len(runs) == 0 {
		return ScoreStats{}
	}

	scores := make([]float64, len(runs))
	for i, r := range runs {
		scores[i] = float64(r.Score)
	}
	sort.Float64s(scores)

	st := ScoreStats{
		Count:  len(scores),
		Worst:  int(scores[0]),
		Best:   int(scores[len(scores)-1]),
		Mean:   stat.Mean(scores, nil),
		Median: median(scores),
	}
	if len(scores) > 1 {
		st.StdDev = stat.StdDev(scores, nil)
	}
	return st
}

// median averages the two middle values of an even-length sorted slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return stat.Quantile(0.5, stat.Empirical, sorted, nil)
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
