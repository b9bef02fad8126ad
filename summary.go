package main

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary accumulates per-round elapsed times, in seconds, for one
// scenario.
type Summary struct {
	Scenario string
	Rounds   []float64
}

func (s *Summary) Add(r Result) {
	s.Rounds = append(s.Rounds, r.Elapsed.Seconds())
}

func (s *Summary) Min() float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	min := s.Rounds[0]
	for _, v := range s.Rounds[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func (s *Summary) Mean() float64 {
	return stat.Mean(s.Rounds, nil)
}

func (s *Summary) Median() float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Rounds))
	copy(sorted, s.Rounds)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

func (s *Summary) StdDev() float64 {
	return stat.StdDev(s.Rounds, nil)
}
