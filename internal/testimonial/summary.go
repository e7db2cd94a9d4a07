package testimonial

import "github.com/shopspring/decimal"

// buildSummary turns per-rating counts into a Summary. The average is rounded to two places.
func buildSummary(counts map[int]int) *Summary {
	s := &Summary{Histogram: make(map[int]int, MaxRating)}

	var sum int64
	for r := MinRating; r <= MaxRating; r++ {
		n := counts[r]
		s.Histogram[r] = n
		s.Count += n
		sum += int64(r * n)
	}

	if s.Count > 0 {
		s.Average = decimal.NewFromInt(sum).
			DivRound(decimal.NewFromInt(int64(s.Count)), 2).
			InexactFloat64()
	}
	return s
}
