package face

import "math"

// MatchThreshold is the largest descriptor distance, exclusive, accepted as
// the same face.
const MatchThreshold = 0.6

// mismatchDistance is reported for descriptors that cannot be compared.
const mismatchDistance = 1.0

// Distance returns the Euclidean distance between two face descriptors.
// Descriptors of different length, or empty ones, are maximally distant.
func Distance(stored, incoming []float64) float64 {
	if len(stored) == 0 || len(stored) != len(incoming) {
		return mismatchDistance
	}

	var sum float64
	for i := range stored {
		d := stored[i] - incoming[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

type Result struct {
	Match      bool
	Distance   float64
	Confidence float64
}

// Match compares two descriptors. Confidence is (1 - distance) * 100 rounded
// to two decimals.
func Match(stored, incoming []float64) Result {
	d := Distance(stored, incoming)
	return Result{
		Match:      d < MatchThreshold,
		Distance:   d,
		Confidence: math.Round((1-d)*100*100) / 100,
	}
}
