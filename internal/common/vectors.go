package common

import "math"

// NormalizeL2 scales the vector to unit euclidean length in place and
// reports whether normalization was possible. Zero and empty vectors are
// left untouched.
func NormalizeL2(v []float64) bool {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return false
	}

	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
	return true
}

// Dot calculates the inner product of two vectors and returns the score
// along with a boolean indicating if the calculation was possible. For
// unit-length vectors the inner product equals the cosine similarity.
func Dot(a, b []float64) (float64, bool) {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0, false
	}

	var dotProduct float64
	for i := range a {
		dotProduct += a[i] * b[i]
	}
	return dotProduct, true
}
