package sequence

import "math"

// ratioUnityEpsilon bounds the geometric sum's r = 1 branch: ratios closer to
// one than this are summed as n × a₁ instead of dividing by (1 - r).
const ratioUnityEpsilon = 1e-10

// unstableRatioEpsilon marks the band where the closed-form geometric sum is
// still computed with (1 - r) in the denominator but cancellation error can
// make it diverge from direct addition.
const unstableRatioEpsilon = 1e-6

// GenerateArithmetic returns the first n terms of the arithmetic sequence
// with the given first term and common difference. Term i (0-indexed) is
// firstTerm + i × commonDiff. A non-positive n yields an empty sequence.
func GenerateArithmetic(firstTerm, commonDiff float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	terms := make([]float64, n)
	for i := range terms {
		terms[i] = firstTerm + float64(i)*commonDiff
	}

	return terms
}

// GenerateGeometric returns the first n terms of the geometric sequence with
// the given first term and common ratio. Term i is firstTerm × ratio^i, with
// 0^0 = 1, so the first term is always firstTerm itself. A non-positive n
// yields an empty sequence.
func GenerateGeometric(firstTerm, commonRatio float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	terms := make([]float64, n)
	for i := range terms {
		terms[i] = firstTerm * math.Pow(commonRatio, float64(i))
	}

	return terms
}

// SumArithmetic returns the closed-form sum of the first n arithmetic terms:
// Sₙ = n/2 × (2a₁ + (n-1)d). A non-positive n yields zero.
func SumArithmetic(firstTerm, commonDiff float64, n int) float64 {
	if n <= 0 {
		return 0
	}

	return float64(n) / 2 * (2*firstTerm + float64(n-1)*commonDiff)
}

// SumGeometric returns the closed-form sum of the first n geometric terms:
// Sₙ = a₁ × (1 - rⁿ) / (1 - r), or n × a₁ when the ratio is effectively one.
// A non-positive n yields zero.
func SumGeometric(firstTerm, commonRatio float64, n int) float64 {
	if n <= 0 {
		return 0
	}

	if math.Abs(commonRatio-1) < ratioUnityEpsilon {
		return float64(n) * firstTerm
	}

	return firstTerm * (1 - math.Pow(commonRatio, float64(n))) / (1 - commonRatio)
}

// SumTerms adds the terms directly. Callers cross-check this against the
// closed-form sum.
func SumTerms(terms []float64) float64 {
	var sum float64
	for _, t := range terms {
		sum += t
	}
	return sum
}

// NearUnity reports whether a geometric ratio falls in the band where the
// closed-form sum divides by a tiny (1 - r) and loses precision: too far from
// one for the r = 1 branch, too close for the division to be well-conditioned.
func NearUnity(ratio float64) bool {
	d := math.Abs(ratio - 1)
	return d >= ratioUnityEpsilon && d < unstableRatioEpsilon
}
