package sequence

import (
	"fmt"
	"math"
)

// derivationLimit caps the per-term worked lines; longer sequences get a
// truncation marker plus a final line for the last term.
const derivationLimit = 10

// Formula returns the nth-term formula with the request's values substituted.
func Formula(kind string, firstTerm, step float64) string {
	if kind == KindGeometric {
		return fmt.Sprintf("aₙ = %g × %g^(n-1)", firstTerm, step)
	}
	return fmt.Sprintf("aₙ = %g + (n-1) × %g", firstTerm, step)
}

// SumFormula returns the closed-form series formula the engine applies,
// including the unity branch for geometric ratios effectively equal to one.
func SumFormula(kind string, step float64) string {
	if kind == KindGeometric {
		if math.Abs(step-1) < ratioUnityEpsilon {
			return "Sₙ = n × a₁ (when r = 1)"
		}
		return "Sₙ = a₁(1-rⁿ)/(1-r)"
	}
	return "Sₙ = n/2 × (2a₁ + (n-1)d)"
}

// Derivation returns worked lines showing how each term is computed, capped
// at derivationLimit terms.
func Derivation(kind string, firstTerm, step float64, terms []float64) []string {
	if len(terms) == 0 {
		return nil
	}

	shown := len(terms)
	if shown > derivationLimit {
		shown = derivationLimit
	}

	lines := make([]string, 0, shown+2)
	lines = append(lines, fmt.Sprintf("a1 = %g", terms[0]))
	for i := 1; i < shown; i++ {
		lines = append(lines, termLine(kind, firstTerm, step, i, terms[i]))
	}

	if len(terms) > shown {
		last := len(terms) - 1
		lines = append(lines,
			fmt.Sprintf("... (showing first %d terms)", shown),
			termLine(kind, firstTerm, step, last, terms[last]),
		)
	}

	return lines
}

func termLine(kind string, firstTerm, step float64, i int, value float64) string {
	if kind == KindGeometric {
		return fmt.Sprintf("a%d = %g × %g^%d = %g", i+1, firstTerm, step, i, value)
	}
	return fmt.Sprintf("a%d = %g + %d × %g = %g", i+1, firstTerm, i, step, value)
}

// SumSteps returns the step-by-step substitution of the closed-form sum
// formula, one line per simplification.
func SumSteps(kind string, firstTerm, step float64, n int) []string {
	if n <= 0 {
		return nil
	}

	if kind == KindGeometric {
		return geometricSumSteps(firstTerm, step, n)
	}
	return arithmeticSumSteps(firstTerm, step, n)
}

func arithmeticSumSteps(a, d float64, n int) []string {
	inner := 2*a + float64(n-1)*d
	return []string{
		fmt.Sprintf("S%d = %d/2 × (2×%g + (%d-1)×%g)", n, n, a, n, d),
		fmt.Sprintf("S%d = %d/2 × (%g + %g)", n, n, 2*a, float64(n-1)*d),
		fmt.Sprintf("S%d = %d/2 × %g", n, n, inner),
		fmt.Sprintf("S%d = %g", n, float64(n)*inner/2),
	}
}

func geometricSumSteps(a, r float64, n int) []string {
	if math.Abs(r-1) < ratioUnityEpsilon {
		return []string{
			fmt.Sprintf("since r = 1, every term equals a1 = %g", a),
			fmt.Sprintf("S%d = %d × %g = %g", n, n, a, float64(n)*a),
		}
	}

	rn := math.Pow(r, float64(n))
	return []string{
		fmt.Sprintf("S%d = %g × (1 - %g^%d) / (1 - %g)", n, a, r, n, r),
		fmt.Sprintf("S%d = %g × (1 - %g) / (%g)", n, a, rn, 1-r),
		fmt.Sprintf("S%d = %g × (%g) / (%g)", n, a, 1-rn, 1-r),
		fmt.Sprintf("S%d = %g", n, a*(1-rn)/(1-r)),
	}
}
