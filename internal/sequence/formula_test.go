package sequence

import (
	"strings"
	"testing"
)

func TestFormula(t *testing.T) {
	tests := []struct {
		name      string
		kind      string
		firstTerm float64
		step      float64
		want      string
	}{
		{name: "arithmetic", kind: KindArithmetic, firstTerm: 2, step: 3, want: "aₙ = 2 + (n-1) × 3"},
		{name: "geometric", kind: KindGeometric, firstTerm: 1, step: 0.5, want: "aₙ = 1 × 0.5^(n-1)"},
		{name: "negative difference", kind: KindArithmetic, firstTerm: 10, step: -3, want: "aₙ = 10 + (n-1) × -3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Formula(tc.kind, tc.firstTerm, tc.step); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestSumFormula(t *testing.T) {
	if got := SumFormula(KindArithmetic, 3); got != "Sₙ = n/2 × (2a₁ + (n-1)d)" {
		t.Fatalf("unexpected arithmetic sum formula: %q", got)
	}
	if got := SumFormula(KindGeometric, 2); got != "Sₙ = a₁(1-rⁿ)/(1-r)" {
		t.Fatalf("unexpected geometric sum formula: %q", got)
	}
	if got := SumFormula(KindGeometric, 1); got != "Sₙ = n × a₁ (when r = 1)" {
		t.Fatalf("unexpected unit-ratio sum formula: %q", got)
	}
}

func TestDerivationShowsEveryTermForShortSequences(t *testing.T) {
	terms := GenerateArithmetic(10, -3, 4)
	lines := Derivation(KindArithmetic, 10, -3, terms)

	want := []string{
		"a1 = 10",
		"a2 = 10 + 1 × -3 = 7",
		"a3 = 10 + 2 × -3 = 4",
		"a4 = 10 + 3 × -3 = 1",
	}

	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestDerivationGeometricLines(t *testing.T) {
	terms := GenerateGeometric(1, 3, 4)
	lines := Derivation(KindGeometric, 1, 3, terms)

	want := []string{
		"a1 = 1",
		"a2 = 1 × 3^1 = 3",
		"a3 = 1 × 3^2 = 9",
		"a4 = 1 × 3^3 = 27",
	}

	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestDerivationTruncatesLongSequences(t *testing.T) {
	terms := GenerateArithmetic(1, 1, 25)
	lines := Derivation(KindArithmetic, 1, 1, terms)

	// 10 worked terms + truncation marker + last term.
	if len(lines) != 12 {
		t.Fatalf("expected 12 lines, got %d: %v", len(lines), lines)
	}

	if lines[10] != "... (showing first 10 terms)" {
		t.Fatalf("expected truncation marker, got %q", lines[10])
	}

	last := lines[11]
	if !strings.HasPrefix(last, "a25 = ") || !strings.HasSuffix(last, "= 25") {
		t.Fatalf("expected final line for a25, got %q", last)
	}
}

func TestDerivationEmptyForNoTerms(t *testing.T) {
	if lines := Derivation(KindArithmetic, 1, 1, nil); lines != nil {
		t.Fatalf("expected no lines, got %v", lines)
	}
}

func TestSumStepsArithmetic(t *testing.T) {
	steps := SumSteps(KindArithmetic, 2, 2, 5)

	want := []string{
		"S5 = 5/2 × (2×2 + (5-1)×2)",
		"S5 = 5/2 × (4 + 8)",
		"S5 = 5/2 × 12",
		"S5 = 30",
	}

	if len(steps) != len(want) {
		t.Fatalf("expected %d steps, got %d: %v", len(want), len(steps), steps)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("step %d: expected %q, got %q", i, want[i], steps[i])
		}
	}
}

func TestSumStepsGeometric(t *testing.T) {
	steps := SumSteps(KindGeometric, 1, 3, 4)

	want := []string{
		"S4 = 1 × (1 - 3^4) / (1 - 3)",
		"S4 = 1 × (1 - 81) / (-2)",
		"S4 = 1 × (-80) / (-2)",
		"S4 = 40",
	}

	if len(steps) != len(want) {
		t.Fatalf("expected %d steps, got %d: %v", len(want), len(steps), steps)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("step %d: expected %q, got %q", i, want[i], steps[i])
		}
	}
}

func TestSumStepsGeometricUnitRatio(t *testing.T) {
	steps := SumSteps(KindGeometric, 5, 1, 4)

	want := []string{
		"since r = 1, every term equals a1 = 5",
		"S4 = 4 × 5 = 20",
	}

	if len(steps) != len(want) {
		t.Fatalf("expected %d steps, got %d: %v", len(want), len(steps), steps)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("step %d: expected %q, got %q", i, want[i], steps[i])
		}
	}
}

func TestSumStepsEmptyForNonPositiveCount(t *testing.T) {
	if steps := SumSteps(KindArithmetic, 1, 1, 0); steps != nil {
		t.Fatalf("expected no steps, got %v", steps)
	}
}
