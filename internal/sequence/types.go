package sequence

// Sequence kinds accepted by the API.
const (
	KindArithmetic = "arithmetic"
	KindGeometric  = "geometric"
)

// GenerateRequest is the JSON body for the sequence endpoints. Step carries
// the common difference for arithmetic sequences and the common ratio for
// geometric ones; only the interpretation matching Type exists.
type GenerateRequest struct {
	Type      string  `json:"type" validate:"required,oneof=arithmetic geometric"`
	FirstTerm float64 `json:"first_term"`
	Step      float64 `json:"step"`
	TermCount int     `json:"term_count" validate:"gte=1"`
}

// GenerateResponse is the JSON response for all sequence endpoints. Both sums
// are returned so callers can cross-check the closed form against direct
// addition.
type GenerateResponse struct {
	Type          string    `json:"type"`
	FirstTerm     float64   `json:"first_term"`
	Step          float64   `json:"step"`
	TermCount     int       `json:"term_count"`
	Terms         []float64 `json:"terms"`
	LastTerm      float64   `json:"last_term"`
	Formula       string    `json:"formula"`
	SumFormula    string    `json:"sum_formula"`
	SumByFormula  float64   `json:"sum_by_formula"`
	SumByAddition float64   `json:"sum_by_addition"`
	Derivation    []string  `json:"derivation"`
	SumSteps      []string  `json:"sum_steps"`
	PrecisionNote string    `json:"precision_note,omitempty"`
}

// Compute fills a complete response for an already validated request.
func Compute(req GenerateRequest) GenerateResponse {
	var terms []float64
	var closedForm float64

	switch req.Type {
	case KindGeometric:
		terms = GenerateGeometric(req.FirstTerm, req.Step, req.TermCount)
		closedForm = SumGeometric(req.FirstTerm, req.Step, req.TermCount)
	default:
		terms = GenerateArithmetic(req.FirstTerm, req.Step, req.TermCount)
		closedForm = SumArithmetic(req.FirstTerm, req.Step, req.TermCount)
	}

	resp := GenerateResponse{
		Type:          req.Type,
		FirstTerm:     req.FirstTerm,
		Step:          req.Step,
		TermCount:     req.TermCount,
		Terms:         terms,
		Formula:       Formula(req.Type, req.FirstTerm, req.Step),
		SumFormula:    SumFormula(req.Type, req.Step),
		SumByFormula:  closedForm,
		SumByAddition: SumTerms(terms),
		Derivation:    Derivation(req.Type, req.FirstTerm, req.Step, terms),
		SumSteps:      SumSteps(req.Type, req.FirstTerm, req.Step, req.TermCount),
	}

	if len(terms) > 0 {
		resp.LastTerm = terms[len(terms)-1]
	}

	if req.Type == KindGeometric && NearUnity(req.Step) {
		resp.PrecisionNote = "common ratio is within 1e-6 of 1: the closed-form sum divides by (1 - r) and may diverge from direct addition"
	}

	return resp
}
