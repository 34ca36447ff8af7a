package sequence

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report JSON field names in validation messages.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateRequest checks a decoded request against the struct tags and the
// configured term-count bound. The bound violation is reported distinctly
// from a non-positive term count.
func ValidateRequest(req *GenerateRequest, maxTerms int) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return errors.New(fieldErrorMessage(verrs[0]))
		}
		return err
	}

	if req.TermCount > maxTerms {
		return fmt.Errorf("term_count cannot exceed %d", maxTerms)
	}

	if !isFinite(req.FirstTerm) || !isFinite(req.Step) {
		return fmt.Errorf("first_term and step must be finite numbers: first_term=%g step=%g", req.FirstTerm, req.Step)
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}
