package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest runs the struct's validate tags. The returned error is a
// validator.ValidationErrors that ErrorHandlerMiddleware turns into a 400.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}

// ValidationMessage flattens validation errors into "field: rule" pairs.
func ValidationMessage(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		if e.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", e.Namespace(), e.Tag(), e.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", e.Namespace(), e.Tag()))
	}
	return strings.Join(parts, ", ")
}
