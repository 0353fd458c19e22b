package contract

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError is the uniform rejection shape for malformed request
// bodies. Field is the offending JSON field when one can be named.
type ValidationError struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks a request struct against its validate tags and returns the
// first violation as a *ValidationError, or nil when the body is well formed.
func Validate(req any) *ValidationError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return &ValidationError{Message: "Validation error"}
	}

	fe := errs[0]
	field := jsonFieldName(fe.Namespace())
	return &ValidationError{
		Message: fmt.Sprintf("Validation error: %s failed on %q", field, fe.Tag()),
		Field:   field,
	}
}

// jsonFieldName converts a validator namespace like
// "CreateOrderRequest.Items[0].Quantity" into "items[0].quantity".
func jsonFieldName(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:] // drop the struct type name
	}
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToLower(p[:1]) + p[1:]
	}
	return strings.Join(parts, ".")
}
