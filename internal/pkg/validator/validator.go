// Package validator provides a thin wrapper around the go-playground/validator
// library with standardized error formatting and the custom tags used by
// chaindiff (see NodeURLTag).
package validator

import (
	"errors"
	"fmt"
	"net/url"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

// NodeURLTag validates a node base URL: http or https scheme, a host, and no
// path other than "/", query or fragment.
const NodeURLTag = "nodeurl"

// validator is a singleton instance of the go-playground validator.
var validator *gvalidator.Validate

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Interval': value '0s' does not meet the requirements for the 'gt' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	if err := validator.RegisterValidation(NodeURLTag, isNodeURL); err != nil {
		panic(err)
	}
}

func isNodeURL(fl gvalidator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	return u.Host != "" &&
		(u.Path == "" || u.Path == "/") &&
		u.RawQuery == "" &&
		u.Fragment == ""
}

// formatError transforms a raw validator error into a multi-error chain rooted at
// ErrValidationFailed. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Namespace(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
//	if err := validator.Validate(cfg); errors.Is(err, validator.ErrValidationFailed) {
//	    // handle validation failure
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// ValidateVar checks a single value against a tag expression, such as
// validator.ValidateVar(addr, NodeURLTag).
func ValidateVar(value any, tag string) error {
	if err := validator.Var(value, tag); err != nil {
		return formatError(err)
	}

	return nil
}
