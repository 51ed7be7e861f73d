// Package inputval validates request input.
//
// Struct-tag validation (via go-playground/validator) covers required fields,
// lengths and ranges; the `label` tag supplies the human-readable field name
// used in messages. Standalone helpers cover the formats the contact form
// needs (email, mobile number).
package inputval

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report the `label` tag instead of the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})
	return v
}

// Result collects validation failures as human-readable messages.
type Result struct {
	Errors []string
}

// HasErrors reports whether any validation failed.
func (r Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first failure message, or "" when validation passed.
func (r Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0]
}

// Validate runs struct-tag validation over input and converts each failure
// into a message suitable for the API's itemized errors array.
func Validate(input any) Result {
	err := validate.Struct(input)
	if err == nil {
		return Result{}
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Result{Errors: []string{"Invalid input"}}
	}

	res := Result{Errors: make([]string, 0, len(verrs))}
	for _, fe := range verrs {
		res.Errors = append(res.Errors, message(fe))
	}
	return res
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s cannot exceed %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// Mobile numbers may carry an optional leading + and the usual formatting
// characters (spaces, parens, dashes); validity is judged on the digit count.
var mobileCharsRe = regexp.MustCompile(`^[+]?[\d\s()-]+$`)

// Simple shape check: one @, non-empty local and domain, a dot in the domain.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidMobile reports whether v looks like a phone number: allowed
// characters only, with 10 to 15 digits once formatting is stripped.
func IsValidMobile(v string) bool {
	v = strings.TrimSpace(v)
	if !mobileCharsRe.MatchString(v) {
		return false
	}
	digits := 0
	for _, r := range v {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 10 && digits <= 15
}

// IsValidEmail reports whether v looks like an email address.
func IsValidEmail(v string) bool {
	return emailRe.MatchString(strings.TrimSpace(v))
}

// EmpIDRe matches employee identifiers like EMP001. Lookups accept any case;
// storage is always uppercase.
var EmpIDRe = regexp.MustCompile(`^(?i)EMP\d{3,}$`)

// IsValidEmpID reports whether v is a well-formed employee identifier.
func IsValidEmpID(v string) bool {
	return EmpIDRe.MatchString(strings.TrimSpace(v))
}
