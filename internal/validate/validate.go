// Package validate wraps go-playground/validator and turns tag failures
// into ordered field violations with stable, client-facing messages.
package validate

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violation is one failed constraint on one field. Pattern marks
// regex-style rules (no spaces, digit, symbol), which outrank other
// violations when a payload fails several constraints at once.
type Violation struct {
	Field   string
	Message string
	Pattern bool
}

var (
	digitRe      = regexp.MustCompile(`\d`)
	symbolRe     = regexp.MustCompile(`[^a-zA-Z0-9_\s]`)
	whitespaceRe = regexp.MustCompile(`\s`)
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()
	// Tag names come from the json tag so messages match the payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("nospaces", func(fl validator.FieldLevel) bool {
		return !whitespaceRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("hasdigit", func(fl validator.FieldLevel) bool {
		return digitRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("hassymbol", func(fl validator.FieldLevel) bool {
		return symbolRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &Validator{v: v}
}

// Struct validates a tagged request struct and returns every violation
// in field order, or nil when the value is valid.
func (va *Validator) Struct(v any) []Violation {
	err := va.v.Struct(v)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []Violation{{Field: "", Message: "invalid payload"}}
	}
	out := make([]Violation, 0, len(ve))
	for _, fe := range ve {
		out = append(out, Violation{
			Field:   fe.Field(),
			Message: message(fe),
			Pattern: isPattern(fe.Tag()),
		})
	}
	return out
}

// First picks the violation to report: the first pattern-kind one when
// present, otherwise the first violation. Empty input yields "".
func First(violations []Violation) string {
	for _, v := range violations {
		if v.Pattern {
			return v.Message
		}
	}
	if len(violations) > 0 {
		return violations[0].Message
	}
	return ""
}

func isPattern(tag string) bool {
	switch tag {
	case "nospaces", "hasdigit", "hassymbol":
		return true
	}
	return false
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "nospaces":
		return field + " must not contain spaces"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "hasdigit":
		return field + " must contain at least one digit"
	case "hassymbol":
		return field + " must contain at least one symbol"
	case "notblank":
		return field + " must not be blank"
	case "gt":
		return field + " must be greater than " + fe.Param()
	}
	return field + " is invalid"
}
