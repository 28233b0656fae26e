package handlers

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// emailShape is deliberately permissive: anything of the form a@b.c with no
// whitespace passes. Real deliverability is not this server's problem.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// validator's builtin "email" is a full RFC check, stricter than the
	// shape the API promises to accept, so register our own.
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
	return v
}
