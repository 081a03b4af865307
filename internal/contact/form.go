// Package contact validates the contact form and composes the links that
// hand a message over to the visitor's mail client, phone, or WhatsApp.
package contact

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/Leonard-ssj/portfolio/internal/i18n"
	"github.com/go-playground/validator/v10"
)

// Form is the submitted contact form.
type Form struct {
	Name    string `form:"name" json:"name" validate:"required,min=2"`
	Email   string `form:"email" json:"email" validate:"required,emailshape"`
	Message string `form:"message" json:"message" validate:"required,min=10"`
}

// Normalize trims surrounding whitespace from every field.
func (f *Form) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)
}

// Field names used as keys of FieldErrors.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// FieldErrors maps a field name to its localized error message.
type FieldErrors map[string]string

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var messages = map[string]i18n.Text{
	"name.required":    {i18n.ES: "El nombre es obligatorio", i18n.EN: "Name is required"},
	"name.min":         {i18n.ES: "Mínimo 2 caracteres", i18n.EN: "Minimum 2 characters"},
	"email.required":   {i18n.ES: "El correo es obligatorio", i18n.EN: "Email is required"},
	"email.emailshape": {i18n.ES: "Correo electrónico inválido", i18n.EN: "Invalid email address"},
	"message.required": {i18n.ES: "El mensaje es obligatorio", i18n.EN: "Message is required"},
	"message.min":      {i18n.ES: "Mínimo 10 caracteres", i18n.EN: "Minimum 10 characters"},
}

// Validator checks contact forms.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a Validator with the email shape rule registered.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Validate normalizes f and returns one message per failing field, in the
// language of l. A nil map means the form is valid.
func (v *Validator) Validate(f *Form, l i18n.Localizer) FieldErrors {
	f.Normalize()
	err := v.validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{FieldMessage: err.Error()}
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, done := out[fe.Field()]; done {
			continue
		}
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			out[fe.Field()] = fe.Error()
			continue
		}
		out[fe.Field()] = i18n.Pick(l, msg)
	}
	return out
}
