package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// NotesRequest is the query of the notes listing and its search fragment.
type NotesRequest struct {
	Query    string `query:"q" validate:"max=120"`
	Category string `query:"category" validate:"max=80"`
}

// LangRequest switches the visitor's language. Redirect is the local path
// to return to.
type LangRequest struct {
	Lang     string `form:"lang" param:"code" validate:"required,max=8"`
	Redirect string `form:"redirect" query:"redirect" validate:"max=512"`
}

// PreviewRequest addresses a document of the docs section.
type PreviewRequest struct {
	Index int `param:"index" validate:"min=0"`
}
