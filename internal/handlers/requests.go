package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement
// Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// UsernameSubmission is the DTO for the username step's form post.
// ReturnURL is opaque; it is carried through to the authentication step
// untouched.
type UsernameSubmission struct {
	Username   string `form:"username" validate:"required"`
	RememberMe string `form:"rememberme"`
	ReturnURL  string `form:"returnurl" validate:"omitempty,max=2048"`
}

// ChangeUserRequest carries the password form's state back to the
// username step.
type ChangeUserRequest struct {
	Username   string `form:"username"`
	RememberMe string `form:"rememberme"`
	ReturnURL  string `form:"returnurl"`
}

// CheckDomainRequest is the payload of the check_domain procedure.
type CheckDomainRequest struct {
	Input string `json:"input"`
}

// CheckDomainResponse is the success payload: the account's email (nil
// when the username has no resolvable identity) and its owning domain.
type CheckDomainResponse struct {
	Email  *string `json:"email"`
	Domain string  `json:"domain"`
}

// CheckDomainError is the structured failure payload.
type CheckDomainError struct {
	ErrorCode string `json:"errorcode"`
}
