package authtoken

import (
	"errors"
	"net/http"
)

const (
	CodeInvalidEmail      = "ERROR_INVALID_EMAIL"
	CodeUserDisabled      = "ERROR_USER_DISABLED"
	CodeUserNotFound      = "ERROR_USER_NOT_FOUND"
	CodeWrongPassword     = "ERROR_WRONG_PASSWORD"
	CodeEmailAlreadyInUse = "ERROR_EMAIL_ALREADY_IN_USE"
	CodeWeakPassword      = "ERROR_WEAK_PASSWORD"
)

const (
	MessageInvalidEmail = "The email address is badly formatted."
	MessageUserDisabled = "The user account has been disabled."
	MessageInvalidLogin = "Invalid email or password."
	MessageUnknownAuth  = "An unknown error occurred. Please try again."
	MessageUnexpected   = "An unexpected error occurred. Please try again later."
)

// AuthError is a sign-in or sign-up rejection carrying a machine-readable code.
type AuthError struct {
	Code string `json:"code"`
}

func (e *AuthError) Error() string {
	return "auth: " + e.Code
}

func NewAuthError(code string) *AuthError {
	return &AuthError{Code: code}
}

// AuthMessage renders the user-facing text for an authentication failure.
// Errors that are not *AuthError get the generic unexpected-error text.
func AuthMessage(err error) string {
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		return MessageUnexpected
	}
	switch authErr.Code {
	case CodeInvalidEmail:
		return MessageInvalidEmail
	case CodeUserDisabled:
		return MessageUserDisabled
	case CodeUserNotFound, CodeWrongPassword:
		return MessageInvalidLogin
	default:
		return MessageUnknownAuth
	}
}

func StatusCode(code string) int {
	switch code {
	case CodeInvalidEmail, CodeWeakPassword:
		return http.StatusBadRequest
	case CodeUserNotFound, CodeWrongPassword:
		return http.StatusUnauthorized
	case CodeUserDisabled:
		return http.StatusForbidden
	case CodeEmailAlreadyInUse:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
