package shared

import "errors"

// Errors raised by the development API stores and services.
var (
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorValidation    = errors.New("validation error")

	ErrorInvalidToken         = errors.New("invalid token")
	ErrorTokenExpired         = errors.New("token expired")
	ErrorInvalidLoginPassword = errors.New("invalid credentials")
	ErrorWrongPassword        = errors.New("current password is incorrect")

	ErrorLastCategory = errors.New("at least one category must remain")
	ErrorFileTooLarge = errors.New("file too large")
	ErrorNotAnImage   = errors.New("only image files are allowed")
)
