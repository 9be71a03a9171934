package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to
// HTTP status codes; everything else is a server error.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountBlocked     = errors.New("your account has been blocked by admin")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrNotPostAuthor      = errors.New("not authorized")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
