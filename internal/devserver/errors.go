package devserver

import "errors"

var (
	ErrNoUserFound   = errors.New("no user was found")
	ErrWrongPassword = errors.New("wrong password")
	ErrChunkConflict = errors.New("chunk index out of order")

	ErrEmptyAuthorizationHeader   = errors.New("empty Authorization header")
	ErrInvalidAuthorizationHeader = errors.New("invalid Authorization header")
)
