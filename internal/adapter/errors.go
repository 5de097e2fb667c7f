package adapter

import "errors"

var (
	ErrUnauthorized  = errors.New("client unauthorized")
	ErrChunkConflict = errors.New("chunk index conflict")
	ErrNotFound      = errors.New("resource not found")
)
