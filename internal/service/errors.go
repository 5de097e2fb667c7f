package service

import "errors"

var (
	// ErrPermissionsDenied means the health provider refused read access.
	ErrPermissionsDenied = errors.New("health permissions denied")

	// ErrMissingIdentity means no user or device identity is stored locally.
	ErrMissingIdentity = errors.New("missing user identity")
)
