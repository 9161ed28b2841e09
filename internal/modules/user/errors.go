package user

import "errors"

var (
	ErrNotFound   = errors.New("not_found")
	ErrEmailTaken = errors.New("email already in use")
)
