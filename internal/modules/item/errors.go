package item

import "errors"

var (
	ErrNotFound  = errors.New("not_found")
	ErrForbidden = errors.New("forbidden")
	ErrNotRented = errors.New("cannot review without having rented")
)
