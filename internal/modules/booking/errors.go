package booking

import "errors"

var (
	ErrNotFound         = errors.New("not_found")
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrItemUnavailable  = errors.New("item not available")
	ErrNotOwner         = errors.New("not the owner")
	ErrAlreadyDecided   = errors.New("already decided")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrNoItems          = errors.New("owner has no items")
	ErrUnknownState     = errors.New("unknown state")
)
