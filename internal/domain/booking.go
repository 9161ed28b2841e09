package domain

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingWaiting  BookingStatus = "WAITING"
	BookingApproved BookingStatus = "APPROVED"
	BookingRejected BookingStatus = "REJECTED"
	// BookingCanceled is part of the status domain but no current flow sets it.
	BookingCanceled BookingStatus = "CANCELED"
)

// StateFilter selects bookings by status or by position relative to now.
type StateFilter string

const (
	StateAll      StateFilter = "ALL"
	StateCurrent  StateFilter = "CURRENT"
	StatePast     StateFilter = "PAST"
	StateFuture   StateFilter = "FUTURE"
	StateWaiting  StateFilter = "WAITING"
	StateRejected StateFilter = "REJECTED"
)

// ParseStateFilter matches case-insensitively. Unknown values are reported
// to the caller as a validation failure, never treated as ALL.
func ParseStateFilter(s string) (StateFilter, bool) {
	switch StateFilter(strings.ToUpper(strings.TrimSpace(s))) {
	case StateAll:
		return StateAll, true
	case StateCurrent:
		return StateCurrent, true
	case StatePast:
		return StatePast, true
	case StateFuture:
		return StateFuture, true
	case StateWaiting:
		return StateWaiting, true
	case StateRejected:
		return StateRejected, true
	}
	return "", false
}

type Booking struct {
	ID        int64         `json:"id"`
	ItemID    int64         `json:"item_id"`
	BookerID  int64         `json:"booker_id"`
	Start     time.Time     `json:"start"`
	End       time.Time     `json:"end"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	Item   *Item `json:"item,omitempty"`
	Booker *User `json:"booker,omitempty"`
}
