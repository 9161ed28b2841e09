package domain

import "time"

// ItemRequest is an open wish for an item nobody has listed yet. Items
// created later may reference it as fulfillment.
type ItemRequest struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequestorID int64     `json:"requestor_id"`
	CreatedAt   time.Time `json:"created_at"`

	Requestor *User `json:"requestor,omitempty"`
}
