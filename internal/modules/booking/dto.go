package booking

import (
	"time"

	"shareit/internal/domain"
)

type CreateBookingRequest struct {
	ItemID int64     `json:"item_id" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

type ItemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type UserRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     int64     `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Item   ItemRef   `json:"item"`
	Booker UserRef   `json:"booker"`
}

func toResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: string(b.Status),
	}
	if b.Item != nil {
		resp.Item = ItemRef{ID: b.Item.ID, Name: b.Item.Name}
	}
	if b.Booker != nil {
		resp.Booker = UserRef{ID: b.Booker.ID, Name: b.Booker.Name}
	}
	return resp
}

func toResponses(bs []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bs))
	for i := range bs {
		out = append(out, toResponse(&bs[i]))
	}
	return out
}
