package item

import (
	"time"

	"shareit/internal/domain"
)

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"request_id,omitempty"`
}

// UpdateItemRequest applies only the fields that are present.
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// ItemDetail is the single-item view: the item, its comments, and - for
// the owner only - when it was last rented and when it is rented next.
type ItemDetail struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	OwnerID     int64             `json:"owner_id"`
	RequestID   *int64            `json:"request_id,omitempty"`
	Comments    []CommentResponse `json:"comments"`
	LastBooking *time.Time        `json:"last_booking"`
	NextBooking *time.Time        `json:"next_booking"`
}

func toCommentResponse(c *domain.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        c.ID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
	if c.Author != nil {
		resp.AuthorName = c.Author.Name
	}
	return resp
}

func toCommentResponses(cs []domain.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(cs))
	for i := range cs {
		out = append(out, toCommentResponse(&cs[i]))
	}
	return out
}
