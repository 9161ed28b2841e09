package request

import (
	"time"

	"shareit/internal/domain"
)

type CreateRequest struct {
	Description string `json:"description" binding:"required"`
}

type FulfillingItem struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"owner_id"`
}

type RequestResponse struct {
	ID          int64            `json:"id"`
	Description string           `json:"description"`
	RequestorID int64            `json:"requestor_id"`
	Requestor   *RequestorDetail `json:"requestor,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	Items       []FulfillingItem `json:"items"`
}

type RequestorDetail struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toResponse(r *domain.ItemRequest, items []domain.Item) RequestResponse {
	resp := RequestResponse{
		ID:          r.ID,
		Description: r.Description,
		RequestorID: r.RequestorID,
		CreatedAt:   r.CreatedAt,
		Items:       make([]FulfillingItem, 0, len(items)),
	}
	if r.Requestor != nil {
		resp.Requestor = &RequestorDetail{ID: r.Requestor.ID, Name: r.Requestor.Name}
	}
	for _, i := range items {
		resp.Items = append(resp.Items, FulfillingItem{ID: i.ID, Name: i.Name, OwnerID: i.OwnerID})
	}
	return resp
}
