package dto

import (
	"time"

	"animedrop/internal/http-api/models"
)

// CreateReviewDTO for submitting a review on an anime
type CreateReviewDTO struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// ReviewResponse for returning review information with the reviewer resolved
type ReviewResponse struct {
	ID        int64        `json:"id"`
	User      *UserSummary `json:"user,omitempty"`
	Rating    int          `json:"rating"`
	Comment   string       `json:"comment"`
	CreatedAt time.Time    `json:"created_at"`
}

func FromModelToReviewResponse(r *models.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:        r.ID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
	if r.User != nil {
		u := FromModelToUserSummary(r.User)
		resp.User = &u
	}
	return resp
}
