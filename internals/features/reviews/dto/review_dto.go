package dto

import (
	"time"

	"tripku_backend/internals/features/reviews/model"
)

type CreateReviewRequest struct {
	ReviewListingID int    `json:"review_listing_id" validate:"required,gt=0"`
	ReviewRating    int    `json:"review_rating" validate:"required,gte=1,lte=5"`
	ReviewComment   string `json:"review_comment" validate:"omitempty,max=2000"`
}

type ReviewDTO struct {
	ReviewID        int       `json:"review_id"`
	ReviewListingID int       `json:"review_listing_id"`
	ReviewUserID    int       `json:"review_user_id"`
	ReviewRating    int       `json:"review_rating"`
	ReviewComment   string    `json:"review_comment"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToReviewDTO(m model.ReviewModel) ReviewDTO {
	return ReviewDTO{
		ReviewID:        m.ReviewID,
		ReviewListingID: m.ReviewListingID,
		ReviewUserID:    m.ReviewUserID,
		ReviewRating:    m.ReviewRating,
		ReviewComment:   m.ReviewComment,
		CreatedAt:       m.CreatedAt,
	}
}
