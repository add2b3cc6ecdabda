package dto

import (
	"time"

	"tripku_backend/internals/features/listings/model"
)

// ============================
// Response DTO
// ============================

type ListingDTO struct {
	ListingID          int       `json:"listing_id"`
	ListingName        string    `json:"listing_name"`
	ListingDescription string    `json:"listing_description"`
	ListingLocation    string    `json:"listing_location"`
	ListingPrice       float64   `json:"listing_price"`
	ListingMediaURL    string    `json:"listing_media_url"`
	ListingAmenities   []string  `json:"listing_amenities,omitempty"`
	ListingStatus      string    `json:"listing_status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ============================
// Update Request DTO (admin, PATCH semantics)
// ============================

type UpdateListingRequest struct {
	ListingName        *string  `json:"listing_name" validate:"omitempty,min=1,max=255"`
	ListingDescription *string  `json:"listing_description" validate:"omitempty,max=5000"`
	ListingLocation    *string  `json:"listing_location" validate:"omitempty,max=255"`
	ListingPrice       *float64 `json:"listing_price" validate:"omitempty,gte=0"`
	ListingAmenities   []string `json:"listing_amenities" validate:"omitempty,dive,min=1,max=100"`
	ListingStatus      *string  `json:"listing_status" validate:"omitempty,oneof=active inactive"`
}

// ============================
// Converter
// ============================

func ToListingDTO(m model.ListingModel) ListingDTO {
	return ListingDTO{
		ListingID:          m.ListingID,
		ListingName:        m.ListingName,
		ListingDescription: m.ListingDescription,
		ListingLocation:    m.ListingLocation,
		ListingPrice:       m.ListingPrice,
		ListingMediaURL:    m.ListingMediaURL,
		ListingAmenities:   m.ListingAmenities,
		ListingStatus:      m.ListingStatus,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
