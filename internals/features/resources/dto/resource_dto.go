package dto

import (
	"time"

	listingModel "tripku_backend/internals/features/listings/model"
	"tripku_backend/internals/features/resources/model"
)

// ============================
// Request DTO
// ============================

type CreateResourceRequest struct {
	ResourceMediaURL    string `json:"resource_media_url" validate:"required,url"`
	ResourceType        string `json:"resource_type" validate:"required,oneof=image video"`
	ResourceCaption     string `json:"resource_caption" validate:"omitempty,max=255"`
	ResourceDescription string `json:"resource_description" validate:"omitempty,max=5000"`
	// Optional: revisi media untuk listing yang sudah terbit.
	ResourceListingID *int `json:"resource_listing_id" validate:"omitempty,gt=0"`
}

type AcquireLockRequest struct {
	Reason *string `json:"reason" validate:"omitempty,max=255"`
}

// ResourceEdits: field opsional yang boleh di-merge saat approve.
// Dibuat eksplisit (bukan map bebas) supaya aturan per field jelas.
type ResourceEdits struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description" validate:"omitempty,max=5000"`
	Location    *string  `json:"location" validate:"omitempty,max=255"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
}

type RejectResourceRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ============================
// Response DTO
// ============================

type ResourceLockDTO struct {
	LockedBy      int        `json:"locked_by"`
	LockedAt      *time.Time `json:"locked_at,omitempty"`
	LockExpiresAt *time.Time `json:"lock_expires_at,omitempty"`
	LockReason    *string    `json:"lock_reason,omitempty"`
}

type ResourceListingSummaryDTO struct {
	ListingID       int     `json:"listing_id"`
	ListingName     string  `json:"listing_name"`
	ListingLocation string  `json:"listing_location"`
	ListingPrice    float64 `json:"listing_price"`
}

type ResourceDTO struct {
	ResourceID              int                        `json:"resource_id"`
	ResourceMediaURL        string                     `json:"resource_media_url"`
	ResourceType            string                     `json:"resource_type"`
	ResourceCaption         string                     `json:"resource_caption"`
	ResourceDescription     string                     `json:"resource_description"`
	ResourceStatus          string                     `json:"resource_status"`
	ResourceRejectionReason *string                    `json:"resource_rejection_reason,omitempty"`
	ResourceListingID       *int                       `json:"resource_listing_id,omitempty"`
	ResourceCreatedBy       int                        `json:"resource_created_by"`
	Lock                    *ResourceLockDTO           `json:"lock,omitempty"`
	Listing                 *ResourceListingSummaryDTO `json:"listing,omitempty"`
	CreatedAt               time.Time                  `json:"created_at"`
	UpdatedAt               time.Time                  `json:"updated_at"`
}

type AcquireLockResponse struct {
	LockExpiresAt time.Time `json:"lock_expires_at"`
}

// ============================
// Converter
// ============================

func ToResourceDTO(m model.ResourceModel, listing *listingModel.ListingModel) ResourceDTO {
	out := ResourceDTO{
		ResourceID:              m.ResourceID,
		ResourceMediaURL:        m.ResourceMediaURL,
		ResourceType:            m.ResourceType,
		ResourceCaption:         m.ResourceCaption,
		ResourceDescription:     m.ResourceDescription,
		ResourceStatus:          m.ResourceStatus,
		ResourceRejectionReason: m.ResourceRejectionReason,
		ResourceListingID:       m.ResourceListingID,
		ResourceCreatedBy:       m.ResourceCreatedBy,
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
	if m.ResourceLockedBy != nil {
		out.Lock = &ResourceLockDTO{
			LockedBy:      *m.ResourceLockedBy,
			LockedAt:      m.ResourceLockedAt,
			LockExpiresAt: m.ResourceLockExpiresAt,
			LockReason:    m.ResourceLockReason,
		}
	}
	if listing != nil {
		out.Listing = &ResourceListingSummaryDTO{
			ListingID:       listing.ListingID,
			ListingName:     listing.ListingName,
			ListingLocation: listing.ListingLocation,
			ListingPrice:    listing.ListingPrice,
		}
	}
	return out
}
