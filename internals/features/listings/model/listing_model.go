package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	ListingStatusActive   = "active"
	ListingStatusInactive = "inactive"
)

type ListingModel struct {
	ListingID          int            `gorm:"column:listing_id;primaryKey;autoIncrement" json:"listing_id"`
	ListingName        string         `gorm:"column:listing_name;type:varchar(255);not null" json:"listing_name"`
	ListingDescription string         `gorm:"column:listing_description;type:text" json:"listing_description"`
	ListingLocation    string         `gorm:"column:listing_location;type:varchar(255);index" json:"listing_location"`
	ListingPrice       float64        `gorm:"column:listing_price;not null;default:0;check:listing_price >= 0" json:"listing_price"`
	ListingMediaURL    string         `gorm:"column:listing_media_url;type:text" json:"listing_media_url"`
	ListingAmenities   pq.StringArray `gorm:"column:listing_amenities;type:text[]" json:"listing_amenities,omitempty"`
	ListingStatus      string         `gorm:"column:listing_status;type:varchar(20);not null;default:'active';index" json:"listing_status"`

	// Provenance: pembuat asli (uploader resource) & admin terakhir yang approve/edit.
	ListingCreatedBy int  `gorm:"column:listing_created_by;not null" json:"listing_created_by"`
	ListingUpdatedBy *int `gorm:"column:listing_updated_by" json:"listing_updated_by,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (ListingModel) TableName() string {
	return "listings"
}
