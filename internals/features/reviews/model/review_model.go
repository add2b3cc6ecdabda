package model

import "time"

type ReviewModel struct {
	ReviewID        int       `gorm:"column:review_id;primaryKey;autoIncrement" json:"review_id"`
	ReviewListingID int       `gorm:"column:review_listing_id;not null;index" json:"review_listing_id"`
	ReviewUserID    int       `gorm:"column:review_user_id;not null;index" json:"review_user_id"`
	ReviewRating    int       `gorm:"column:review_rating;not null;check:review_rating BETWEEN 1 AND 5" json:"review_rating"`
	ReviewComment   string    `gorm:"column:review_comment;type:text" json:"review_comment"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}
