package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusPaid      = "paid"
	BookingStatusCancelled = "cancelled"
	BookingStatusExpired   = "expired"
)

type BookingModel struct {
	BookingID        int    `gorm:"column:booking_id;primaryKey;autoIncrement" json:"booking_id"`
	BookingOrderID   string `gorm:"column:booking_order_id;type:varchar(100);not null;unique" json:"booking_order_id"`
	BookingListingID int    `gorm:"column:booking_listing_id;not null;index" json:"booking_listing_id"`
	BookingUserID    int    `gorm:"column:booking_user_id;not null;index" json:"booking_user_id"`

	BookingCheckIn  time.Time `gorm:"column:booking_check_in;not null" json:"booking_check_in"`
	BookingCheckOut time.Time `gorm:"column:booking_check_out;not null" json:"booking_check_out"`
	BookingGuests   int       `gorm:"column:booking_guests;not null;default:1;check:booking_guests > 0" json:"booking_guests"`
	BookingTotal    float64   `gorm:"column:booking_total;not null;check:booking_total >= 0" json:"booking_total"`

	BookingStatus         string     `gorm:"column:booking_status;type:varchar(20);not null;default:'pending';index" json:"booking_status"`
	BookingPaymentToken   string     `gorm:"column:booking_payment_token;type:text" json:"booking_payment_token,omitempty"`
	BookingPaymentGateway string     `gorm:"column:booking_payment_gateway;type:varchar(50);default:'midtrans'" json:"booking_payment_gateway"`
	BookingPaidAt         *time.Time `gorm:"column:booking_paid_at" json:"booking_paid_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (BookingModel) TableName() string {
	return "bookings"
}
