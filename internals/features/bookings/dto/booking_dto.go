package dto

import (
	"time"

	"tripku_backend/internals/features/bookings/model"
)

// ============================
// Create Request DTO
// ============================

type CreateBookingRequest struct {
	BookingListingID int    `json:"booking_listing_id" validate:"required,gt=0"`
	BookingCheckIn   string `json:"booking_check_in" validate:"required,datetime=2006-01-02"`
	BookingCheckOut  string `json:"booking_check_out" validate:"required,datetime=2006-01-02"`
	BookingGuests    int    `json:"booking_guests" validate:"required,gte=1,lte=20"`
}

// ============================
// Response DTO
// ============================

type BookingDTO struct {
	BookingID           int        `json:"booking_id"`
	BookingOrderID      string     `json:"booking_order_id"`
	BookingListingID    int        `json:"booking_listing_id"`
	BookingUserID       int        `json:"booking_user_id"`
	BookingCheckIn      time.Time  `json:"booking_check_in"`
	BookingCheckOut     time.Time  `json:"booking_check_out"`
	BookingGuests       int        `json:"booking_guests"`
	BookingTotal        float64    `json:"booking_total"`
	BookingStatus       string     `json:"booking_status"`
	BookingPaymentToken string     `json:"booking_payment_token,omitempty"`
	BookingPaidAt       *time.Time `json:"booking_paid_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

// ============================
// Converter
// ============================

func ToBookingDTO(m model.BookingModel) BookingDTO {
	return BookingDTO{
		BookingID:           m.BookingID,
		BookingOrderID:      m.BookingOrderID,
		BookingListingID:    m.BookingListingID,
		BookingUserID:       m.BookingUserID,
		BookingCheckIn:      m.BookingCheckIn,
		BookingCheckOut:     m.BookingCheckOut,
		BookingGuests:       m.BookingGuests,
		BookingTotal:        m.BookingTotal,
		BookingStatus:       m.BookingStatus,
		BookingPaymentToken: m.BookingPaymentToken,
		BookingPaidAt:       m.BookingPaidAt,
		CreatedAt:           m.CreatedAt,
	}
}
