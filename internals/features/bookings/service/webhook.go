package service

import (
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tripku_backend/internals/features/bookings/model"
	notificationModel "tripku_backend/internals/features/notifications/model"
)

// HandleBookingStatusWebhook dipanggil saat menerima notifikasi dari Midtrans.
func HandleBookingStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	var booking model.BookingModel
	if err := db.Where("booking_order_id = ?", orderID).First(&booking).Error; err != nil {
		log.Println("[ERROR] Booking tidak ditemukan:", err)
		return fmt.Errorf("booking with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		booking.BookingStatus = model.BookingStatusPaid
		booking.BookingPaidAt = &now
	case "expire":
		booking.BookingStatus = model.BookingStatusExpired
	case "cancel", "deny":
		booking.BookingStatus = model.BookingStatusCancelled
	default:
		log.Println("[INFO] Status tidak diproses:", status)
		return nil
	}

	if err := db.Save(&booking).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status booking:", err)
		return err
	}

	notifyBookingStatus(db, booking)
	return nil
}

// notifyBookingStatus: kabari user perubahan status, best-effort setelah
// status tersimpan — kegagalan notifikasi tidak boleh menggagalkan webhook.
func notifyBookingStatus(db *gorm.DB, booking model.BookingModel) {
	payload, err := sonic.Marshal(fiber.Map{
		"booking_id":       booking.BookingID,
		"booking_order_id": booking.BookingOrderID,
		"booking_status":   booking.BookingStatus,
	})
	if err != nil {
		log.Println("[WARNING] Gagal marshal payload notifikasi booking:", err)
		return
	}

	n := notificationModel.NotificationModel{
		NotificationUserID:  booking.BookingUserID,
		NotificationTitle:   "Status booking diperbarui",
		NotificationBody:    fmt.Sprintf("Booking %s sekarang %s.", booking.BookingOrderID, booking.BookingStatus),
		NotificationPayload: datatypes.JSON(payload),
	}
	if err := db.Create(&n).Error; err != nil {
		log.Println("[WARNING] Gagal menyimpan notifikasi booking:", err)
	}
}
