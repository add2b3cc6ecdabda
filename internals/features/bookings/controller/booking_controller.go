package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripku_backend/internals/features/bookings/dto"
	"tripku_backend/internals/features/bookings/model"
	"tripku_backend/internals/features/bookings/service"
	listingModel "tripku_backend/internals/features/listings/model"
	helper "tripku_backend/internals/helpers"
)

var validateBooking = validator.New()

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

// =======================
// ➕ Buat booking + token pembayaran
// POST /api/u/bookings
// =======================
func (ctrl *BookingController) CreateBooking(c *fiber.Ctx) error {
	var body dto.CreateBookingRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBooking.Struct(&body); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	checkIn, _ := time.Parse("2006-01-02", body.BookingCheckIn)
	checkOut, _ := time.Parse("2006-01-02", body.BookingCheckOut)
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return helper.JsonValidationError(c, map[string][]string{
			"booking_check_out": {"harus setelah booking_check_in"},
		})
	}

	var listing listingModel.ListingModel
	if err := ctrl.DB.
		Where("listing_id = ? AND listing_status = ?", body.BookingListingID, listingModel.ListingStatusActive).
		First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Listing tidak ditemukan atau tidak aktif")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil listing")
	}

	booking := model.BookingModel{
		BookingOrderID:   "TRIP-" + uuid.NewString(),
		BookingListingID: listing.ListingID,
		BookingUserID:    userID,
		BookingCheckIn:   checkIn,
		BookingCheckOut:  checkOut,
		BookingGuests:    body.BookingGuests,
		BookingTotal:     float64(nights) * listing.ListingPrice,
		BookingStatus:    model.BookingStatusPending,
	}
	if err := ctrl.DB.Create(&booking).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan booking")
	}

	// Snap token best-effort: booking tetap tercatat walau gateway lagi down,
	// user bisa minta token ulang dari halaman pembayaran.
	name, _ := c.Locals("userName").(string)
	email, _ := c.Locals("userEmail").(string)
	if token, err := service.GenerateSnapToken(booking, name, email); err != nil {
		log.Printf("[WARNING] Gagal membuat snap token utk %s: %v", booking.BookingOrderID, err)
	} else {
		booking.BookingPaymentToken = token
		if err := ctrl.DB.Model(&model.BookingModel{}).
			Where("booking_id = ?", booking.BookingID).
			Update("booking_payment_token", token).Error; err != nil {
			log.Printf("[WARNING] Gagal menyimpan snap token utk %s: %v", booking.BookingOrderID, err)
		}
	}

	return helper.JsonCreated(c, "Booking dibuat", dto.ToBookingDTO(booking))
}

// =======================
// 📄 Booking milik sendiri (paginated)
// GET /api/u/bookings
// =======================
func (ctrl *BookingController) ListMyBookings(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.BookingModel{}).
		Where("booking_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung booking")
	}

	var rows []model.BookingModel
	if err := ctrl.DB.
		Where("booking_user_id = ?", userID).
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil booking")
	}

	resp := make([]dto.BookingDTO, 0, len(rows))
	for _, b := range rows {
		resp = append(resp, dto.ToBookingDTO(b))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// ❌ Batalkan booking sendiri (hanya yang masih pending)
// DELETE /api/u/bookings/:id
// =======================
func (ctrl *BookingController) CancelBooking(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var booking model.BookingModel
	if err := ctrl.DB.
		Where("booking_id = ? AND booking_user_id = ?", id, userID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Booking tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil booking")
	}
	if booking.BookingStatus != model.BookingStatusPending {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"Hanya booking pending yang bisa dibatalkan")
	}

	if err := ctrl.DB.Model(&model.BookingModel{}).
		Where("booking_id = ?", booking.BookingID).
		Update("booking_status", model.BookingStatusCancelled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membatalkan booking")
	}
	return helper.JsonOK(c, "Booking dibatalkan", fiber.Map{"booking_id": booking.BookingID})
}

// =======================
// 📄 Semua booking (admin, paginated)
// GET /api/a/bookings
// =======================
func (ctrl *BookingController) ListAllBookings(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.BookingModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("booking_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung booking")
	}

	var rows []model.BookingModel
	if err := q.
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil booking")
	}

	resp := make([]dto.BookingDTO, 0, len(rows))
	for _, b := range rows {
		resp = append(resp, dto.ToBookingDTO(b))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// 🔔 Webhook Midtrans (tanpa auth, path di-skip middleware)
// POST /api/public/bookings/notification
// =======================
func (ctrl *BookingController) PaymentNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := service.HandleBookingStatusWebhook(ctrl.DB, body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, "ok", nil)
}
