package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	listingModel "tripku_backend/internals/features/listings/model"
	"tripku_backend/internals/features/reviews/dto"
	"tripku_backend/internals/features/reviews/model"
	helper "tripku_backend/internals/helpers"
)

var validateReview = validator.New()

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

// =======================
// ➕ Tulis review
// POST /api/u/reviews
// =======================
func (ctrl *ReviewController) CreateReview(c *fiber.Ctx) error {
	var body dto.CreateReviewRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateReview.Struct(&body); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var listing listingModel.ListingModel
	if err := ctrl.DB.First(&listing, "listing_id = ?", body.ReviewListingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Listing tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil listing")
	}

	review := model.ReviewModel{
		ReviewListingID: body.ReviewListingID,
		ReviewUserID:    userID,
		ReviewRating:    body.ReviewRating,
		ReviewComment:   body.ReviewComment,
	}
	if err := ctrl.DB.Create(&review).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan review")
	}
	return helper.JsonCreated(c, "Review dibuat", dto.ToReviewDTO(review))
}

// =======================
// 📄 Review per listing (paginated + rata-rata rating)
// GET /api/public/reviews/by-listing/:listingId
// =======================
func (ctrl *ReviewController) GetReviewsByListing(c *fiber.Ctx) error {
	listingID, err := c.ParamsInt("listingId")
	if err != nil || listingID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "listingId tidak valid")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ReviewModel{}).
		Where("review_listing_id = ?", listingID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung review")
	}

	var avg float64
	if err := ctrl.DB.Model(&model.ReviewModel{}).
		Where("review_listing_id = ?", listingID).
		Select("COALESCE(AVG(review_rating), 0)").
		Scan(&avg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung rating")
	}

	var rows []model.ReviewModel
	if err := ctrl.DB.
		Where("review_listing_id = ?", listingID).
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil review")
	}

	resp := make([]dto.ReviewDTO, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.ToReviewDTO(r))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":        true,
		"message":        "ok",
		"data":           resp,
		"average_rating": avg,
		"pagination":     helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// =======================
// 🗑️ Hapus review sendiri
// DELETE /api/u/reviews/:id
// =======================
func (ctrl *ReviewController) DeleteReview(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	result := ctrl.DB.Delete(&model.ReviewModel{}, "review_id = ? AND review_user_id = ?", id, userID)
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus review")
	}
	if result.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Review tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Review dihapus", fiber.Map{"review_id": id})
}
