package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"tripku_backend/internals/features/listings/dto"
	"tripku_backend/internals/features/listings/model"
	helper "tripku_backend/internals/helpers"
)

var validateListing = validator.New()

type ListingController struct {
	DB *gorm.DB
}

func NewListingController(db *gorm.DB) *ListingController {
	return &ListingController{DB: db}
}

// =======================
// 📄 Listing publik (paginated)
// Query: ?location=&min_price=&max_price=&q=
// =======================
func (ctrl *ListingController) GetAllListings(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ListingModel{}).
		Where("listing_status = ?", model.ListingStatusActive)

	if loc := strings.TrimSpace(c.Query("location")); loc != "" {
		q = q.Where("listing_location ILIKE ?", "%"+loc+"%")
	}
	if kw := strings.TrimSpace(c.Query("q")); kw != "" {
		q = q.Where("listing_name ILIKE ?", "%"+kw+"%")
	}
	if v := c.QueryFloat("min_price", -1); v >= 0 {
		q = q.Where("listing_price >= ?", v)
	}
	if v := c.QueryFloat("max_price", -1); v >= 0 {
		q = q.Where("listing_price <= ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung listing")
	}

	var rows []model.ListingModel
	if err := q.
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil listing")
	}

	resp := make([]dto.ListingDTO, 0, len(rows))
	for _, l := range rows {
		resp = append(resp, dto.ToListingDTO(l))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// 🔍 Detail listing
// =======================
func (ctrl *ListingController) GetListingByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var l model.ListingModel
	if err := ctrl.DB.First(&l, "listing_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Listing tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "ok", dto.ToListingDTO(l))
}

// =======================
// ✏️ Update listing (admin, PATCH)
// =======================
func (ctrl *ListingController) UpdateListing(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	adminID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.UpdateListingRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateListing.Struct(&body); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var l model.ListingModel
	if err := ctrl.DB.First(&l, "listing_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Listing tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	updates := map[string]any{"listing_updated_by": adminID}
	if body.ListingName != nil {
		updates["listing_name"] = *body.ListingName
	}
	if body.ListingDescription != nil {
		updates["listing_description"] = *body.ListingDescription
	}
	if body.ListingLocation != nil {
		updates["listing_location"] = *body.ListingLocation
	}
	if body.ListingPrice != nil {
		updates["listing_price"] = *body.ListingPrice
	}
	if body.ListingAmenities != nil {
		updates["listing_amenities"] = pq.StringArray(body.ListingAmenities)
	}
	if body.ListingStatus != nil {
		updates["listing_status"] = *body.ListingStatus
	}

	if err := ctrl.DB.Model(&model.ListingModel{}).
		Where("listing_id = ?", l.ListingID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}
	if err := ctrl.DB.First(&l, "listing_id = ?", l.ListingID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonUpdated(c, "Listing diperbarui", dto.ToListingDTO(l))
}

// =======================
// 🗑️ Soft delete listing (admin)
// =======================
func (ctrl *ListingController) DeleteListing(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	if err := ctrl.DB.Delete(&model.ListingModel{}, "listing_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus listing")
	}
	return helper.JsonDeleted(c, "Listing dihapus", fiber.Map{"listing_id": id})
}
