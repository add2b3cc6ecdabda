package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripku_backend/internals/configs"
	listingModel "tripku_backend/internals/features/listings/model"
	"tripku_backend/internals/features/resources/dto"
	"tripku_backend/internals/features/resources/model"
	"tripku_backend/internals/features/resources/service"
	helper "tripku_backend/internals/helpers"
)

var validateResource = validator.New()

type ResourceAdminController struct {
	DB         *gorm.DB
	Locks      *service.LockService
	Moderation *service.ModerationService
}

func NewResourceAdminController(db *gorm.DB) *ResourceAdminController {
	return &ResourceAdminController{
		DB:         db,
		Locks:      service.NewLockService(db, configs.ResourceLockTTL),
		Moderation: service.NewModerationService(db),
	}
}

// =======================
// 🔒 Acquire lock (mulai sesi review)
// POST /api/a/resources/:id/lock
// =======================
func (ctrl *ResourceAdminController) AcquireLock(c *fiber.Ctx) error {
	resourceID, err := c.ParamsInt("id")
	if err != nil || resourceID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	adminID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.AcquireLockRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validateResource.Struct(&body); err != nil {
			return helper.JsonValidatorError(c, err)
		}
	}

	expiresAt, err := ctrl.Locks.AcquireLock(c.UserContext(), resourceID, adminID, body.Reason)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Lock didapat", dto.AcquireLockResponse{LockExpiresAt: expiresAt})
}

// =======================
// 🔓 Release lock (batal review)
// DELETE /api/a/resources/:id/lock
// =======================
func (ctrl *ResourceAdminController) ReleaseLock(c *fiber.Ctx) error {
	resourceID, err := c.ParamsInt("id")
	if err != nil || resourceID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	adminID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.Locks.ReleaseLock(c.UserContext(), resourceID, adminID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Lock dilepas", fiber.Map{"resource_id": resourceID})
}

// =======================
// ✅ Approve (+ edits + sinkron listing)
// POST /api/a/resources/:id/approve
// =======================
func (ctrl *ResourceAdminController) Approve(c *fiber.Ctx) error {
	resourceID, err := c.ParamsInt("id")
	if err != nil || resourceID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	adminID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var edits dto.ResourceEdits
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&edits); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validateResource.Struct(&edits); err != nil {
			return helper.JsonValidatorError(c, err)
		}
	}

	res, listing, err := ctrl.Moderation.Approve(c.UserContext(), resourceID, adminID, edits)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Resource disetujui", dto.ToResourceDTO(*res, listing))
}

// =======================
// ⛔ Reject (alasan wajib)
// POST /api/a/resources/:id/reject
// =======================
func (ctrl *ResourceAdminController) Reject(c *fiber.Ctx) error {
	resourceID, err := c.ParamsInt("id")
	if err != nil || resourceID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	adminID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.RejectResourceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateResource.Struct(&body); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	res, err := ctrl.Moderation.Reject(c.UserContext(), resourceID, adminID, body.Reason)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Resource ditolak", dto.ToResourceDTO(*res, nil))
}

// =======================
// 🔍 Detail resource (auto-expire lock basi dulu)
// GET /api/a/resources/:id
// =======================
func (ctrl *ResourceAdminController) GetResource(c *fiber.Ctx) error {
	resourceID, err := c.ParamsInt("id")
	if err != nil || resourceID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	// Badge lock jangan menampilkan lock yang sudah hangus.
	_ = ctrl.Locks.ExpireStaleLock(c.UserContext(), resourceID)

	var res model.ResourceModel
	if err := ctrl.DB.First(&res, "resource_id = ?", resourceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Resource tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var listing *listingModel.ListingModel
	if res.ResourceStatus == model.ResourceStatusApproved && res.ResourceListingID != nil {
		var l listingModel.ListingModel
		if err := ctrl.DB.First(&l, "listing_id = ?", *res.ResourceListingID).Error; err == nil {
			listing = &l
		}
	}

	return helper.JsonOK(c, "ok", dto.ToResourceDTO(res, listing))
}

// =======================
// 📄 Antrian moderasi (paginated)
// GET /api/a/resources?status=pending
// =======================
func (ctrl *ResourceAdminController) ListResources(c *fiber.Ctx) error {
	status := c.Query("status", model.ResourceStatusPending)
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ResourceModel{})
	if status != "all" {
		q = q.Where("resource_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung resource")
	}

	var rows []model.ResourceModel
	if err := q.
		Order("created_at ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil resource")
	}

	resp := make([]dto.ResourceDTO, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.ToResourceDTO(r, nil))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
