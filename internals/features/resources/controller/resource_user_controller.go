package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripku_backend/internals/features/resources/dto"
	"tripku_backend/internals/features/resources/model"
	helper "tripku_backend/internals/helpers"
)

type ResourceUserController struct {
	DB *gorm.DB
}

func NewResourceUserController(db *gorm.DB) *ResourceUserController {
	return &ResourceUserController{DB: db}
}

// =======================
// ➕ Submit media (status awal pending, file sudah diupload ke media host)
// POST /api/u/resources
// =======================
func (ctrl *ResourceUserController) CreateResource(c *fiber.Ctx) error {
	var body dto.CreateResourceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateResource.Struct(&body); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := model.ResourceModel{
		ResourceMediaURL:    body.ResourceMediaURL,
		ResourceType:        body.ResourceType,
		ResourceCaption:     body.ResourceCaption,
		ResourceDescription: body.ResourceDescription,
		ResourceStatus:      model.ResourceStatusPending,
		ResourceListingID:   body.ResourceListingID,
		ResourceCreatedBy:   userID,
	}
	if err := ctrl.DB.Create(&res).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan resource")
	}
	return helper.JsonCreated(c, "Resource dikirim untuk moderasi", dto.ToResourceDTO(res, nil))
}

// =======================
// 📄 Submission milik sendiri (paginated)
// GET /api/u/resources
// =======================
func (ctrl *ResourceUserController) ListMyResources(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ResourceModel{}).
		Where("resource_created_by = ?", userID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung resource")
	}

	var rows []model.ResourceModel
	if err := ctrl.DB.
		Where("resource_created_by = ?", userID).
		Order("created_at DESC").
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
