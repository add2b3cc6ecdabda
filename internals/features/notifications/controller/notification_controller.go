package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripku_backend/internals/features/notifications/dto"
	"tripku_backend/internals/features/notifications/model"
	helper "tripku_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// =======================
// 📄 Notifikasi milik sendiri (paginated, terbaru dulu)
// GET /api/u/notifications
// =======================
func (ctrl *NotificationController) ListMyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userID)
	if c.Query("unread") == "true" {
		q = q.Where("notification_read_at IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}

	var rows []model.NotificationModel
	if err := q.
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	resp := make([]dto.NotificationDTO, 0, len(rows))
	for _, n := range rows {
		resp = append(resp, dto.ToNotificationDTO(n))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// ✔️ Tandai sudah dibaca
// POST /api/u/notifications/:id/read
// =======================
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	now := time.Now()
	result := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ? AND notification_read_at IS NULL", id, userID).
		Update("notification_read_at", now)
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai notifikasi")
	}
	if result.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan atau sudah dibaca")
	}
	return helper.JsonOK(c, "Notifikasi dibaca", fiber.Map{"notification_id": id})
}
