package dto

import (
	"time"

	"gorm.io/datatypes"

	"tripku_backend/internals/features/notifications/model"
)

type NotificationDTO struct {
	NotificationID      int            `json:"notification_id"`
	NotificationTitle   string         `json:"notification_title"`
	NotificationBody    string         `json:"notification_body"`
	NotificationPayload datatypes.JSON `json:"notification_payload,omitempty"`
	NotificationReadAt  *time.Time     `json:"notification_read_at,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
}

func ToNotificationDTO(m model.NotificationModel) NotificationDTO {
	return NotificationDTO{
		NotificationID:      m.NotificationID,
		NotificationTitle:   m.NotificationTitle,
		NotificationBody:    m.NotificationBody,
		NotificationPayload: m.NotificationPayload,
		NotificationReadAt:  m.NotificationReadAt,
		CreatedAt:           m.CreatedAt,
	}
}
