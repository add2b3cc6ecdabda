package model

import (
	"time"

	"gorm.io/datatypes"
)

type NotificationModel struct {
	NotificationID      int            `gorm:"column:notification_id;primaryKey;autoIncrement" json:"notification_id"`
	NotificationUserID  int            `gorm:"column:notification_user_id;not null;index" json:"notification_user_id"`
	NotificationTitle   string         `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationBody    string         `gorm:"column:notification_body;type:text" json:"notification_body"`
	NotificationPayload datatypes.JSON `gorm:"column:notification_payload" json:"notification_payload,omitempty"`
	NotificationReadAt  *time.Time     `gorm:"column:notification_read_at" json:"notification_read_at,omitempty"`
	CreatedAt           time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
