package model

import "time"

// Status moderasi resource. Transisi hanya pending → approved / rejected.
const (
	ResourceStatusPending  = "pending"
	ResourceStatusApproved = "approved"
	ResourceStatusRejected = "rejected"
)

const (
	ResourceTypeImage = "image"
	ResourceTypeVideo = "video"
)

type ResourceModel struct {
	ResourceID          int    `gorm:"column:resource_id;primaryKey;autoIncrement" json:"resource_id"`
	ResourceMediaURL    string `gorm:"column:resource_media_url;type:text;not null" json:"resource_media_url"`
	ResourceType        string `gorm:"column:resource_type;type:varchar(10);not null;default:'image'" json:"resource_type"`
	ResourceCaption     string `gorm:"column:resource_caption;type:varchar(255)" json:"resource_caption"`
	ResourceDescription string `gorm:"column:resource_description;type:text" json:"resource_description"`

	ResourceStatus          string  `gorm:"column:resource_status;type:varchar(20);not null;default:'pending';index" json:"resource_status"`
	ResourceRejectionReason *string `gorm:"column:resource_rejection_reason;type:text" json:"resource_rejection_reason,omitempty"`

	// Lock moderasi — diisi/dikosongkan atomik sebagai satu triple
	// (locked_by non-null ⇔ locked_at & lock_expires_at non-null).
	ResourceLockedBy      *int       `gorm:"column:resource_locked_by" json:"resource_locked_by,omitempty"`
	ResourceLockedAt      *time.Time `gorm:"column:resource_locked_at" json:"resource_locked_at,omitempty"`
	ResourceLockExpiresAt *time.Time `gorm:"column:resource_lock_expires_at" json:"resource_lock_expires_at,omitempty"`
	ResourceLockReason    *string    `gorm:"column:resource_lock_reason;type:varchar(255)" json:"resource_lock_reason,omitempty"`

	// Null sampai approval pertama membuat listing (atau pre-set kalau
	// resource ini revisi media untuk listing yang sudah ada).
	ResourceListingID *int `gorm:"column:resource_listing_id;index" json:"resource_listing_id,omitempty"`

	ResourceCreatedBy int `gorm:"column:resource_created_by;not null;index" json:"resource_created_by"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ResourceModel) TableName() string {
	return "resources"
}

// LockExpired: lock dianggap hangus kalau lock_expires_at sudah lewat.
func (m *ResourceModel) LockExpired(now time.Time) bool {
	return m.ResourceLockExpiresAt != nil && m.ResourceLockExpiresAt.Before(now)
}

func (m *ResourceModel) LockedByOther(adminID int) bool {
	return m.ResourceLockedBy != nil && *m.ResourceLockedBy != adminID
}

// ClearLock mengosongkan seluruh field lock (in-memory; persist via Updates).
func (m *ResourceModel) ClearLock() {
	m.ResourceLockedBy = nil
	m.ResourceLockedAt = nil
	m.ResourceLockExpiresAt = nil
	m.ResourceLockReason = nil
}
