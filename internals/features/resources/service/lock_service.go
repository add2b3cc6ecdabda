package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripku_backend/internals/features/resources/model"
)

// LockService: lock pesimis per-resource untuk sesi edit moderasi.
// Maksimal satu admin memegang lock; lock hangus sendiri setelah TTL
// (auto-expiry dievaluasi lazy di setiap operasi yang menyentuh resource).
//
// Kebenaran mutual exclusion bergantung pada load-check-update yang jalan
// di bawah satu row lock (SELECT ... FOR UPDATE) dalam satu transaksi.
type LockService struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

func NewLockService(db *gorm.DB, ttl time.Duration) *LockService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &LockService{db: db, ttl: ttl, now: time.Now}
}

func (s *LockService) TTL() time.Duration {
	return s.ttl
}

// AcquireLock mengambil (atau me-refresh) lock moderasi.
//   - lock expired milik siapa pun → dianggap tidak ada (auto-unlock)
//   - dipegang admin lain & belum expired → 409 Conflict
//   - dipegang sendiri → refresh expiry (idempoten untuk holder)
//
// Sukses mengembalikan expiry baru (now + TTL).
func (s *LockService) AcquireLock(ctx context.Context, resourceID, adminID int, reason *string) (time.Time, error) {
	var expiresAt time.Time

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res, err := findResourceForUpdate(tx, resourceID)
		if err != nil {
			return err
		}

		now := s.now()
		if res.LockExpired(now) {
			res.ClearLock()
		}
		if res.LockedByOther(adminID) {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Resource sedang direview oleh admin %d, coba lagi nanti", *res.ResourceLockedBy))
		}

		expiresAt = now.Add(s.ttl)
		return tx.Model(&model.ResourceModel{}).
			Where("resource_id = ?", res.ResourceID).
			Updates(map[string]any{
				"resource_locked_by":       adminID,
				"resource_locked_at":       now,
				"resource_lock_expires_at": expiresAt,
				"resource_lock_reason":     reason,
			}).Error
	})

	return expiresAt, err
}

// ReleaseLock melepas lock. Idempoten: kalau lock sudah expired / sudah
// kosong, release dianggap sukses (no-op). Melepas lock aktif milik admin
// lain → 403 Forbidden.
func (s *LockService) ReleaseLock(ctx context.Context, resourceID, adminID int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res, err := findResourceForUpdate(tx, resourceID)
		if err != nil {
			return err
		}

		now := s.now()
		if res.LockExpired(now) {
			// Persist auto-unlock walau pemanggil bukan holder asli.
			return tx.Model(&model.ResourceModel{}).
				Where("resource_id = ?", res.ResourceID).
				Updates(lockClearUpdates()).Error
		}

		if res.ResourceLockedBy == nil {
			return nil // sudah tidak terkunci
		}
		if *res.ResourceLockedBy != adminID {
			return fiber.NewError(fiber.StatusForbidden,
				fmt.Sprintf("Lock dipegang admin %d, tidak bisa dilepas admin lain", *res.ResourceLockedBy))
		}

		return tx.Model(&model.ResourceModel{}).
			Where("resource_id = ?", res.ResourceID).
			Updates(lockClearUpdates()).Error
	})
}

// ExpireStaleLock: best-effort auto-unlock di read path (badge "locked by"
// di listing moderasi jangan sampai menampilkan lock basi). Conditional
// update tunggal, aman tanpa transaksi.
func (s *LockService) ExpireStaleLock(ctx context.Context, resourceID int) error {
	return s.db.WithContext(ctx).Model(&model.ResourceModel{}).
		Where("resource_id = ? AND resource_lock_expires_at < ?", resourceID, s.now()).
		Updates(lockClearUpdates()).Error
}
