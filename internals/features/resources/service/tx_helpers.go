package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripku_backend/internals/features/resources/model"
)

// lockForUpdate menambahkan SELECT ... FOR UPDATE. Dilewati kalau dialect
// bukan postgres: sqlite (dipakai unit test) tidak mengenal klausa itu dan
// menserialisasi write sendiri.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// findResourceForUpdate mengambil resource dgn row lock di dalam transaksi.
func findResourceForUpdate(tx *gorm.DB, resourceID int) (*model.ResourceModel, error) {
	var res model.ResourceModel
	if err := lockForUpdate(tx).First(&res, "resource_id = ?", resourceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Resource tidak ditemukan")
		}
		return nil, err
	}
	return &res, nil
}

// lockClearUpdates: map update untuk mengosongkan seluruh field lock.
// Pakai map (bukan struct) supaya nilai NULL benar-benar tertulis.
func lockClearUpdates() map[string]any {
	return map[string]any{
		"resource_locked_by":       nil,
		"resource_locked_at":       nil,
		"resource_lock_expires_at": nil,
		"resource_lock_reason":     nil,
	}
}
