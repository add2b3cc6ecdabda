package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	listingModel "tripku_backend/internals/features/listings/model"
	notificationModel "tripku_backend/internals/features/notifications/model"
	"tripku_backend/internals/features/resources/dto"
	"tripku_backend/internals/features/resources/model"
)

// Panjang minimal alasan reject dalam karakter, dihitung setelah trim.
const minRejectReasonLen = 10

// ModerationService: transisi pending → approved/rejected.
// Approve sekaligus sinkronisasi listing (create / update / self-heal)
// dan SELALU melepas lock — semua dalam satu transaksi, jadi tidak pernah
// ada state setengah jadi (resource approved tapi listing tidak ada).
type ModerationService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewModerationService(db *gorm.DB) *ModerationService {
	return &ModerationService{db: db, now: time.Now}
}

// Approve menyetujui resource + merge edits + sinkron listing.
// Resource yang tidak terkunci boleh di-approve admin mana pun; lock hanya
// memproteksi sesi edit yang sedang berjalan.
func (s *ModerationService) Approve(ctx context.Context, resourceID, adminID int, edits dto.ResourceEdits) (*model.ResourceModel, *listingModel.ListingModel, error) {
	if edits.Price != nil && *edits.Price < 0 {
		return nil, nil, fiber.NewError(fiber.StatusUnprocessableEntity, "price tidak boleh negatif")
	}

	var (
		res     *model.ResourceModel
		listing *listingModel.ListingModel
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = findResourceForUpdate(tx, resourceID)
		if err != nil {
			return err
		}
		if err := s.guardPendingAndOwnership(res, adminID); err != nil {
			return err
		}

		// --- Listing sync
		listing, err = s.syncListing(tx, res, adminID, edits)
		if err != nil {
			return err
		}

		// --- Update resource: status, linkage, merge edits, clear lock (tanpa syarat)
		updates := lockClearUpdates()
		updates["resource_status"] = model.ResourceStatusApproved
		updates["resource_listing_id"] = listing.ListingID
		if edits.Description != nil {
			updates["resource_description"] = *edits.Description
		}
		if err := tx.Model(&model.ResourceModel{}).
			Where("resource_id = ?", res.ResourceID).
			Updates(updates).Error; err != nil {
			return err
		}

		// Reload ke struct kosong supaya kolom yang baru di-NULL-kan
		// tidak tertinggal nilai lama di memory (First tidak menyentuh
		// field untuk kolom NULL).
		reloaded := model.ResourceModel{}
		if err := tx.First(&reloaded, "resource_id = ?", res.ResourceID).Error; err != nil {
			return err
		}
		*res = reloaded
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.notifyDecision(ctx, res, "Media kamu disetujui",
		fmt.Sprintf("Media #%d sudah disetujui dan tayang di listing %q.", res.ResourceID, listing.ListingName))
	return res, listing, nil
}

// Reject menolak resource dengan alasan wajib (≥ 10 karakter setelah trim).
// Tidak menyentuh listing sama sekali.
func (s *ModerationService) Reject(ctx context.Context, resourceID, adminID int, reason string) (*model.ResourceModel, error) {
	reason = strings.TrimSpace(reason)
	if utf8.RuneCountInString(reason) < minRejectReasonLen {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity,
			fmt.Sprintf("reason minimal %d karakter", minRejectReasonLen))
	}

	var res *model.ResourceModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = findResourceForUpdate(tx, resourceID)
		if err != nil {
			return err
		}
		if err := s.guardPendingAndOwnership(res, adminID); err != nil {
			return err
		}

		updates := lockClearUpdates()
		updates["resource_status"] = model.ResourceStatusRejected
		updates["resource_rejection_reason"] = reason
		if err := tx.Model(&model.ResourceModel{}).
			Where("resource_id = ?", res.ResourceID).
			Updates(updates).Error; err != nil {
			return err
		}
		reloaded := model.ResourceModel{}
		if err := tx.First(&reloaded, "resource_id = ?", res.ResourceID).Error; err != nil {
			return err
		}
		*res = reloaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, res, "Media kamu ditolak",
		fmt.Sprintf("Media #%d ditolak: %s", res.ResourceID, reason))
	return res, nil
}

// guardPendingAndOwnership: cek status masih pending + lock tidak dipegang
// admin lain. Auto-expiry dievaluasi dulu (lock basi dianggap tidak ada).
func (s *ModerationService) guardPendingAndOwnership(res *model.ResourceModel, adminID int) error {
	if res.ResourceStatus != model.ResourceStatusPending {
		return fiber.NewError(fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Resource sudah diproses (status=%s)", res.ResourceStatus))
	}
	if res.LockExpired(s.now()) {
		res.ClearLock()
	}
	if res.LockedByOther(adminID) {
		return fiber.NewError(fiber.StatusForbidden,
			fmt.Sprintf("Resource sedang dikunci admin %d", *res.ResourceLockedBy))
	}
	return nil
}

// syncListing: buat listing baru kalau linkage kosong ATAU menunjuk listing
// yang sudah tidak ada (ghost reference → create-and-relink, self-healing);
// selain itu update in place.
func (s *ModerationService) syncListing(tx *gorm.DB, res *model.ResourceModel, adminID int, edits dto.ResourceEdits) (*listingModel.ListingModel, error) {
	if res.ResourceListingID != nil {
		var existing listingModel.ListingModel
		err := lockForUpdate(tx).First(&existing, "listing_id = ?", *res.ResourceListingID).Error
		switch {
		case err == nil:
			updates := map[string]any{
				"listing_media_url":  res.ResourceMediaURL,
				"listing_updated_by": adminID,
				"listing_status":     listingModel.ListingStatusActive,
			}
			if edits.Name != nil {
				updates["listing_name"] = *edits.Name
			}
			if edits.Description != nil {
				updates["listing_description"] = *edits.Description
			}
			if edits.Location != nil {
				updates["listing_location"] = *edits.Location
			}
			if edits.Price != nil {
				updates["listing_price"] = *edits.Price
			}
			if err := tx.Model(&listingModel.ListingModel{}).
				Where("listing_id = ?", existing.ListingID).
				Updates(updates).Error; err != nil {
				return nil, err
			}
			return &existing, tx.First(&existing, "listing_id = ?", existing.ListingID).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			log.Printf("[WARNING] resource %d menunjuk listing %d yang sudah hilang, buat ulang",
				res.ResourceID, *res.ResourceListingID)
			// jatuh ke create di bawah
		default:
			return nil, err
		}
	}

	name := res.ResourceCaption
	if edits.Name != nil {
		name = *edits.Name
	}
	if strings.TrimSpace(name) == "" {
		name = fmt.Sprintf("Listing #%d", res.ResourceID)
	}

	created := listingModel.ListingModel{
		ListingName:      name,
		ListingMediaURL:  res.ResourceMediaURL,
		ListingStatus:    listingModel.ListingStatusActive,
		ListingCreatedBy: res.ResourceCreatedBy,
		ListingUpdatedBy: &adminID,
	}
	if edits.Description != nil {
		created.ListingDescription = *edits.Description
	} else {
		created.ListingDescription = res.ResourceDescription
	}
	if edits.Location != nil {
		created.ListingLocation = *edits.Location
	}
	if edits.Price != nil {
		created.ListingPrice = *edits.Price
	}
	if err := tx.Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

// notifyDecision: tulis notifikasi ke uploader SETELAH commit, best-effort —
// gagal notifikasi tidak boleh membatalkan keputusan moderasi.
func (s *ModerationService) notifyDecision(ctx context.Context, res *model.ResourceModel, title, body string) {
	payload, _ := sonic.Marshal(map[string]any{
		"resource_id": res.ResourceID,
		"status":      res.ResourceStatus,
	})
	n := notificationModel.NotificationModel{
		NotificationUserID:  res.ResourceCreatedBy,
		NotificationTitle:   title,
		NotificationBody:    body,
		NotificationPayload: datatypes.JSON(payload),
	}
	if err := s.db.WithContext(ctx).Create(&n).Error; err != nil {
		log.Printf("[WARNING] gagal membuat notifikasi moderasi resource %d: %v", res.ResourceID, err)
	}
}
