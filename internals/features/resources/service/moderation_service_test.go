package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	listingModel "tripku_backend/internals/features/listings/model"
	notificationModel "tripku_backend/internals/features/notifications/model"
	"tripku_backend/internals/features/resources/dto"
	"tripku_backend/internals/features/resources/model"
)

// Approve pertama membuat listing baru dan me-link balik ke resource.
func TestApprove_CreatesListingFromEdits(t *testing.T) {
	db := newTestDB(t)
	res := seedResource(t, db, nil)
	svc := NewModerationService(db)

	got, listing, err := svc.Approve(context.Background(), res.ResourceID, 3, dto.ResourceEdits{
		Name:     strPtr("Zege Forest Walk"),
		Location: strPtr("Zege"),
		Price:    floatPtr(120),
	})
	require.NoError(t, err)

	assert.Equal(t, model.ResourceStatusApproved, got.ResourceStatus)
	require.NotNil(t, got.ResourceListingID)
	assert.Equal(t, listing.ListingID, *got.ResourceListingID)

	assert.Equal(t, "Zege Forest Walk", listing.ListingName)
	assert.Equal(t, "Zege", listing.ListingLocation)
	assert.Equal(t, float64(120), listing.ListingPrice)
	assert.Equal(t, res.ResourceMediaURL, listing.ListingMediaURL)
	assert.Equal(t, listingModel.ListingStatusActive, listing.ListingStatus)
	assert.Equal(t, res.ResourceCreatedBy, listing.ListingCreatedBy)
	require.NotNil(t, listing.ListingUpdatedBy)
	assert.Equal(t, 3, *listing.ListingUpdatedBy)
}

// Tanpa edits: nama jatuh ke caption, harga 0.
func TestApprove_DefaultsNameToCaption(t *testing.T) {
	db := newTestDB(t)
	res := seedResource(t, db, nil)
	svc := NewModerationService(db)

	_, listing, err := svc.Approve(context.Background(), res.ResourceID, 3, dto.ResourceEdits{})
	require.NoError(t, err)
	assert.Equal(t, res.ResourceCaption, listing.ListingName)
	assert.Equal(t, float64(0), listing.ListingPrice)
}

// Approve selalu melepas lock, siapa pun pemegangnya.
func TestApprove_ClearsLockUnconditionally(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	res := seedResource(t, db, func(r *model.ResourceModel) {
		r.ResourceLockedBy = intPtr(5)
		r.ResourceLockedAt = timePtr(now)
		r.ResourceLockExpiresAt = timePtr(now.Add(5 * time.Minute))
		r.ResourceLockReason = strPtr("review")
	})
	svc := NewModerationService(db)

	// admin 5 sendiri yang approve
	got, _, err := svc.Approve(context.Background(), res.ResourceID, 5, dto.ResourceEdits{})
	require.NoError(t, err)
	assert.Nil(t, got.ResourceLockedBy)
	assert.Nil(t, got.ResourceLockedAt)
	assert.Nil(t, got.ResourceLockExpiresAt)
	assert.Nil(t, got.ResourceLockReason)
}

// listing_id menunjuk listing yang sudah hilang → create-and-relink.
func TestApprove_HealsGhostListingReference(t *testing.T) {
	db := newTestDB(t)
	res := seedResource(t, db, func(r *model.ResourceModel) {
		r.ResourceListingID = intPtr(9999)
	})
	svc := NewModerationService(db)

	got, listing, err := svc.Approve(context.Background(), res.ResourceID, 3, dto.ResourceEdits{
		Name: strPtr("Lalibela Rock Tour"),
	})
	require.NoError(t, err)

	require.NotNil(t, got.ResourceListingID)
	assert.NotEqual(t, 9999, *got.ResourceListingID)
	assert.Equal(t, listing.ListingID, *got.ResourceListingID)

	var count int64
	require.NoError(t, db.Model(&listingModel.ListingModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// listing_id valid → update in place, bukan bikin baru.
func TestApprove_UpdatesExistingListingInPlace(t *testing.T) {
	db := newTestDB(t)
	existing := listingModel.ListingModel{
		ListingName:      "Nama Lama",
		ListingLocation:  "Gondar",
		ListingPrice:     80,
		ListingStatus:    listingModel.ListingStatusActive,
		ListingCreatedBy: 7,
	}
	require.NoError(t, db.Create(&existing).Error)

	res := seedResource(t, db, func(r *model.ResourceModel) {
		r.ResourceListingID = intPtr(existing.ListingID)
	})
	svc := NewModerationService(db)

	got, listing, err := svc.Approve(context.Background(), res.ResourceID, 3, dto.ResourceEdits{
		Name:  strPtr("Nama Baru"),
		Price: floatPtr(95),
	})
	require.NoError(t, err)

	assert.Equal(t, existing.ListingID, listing.ListingID)
	assert.Equal(t, existing.ListingID, *got.ResourceListingID)
	assert.Equal(t, "Nama Baru", listing.ListingName)
	assert.Equal(t, float64(95), listing.ListingPrice)
	assert.Equal(t, "Gondar", listing.ListingLocation) // field tanpa edit tidak tersentuh
	assert.Equal(t, res.ResourceMediaURL, listing.ListingMediaURL)

	var count int64
	require.NoError(t, db.Model(&listingModel.ListingModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// Approve yang gagal Forbidden tidak meninggalkan perubahan apa pun.
func TestApprove_ForbiddenWhenLockedByOther(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	res := seedResource(t, db, func(r *model.ResourceModel) {
		r.ResourceLockedBy = intPtr(4)
		r.ResourceLockedAt = timePtr(now)
		r.ResourceLockExpiresAt = timePtr(now.Add(5 * time.Minute))
	})
	svc := NewModerationService(db)

	_, _, err := svc.Approve(context.Background(), res.ResourceID, 6, dto.ResourceEdits{
		Name: strPtr("Tidak Boleh"),
	})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)

	got := reloadResource(t, db, res.ResourceID)
	assert.Equal(t, model.ResourceStatusPending, got.ResourceStatus)
	require.NotNil(t, got.ResourceLockedBy)
	assert.Equal(t, 4, *got.ResourceLockedBy)
	assert.Nil(t, got.ResourceListingID)

	var count int64
	require.NoError(t, db.Model(&listingModel.ListingModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

// Skenario 2 spekulasi TTL: lock basi tidak menghalangi admin lain approve.
func TestApprove_SucceedsWhenLockExpired(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	res := seedResource(t, db, func(r *model.ResourceModel) {
		r.ResourceLockedBy = intPtr(4)
		r.ResourceLockedAt = timePtr(now.Add(-10 * time.Minute))
		r.ResourceLockExpiresAt = timePtr(now.Add(-4 * time.Minute))
	})
	svc := NewModerationService(db)

	got, _, err := svc.Approve(context.Background(), res.ResourceID, 6, dto.ResourceEdits{})
	require.NoError(t, err)
	assert.Equal(t, model.ResourceStatusApproved, got.ResourceStatus)
	assert.Nil(t, got.ResourceLockedBy)
}

func TestApprove_RejectsNegativePrice(t *testing.T) {
	db := newTestDB(t)
	res := seedResource(t, db, nil)
	svc := NewModerationService(db)

	_, _, err := svc.Approve(context.Background(), res.ResourceID, 3, dto.ResourceEdits{
		Price: floatPtr(-1),
	})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)

	got := reloadResource(t, db, res.ResourceID)
	assert.Equal(t, model.ResourceStatusPending, got.ResourceStatus)
}

func TestApprove_FailsWhenNotPending(t *testing.T) {
	db := newTestDB(t)
	res := seedResource(t, db, func(r *model.ResourceModel) {
		r.ResourceStatus = model.ResourceStatusRejected
	})
	svc := NewModerationService(db)

	_, _, err := svc.Approve(context.Background(), res.ResourceID, 3, dto.ResourceEdits{})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
}

func TestApprove_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewModerationService(db)

	_, _, err := svc.Approve(context.Background(), 404404, 3, dto.ResourceEdits{})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestApprove_NotifiesUploader(t *testing.T) {
	db := newTestDB(t)
	res := seedResource(t, db, nil)
	svc := NewModerationService(db)

	_, _, err := svc.Approve(context.Background(), res.ResourceID, 3, dto.ResourceEdits{})
	require.NoError(t, err)

	var n notificationModel.NotificationModel
	require.NoError(t, db.First(&n, "notification_user_id = ?", res.ResourceCreatedBy).Error)
	assert.Contains(t, n.NotificationTitle, "disetujui")
}

func TestReject_SetsStatusReasonAndClearsLock(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	res := seedResource(t, db, func(r *model.ResourceModel) {
		r.ResourceLockedBy = intPtr(4)
		r.ResourceLockedAt = timePtr(now)
		r.ResourceLockExpiresAt = timePtr(now.Add(5 * time.Minute))
	})
	svc := NewModerationService(db)

	got, err := svc.Reject(context.Background(), res.ResourceID, 4, "Kualitas gambar terlalu rendah untuk publikasi")
	require.NoError(t, err)

	assert.Equal(t, model.ResourceStatusRejected, got.ResourceStatus)
	require.NotNil(t, got.ResourceRejectionReason)
	assert.Equal(t, "Kualitas gambar terlalu rendah untuk publikasi", *got.ResourceRejectionReason)
	assert.Nil(t, got.ResourceLockedBy)
	assert.Nil(t, got.ResourceLockedAt)
	assert.Nil(t, got.ResourceLockExpiresAt)
	assert.Nil(t, got.ResourceListingID)

	// listing tidak pernah dibuat saat reject
	var count int64
	require.NoError(t, db.Model(&listingModel.ListingModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

// Alasan < 10 karakter (setelah trim) selalu 422 tanpa perubahan state.
func TestReject_ReasonTooShort(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	res := seedResource(t, db, func(r *model.ResourceModel) {
		r.ResourceLockedBy = intPtr(4)
		r.ResourceLockedAt = timePtr(now)
		r.ResourceLockExpiresAt = timePtr(now.Add(5 * time.Minute))
	})
	svc := NewModerationService(db)

	// "жалобатут" = 9 karakter (18 byte) — panjang dihitung per karakter,
	// bukan per byte.
	for _, reason := range []string{"bad", "   spasi   ", "", "жалобатут"} {
		_, err := svc.Reject(context.Background(), res.ResourceID, 4, reason)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe, "reason=%q", reason)
		assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
	}

	// lock masih dipegang admin 4, status tetap pending
	got := reloadResource(t, db, res.ResourceID)
	assert.Equal(t, model.ResourceStatusPending, got.ResourceStatus)
	require.NotNil(t, got.ResourceLockedBy)
	assert.Equal(t, 4, *got.ResourceLockedBy)
}

func TestReject_ForbiddenWhenLockedByOther(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	res := seedResource(t, db, func(r *model.ResourceModel) {
		r.ResourceLockedBy = intPtr(4)
		r.ResourceLockedAt = timePtr(now)
		r.ResourceLockExpiresAt = timePtr(now.Add(5 * time.Minute))
	})
	svc := NewModerationService(db)

	_, err := svc.Reject(context.Background(), res.ResourceID, 5, "Foto blur, kualitas rendah sekali")
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)

	got := reloadResource(t, db, res.ResourceID)
	assert.Equal(t, model.ResourceStatusPending, got.ResourceStatus)
}

func TestReject_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewModerationService(db)

	_, err := svc.Reject(context.Background(), 123456, 1, "Alasan panjang yang valid sekali")
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

// Resource tanpa lock boleh diputus admin mana pun.
func TestModeration_UnlockedResourceDecidableByAnyAdmin(t *testing.T) {
	db := newTestDB(t)
	res := seedResource(t, db, nil)
	svc := NewModerationService(db)

	got, _, err := svc.Approve(context.Background(), res.ResourceID, 42, dto.ResourceEdits{})
	require.NoError(t, err)
	assert.Equal(t, model.ResourceStatusApproved, got.ResourceStatus)
}

// sanity: error dari dalam transaksi membatalkan semua write.
func TestTransactionRollbackLeavesNoPartialState(t *testing.T) {
	db := newTestDB(t)
	res := seedResource(t, db, nil)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ResourceModel{}).
			Where("resource_id = ?", res.ResourceID).
			Update("resource_status", model.ResourceStatusApproved).Error; err != nil {
			return err
		}
		return fiber.NewError(fiber.StatusForbidden, "paksa rollback")
	})
	require.Error(t, err)

	got := reloadResource(t, db, res.ResourceID)
	assert.Equal(t, model.ResourceStatusPending, got.ResourceStatus)
}
