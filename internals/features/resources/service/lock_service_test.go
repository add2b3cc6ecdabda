package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lockTTL = 5 * time.Minute

func TestAcquireLock_SetsTripleAndReturnsExpiry(t *testing.T) {
	db := newTestDB(t)
	res := seedResource(t, db, nil)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := NewLockService(db, lockTTL)
	svc.now = func() time.Time { return now }

	expiresAt, err := svc.AcquireLock(context.Background(), res.ResourceID, 1, strPtr("cek kualitas foto"))
	require.NoError(t, err)
	assert.Equal(t, now.Add(lockTTL), expiresAt)

	got := reloadResource(t, db, res.ResourceID)
	require.NotNil(t, got.ResourceLockedBy)
	assert.Equal(t, 1, *got.ResourceLockedBy)
	require.NotNil(t, got.ResourceLockedAt)
	require.NotNil(t, got.ResourceLockExpiresAt)
	assert.True(t, got.ResourceLockExpiresAt.Equal(now.Add(lockTTL)))
	require.NotNil(t, got.ResourceLockReason)
	assert.Equal(t, "cek kualitas foto", *got.ResourceLockReason)
}

func TestAcquireLock_ConflictWhenHeldByOther(t *testing.T) {
	db := newTestDB(t)
	res := seedResource(t, db, nil)

	svc := NewLockService(db, lockTTL)
	_, err := svc.AcquireLock(context.Background(), res.ResourceID, 1, nil)
	require.NoError(t, err)

	_, err = svc.AcquireLock(context.Background(), res.ResourceID, 2, nil)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
	assert.Contains(t, fe.Message, "admin 1")

	// pemegang lock tidak berubah
	got := reloadResource(t, db, res.ResourceID)
	require.NotNil(t, got.ResourceLockedBy)
	assert.Equal(t, 1, *got.ResourceLockedBy)
}

func TestAcquireLock_SameAdminRefreshesExpiry(t *testing.T) {
	db := newTestDB(t)
	res := seedResource(t, db, nil)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := NewLockService(db, lockTTL)
	svc.now = func() time.Time { return now }

	first, err := svc.AcquireLock(context.Background(), res.ResourceID, 1, nil)
	require.NoError(t, err)

	// 2 menit kemudian, admin yang sama re-acquire
	svc.now = func() time.Time { return now.Add(2 * time.Minute) }
	second, err := svc.AcquireLock(context.Background(), res.ResourceID, 1, nil)
	require.NoError(t, err)
	assert.True(t, second.After(first))

	got := reloadResource(t, db, res.ResourceID)
	assert.Equal(t, 1, *got.ResourceLockedBy)
}

// Lock yang sudah lewat TTL diperlakukan seperti tidak ada.
func TestAcquireLock_ExpiredLockIsTakenOver(t *testing.T) {
	db := newTestDB(t)
	res := seedResource(t, db, nil)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := NewLockService(db, lockTTL)
	svc.now = func() time.Time { return now }
	_, err := svc.AcquireLock(context.Background(), res.ResourceID, 1, nil)
	require.NoError(t, err)

	// +6 menit: lock admin 1 sudah hangus, admin 2 boleh masuk
	svc.now = func() time.Time { return now.Add(6 * time.Minute) }
	_, err = svc.AcquireLock(context.Background(), res.ResourceID, 2, nil)
	require.NoError(t, err)

	got := reloadResource(t, db, res.ResourceID)
	require.NotNil(t, got.ResourceLockedBy)
	assert.Equal(t, 2, *got.ResourceLockedBy)
}

func TestAcquireLock_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewLockService(db, lockTTL)

	_, err := svc.AcquireLock(context.Background(), 9999, 1, nil)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

// Dua admin berebut resource yang sama → tepat satu yang menang.
func TestAcquireLock_ConcurrentAcquireSingleWinner(t *testing.T) {
	db := newTestDB(t)
	res := seedResource(t, db, nil)
	svc := NewLockService(db, lockTTL)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(adminID int) {
			defer wg.Done()
			_, errs[adminID-1] = svc.AcquireLock(context.Background(), res.ResourceID, adminID, nil)
		}(i + 1)
	}
	wg.Wait()

	winners, conflicts := 0, 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusConflict, fe.Code)
		conflicts++
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, 1, conflicts)
}

func TestReleaseLock_ByHolderClearsTriple(t *testing.T) {
	db := newTestDB(t)
	res := seedResource(t, db, nil)
	svc := NewLockService(db, lockTTL)

	_, err := svc.AcquireLock(context.Background(), res.ResourceID, 1, strPtr("review"))
	require.NoError(t, err)
	require.NoError(t, svc.ReleaseLock(context.Background(), res.ResourceID, 1))

	got := reloadResource(t, db, res.ResourceID)
	assert.Nil(t, got.ResourceLockedBy)
	assert.Nil(t, got.ResourceLockedAt)
	assert.Nil(t, got.ResourceLockExpiresAt)
	assert.Nil(t, got.ResourceLockReason)
}

func TestReleaseLock_ForbiddenForNonHolder(t *testing.T) {
	db := newTestDB(t)
	res := seedResource(t, db, nil)
	svc := NewLockService(db, lockTTL)

	_, err := svc.AcquireLock(context.Background(), res.ResourceID, 1, nil)
	require.NoError(t, err)

	err = svc.ReleaseLock(context.Background(), res.ResourceID, 2)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)

	got := reloadResource(t, db, res.ResourceID)
	require.NotNil(t, got.ResourceLockedBy)
	assert.Equal(t, 1, *got.ResourceLockedBy)
}

// Release lock yang sudah expired sukses (no-op) walau bukan holder.
func TestReleaseLock_IdempotentAfterExpiry(t *testing.T) {
	db := newTestDB(t)
	res := seedResource(t, db, nil)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := NewLockService(db, lockTTL)
	svc.now = func() time.Time { return now }
	_, err := svc.AcquireLock(context.Background(), res.ResourceID, 1, nil)
	require.NoError(t, err)

	svc.now = func() time.Time { return now.Add(10 * time.Minute) }
	require.NoError(t, svc.ReleaseLock(context.Background(), res.ResourceID, 2))

	// auto-unlock ikut dipersist
	got := reloadResource(t, db, res.ResourceID)
	assert.Nil(t, got.ResourceLockedBy)
	assert.Nil(t, got.ResourceLockExpiresAt)
}

func TestReleaseLock_AlreadyUnlockedIsNoop(t *testing.T) {
	db := newTestDB(t)
	res := seedResource(t, db, nil)
	svc := NewLockService(db, lockTTL)

	require.NoError(t, svc.ReleaseLock(context.Background(), res.ResourceID, 3))
}

func TestExpireStaleLock_ClearsOnlyExpired(t *testing.T) {
	db := newTestDB(t)

	now := time.Now()
	stale := seedResource(t, db, nil)
	fresh := seedResource(t, db, nil)
	svc := NewLockService(db, lockTTL)

	// stale: expiry di masa lalu
	require.NoError(t, db.Model(stale).Updates(map[string]any{
		"resource_locked_by":       9,
		"resource_locked_at":       now.Add(-10 * time.Minute),
		"resource_lock_expires_at": now.Add(-5 * time.Minute),
	}).Error)
	// fresh: masih berlaku
	require.NoError(t, db.Model(fresh).Updates(map[string]any{
		"resource_locked_by":       9,
		"resource_locked_at":       now,
		"resource_lock_expires_at": now.Add(5 * time.Minute),
	}).Error)

	require.NoError(t, svc.ExpireStaleLock(context.Background(), stale.ResourceID))
	require.NoError(t, svc.ExpireStaleLock(context.Background(), fresh.ResourceID))

	assert.Nil(t, reloadResource(t, db, stale.ResourceID).ResourceLockedBy)
	assert.NotNil(t, reloadResource(t, db, fresh.ResourceID).ResourceLockedBy)
}
