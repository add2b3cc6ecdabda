package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	listingModel "tripku_backend/internals/features/listings/model"
	notificationModel "tripku_backend/internals/features/notifications/model"
	"tripku_backend/internals/features/resources/model"
)

// newTestDB: sqlite in-memory. MaxOpenConns(1) wajib — tiap koneksi
// :memory: baru adalah database kosong yang berbeda.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.ResourceModel{},
		&listingModel.ListingModel{},
		&notificationModel.NotificationModel{},
	))
	return db
}

func seedResource(t *testing.T, db *gorm.DB, mut func(*model.ResourceModel)) *model.ResourceModel {
	t.Helper()

	res := &model.ResourceModel{
		ResourceMediaURL:  "https://cdn.example.com/media/falls.jpg",
		ResourceType:      model.ResourceTypeImage,
		ResourceCaption:   "Air Terjun Nil Biru",
		ResourceStatus:    model.ResourceStatusPending,
		ResourceCreatedBy: 7,
	}
	if mut != nil {
		mut(res)
	}
	require.NoError(t, db.Create(res).Error)
	return res
}

func reloadResource(t *testing.T, db *gorm.DB, id int) model.ResourceModel {
	t.Helper()

	var res model.ResourceModel
	require.NoError(t, db.First(&res, "resource_id = ?", id).Error)
	return res
}

func strPtr(s string) *string        { return &s }
func floatPtr(f float64) *float64    { return &f }
func intPtr(i int) *int              { return &i }
func timePtr(ts time.Time) *time.Time { return &ts }
