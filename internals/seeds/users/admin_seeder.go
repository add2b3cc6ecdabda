package users

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// seedUser: baris minimal di tabel users (tabel dimiliki service auth,
// seeder ini cuma utk kredensial dev/staging).
type seedUser struct {
	UserID       int    `gorm:"column:user_id;primaryKey;autoIncrement"`
	UserName     string `gorm:"column:user_name"`
	UserEmail    string `gorm:"column:user_email;unique"`
	UserPassword string `gorm:"column:user_password"`
	UserRole     string `gorm:"column:user_role"`
}

func (seedUser) TableName() string { return "users" }

func SeedAdminUsers(db *gorm.DB) {
	admins := []seedUser{
		{UserName: "Admin Tripku", UserEmail: "admin@tripku.id", UserRole: "admin"},
		{UserName: "Owner Tripku", UserEmail: "owner@tripku.id", UserRole: "owner"},
	}

	for _, a := range admins {
		var count int64
		db.Model(&seedUser{}).Where("user_email = ?", a.UserEmail).Count(&count)
		if count > 0 {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte("tripku123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("[ERROR] Gagal hash password seed %s: %v", a.UserEmail, err)
			continue
		}
		a.UserPassword = string(hashed)

		if err := db.Create(&a).Error; err != nil {
			log.Printf("[ERROR] Gagal seed user %s: %v", a.UserEmail, err)
		} else {
			log.Printf("✅ Seed user %s (%s)", a.UserEmail, a.UserRole)
		}
	}
}
