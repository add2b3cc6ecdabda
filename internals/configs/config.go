package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string

	// ResourceLockTTL: lama lock moderasi resource sebelum auto-expire.
	// Default 5 menit, bisa dioverride via RESOURCE_LOCK_TTL_MINUTES.
	ResourceLockTTL time.Duration
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	ResourceLockTTL = 5 * time.Minute
	if v := os.Getenv("RESOURCE_LOCK_TTL_MINUTES"); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m > 0 {
			ResourceLockTTL = time.Duration(m) * time.Minute
			log.Printf("✅ RESOURCE_LOCK_TTL_MINUTES = %d", m)
		} else {
			log.Printf("⚠️ RESOURCE_LOCK_TTL_MINUTES tidak valid (%q), pakai default 5 menit", v)
		}
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
