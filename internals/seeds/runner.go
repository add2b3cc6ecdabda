package seeds

import (
	"gorm.io/gorm"

	listingSeeds "tripku_backend/internals/seeds/listings"
	userSeeds "tripku_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	userSeeds.SeedAdminUsers(db)
	listingSeeds.SeedSampleListings(db)
}
