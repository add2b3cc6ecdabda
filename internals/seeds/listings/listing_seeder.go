package listings

import (
	"log"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"tripku_backend/internals/features/listings/model"
)

func SeedSampleListings(db *gorm.DB) {
	var count int64
	db.Model(&model.ListingModel{}).Count(&count)
	if count > 0 {
		return
	}

	samples := []model.ListingModel{
		{
			ListingName:        "Zege Forest Walk",
			ListingDescription: "Jalan kaki menyusuri hutan kopi di semenanjung Zege.",
			ListingLocation:    "Zege",
			ListingPrice:       120,
			ListingAmenities:   pq.StringArray{"guide", "boat transfer"},
			ListingStatus:      model.ListingStatusActive,
			ListingCreatedBy:   1,
		},
		{
			ListingName:        "Danau Tana Sunset Cruise",
			ListingDescription: "Pelayaran sore keliling pulau biara.",
			ListingLocation:    "Bahir Dar",
			ListingPrice:       250,
			ListingAmenities:   pq.StringArray{"boat", "snack"},
			ListingStatus:      model.ListingStatusActive,
			ListingCreatedBy:   1,
		},
	}

	for _, l := range samples {
		if err := db.Create(&l).Error; err != nil {
			log.Printf("[ERROR] Gagal seed listing %q: %v", l.ListingName, err)
		}
	}
	log.Printf("✅ Seed %d listing contoh", len(samples))
}
