package services

import (
	"time"

	"stayhub/config"
	"stayhub/errors"
	"stayhub/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	HotelsCacheKey = "hotels:all"
	HotelsCacheTTL = 60 * time.Minute
)

// LoadHotels returns all hotels with rooms, served from the Redis cache when
// possible. rdb may be nil (cache bypass).
func LoadHotels(db *gorm.DB, rdb *redis.Client) ([]models.Hotel, error) {
	var hotels []models.Hotel

	if rdb != nil {
		if err := GetFromRedis(config.Ctx, rdb, HotelsCacheKey, &hotels); err == nil && len(hotels) > 0 {
			return hotels, nil
		}
	}

	if err := db.Preload("Rooms").Find(&hotels).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not load hotels", err)
	}

	if rdb != nil {
		_ = SetToRedis(config.Ctx, rdb, HotelsCacheKey, hotels, HotelsCacheTTL)
	}
	return hotels, nil
}

// RefreshHotelsCache recomputes the cached hotel list. Called by the cron job
// and after hotel/room writes.
func RefreshHotelsCache(db *gorm.DB, rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}

	var hotels []models.Hotel
	if err := db.Preload("Rooms").Find(&hotels).Error; err != nil {
		return err
	}
	return SetToRedis(config.Ctx, rdb, HotelsCacheKey, hotels, HotelsCacheTTL)
}

// InvalidateHotelsCache drops the cached hotel list after a write
func InvalidateHotelsCache(rdb *redis.Client) {
	if rdb == nil {
		return
	}
	_ = DeleteFromRedis(config.Ctx, rdb, HotelsCacheKey)
}

// HotelCacheJob adapts the cache refresh for the cron scheduler
type HotelCacheJob struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func (j HotelCacheJob) RefreshHotelsCache() error {
	return RefreshHotelsCache(j.DB, j.RDB)
}

// DistinctCities lists the distinct non-empty hotel cities
func DistinctCities(db *gorm.DB) ([]string, error) {
	var cities []string
	err := db.Model(&models.Hotel{}).
		Where("city <> ''").
		Distinct().
		Pluck("city", &cities).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not list cities", err)
	}
	return cities, nil
}

// FindManagedHotel returns the hotel managed by userID, or ErrNotManager
func FindManagedHotel(db *gorm.DB, userID uint) (models.Hotel, error) {
	var hotel models.Hotel
	err := db.Preload("Rooms").Where("manager_id = ?", userID).First(&hotel).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return models.Hotel{}, errors.NewAppError(errors.ErrCodeForbidden,
				"Access Denied: You are not assigned to manage any hotel.", errors.ErrNotManager)
		}
		return models.Hotel{}, errors.NewAppError(errors.ErrCodeDBError, "Could not load hotel", err)
	}
	return hotel, nil
}
