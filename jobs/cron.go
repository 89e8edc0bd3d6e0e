package jobs

import (
	"log"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// HotelCacheRefresher recomputes the cached hotel listing
type HotelCacheRefresher interface {
	RefreshHotelsCache() error
}

var cacheRefresher HotelCacheRefresher

// SetHotelCacheRefresher installs the refresher used by the cron job
func SetHotelCacheRefresher(refresher HotelCacheRefresher) {
	cacheRefresher = refresher
}

// InitCronJobs registers and starts the background jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	_, err := c.AddFunc("@hourly", func() {
		if cacheRefresher == nil {
			return
		}
		if err := cacheRefresher.RefreshHotelsCache(); err != nil {
			log.Printf("Failed to refresh hotels cache: %v", err)
			return
		}
		if m != nil {
			_ = m.Broadcast([]byte(`{"event":"hotels_refreshed"}`))
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
