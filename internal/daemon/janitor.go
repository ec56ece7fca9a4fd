package daemon

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barcode-maker/barcode-maker/internal/db/controller/profile"
	"github.com/barcode-maker/barcode-maker/internal/db/controller/setting"
	"github.com/barcode-maker/barcode-maker/internal/metrics"
)

const janitorInterval = time.Hour

// runJanitor drops profiles not updated within ttl until stop is closed.
// A ttl of 0 keeps profiles forever.
func runJanitor(db *gorm.DB, ttl time.Duration, stop <-chan struct{}) {
	if ttl <= 0 {
		return
	}

	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		purgeProfiles(db, ttl, time.Now())

		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

func purgeProfiles(db *gorm.DB, ttl time.Duration, now time.Time) int64 {
	n, err := setting.PurgeOlderThan(db, profile.SettingKeyPrefix, now.Add(-ttl))
	if err != nil {
		log.Error().Err(err).Msg("failed to purge stale profiles")
		return 0
	}

	if n > 0 {
		log.Info().Int64("profiles", n).Dur("ttl", ttl).Msg("purged stale profiles")
	}

	if left, err := profile.Count(db); err != nil {
		log.Error().Err(err).Msg("failed to count profiles")
	} else {
		metrics.SetProfiles(left)
	}

	return n
}
