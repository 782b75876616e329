package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/olatundun-care/sitecms/internal/db/controller/setting"
	"github.com/olatundun-care/sitecms/internal/site"
)

// seed populates missing settings with the default record and rolls forward
// known-stale placeholder values. Both steps are idempotent, so seeding runs
// on every boot.
func seed(db *gorm.DB) {
	if err := setting.SeedDefaults(db, site.DefaultRecord()); err != nil {
		log.Fatal().Err(err).Msg("failed to seed default settings")
		return
	}

	for _, m := range site.StaleValueMigrations() {
		if err := setting.MigrateStaleValue(db, m.Key, m.Old, m.New); err != nil {
			log.Fatal().Err(err).Str("key", m.Key).Msg("failed to migrate stale setting value")
			return
		}
	}
}
