// Package dsn provides Data Source Name construction and driver selection
// for database connections.
package dsn

import (
	"fmt"

	"github.com/glebarez/sqlite"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/olatundun-care/sitecms/internal/config"
)

// Create builds the Data Source Name from the configuration.
func Create(dbCfg *config.Config) string {
	switch dbCfg.DB.Driver {
	case config.DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			dbCfg.DB.User,
			dbCfg.DB.Password,
			dbCfg.DB.Host,
			dbCfg.DB.Port,
			dbCfg.DB.Name,
			dbCfg.DB.Extras,
		)
	case config.DriverPostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s %s",
			dbCfg.DB.Host,
			dbCfg.DB.Port,
			dbCfg.DB.User,
			dbCfg.DB.Password,
			dbCfg.DB.Name,
			dbCfg.DB.Extras,
		)
	default:
		return dbCfg.DB.Path
	}
}

// Open selects the gorm driver matching the configured database driver.
func Open(dbCfg *config.Config) gorm.Dialector {
	switch dbCfg.DB.Driver {
	case config.DriverMySQL:
		return gormmysql.Open(Create(dbCfg))
	case config.DriverPostgres:
		return gormpostgres.Open(Create(dbCfg))
	default:
		return sqlite.Open(Create(dbCfg))
	}
}
