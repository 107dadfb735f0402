package db

import (
	"attractionapi/config"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var Instance *gorm.DB

func Init(cfg *config.Config) error {
	db, err := gorm.Open(Dialector(cfg), gormConfig(cfg.DebugMode))
	if err != nil {
		return errors.Wrap(err, "open database")
	}
	Instance = db
	return nil
}

// Dialector picks MySQL, then Postgres, then SQLite depending on what is configured
func Dialector(cfg *config.Config) gorm.Dialector {
	if cfg.MySQLDSN != "" {
		return mysql.Open(cfg.MySQLDSN)
	}
	if cfg.PostgresDSN != "" {
		return postgres.Open(cfg.PostgresDSN)
	}
	return sqlite.Open(sqliteDSN(cfg.SQLiteFile))
}

// OpenSQLite is used by tests and local tooling
func OpenSQLite(file string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(sqliteDSN(file)), gormConfig(false))
}

func sqliteDSN(file string) string {
	return file + "?_foreign_keys=on"
}

func gormConfig(debug bool) *gorm.Config {
	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}
	return &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		Logger:                 gormlogger.Default.LogMode(level),
	}
}
