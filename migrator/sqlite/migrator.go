package sqlite

import (
	"database/sql"
	"embed"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

const migrationsDir = "sql"

//go:embed sql/*.sql
var migrations embed.FS

// Migrate applies the embedded signup schema to db
func Migrate(db *sql.DB) error {
	return sqlmigrator.New(db, darwin.SqliteDialect{}).Migrate(migrations, migrationsDir)
}
