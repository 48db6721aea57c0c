package cli

import (
	"fmt"
	"log"

	"github.com/diegoclair/weekly-signup/internal/config"
	"github.com/diegoclair/weekly-signup/internal/database"
	"github.com/diegoclair/weekly-signup/internal/domain/contract"
	"github.com/diegoclair/weekly-signup/internal/storage/file"
	"github.com/diegoclair/weekly-signup/internal/storage/memory"
	"github.com/diegoclair/weekly-signup/migrator/sqlite"
)

// openStore builds the configured signup store. The returned close func is never nil.
func openStore(cfg *config.Config) (contract.SignupRepo, func(), error) {
	noop := func() {}

	switch cfg.StorageBackend {
	case config.BackendFile:
		store, err := file.New(cfg.DataDir)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("Using file storage in %s", cfg.DataDir)
		return store, noop, nil

	case config.BackendSQLite:
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return nil, noop, err
		}

		log.Println("Running migrations...")
		if err := sqlite.Migrate(db.DB()); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Println("Migrations completed successfully")

		closeDB := func() {
			if err := db.Close(); err != nil {
				log.Printf("Error closing database: %v", err)
			}
		}
		return db.Signups(), closeDB, nil

	case config.BackendMemory:
		log.Println("Using in-memory storage, signups are lost on restart")
		return memory.New(), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
