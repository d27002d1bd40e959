// Package cli implements the tradebook command line application.
package cli

import (
	"flag"
	"fmt"

	"github.com/findosh/tradebook/internal/config"
	"github.com/findosh/tradebook/internal/storage"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&migrateCmd{}, "database")

	c.Register(&addAccountCmd{}, "accounts")
	c.Register(&accountsCmd{}, "accounts")

	c.Register(&importCmd{}, "transactions")
	c.Register(&transactionsCmd{}, "transactions")
}

// As a CLI application it has a very short lived lifecycle, so a global
// flag for the database path is fine.
var dbPath = flag.String("db", "", "path to the sqlite database (defaults to TRADEBOOK_DATABASE_URL)")

// openDB opens the configured database and ensures the schema exists.
func openDB() (*storage.DB, error) {
	path := *dbPath
	if path == "" {
		path = config.Load().DatabaseURL
	}

	db, err := storage.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database %q: %w", path, err)
	}
	return db, nil
}
