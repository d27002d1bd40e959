// Package storage provides database access and repositories
package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// New creates a new database connection
func New(databaseURL string) (*DB, error) {
	db, err := sql.Open("sqlite3", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &DB{db}, nil
}

// Migrate runs database migrations
func (db *DB) Migrate() error {
	migrations := []string{
		createAccountsTable,
		createTransactionsTable,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

const createAccountsTable = `
CREATE TABLE IF NOT EXISTS accounts (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	account_number TEXT UNIQUE NOT NULL,
	broker_name TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_accounts_number ON accounts(account_number);
`

// Decimal columns are stored as TEXT to keep exact precision; dates are
// stored as ISO calendar dates. The (account_id, import_hash) uniqueness
// is what makes re-importing the same file a no-op.
const createTransactionsTable = `
CREATE TABLE IF NOT EXISTS transactions (
	id TEXT PRIMARY KEY,
	account_id TEXT NOT NULL,
	transaction_date TEXT NOT NULL,
	ticker TEXT NOT NULL,
	asset_class TEXT NOT NULL,
	action TEXT NOT NULL,
	quantity TEXT NOT NULL DEFAULT '0',
	price TEXT NOT NULL DEFAULT '0',
	fees TEXT NOT NULL DEFAULT '0',
	total_amount TEXT NOT NULL DEFAULT '0',
	option_right TEXT,
	strike_price TEXT,
	expiry_date TEXT,
	raw_symbol TEXT,
	raw_description TEXT,
	import_hash TEXT NOT NULL,
	imported_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (account_id) REFERENCES accounts(id) ON DELETE CASCADE,
	UNIQUE (account_id, import_hash)
);

CREATE INDEX IF NOT EXISTS idx_transactions_account_id ON transactions(account_id);
CREATE INDEX IF NOT EXISTS idx_transactions_ticker ON transactions(ticker);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(transaction_date);
`
