package storage

import (
	"database/sql"

	"github.com/findosh/tradebook/internal/models"
	"github.com/google/uuid"
)

// AccountRepository provides account data access
type AccountRepository struct {
	db *DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts a new account
func (r *AccountRepository) Create(a *models.Account) error {
	query := `
		INSERT INTO accounts (id, name, account_number, broker_name, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		a.ID.String(),
		a.Name,
		a.AccountNumber,
		a.BrokerName,
		a.CreatedAt,
	)
	return err
}

// GetByID retrieves an account by ID; returns nil when absent
func (r *AccountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	query := `
		SELECT id, name, account_number, broker_name, created_at
		FROM accounts WHERE id = ?
	`
	return scanAccount(r.db.QueryRow(query, id.String()))
}

// GetByNumber retrieves an account by its account number; returns nil when absent
func (r *AccountRepository) GetByNumber(accountNumber string) (*models.Account, error) {
	query := `
		SELECT id, name, account_number, broker_name, created_at
		FROM accounts WHERE account_number = ?
	`
	return scanAccount(r.db.QueryRow(query, accountNumber))
}

// List retrieves all accounts ordered by creation time
func (r *AccountRepository) List() ([]*models.Account, error) {
	query := `
		SELECT id, name, account_number, broker_name, created_at
		FROM accounts ORDER BY created_at
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		var a models.Account
		var id string
		if err := rows.Scan(&id, &a.Name, &a.AccountNumber, &a.BrokerName, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.ID, _ = uuid.Parse(id)
		accounts = append(accounts, &a)
	}

	return accounts, rows.Err()
}

func scanAccount(row *sql.Row) (*models.Account, error) {
	var a models.Account
	var id string

	err := row.Scan(&id, &a.Name, &a.AccountNumber, &a.BrokerName, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	a.ID, _ = uuid.Parse(id)
	return &a, nil
}
