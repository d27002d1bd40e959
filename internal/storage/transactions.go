package storage

import (
	"database/sql"
	"time"

	"github.com/findosh/tradebook/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateFormat = "2006-01-02"

// TransactionRepository provides transaction data access
type TransactionRepository struct {
	db *DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Batch is one open storage transaction: staged inserts become visible
// only on Commit, and Rollback discards all of them.
type Batch struct {
	tx *sql.Tx
}

// Begin opens a new batch
func (r *TransactionRepository) Begin() (*Batch, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	return &Batch{tx: tx}, nil
}

// Add stages a transaction. Returns false when the row is a duplicate of
// an already persisted import (same account and import hash).
func (b *Batch) Add(t *models.Transaction) (bool, error) {
	query := `
		INSERT INTO transactions (
			id, account_id, transaction_date, ticker, asset_class, action,
			quantity, price, fees, total_amount,
			option_right, strike_price, expiry_date,
			raw_symbol, raw_description, import_hash, imported_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (account_id, import_hash) DO NOTHING
	`

	var right, strike, expiry interface{}
	if t.IsOption() {
		right = string(t.OptionRight)
		strike = t.StrikePrice.String()
		expiry = t.ExpiryDate.Format(dateFormat)
	}

	res, err := b.tx.Exec(query,
		t.ID.String(),
		t.AccountID.String(),
		t.Date.Format(dateFormat),
		t.Ticker,
		string(t.AssetClass),
		string(t.Action),
		t.Quantity.String(),
		t.Price.String(),
		t.Fees.String(),
		t.TotalAmount.String(),
		right,
		strike,
		expiry,
		t.RawSymbol,
		t.RawDescription,
		t.ImportHash,
		t.ImportedAt,
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Commit makes the staged transactions durable
func (b *Batch) Commit() error {
	return b.tx.Commit()
}

// Rollback discards the staged transactions. Safe to call after a failed
// Commit.
func (b *Batch) Rollback() error {
	return b.tx.Rollback()
}

// ListByAccount retrieves all transactions for an account ordered by date
func (r *TransactionRepository) ListByAccount(accountID uuid.UUID) ([]models.Transaction, error) {
	query := `
		SELECT id, account_id, transaction_date, ticker, asset_class, action,
			quantity, price, fees, total_amount,
			option_right, strike_price, expiry_date,
			raw_symbol, raw_description, import_hash, imported_at
		FROM transactions WHERE account_id = ?
		ORDER BY transaction_date, imported_at
	`
	rows, err := r.db.Query(query, accountID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		t, err := scanTransactionRow(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *t)
	}

	return transactions, rows.Err()
}

func scanTransactionRow(rows *sql.Rows) (*models.Transaction, error) {
	var t models.Transaction
	var id, accountID, date string
	var quantity, price, fees, totalAmount string
	var assetClass, action string
	var right, strike, expiry, rawSymbol, rawDescription sql.NullString

	err := rows.Scan(
		&id, &accountID, &date, &t.Ticker, &assetClass, &action,
		&quantity, &price, &fees, &totalAmount,
		&right, &strike, &expiry,
		&rawSymbol, &rawDescription, &t.ImportHash, &t.ImportedAt,
	)
	if err != nil {
		return nil, err
	}

	t.ID, _ = uuid.Parse(id)
	t.AccountID, _ = uuid.Parse(accountID)
	t.Date, _ = time.Parse(dateFormat, date)
	t.AssetClass = models.AssetClass(assetClass)
	t.Action = models.ActionType(action)
	t.Quantity, _ = decimal.NewFromString(quantity)
	t.Price, _ = decimal.NewFromString(price)
	t.Fees, _ = decimal.NewFromString(fees)
	t.TotalAmount, _ = decimal.NewFromString(totalAmount)

	if right.Valid {
		t.OptionRight = models.OptionRight(right.String)
	}
	if strike.Valid {
		t.StrikePrice, _ = decimal.NewFromString(strike.String)
	}
	if expiry.Valid {
		t.ExpiryDate, _ = time.Parse(dateFormat, expiry.String)
	}
	if rawSymbol.Valid {
		t.RawSymbol = rawSymbol.String
	}
	if rawDescription.Valid {
		t.RawDescription = rawDescription.String
	}

	return &t, nil
}
