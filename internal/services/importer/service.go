package importer

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/findosh/tradebook/internal/models"
	"github.com/google/uuid"
)

var (
	ErrNoAccount       = errors.New("account id is required")
	ErrAccountNotFound = errors.New("account not found")
)

// AccountDirectory resolves account identifiers. A nil account with a nil
// error means the account does not exist.
type AccountDirectory interface {
	GetByID(id uuid.UUID) (*models.Account, error)
}

// TransactionBatch is one open storage transaction. Added records are
// staged and become visible only on Commit; Rollback discards all of them.
type TransactionBatch interface {
	// Add stages a transaction, reporting false if it was dropped as a
	// duplicate of an already persisted row.
	Add(t *models.Transaction) (bool, error)
	Commit() error
	Rollback() error
}

// TransactionStore opens transaction batches against storage
type TransactionStore interface {
	Begin() (TransactionBatch, error)
}

// ImportResult summarizes one batch import
type ImportResult struct {
	// Imported holds the transactions that were actually persisted
	Imported []models.Transaction
	// Rejected counts records that failed entity-level validation
	Rejected int
	// Duplicates counts records already present from a prior import
	Duplicates int
}

// ImportService validates normalized transactions against an account and
// persists them as one atomic batch.
type ImportService struct {
	accounts AccountDirectory
	store    TransactionStore
}

// NewImportService creates a new import service
func NewImportService(accounts AccountDirectory, store TransactionStore) *ImportService {
	return &ImportService{accounts: accounts, store: store}
}

// ImportBatch persists the valid subset of records into the account.
// The whole accepted set commits as one unit: a commit failure rolls back
// everything and is returned as a hard error. Per-record validation
// failures never abort the batch; they are counted and logged.
func (s *ImportService) ImportBatch(accountID uuid.UUID, records []models.Transaction) (*ImportResult, error) {
	if accountID == uuid.Nil {
		return nil, ErrNoAccount
	}

	account, err := s.accounts.GetByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	}

	result := &ImportResult{}
	if len(records) == 0 {
		return result, nil
	}

	batch, err := s.store.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin batch: %w", err)
	}

	now := time.Now().UTC()
	for i := range records {
		tx := records[i]

		if reason := validateRecord(&tx); reason != "" {
			result.Rejected++
			log.Printf("rejecting %s %s transaction: %s", tx.Date.Format("2006-01-02"), tx.Ticker, reason)
			continue
		}

		tx.ID = uuid.New()
		tx.AccountID = accountID
		tx.ImportedAt = now

		inserted, err := batch.Add(&tx)
		if err != nil {
			batch.Rollback()
			return nil, fmt.Errorf("failed to stage transaction: %w", err)
		}
		if !inserted {
			result.Duplicates++
			continue
		}
		result.Imported = append(result.Imported, tx)
	}

	if err := batch.Commit(); err != nil {
		batch.Rollback()
		return nil, fmt.Errorf("failed to commit batch: %w", err)
	}

	return result, nil
}

// validateRecord applies entity-level acceptance rules, returning a
// rejection reason or "" when the record is acceptable.
func validateRecord(t *models.Transaction) string {
	if t.Action == "" {
		return "missing action"
	}
	if t.Date.IsZero() {
		return "missing date"
	}
	if t.Ticker == "" {
		return "missing ticker"
	}
	// A trade with zero quantity carries no economic meaning. Cash-class
	// records keep zero quantities (dividends, interest).
	if t.Action.IsTrade() && t.AssetClass != models.AssetClassCash && t.Quantity.IsZero() {
		return "zero quantity on trade action"
	}
	if t.IsOption() && !t.HasOptionTerms() {
		return "incomplete option contract terms"
	}
	return ""
}
