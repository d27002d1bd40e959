package models

import (
	"time"

	"github.com/google/uuid"
)

// Account is a brokerage account transactions are imported into
type Account struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`           // e.g., "Schwab IRA"
	AccountNumber string    `json:"account_number"` // unique per account
	BrokerName    string    `json:"broker_name"`    // e.g., "schwab"
	CreatedAt     time.Time `json:"created_at"`
}

// NewAccount creates a new account with generated ID
func NewAccount(name, accountNumber, brokerName string) *Account {
	return &Account{
		ID:            uuid.New(),
		Name:          name,
		AccountNumber: accountNumber,
		BrokerName:    brokerName,
		CreatedAt:     time.Now().UTC(),
	}
}
