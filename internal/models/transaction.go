package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetClass categorizes a transaction's instrument
type AssetClass string

const (
	AssetClassEquity AssetClass = "equity"
	AssetClassOption AssetClass = "option"
	AssetClassCash   AssetClass = "cash"
)

// ActionType is the normalized economic intent of a transaction,
// independent of broker-specific wording.
type ActionType string

const (
	ActionBuy         ActionType = "buy"
	ActionSell        ActionType = "sell"
	ActionBuyToOpen   ActionType = "buy_to_open"
	ActionSellToOpen  ActionType = "sell_to_open"
	ActionBuyToClose  ActionType = "buy_to_close"
	ActionSellToClose ActionType = "sell_to_close"
	ActionDividend    ActionType = "dividend"
	ActionInterest    ActionType = "interest"

	// Reserved for future broker exports; no parser emits these yet.
	ActionFee        ActionType = "fee"
	ActionExercise   ActionType = "exercise"
	ActionAssignment ActionType = "assignment"
	ActionExpiration ActionType = "expiration"
)

// IsTrade returns true for actions that change a position
func (a ActionType) IsTrade() bool {
	switch a {
	case ActionBuy, ActionSell,
		ActionBuyToOpen, ActionSellToOpen,
		ActionBuyToClose, ActionSellToClose:
		return true
	}
	return false
}

// IsOpenClose returns true for the option-style open/close actions
func (a ActionType) IsOpenClose() bool {
	switch a {
	case ActionBuyToOpen, ActionSellToOpen, ActionBuyToClose, ActionSellToClose:
		return true
	}
	return false
}

// IsDistribution returns true for cash distributions (dividends, interest)
func (a ActionType) IsDistribution() bool {
	return a == ActionDividend || a == ActionInterest
}

// OptionRight is whether an option contract is a call or a put
type OptionRight string

const (
	RightCall OptionRight = "call"
	RightPut  OptionRight = "put"
)

// Transaction is a normalized broker transaction. Quantity, price and fees
// are stored as non-negative magnitudes; direction is carried by Action and
// by TotalAmount's sign. TotalAmount keeps the broker-reported net cash
// effect with its source sign and is never recomputed from quantity*price.
type Transaction struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`

	Date       time.Time  `json:"date"` // calendar date, no time component
	Ticker     string     `json:"ticker"`
	AssetClass AssetClass `json:"asset_class"`
	Action     ActionType `json:"action"`

	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Fees        decimal.Decimal `json:"fees"`
	TotalAmount decimal.Decimal `json:"total_amount"`

	// Option contract terms, set iff AssetClass == AssetClassOption.
	// For options Ticker holds the underlying's symbol, never the
	// contract symbol.
	OptionRight OptionRight     `json:"option_right,omitempty"`
	StrikePrice decimal.Decimal `json:"strike_price,omitempty"`
	ExpiryDate  time.Time       `json:"expiry_date,omitempty"`

	// Raw broker fields retained for audit
	RawSymbol      string `json:"raw_symbol"`
	RawDescription string `json:"raw_description"`

	// ImportHash is a deterministic digest of the source row, used to
	// dedupe re-imports of the same file.
	ImportHash string `json:"import_hash"`

	ImportedAt time.Time `json:"imported_at"`
}

// HasOptionTerms reports whether all three contract-term fields are set
func (t *Transaction) HasOptionTerms() bool {
	return t.OptionRight != "" && t.StrikePrice.IsPositive() && !t.ExpiryDate.IsZero()
}

// IsOption returns true if the transaction is on an option contract
func (t *Transaction) IsOption() bool {
	return t.AssetClass == AssetClassOption
}
