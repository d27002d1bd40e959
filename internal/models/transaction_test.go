package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestActionType_IsTrade(t *testing.T) {
	trades := []ActionType{
		ActionBuy, ActionSell,
		ActionBuyToOpen, ActionSellToOpen,
		ActionBuyToClose, ActionSellToClose,
	}
	for _, a := range trades {
		if !a.IsTrade() {
			t.Errorf("%s should be a trade", a)
		}
	}

	nonTrades := []ActionType{ActionDividend, ActionInterest, ActionFee, ActionExpiration}
	for _, a := range nonTrades {
		if a.IsTrade() {
			t.Errorf("%s should not be a trade", a)
		}
	}
}

func TestActionType_IsOpenClose(t *testing.T) {
	tests := []struct {
		action ActionType
		want   bool
	}{
		{ActionBuyToOpen, true},
		{ActionSellToOpen, true},
		{ActionBuyToClose, true},
		{ActionSellToClose, true},
		{ActionBuy, false},
		{ActionSell, false},
		{ActionDividend, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			if got := tt.action.IsOpenClose(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestActionType_IsDistribution(t *testing.T) {
	if !ActionDividend.IsDistribution() || !ActionInterest.IsDistribution() {
		t.Error("dividend and interest are distributions")
	}
	if ActionBuy.IsDistribution() {
		t.Error("buy is not a distribution")
	}
}

func TestTransaction_HasOptionTerms(t *testing.T) {
	complete := Transaction{
		OptionRight: RightPut,
		StrikePrice: decimal.NewFromInt(400),
		ExpiryDate:  time.Date(2026, 12, 18, 0, 0, 0, 0, time.UTC),
	}
	if !complete.HasOptionTerms() {
		t.Error("complete terms should be recognized")
	}

	tests := []struct {
		name   string
		mutate func(*Transaction)
	}{
		{"missing right", func(tx *Transaction) { tx.OptionRight = "" }},
		{"zero strike", func(tx *Transaction) { tx.StrikePrice = decimal.Zero }},
		{"missing expiry", func(tx *Transaction) { tx.ExpiryDate = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := complete
			tt.mutate(&tx)
			if tx.HasOptionTerms() {
				t.Error("incomplete terms should not be recognized")
			}
		})
	}
}
