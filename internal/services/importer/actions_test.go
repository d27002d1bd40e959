package importer

import (
	"testing"

	"github.com/findosh/tradebook/internal/models"
)

func TestClassifyAction_Known(t *testing.T) {
	tests := []struct {
		label string
		want  models.ActionType
	}{
		{"Buy", models.ActionBuy},
		{"Sell", models.ActionSell},
		{"Buy to Open", models.ActionBuyToOpen},
		{"Sell to Open", models.ActionSellToOpen},
		{"Buy to Close", models.ActionBuyToClose},
		{"Sell to Close", models.ActionSellToClose},
		{"Qualified Dividend", models.ActionDividend},
		{"Cash Dividend", models.ActionDividend},
		{"Interest Income", models.ActionInterest},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			action, class := classifyAction(tt.label)
			if class != actionKnown {
				t.Fatalf("class: got %v, want actionKnown", class)
			}
			if action != tt.want {
				t.Errorf("action: got %s, want %s", action, tt.want)
			}
		})
	}
}

func TestClassifyAction_SkipIsCaseInsensitive(t *testing.T) {
	labels := []string{
		"MoneyLink Transfer",
		"moneylink transfer",
		"JOURNAL",
		"Journal",
		"Service Fee",
		"Wire Transfer Incoming",
		"Tax Payment",
		"ATM Withdrawal",
	}

	for _, label := range labels {
		t.Run(label, func(t *testing.T) {
			if _, class := classifyAction(label); class != actionSkip {
				t.Errorf("got %v, want actionSkip", class)
			}
		})
	}
}

// The canonical map is an exact match: a casing variant of a trading
// action is unmapped, so it gets surfaced for review instead of being
// silently imported.
func TestClassifyAction_TradeMatchIsCaseSensitive(t *testing.T) {
	labels := []string{"buy", "BUY", "sell to open", "Sell To Open"}

	for _, label := range labels {
		t.Run(label, func(t *testing.T) {
			if _, class := classifyAction(label); class != actionUnknown {
				t.Errorf("got %v, want actionUnknown", class)
			}
		})
	}
}

func TestClassifyAction_Unknown(t *testing.T) {
	if _, class := classifyAction("Reverse Split"); class != actionUnknown {
		t.Errorf("got %v, want actionUnknown", class)
	}
}
