package importer

import (
	"testing"
	"time"

	"github.com/findosh/tradebook/internal/models"
)

func TestResolveOption_ContractSymbol(t *testing.T) {
	id, ok := resolveOption("MSFT 12/18/2026 400.00 P", "")
	if !ok {
		t.Fatal("expected contract symbol to resolve")
	}
	if id.Underlying != "MSFT" {
		t.Errorf("underlying: got %s, want MSFT", id.Underlying)
	}
	if id.Right != models.RightPut {
		t.Errorf("right: got %s, want put", id.Right)
	}
	if !id.Strike.Equal(mustDecimal(t, "400.00")) {
		t.Errorf("strike: got %s, want 400.00", id.Strike)
	}
	if want := time.Date(2026, 12, 18, 0, 0, 0, 0, time.UTC); !id.Expiry.Equal(want) {
		t.Errorf("expiry: got %s, want %s", id.Expiry, want)
	}
}

// The contract symbol is authoritative: a description is ignored when the
// symbol itself matches the compact grammar.
func TestResolveOption_SymbolWinsOverDescription(t *testing.T) {
	id, ok := resolveOption("MSFT 12/18/2026 400.00 P", "CALL SOMETHING ELSE $999 EXP 01/01/30")
	if !ok {
		t.Fatal("expected resolve to succeed")
	}
	if id.Underlying != "MSFT" || id.Right != models.RightPut {
		t.Errorf("got %s %s, want MSFT put", id.Underlying, id.Right)
	}
}

func TestResolveOption_DescriptionFallback(t *testing.T) {
	tests := []struct {
		name        string
		symbol      string
		description string
		underlying  string
		right       models.OptionRight
		strike      string
		expiry      time.Time
	}{
		{
			name:        "underlying from symbol field",
			symbol:      "NVDA",
			description: "PUT NVIDIA CORP $70 EXP 01/15/27",
			underlying:  "NVDA",
			right:       models.RightPut,
			strike:      "70",
			expiry:      time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:        "underlying from description name",
			symbol:      "",
			description: "CALL SPXW INDEX $4500 EXP 03/28/24",
			underlying:  "SPXW",
			right:       models.RightCall,
			strike:      "4500",
			expiry:      time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:        "lowercase description upper-cased before matching",
			symbol:      "NVDA",
			description: "Put Nvidia Corp $100.00 exp 06/18/26",
			underlying:  "NVDA",
			right:       models.RightPut,
			strike:      "100.00",
			expiry:      time.Date(2026, 6, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			name:        "symbol with whitespace falls back to description name",
			symbol:      "NVIDIA CORP",
			description: "PUT NVIDIA CORP $70 EXP 01/15/27",
			underlying:  "NVIDIA",
			right:       models.RightPut,
			strike:      "70",
			expiry:      time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := resolveOption(tt.symbol, tt.description)
			if !ok {
				t.Fatal("expected resolve to succeed")
			}
			if id.Underlying != tt.underlying {
				t.Errorf("underlying: got %s, want %s", id.Underlying, tt.underlying)
			}
			if id.Right != tt.right {
				t.Errorf("right: got %s, want %s", id.Right, tt.right)
			}
			if !id.Strike.Equal(mustDecimal(t, tt.strike)) {
				t.Errorf("strike: got %s, want %s", id.Strike, tt.strike)
			}
			if !id.Expiry.Equal(tt.expiry) {
				t.Errorf("expiry: got %s, want %s", id.Expiry, tt.expiry)
			}
		})
	}
}

func TestResolveOption_NoMatch(t *testing.T) {
	tests := []struct {
		name        string
		symbol      string
		description string
	}{
		{"plain equity", "NVDA", "NVIDIA CORP"},
		{"empty", "", ""},
		{"description missing exp", "NVDA", "PUT NVIDIA CORP $70"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := resolveOption(tt.symbol, tt.description); ok {
				t.Error("expected resolve to fail")
			}
		})
	}
}
