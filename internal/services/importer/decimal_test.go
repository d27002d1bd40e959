package importer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"empty", "", "0", true},
		{"whitespace only", "   ", "0", true},
		{"plain", "100", "100", true},
		{"currency symbol", "$1,234.56", "1234.56", true},
		{"parenthesized negative", "(1,234.56)", "-1234.56", true},
		{"currency and parens", "($13,550.00)", "-13550.00", true},
		{"interior whitespace", "1 234.56", "1234.56", true},
		{"explicit negative", "-42.5", "-42.5", true},
		{"garbage", "garbage", "0", false},
		{"lone symbol", "$", "0", false},
		{"double dash", "--", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDecimal(tt.input)
			if ok != tt.wantOK {
				t.Errorf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if got.String() != mustDecimal(t, tt.want).String() {
				t.Errorf("value: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseDecimal_PreservesPrecision(t *testing.T) {
	got, ok := parseDecimal("0.000001")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if got.String() != "0.000001" {
		t.Errorf("got %s, want 0.000001", got)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"four digit year", "05/19/2025", time.Date(2025, 5, 19, 0, 0, 0, 0, time.UTC), false},
		{"two digit year", "12/18/26", time.Date(2026, 12, 18, 0, 0, 0, 0, time.UTC), false},
		{"no leading zeros", "1/5/2024", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), false},
		{"padded two digit year", "01/15/27", time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC), false},
		{"empty", "", time.Time{}, true},
		{"garbage", "not-a-date", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err: got %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && !got.Equal(tt.want) {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}
