package importer

import (
	"fmt"
	"strings"

	"github.com/findosh/tradebook/internal/models"
	"github.com/shopspring/decimal"
)

// SchwabTransactions handles Charles Schwab transaction history exports
// (the "transactions_v1" CSV with Date, Action, Symbol, Description,
// Quantity, Price, Fees & Comm and Amount columns).
type SchwabTransactions struct{}

// NewSchwabTransactions creates the Schwab transactions format
func NewSchwabTransactions() *SchwabTransactions {
	return &SchwabTransactions{}
}

// Name returns the format name
func (p *SchwabTransactions) Name() string {
	return "schwab_transactions_v1"
}

// Detect checks if this is a Schwab transactions CSV
func (p *SchwabTransactions) Detect(header []string) bool {
	required := []string{"date", "action", "symbol", "amount"}
	matches := 0

	headerLower := make([]string, len(header))
	for i, h := range header {
		headerLower[i] = strings.ToLower(strings.TrimSpace(h))
	}

	for _, req := range required {
		for _, h := range headerLower {
			if h == req {
				matches++
				break
			}
		}
	}

	return matches == len(required)
}

// ParseRow normalizes a single Schwab transaction row into a canonical
// transaction. Quantity, price and fees come out as magnitudes; the
// broker-reported Amount keeps its sign and is trusted as the net cash
// effect.
func (p *SchwabTransactions) ParseRow(header, row []string, line int) RowResult {
	colMap := make(map[string]int)
	for i, h := range header {
		colMap[strings.ToLower(strings.TrimSpace(h))] = i
	}

	getCol := func(names ...string) string {
		for _, name := range names {
			if idx, ok := colMap[name]; ok && idx < len(row) {
				return row[idx]
			}
		}
		return ""
	}

	rawAction := strings.TrimSpace(getCol("action"))
	if rawAction == "" {
		return RowResult{Status: RowSkipped, Line: line}
	}

	action, class := classifyAction(rawAction)
	switch class {
	case actionSkip:
		return RowResult{Status: RowSkipped, Line: line}
	case actionUnknown:
		return RowResult{
			Status: RowRejected,
			Line:   line,
			Reason: fmt.Sprintf("unmapped action %q", rawAction),
		}
	}

	dateStr := strings.TrimSpace(getCol("date"))
	if dateStr == "" {
		return RowResult{Status: RowRejected, Line: line, Reason: "missing date"}
	}
	date, err := parseDate(dateStr)
	if err != nil {
		return RowResult{
			Status: RowRejected,
			Line:   line,
			Reason: fmt.Sprintf("unparseable date %q", dateStr),
		}
	}

	symbol := strings.TrimSpace(getCol("symbol"))
	description := strings.TrimSpace(getCol("description"))

	var warnings []string
	decimalField := func(name string) decimal.Decimal {
		raw := getCol(name)
		d, ok := parseDecimal(raw)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("malformed %s %q, defaulting to 0", name, strings.TrimSpace(raw)))
		}
		return d
	}

	quantity := decimalField("quantity")
	price := decimalField("price")
	fees := decimalField("fees & comm")
	amount := decimalField("amount")

	assetClass := models.AssetClassEquity
	ticker := symbol

	tx := &models.Transaction{
		Date:           date,
		Action:         action,
		Quantity:       quantity.Abs(),
		Price:          price.Abs(),
		Fees:           fees.Abs(),
		TotalAmount:    amount,
		RawSymbol:      symbol,
		RawDescription: description,
		ImportHash:     importHash(row, line),
	}

	switch {
	case action.IsOpenClose():
		identity, ok := resolveOption(symbol, description)
		if !ok {
			return RowResult{
				Status: RowRejected,
				Line:   line,
				Reason: fmt.Sprintf("could not parse option details from symbol %q / description %q", symbol, description),
			}
		}
		assetClass = models.AssetClassOption
		ticker = identity.Underlying
		tx.OptionRight = identity.Right
		tx.StrikePrice = identity.Strike
		tx.ExpiryDate = identity.Expiry

	case action.IsDistribution():
		assetClass = models.AssetClassCash
		if symbol == "" {
			ticker = description
			if strings.Contains(strings.ToLower(description), "dividend") {
				ticker = strings.TrimSpace(strings.ReplaceAll(description, "Dividend", ""))
			}
		}
	}

	tx.AssetClass = assetClass
	tx.Ticker = strings.TrimSpace(ticker)

	return RowResult{
		Status:      RowAccepted,
		Transaction: tx,
		Line:        line,
		Warnings:    warnings,
	}
}
