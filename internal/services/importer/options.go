package importer

import (
	"regexp"
	"strings"
	"time"

	"github.com/findosh/tradebook/internal/models"
	"github.com/shopspring/decimal"
)

// optionIdentity is an option contract's identity extracted from a row:
// the underlying's ticker plus the contract terms.
type optionIdentity struct {
	Underlying string
	Right      models.OptionRight
	Strike     decimal.Decimal
	Expiry     time.Time
}

// optionStrategy attempts to extract an option identity from a row's symbol
// and description fields, reporting whether it matched.
type optionStrategy func(symbol, description string) (optionIdentity, bool)

// Strategies are tried in order; first match wins. The compact contract
// symbol is authoritative whenever it matches, the free-text description
// grammar is the fallback. Supporting another broker encoding means
// appending a strategy here.
var optionStrategies = []optionStrategy{
	matchContractSymbol,
	matchContractDescription,
}

// Compact contract symbol: "MSFT 12/18/2026 400.00 P"
var contractSymbolRegex = regexp.MustCompile(`^([A-Z]+)\s+(\d{1,2}/\d{1,2}/\d{2,4})\s+([\d.]+)\s+([CP])`)

// Free-text contract description: "PUT NVIDIA CORP $70 EXP 01/15/27"
var contractDescRegex = regexp.MustCompile(`(CALL|PUT)\s+([A-Z\s.]+?)\s+\$(\d+(?:\.\d+)?)\s+EXP\s+(\d{1,2}/\d{1,2}/\d{2,4})`)

// resolveOption derives an option contract's identity from a row, trying
// each strategy in order.
func resolveOption(symbol, description string) (optionIdentity, bool) {
	for _, strategy := range optionStrategies {
		if id, ok := strategy(symbol, description); ok {
			return id, true
		}
	}
	return optionIdentity{}, false
}

func matchContractSymbol(symbol, _ string) (optionIdentity, bool) {
	m := contractSymbolRegex.FindStringSubmatch(symbol)
	if m == nil {
		return optionIdentity{}, false
	}

	strike, ok := parseDecimal(m[3])
	if !ok {
		return optionIdentity{}, false
	}
	expiry, err := parseDate(m[2])
	if err != nil {
		return optionIdentity{}, false
	}

	right := models.RightPut
	if m[4] == "C" {
		right = models.RightCall
	}

	return optionIdentity{
		Underlying: m[1],
		Right:      right,
		Strike:     strike,
		Expiry:     expiry,
	}, true
}

func matchContractDescription(symbol, description string) (optionIdentity, bool) {
	m := contractDescRegex.FindStringSubmatch(strings.ToUpper(description))
	if m == nil {
		return optionIdentity{}, false
	}

	strike, ok := parseDecimal(m[3])
	if !ok {
		return optionIdentity{}, false
	}
	expiry, err := parseDate(m[4])
	if err != nil {
		return optionIdentity{}, false
	}

	right := models.RightCall
	if m[1] == "PUT" {
		right = models.RightPut
	}

	// The symbol field names the underlying directly for this encoding,
	// unless it is itself a contract symbol or contains whitespace; then
	// the underlying is the first token of the captured name.
	underlying := strings.TrimSpace(symbol)
	if underlying == "" || strings.Contains(underlying, " ") || contractSymbolRegex.MatchString(underlying) {
		if fields := strings.Fields(m[2]); len(fields) > 0 {
			underlying = fields[0]
		}
	}

	return optionIdentity{
		Underlying: underlying,
		Right:      right,
		Strike:     strike,
		Expiry:     expiry,
	}, true
}
