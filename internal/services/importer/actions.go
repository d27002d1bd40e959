package importer

import (
	"strings"

	"github.com/findosh/tradebook/internal/models"
)

// actionClass is the three-way outcome of classifying a broker action label
type actionClass int

const (
	actionKnown actionClass = iota
	actionSkip
	actionUnknown
)

// actionMap maps Schwab action labels to canonical actions. Matching is
// exact and case-sensitive: a casing variant of a trading action is
// deliberately not recognized, so it surfaces as unmapped and gets reviewed
// instead of being silently imported.
var actionMap = map[string]models.ActionType{
	"Buy":                models.ActionBuy,
	"Sell":               models.ActionSell,
	"Sell to Open":       models.ActionSellToOpen,
	"Buy to Open":        models.ActionBuyToOpen,
	"Sell to Close":      models.ActionSellToClose,
	"Buy to Close":       models.ActionBuyToClose,
	"Qualified Dividend": models.ActionDividend,
	"Cash Dividend":      models.ActionDividend,
	"Interest Income":    models.ActionInterest,
}

// skipActions are non-trading cash movements that carry no position or
// income information for portfolio accounting. Matched case-insensitively.
var skipActions = map[string]struct{}{
	"moneylink transfer":    {},
	"journal":               {},
	"service fee":           {},
	"funds received":        {},
	"funds paid":            {},
	"dividend paid":         {},
	"adjustment":            {},
	"bank interest":         {},
	"atm withdrawal":        {},
	"bill pay":              {},
	"check paid":            {},
	"dividend reinvestment": {},
	"funds transfer":        {},
	"tax payment":           {},
	"wire transfer incoming": {},
	"wire transfer outgoing": {},
	"client requested electronic funding receipt (pull)":      {},
	"client requested electronic funding disbursement (push)": {},
}

// classifyAction resolves a raw action label to a canonical action.
// Labels in the skip set classify as actionSkip and are never surfaced as
// errors; anything matching neither set is actionUnknown.
func classifyAction(label string) (models.ActionType, actionClass) {
	if action, ok := actionMap[label]; ok {
		return action, actionKnown
	}
	if _, ok := skipActions[strings.ToLower(label)]; ok {
		return "", actionSkip
	}
	return "", actionUnknown
}
