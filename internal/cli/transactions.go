package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/findosh/tradebook/internal/storage"
	"github.com/google/subcommands"
)

type transactionsCmd struct {
	account string
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list imported transactions for an account" }
func (*transactionsCmd) Usage() string {
	return `tradebook transactions -account <account_number>

  Lists the persisted transactions for an account, ordered by date.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account number to list.")
}

func (c *transactionsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(os.Stderr, "Error: -account is required.")
		return subcommands.ExitUsageError
	}

	db, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	account, err := storage.NewAccountRepository(db).GetByNumber(c.account)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error looking up account: %v\n", err)
		return subcommands.ExitFailure
	}
	if account == nil {
		fmt.Fprintf(os.Stderr, "Error: account %q not found.\n", c.account)
		return subcommands.ExitFailure
	}

	transactions, err := storage.NewTransactionRepository(db).ListByAccount(account.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing transactions: %v\n", err)
		return subcommands.ExitFailure
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tACTION\tTICKER\tCLASS\tQTY\tPRICE\tFEES\tAMOUNT\tCONTRACT")
	for _, t := range transactions {
		contract := ""
		if t.IsOption() {
			contract = fmt.Sprintf("%s %s exp %s", t.OptionRight, t.StrikePrice, t.ExpiryDate.Format("2006-01-02"))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.Date.Format("2006-01-02"), t.Action, t.Ticker, t.AssetClass,
			t.Quantity, t.Price, t.Fees, t.TotalAmount, contract)
	}
	w.Flush()

	fmt.Printf("%d transactions\n", len(transactions))
	return subcommands.ExitSuccess
}
