package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/findosh/tradebook/internal/models"
	"github.com/findosh/tradebook/internal/storage"
	"github.com/google/subcommands"
)

type addAccountCmd struct {
	name   string
	number string
	broker string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "register a brokerage account" }
func (*addAccountCmd) Usage() string {
	return `tradebook add-account -number <account_number> [-name <name>] [-broker <broker>]

  Registers a brokerage account transactions can be imported into.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "User-friendly account name.")
	f.StringVar(&c.number, "number", "", "Broker account number (unique).")
	f.StringVar(&c.broker, "broker", "schwab", "Broker name.")
}

func (c *addAccountCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.number == "" {
		fmt.Fprintln(os.Stderr, "Error: -number is required.")
		return subcommands.ExitUsageError
	}

	db, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	account := models.NewAccount(c.name, c.number, c.broker)
	if err := storage.NewAccountRepository(db).Create(account); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating account: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created account %s (%s)\n", account.AccountNumber, account.ID)
	return subcommands.ExitSuccess
}

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list registered accounts" }
func (*accountsCmd) Usage() string {
	return `tradebook accounts [-db <path>]

  Lists all registered brokerage accounts.
`
}

func (*accountsCmd) SetFlags(*flag.FlagSet) {}

func (*accountsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	accounts, err := storage.NewAccountRepository(db).List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing accounts: %v\n", err)
		return subcommands.ExitFailure
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tNAME\tBROKER\tID")
	for _, a := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.AccountNumber, a.Name, a.BrokerName, a.ID)
	}
	w.Flush()

	return subcommands.ExitSuccess
}
