package cli

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/findosh/tradebook/internal/services/importer"
	"github.com/findosh/tradebook/internal/storage"
	"github.com/google/subcommands"
)

type importCmd struct {
	account string
	broker  string
	format  string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a broker transactions CSV into an account" }
func (*importCmd) Usage() string {
	return `tradebook import -account <account_number> [-broker schwab] [-format transactions_v1] <file.csv>

  Normalizes a broker-exported transactions CSV and imports it into the
  account as one atomic batch. Re-importing the same file is a no-op.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account number to import into.")
	f.StringVar(&c.broker, "broker", "schwab", "Broker name.")
	f.StringVar(&c.format, "format", "transactions_v1", "Export format name.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(os.Stderr, "Error: -account is required.")
		return subcommands.ExitUsageError
	}
	if c.broker != "schwab" || c.format != "transactions_v1" {
		fmt.Fprintf(os.Stderr, "Error: unsupported broker/format %q/%q.\n", c.broker, c.format)
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one CSV file is required.")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	parsed, err := importer.NewService().ParseCSV(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	for _, w := range parsed.Warnings {
		log.Printf("%s: %s", f.Arg(0), w)
	}

	db, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	accounts := storage.NewAccountRepository(db)
	account, err := accounts.GetByNumber(c.account)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error looking up account: %v\n", err)
		return subcommands.ExitFailure
	}
	if account == nil {
		fmt.Fprintf(os.Stderr, "Error: account %q not found. Register it with add-account first.\n", c.account)
		return subcommands.ExitFailure
	}

	service := importer.NewImportService(accounts, batchStore{storage.NewTransactionRepository(db)})
	result, err := service.ImportBatch(account.ID, parsed.Transactions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing batch: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d transactions into account %s (%d rejected, %d duplicates, %d skipped rows, %d warnings)\n",
		len(result.Imported), account.AccountNumber,
		result.Rejected, result.Duplicates, parsed.Skipped, len(parsed.Warnings))
	return subcommands.ExitSuccess
}

// batchStore adapts the concrete transaction repository to the importer's
// TransactionStore interface.
type batchStore struct {
	repo *storage.TransactionRepository
}

func (s batchStore) Begin() (importer.TransactionBatch, error) {
	return s.repo.Begin()
}
