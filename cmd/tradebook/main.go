// Tradebook imports broker-exported transaction CSVs into a normalized
// portfolio accounting database.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/findosh/tradebook/internal/cli"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cli.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
