package cli

import (
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive teller",
	Long: `Start the interactive teller. One command per line:

  create <name>       create (or replace) the account holder
  deposit <amount>    deposit an amount
  withdraw <amount>   withdraw an amount
  balance             show the current balance
  log                 print the whole transaction log again
  quit                leave`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}
