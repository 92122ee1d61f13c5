package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"banksim/internal/teller"
)

var runCmd = &cobra.Command{
	Use:   "run <script.yaml>",
	Short: "Replay a YAML list of teller events",
	Long: `Replay a YAML list of teller events and print the transaction log.

Example script:

  - action: create
    input: Alice
  - action: deposit
    input: "100"
  - action: balance`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := teller.LoadScriptFile(args[0])
		if err != nil {
			return err
		}
		s, err := newSession(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		results, err := s.Replay(events)
		logger.Debug("script replayed", zap.String("script", args[0]), zap.Int("events", len(results)))
		if serr := saveTranscript(s, "script "+args[0]); serr != nil && err == nil {
			err = serr
		}
		return err
	},
}
