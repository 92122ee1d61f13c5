// Package cli implements the bank command-line interface using Cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"banksim/internal/config"
	"banksim/internal/ledger"
	"banksim/internal/logging"
	"banksim/internal/storage"
	"banksim/internal/teller"
)

var (
	cfgFile string
	cfg     config.Config
	logger  = zap.NewNop()
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "bank",
	Short: "Single-account teller: create, deposit, withdraw, check balance",
	Long: `bank simulates one bank account. Every action appends one line to the
transaction log:

  Transactions:        | Amounts (in FRW):
  ----------------------------------------
  Account Created      | Alice
  Deposit              | FRW:100.00

Without a subcommand it starts the interactive teller (same as "bank repl").`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		loaded, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		l, err := logging.New(logging.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./bank.yaml)")
	pf.String("currency", "FRW", "currency label shown before amounts")
	pf.String("transcript", "", "write the transaction log to this file when the session ends (.json or text)")
	pf.String("log.level", "warn", "diagnostic log level (debug, info, warn, error)")
	pf.Bool("log.json", false, "emit diagnostic logs as JSON")

	rootCmd.AddCommand(replCmd, runCmd, serveCmd)
}

// Execute runs the root command. SIGINT/SIGTERM cancel the command context,
// so repl and serve can still write the transcript before exiting.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// newSession 依設定建立 teller session，紀錄行即時寫到 out。
func newSession(out io.Writer) (*teller.Session, error) {
	return teller.NewSession(out, logger, ledger.WithCurrency(cfg.Currency))
}

// saveTranscript 在設定了 transcript 路徑時匯出紀錄；未設定則不做事。
func saveTranscript(s *teller.Session, note string) error {
	if cfg.Transcript == "" {
		return nil
	}
	if err := storage.SaveTranscript(cfg.Transcript, s.Transcript(note)); err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}
	logger.Info("transcript saved", zap.String("path", cfg.Transcript), zap.Int("lines", s.Journal.Len()))
	return nil
}

// runRepl 執行互動迴圈；被訊號中斷視為正常結束，仍會匯出紀錄。
func runRepl(ctx context.Context, in io.Reader, out io.Writer) error {
	s, err := newSession(out)
	if err != nil {
		return err
	}
	runErr := s.Run(ctx, in, out)
	if errors.Is(runErr, context.Canceled) {
		logger.Info("repl interrupted")
		runErr = nil
	}
	if err := saveTranscript(s, "repl"); err != nil {
		logger.Error("save transcript", zap.Error(err))
	}
	return runErr
}
