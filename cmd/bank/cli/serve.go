package cli

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"banksim/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the teller as an HTTP form API",
	Long: `Serve one teller session over HTTP.

  POST /account   {"name": "Alice"}
  POST /deposit   {"amount": "100"}
  POST /withdraw  {"amount": "40"}
  GET  /balance
  GET  /log

Routes are also available under /api/v1. When --transcript is set the log
file is rewritten after every event.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(io.Discard)
		if err != nil {
			return err
		}
		after := func() error { return saveTranscript(s, "serve") }

		srv := &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           server.NewServer(s, after, logger).Router(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx := cmd.Context()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("bank server listening", zap.String("addr", srv.Addr))
			cmd.Printf("Bank server running at %s\n", srv.Addr)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("http.addr", ":8080", "listen address")
}
