package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpapi "github.com/i474232898/weather-forecast/internal/api/http"
	"github.com/i474232898/weather-forecast/internal/scheduler"
)

var serveFlags struct {
	AccessLog bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the periodic refresh",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		d, err := buildDeps(ctx)
		if err != nil {
			return err
		}
		defer d.Close()

		sched := scheduler.New(d.cfg.FetchInterval, d.service, d.logger.Named("scheduler"))
		if err := sched.Start(); err != nil {
			return err
		}
		defer sched.Stop()

		app := httpapi.NewApp(d.service, d.logger.Named("http"), httpapi.Options{
			WriteTimeout: d.cfg.HTTPTimeout * 3,
			AccessLog:    serveFlags.AccessLog,
		})

		errCh := make(chan error, 1)
		go func() {
			d.logger.Info("Listening", zap.String("port", d.cfg.Port))
			errCh <- app.Listen(":" + d.cfg.Port)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			d.logger.Error("Error during shutdown", zap.Error(err))
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveFlags.AccessLog, "access-log", true, "log every request")
}
