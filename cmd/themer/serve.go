package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themer/internal/metrics"
	"github.com/alexisbeaulieu97/themer/internal/server"
	"github.com/alexisbeaulieu97/themer/pkg/theme"
)

const shutdownTimeout = 5 * time.Second

type serveOptions struct {
	addr string
}

func newServeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve theme lookups over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (defaults to server.addr, :8080)")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, rootFlags *rootFlags, opts *serveOptions) error {
	settings, err := loadSettings(cmd, rootFlags)
	if err != nil {
		return err
	}
	addr := settings.Server.Addr
	if opts.addr != "" {
		addr = opts.addr
	}

	var (
		m         *metrics.Metrics
		gatherer  prometheus.Gatherer
		themeOpts []theme.Option
	)
	if settings.Server.Metrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
		gatherer = reg
		themeOpts = append(themeOpts, theme.WithCacheObserver(m))
	}

	app, err := newAppContext(cmd, rootFlags, themeOpts...)
	if err != nil {
		return err
	}

	srv := server.New(server.Options{
		Registry: app.Registry,
		Logger:   app.Logger,
		Metrics:  m,
		Gatherer: gatherer,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return newCommandError("serve", addr, err, "Check that the address is free or pass another --addr.")
		}
		return nil
	case <-ctx.Done():
	}

	app.Logger.Info("shutting down theme server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return newCommandError("serve", "shutting down", err, "Retry; in-flight requests may have been dropped.")
	}
	return nil
}
