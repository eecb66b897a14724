package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/adapters/metrics"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/infrastructure/pidfile"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/infrastructure/scheduler"
)

// NewSchedulerCommand creates the scheduler daemon command
func NewSchedulerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scheduler",
		Short: "Run the completion scheduler daemon",
		Long: `Run the completion scheduler daemon.

The scheduler sweeps pending constructions, upgrades and trainings on a
fixed interval and finishes every operation whose completion time has
passed. Only one scheduler instance may run against a database at a
time; a PID file enforces this.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			pf := pidfile.New(app.Config.Scheduler.PIDFile)
			if err := pf.Acquire(); err != nil {
				return err
			}
			defer func() {
				if err := pf.Release(); err != nil {
					log.Printf("Warning: failed to release PID file: %v", err)
				}
			}()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if app.Config.Metrics.Enabled {
				go serveMetrics(app.Config.Metrics.Address)
			}

			fmt.Printf("Scheduler running (interval %s)\n", app.Config.Scheduler.Interval)

			s := scheduler.New(app.Config.Scheduler, app.Mediator, app.Pending, app.Clock)
			if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			fmt.Println("Scheduler stopped")
			return nil
		},
	}
}

func serveMetrics(address string) {
	handler := promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{})
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	log.Printf("Metrics listening on %s/metrics", address)
	if err := http.ListenAndServe(address, mux); err != nil {
		log.Printf("Metrics server stopped: %v", err)
	}
}
