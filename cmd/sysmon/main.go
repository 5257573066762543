package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/user/sysmon/internal/config"
	"github.com/user/sysmon/internal/logging"
	"github.com/user/sysmon/internal/monitor"
	"github.com/user/sysmon/internal/sampler"
	"github.com/user/sysmon/internal/term"
	"github.com/user/sysmon/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	cmd := &cobra.Command{
		Use:   "sysmon",
		Short: "Live CPU and memory monitor for the local host",
		Long: "sysmon samples host CPU and memory utilization once per interval\n" +
			"and redraws a report on the terminal until interrupted.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyEnv()
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}
	cmd.Flags().DurationVar(&cfg.Interval, "interval", cfg.Interval, "sampling interval")
	cmd.Flags().BoolVar(&cfg.TUI, "tui", false, "render a live TUI instead of the plain report")
	cmd.Flags().BoolVar(&cfg.JSON, "json", false, "print one snapshot as JSON and exit")
	cmd.Flags().BoolVar(&cfg.JSONStream, "json-stream", false, "stream NDJSON snapshots until interrupted")
	cmd.Flags().BoolVar(&cfg.Debug, "debug", false, "enable debug logging on stderr")
	return cmd
}

func run(cfg config.Config) error {
	log := logging.New(cfg.Debug)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := sampler.New(cfg.Interval, log)

	switch {
	case cfg.TUI:
		return ui.Run(cfg, log)
	case cfg.JSON:
		return monitor.RunJSON(ctx, src, os.Stdout)
	case cfg.JSONStream:
		return monitor.RunJSONStream(ctx, src, os.Stdout)
	default:
		mon := monitor.New(src, term.NewScreen(os.Stdout), os.Stdout, log)
		return mon.Run(ctx)
	}
}
