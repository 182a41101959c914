package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"

	"github.com/Fivegen-LLC/peplink-monitor/infrastructure"
	"github.com/Fivegen-LLC/peplink-monitor/internal/constants"
	"github.com/Fivegen-LLC/peplink-monitor/internal/domains/wan"
	"github.com/Fivegen-LLC/peplink-monitor/internal/environment"
)

func newRootCommand() *cobra.Command {
	var env environment.Environment

	loadEnv := func(daemon bool) func(cmd *cobra.Command, _ []string) (err error) {
		return func(cmd *cobra.Command, _ []string) (err error) {
			if env, err = environment.New(cmd.Flags()); err != nil {
				return fmt.Errorf("loadEnv: %w", err)
			}

			return setupLogger(env.Agent, daemon)
		}
	}

	query := &cobra.Command{
		Use:     "query",
		Short:   "Print the cellular signal quality of the configured connection (0.000..1.000 or null)",
		Args:    cobra.NoArgs,
		PreRunE: loadEnv(false),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, infrastructure.Inject(env), env.Monitor)
		},
	}

	root := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Cellular signal quality of a Peplink router",
		Version:       serviceVersion,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE:       query.PreRunE,
		RunE:          query.RunE,
	}

	flags := root.PersistentFlags()
	flags.String(environment.KeyHost, "", "router address (PEPLINK_HOST)")
	flags.Int(environment.KeyPort, constants.DefaultSSHPort, "router ssh port (PEPLINK_PORT)")
	flags.String(environment.KeyUsername, constants.DefaultUsername, "router username (PEPLINK_USERNAME)")
	flags.String(environment.KeyConnection, "", "WAN connection name (PEPLINK_CONNECTION)")

	root.AddCommand(
		query,
		&cobra.Command{
			Use:     "list",
			Short:   "Print every WAN connection the router reports",
			Args:    cobra.NoArgs,
			PreRunE: loadEnv(false),
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runList(cmd, infrastructure.Inject(env), env.Monitor)
			},
		},
		&cobra.Command{
			Use:     "monitor",
			Short:   "Poll the router and publish signal quality",
			Args:    cobra.NoArgs,
			PreRunE: loadEnv(true),
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runMonitor(cmd.Context(), infrastructure.Inject(env))
			},
		},
	)

	return root
}

func runQuery(cmd *cobra.Command, injector infrastructure.IInjector, cfg environment.Monitor) (err error) {
	result, err := injector.InjectMonitorService().Query(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("runQuery: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}

func runList(cmd *cobra.Command, injector infrastructure.IInjector, cfg environment.Monitor) (err error) {
	connections, err := injector.InjectMonitorService().Collect(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("runList: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), wan.FormatTable(connections))
	return err
}

func runMonitor(ctx context.Context, kernel *infrastructure.Kernel) (err error) {
	env := kernel.Env()
	if err = env.Validate(); err != nil {
		return fmt.Errorf("runMonitor: %w", err)
	}

	log.Info().
		Str("version", serviceVersion).
		Str("host", env.Host).
		Str("connection", env.ConnectionName).
		Dur("poll interval", env.PollInterval).
		Str("log path", env.LogfilePath).
		Str("log level", env.LogLevel).
		Bool("nats", env.HasNATS()).
		Bool("signal k", env.HasSignalK()).
		Msg("runMonitor: app started")

	if env.HasNATS() {
		natsPublisher := kernel.InjectNATSPublisher()
		if err = natsPublisher.Start(); err != nil {
			return fmt.Errorf("runMonitor: %w", err)
		}
		defer natsPublisher.Stop()
	}

	if env.HasSignalK() {
		signalKPublisher := kernel.InjectSignalKPublisher()
		signalKPublisher.Start(ctx)
		defer signalKPublisher.Stop()
	}

	var wg conc.WaitGroup
	if lo.IsNotEmpty(env.MetricsAddr) {
		wg.Go(func() {
			if err := kernel.InjectMetricsService().Serve(ctx, env.MetricsAddr); err != nil {
				log.Error().Err(err).Msg("runMonitor: metrics server stopped")
			}
		})
	}

	wg.Go(func() {
		kernel.InjectPollerService().Start(ctx)
	})
	wg.Wait()

	log.Info().Msg("runMonitor: app gracefully stopped")
	return nil
}
