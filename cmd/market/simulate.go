package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"predictionMarket/internal/config"
	"predictionMarket/internal/registry"
	"predictionMarket/internal/simulate"
)

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadSimulate(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Scenario == "" {
		return fmt.Errorf("scenario path is required")
	}

	scenario, err := config.LoadScenario(cfg.Scenario)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink, err := newSink(cfg.Out)
	if err != nil {
		return err
	}

	runner := simulate.NewRunner(simulate.Config{
		BatchSize:   cfg.BatchSize,
		StopOnError: cfg.StopOnError,
	}, registry.New(logger), sink, logger)

	logger.Info("simulate start",
		zap.String("scenario", cfg.Scenario),
		zap.Int("markets", len(scenario.Markets)),
		zap.Int("steps", len(scenario.Steps)),
		zap.String("out", cfg.Out),
		zap.Bool("stop_on_error", cfg.StopOnError),
	)

	result, err := runner.Run(ctx, scenario)
	if err != nil {
		return err
	}

	return printReport(cmd.OutOrStdout(), result, runner.Registry().List())
}
