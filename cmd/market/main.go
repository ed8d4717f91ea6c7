package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "market",
		Short:        "Over/under prediction market engine",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the single-market demo",
		RunE:  runDemo,
	}

	demoCmd.Flags().String("name", "Market 1", "market name")
	demoCmd.Flags().Float64("threshold", 5000, "market threshold")
	demoCmd.Flags().Float64("liquidity", 1000, "initial liquidity seeded into both sides")
	demoCmd.Flags().Bool("unseeded", false, "create the market without initial liquidity")
	demoCmd.Flags().Float64("amount", 100, "amount spent on each buy")
	demoCmd.Flags().String("result", "under", "winning side (over, under)")
	demoCmd.Flags().String("out", "", "optional output JSONL report path")
	demoCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(demoCmd)

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a scenario file against a market registry",
		RunE:  runSimulate,
	}

	simulateCmd.Flags().String("scenario", "", "scenario file (yaml, json, toml)")
	simulateCmd.Flags().String("out", "./data/report.jsonl", "output JSONL report path")
	simulateCmd.Flags().Bool("stop-on-error", false, "abort on the first failing step")
	simulateCmd.Flags().Int("batch-size", 100, "step records per write")
	simulateCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(simulateCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the markets a scenario defines",
		RunE:  runList,
	}

	listCmd.Flags().String("scenario", "", "scenario file (yaml, json, toml)")
	listCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(listCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
