package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"predictionMarket/internal/config"
	"predictionMarket/internal/model"
	"predictionMarket/internal/registry"
	"predictionMarket/internal/simulate"
)

func runList(cmd *cobra.Command, _ []string) error {
	scenarioPath, _ := cmd.Flags().GetString("scenario")
	level, _ := cmd.Flags().GetString("log-level")

	logger, err := newLogger(level)
	if err != nil {
		return err
	}
	defer logger.Sync()

	scenario, err := config.LoadScenario(scenarioPath)
	if err != nil {
		return err
	}

	runner := simulate.NewRunner(simulate.Config{}, registry.New(logger), nil, logger)
	if err := runner.CreateMarkets(scenario.Markets); err != nil {
		return err
	}

	reg := runner.Registry()
	thresholds := reg.List()
	out := cmd.OutOrStdout()
	for _, name := range reg.Names() {
		fmt.Fprintf(out, "%s\t%s\t%g\n", model.MarketID(name), name, thresholds[name])
	}
	return nil
}
