package config

import (
	"fmt"

	"github.com/spf13/viper"

	"predictionMarket/internal/model"
)

// LoadScenario reads a scenario file. The format follows the file extension
// (yaml, json, toml).
func LoadScenario(path string) (model.Scenario, error) {
	if path == "" {
		return model.Scenario{}, fmt.Errorf("scenario path is required")
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return model.Scenario{}, fmt.Errorf("read scenario: %w", err)
	}

	var scenario model.Scenario
	if err := v.Unmarshal(&scenario); err != nil {
		return model.Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	if len(scenario.Markets) == 0 {
		return model.Scenario{}, fmt.Errorf("scenario defines no markets")
	}

	for i, spec := range scenario.Markets {
		if spec.Name == "" {
			return model.Scenario{}, fmt.Errorf("scenario market %d: name is required", i)
		}
	}

	return scenario, nil
}
