package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "MARKET"

// SimulateConfig holds configuration for running a scenario file.
type SimulateConfig struct {
	Scenario    string
	Out         string
	StopOnError bool
	BatchSize   int
	LogLevel    string
}

// LoadSimulate merges config file, environment variables, and flags into SimulateConfig.
func LoadSimulate(cfgFile string, flags *pflag.FlagSet) (SimulateConfig, error) {
	v := viper.New()
	v.SetDefault("out", "./data/report.jsonl")
	v.SetDefault("stop-on-error", false)
	v.SetDefault("batch-size", 100)
	v.SetDefault("log-level", "info")

	if err := readInto(v, cfgFile, flags); err != nil {
		return SimulateConfig{}, err
	}

	cfg := SimulateConfig{
		Scenario:    v.GetString("scenario"),
		Out:         v.GetString("out"),
		StopOnError: v.GetBool("stop-on-error"),
		BatchSize:   v.GetInt("batch-size"),
		LogLevel:    v.GetString("log-level"),
	}

	return cfg, nil
}

func readInto(v *viper.Viper, cfgFile string, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("read config: %w", err)
			}
		}
	}
	return nil
}
