package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DemoConfig holds configuration for the demo command.
type DemoConfig struct {
	Name             string
	Threshold        float64
	InitialLiquidity *float64
	Amount           float64
	Result           string
	Out              string
	LogLevel         string
}

// LoadDemo merges config file, environment variables, and flags into DemoConfig.
// Setting unseeded leaves InitialLiquidity nil.
func LoadDemo(cfgFile string, flags *pflag.FlagSet) (DemoConfig, error) {
	v := viper.New()
	v.SetDefault("name", "Market 1")
	v.SetDefault("threshold", 5000.0)
	v.SetDefault("liquidity", 1000.0)
	v.SetDefault("unseeded", false)
	v.SetDefault("amount", 100.0)
	v.SetDefault("result", "under")
	v.SetDefault("out", "")
	v.SetDefault("log-level", "info")

	if err := readInto(v, cfgFile, flags); err != nil {
		return DemoConfig{}, err
	}

	cfg := DemoConfig{
		Name:      v.GetString("name"),
		Threshold: v.GetFloat64("threshold"),
		Amount:    v.GetFloat64("amount"),
		Result:    v.GetString("result"),
		Out:       v.GetString("out"),
		LogLevel:  v.GetString("log-level"),
	}
	if !v.GetBool("unseeded") {
		seed := v.GetFloat64("liquidity")
		cfg.InitialLiquidity = &seed
	}

	return cfg, nil
}
