package orekit

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

var (
	cfgOnce sync.Once
	config  = _propconfig{}
)

// _propconfig is a "hidden" struct, just use `propConfig`.
type _propconfig struct {
	solverTol     float64 // Kepler / longitude equation tolerance (rad)
	solverMaxIter int
	eventTimeTol  float64 // switching-function root time tolerance (s)
	eventMaxIter  int
	outputDir     string
}

// propConfig returns the propagation configuration. Defaults are always
// registered; a conf.toml in the directory named by the OREKIT_CONFIG
// environment variable overrides them. The load happens once and is safe
// to reach from concurrent propagations.
func propConfig() _propconfig {
	cfgOnce.Do(func() {
		viper.SetDefault("solver.tolerance", 1e-12)
		viper.SetDefault("solver.maxiter", 50)
		viper.SetDefault("events.timetol", 1e-6)
		viper.SetDefault("events.maxiter", 100)
		viper.SetDefault("general.output_path", ".")
		if confPath := os.Getenv("OREKIT_CONFIG"); confPath != "" {
			viper.SetConfigName("conf")
			viper.AddConfigPath(confPath)
			if err := viper.ReadInConfig(); err != nil {
				panic(fmt.Errorf("%s/conf.toml not readable: %s", confPath, err))
			}
		}
		config = _propconfig{
			solverTol:     viper.GetFloat64("solver.tolerance"),
			solverMaxIter: viper.GetInt("solver.maxiter"),
			eventTimeTol:  viper.GetFloat64("events.timetol"),
			eventMaxIter:  viper.GetInt("events.maxiter"),
			outputDir:     viper.GetString("general.output_path"),
		}
	})
	return config
}
