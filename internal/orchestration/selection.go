package orchestration

import (
	"github.com/jmorel/convcalc/internal/config"
	"github.com/jmorel/convcalc/internal/conv"
)

// GetConvolversToRun determines which convolvers should be executed based on
// the configuration. Returns convolvers in alphabetically sorted order for
// consistent, reproducible behavior.
//
// Parameters:
//   - cfg: The application configuration containing the algorithm selection.
//   - factory: The convolver factory to retrieve implementations from.
//
// Returns:
//   - []conv.Convolver: A slice of convolvers to execute.
func GetConvolversToRun(cfg config.AppConfig, factory *conv.ConvolverFactory) []conv.Convolver {
	if cfg.Algo == "all" {
		keys := factory.List() // List() returns sorted keys
		convolvers := make([]conv.Convolver, 0, len(keys))
		for _, k := range keys {
			if c, err := factory.Get(k); err == nil {
				convolvers = append(convolvers, c)
			}
		}
		return convolvers
	}
	if c, err := factory.Get(cfg.Algo); err == nil {
		return []conv.Convolver{c}
	}
	return nil
}
