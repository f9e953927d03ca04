package state

import (
	"runtime"
	"time"

	"css2tw/config"
	"css2tw/convert/tailwind"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:   time.Now(),
		Options: tailwind.Options{UsePrefix: true},
		Format:  config.OutputFmtClasses,
		Jobs:    runtime.NumCPU(),
	}
}

// ApplyConfig takes conversion defaults from loaded configuration. Command
// line flags are applied on top of it later.
func (e *LocalEnv) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	e.Cfg = cfg
	e.Options = tailwind.Options{
		UsePrefix: cfg.Conversion.UsePrefix,
		Prefix:    cfg.Conversion.Prefix,
	}
	e.Format = cfg.Output.Format
}
