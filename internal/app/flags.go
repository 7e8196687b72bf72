package app

import (
	"flag"
	"fmt"
	"strconv"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/sims/wildfire"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim        string
	Scale      int
	TPS        int
	HUDWidth   int
	Seed       int64
	ConfigPath string
	Overrides  core.KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "wildfire", Scale: 8, TPS: 8, HUDWidth: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed override (0 keeps the configured seed)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML scenario file")
	fs.Var(&c.Overrides, "set", "parameter override in key=value form (repeatable)")
}

// Settings merges the flags into the key/value map a registered factory
// takes. -config and -seed take precedence over -set.
func (c *Config) Settings() (map[string]string, error) {
	kv, err := c.Overrides.Map()
	if err != nil {
		return nil, err
	}
	if c.ConfigPath != "" {
		kv["config"] = c.ConfigPath
	}
	if c.Seed != 0 {
		kv["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return kv, nil
}

// Build resolves the configured sim through the registry. The viewer replays
// recorded history, so the sim must be a wildfire run.
func (c *Config) Build() (*wildfire.Simulation, error) {
	kv, err := c.Settings()
	if err != nil {
		return nil, err
	}
	sim, err := core.Lookup(c.Sim, kv)
	if err != nil {
		return nil, err
	}
	fire, ok := sim.(*wildfire.Simulation)
	if !ok {
		return nil, fmt.Errorf("sim %q does not record history", c.Sim)
	}
	return fire, nil
}
