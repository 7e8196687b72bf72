package wildfire

import "wildfire-ca/internal/core"

func flatElevation(size int) core.Grid[float64] {
	return core.NewGrid[float64](size, size)
}

func uniformFuel(size, fuel int) core.Grid[int] {
	g := core.NewGrid[int](size, size)
	g.Fill(fuel)
	return g
}

// scenarioConfig is a small, fast configuration used across tests.
func scenarioConfig(size, burnTime, steps, events int) Config {
	cfg := DefaultConfig()
	cfg.Size = size
	cfg.Steps = steps
	cfg.Params.BurnTime = burnTime
	cfg.Params.ExogenousIgnitions = events
	return cfg
}
