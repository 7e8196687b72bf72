package wildfire

import (
	"strconv"

	"wildfire-ca/internal/core"
)

// Parameters describes the active configuration for display.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	params := s.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("size", "Grid size", s.cfg.Size),
				intParam("steps", "Steps", s.cfg.Steps),
				int64Param("seed", "Seed", s.seed),
				intParam("burn_time", "Burn time", params.BurnTime),
				intParam("exogenous_ignitions", "Exogenous ignitions", params.ExogenousIgnitions),
			},
		},
		{
			Name: "Landscape",
			Params: []core.Parameter{
				floatParam("base_elevation", "Base elevation (m)", params.BaseElevation),
				floatParam("valley_depth", "Valley depth (m)", params.ValleyDepth),
				floatParam("valley_width_ratio", "Valley width ratio", params.ValleyWidthRatio),
				floatParam("barren_chance", "Barren chance", params.BarrenChance),
				floatParam("fuel_mean", "Fuel mean", params.FuelMean),
				floatParam("fuel_stddev", "Fuel std dev", params.FuelStdDev),
			},
		},
		{
			Name: "Wind",
			Params: []core.Parameter{
				floatParam("wind_noise_sigma", "Wind noise sigma", params.WindNoiseSigma),
				floatParam("wind_base_smoothing", "Wind base smoothing", params.WindBaseSmoothing),
			},
		},
		{
			Name: "Ignition",
			Params: []core.Parameter{
				floatParam("ignition_base", "Base probability", params.IgnitionBase),
				floatParam("slope_coeff", "Slope coefficient", params.SlopeCoeff),
				floatParam("wind_speed_coeff", "Wind speed coefficient", params.WindSpeedCoeff),
				floatParam("wind_align_coeff", "Wind alignment coefficient", params.WindAlignCoeff),
			},
		},
		{
			Name: "Temperature",
			Params: []core.Parameter{
				floatParam("ambient_temp_c", "Ambient (C)", params.AmbientTemp),
				floatParam("peak_temp_c", "Peak (C)", params.PeakTemp),
				floatParam("peak_drop_c", "Peak drop (C)", params.PeakDrop),
				intParam("diffusion_radius", "Diffusion radius", params.DiffusionRadius),
				floatParam("diffusion_decay", "Diffusion decay", params.DiffusionDecay),
				floatParam("diffusion_gain", "Diffusion gain", params.DiffusionGain),
				floatParam("ash_temp_c", "Ash (C)", params.AshTemp),
				floatParam("ash_cooling", "Ash cooling", params.AshCooling),
			},
		},
		{
			Name: "Analytics",
			Params: []core.Parameter{
				floatParam("cell_size_m", "Cell size (m)", params.CellSizeMeters),
				floatParam("hotspot_threshold_c", "Hotspot threshold (C)", params.HotspotThreshold),
				intParam("hotspot_limit", "Hotspot limit", params.HotspotLimit),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
