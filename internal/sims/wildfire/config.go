package wildfire

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration cannot describe a runnable simulation.
var ErrInvalidConfig = errors.New("wildfire: invalid config")

// Params holds the model coefficients. The defaults reproduce the reference
// fire model; they are exposed so scenarios and tests can pin individual terms.
type Params struct {
	BurnTime           int `yaml:"burn_time"`
	ExogenousIgnitions int `yaml:"exogenous_ignitions"`

	BaseElevation    float64 `yaml:"base_elevation"`
	ValleyDepth      float64 `yaml:"valley_depth"`
	ValleyWidthRatio float64 `yaml:"valley_width_ratio"`

	BarrenChance float64 `yaml:"barren_chance"`
	FuelMean     float64 `yaml:"fuel_mean"`
	FuelStdDev   float64 `yaml:"fuel_stddev"`

	WindNoiseSigma    float64 `yaml:"wind_noise_sigma"`
	WindBaseSmoothing float64 `yaml:"wind_base_smoothing"`

	IgnitionBase   float64 `yaml:"ignition_base"`
	SlopeCoeff     float64 `yaml:"slope_coeff"`
	WindSpeedCoeff float64 `yaml:"wind_speed_coeff"`
	WindAlignCoeff float64 `yaml:"wind_align_coeff"`

	AmbientTemp     float64 `yaml:"ambient_temp_c"`
	PeakTemp        float64 `yaml:"peak_temp_c"`
	PeakDrop        float64 `yaml:"peak_drop_c"`
	DiffusionRadius int     `yaml:"diffusion_radius"`
	DiffusionDecay  float64 `yaml:"diffusion_decay"`
	DiffusionGain   float64 `yaml:"diffusion_gain"`
	AshTemp         float64 `yaml:"ash_temp_c"`
	AshCooling      float64 `yaml:"ash_cooling"`

	CellSizeMeters   float64 `yaml:"cell_size_m"`
	HotspotThreshold float64 `yaml:"hotspot_threshold_c"`
	HotspotLimit     int     `yaml:"hotspot_limit"`
}

// Config controls the simulation dimensions, length and seed.
type Config struct {
	Size  int   `yaml:"size"`
	Steps int   `yaml:"steps"`
	Seed  int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:  64,
		Steps: 200,
		Seed:  1337,
		Params: Params{
			BurnTime:           5,
			ExogenousIgnitions: 16,
			BaseElevation:      100,
			ValleyDepth:        150,
			ValleyWidthRatio:   0.25,
			BarrenChance:       0.1,
			FuelMean:           5,
			FuelStdDev:         2,
			WindNoiseSigma:     0.15,
			WindBaseSmoothing:  0,
			IgnitionBase:       0.7,
			SlopeCoeff:         0.088,
			WindSpeedCoeff:     0.0045,
			WindAlignCoeff:     0.191,
			AmbientTemp:        20,
			PeakTemp:           800,
			PeakDrop:           300,
			DiffusionRadius:    3,
			DiffusionDecay:     0.6,
			DiffusionGain:      0.4,
			AshTemp:            400,
			AshCooling:         0.97,
			CellSizeMeters:     30,
			HotspotThreshold:   60,
			HotspotLimit:       10,
		},
	}
}

// Validate reports whether the configuration can be simulated.
func (c Config) Validate() error {
	switch {
	case c.Size < 3:
		return fmt.Errorf("%w: size %d cannot hold a border and an ignition cell", ErrInvalidConfig, c.Size)
	case c.Steps < 0:
		return fmt.Errorf("%w: negative step count %d", ErrInvalidConfig, c.Steps)
	case c.Params.BurnTime < 1:
		return fmt.Errorf("%w: burn time %d must be at least 1", ErrInvalidConfig, c.Params.BurnTime)
	case c.Params.ExogenousIgnitions < 0:
		return fmt.Errorf("%w: negative exogenous ignition count %d", ErrInvalidConfig, c.Params.ExogenousIgnitions)
	case c.Params.CellSizeMeters <= 0:
		return fmt.Errorf("%w: cell size %.3g m must be positive", ErrInvalidConfig, c.Params.CellSizeMeters)
	case c.Params.HotspotLimit < 0:
		return fmt.Errorf("%w: negative hotspot limit %d", ErrInvalidConfig, c.Params.HotspotLimit)
	case c.Params.DiffusionRadius < 0:
		return fmt.Errorf("%w: negative diffusion radius %d", ErrInvalidConfig, c.Params.DiffusionRadius)
	case c.Params.WindBaseSmoothing < 0 || c.Params.WindBaseSmoothing >= 1:
		return fmt.Errorf("%w: wind base smoothing %.3g outside [0,1)", ErrInvalidConfig, c.Params.WindBaseSmoothing)
	}
	return nil
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates it.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg, err := readConfig(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func readConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FromMap builds a validated config from flag-style key/value pairs. The
// "config" key names a YAML file applied before the other keys. Unknown keys
// are ignored.
func FromMap(kv map[string]string) (Config, error) {
	c := DefaultConfig()
	if path := kv["config"]; path != "" {
		loaded, err := readConfig(path)
		if err != nil {
			return c, err
		}
		c = loaded
	}
	if err := ApplyMap(&c, kv); err != nil {
		return c, err
	}
	return c, c.Validate()
}

// ApplyMap overlays flag-style key/value pairs onto an existing config. It
// fails on values that do not parse; range checks are left to Validate.
func ApplyMap(c *Config, kv map[string]string) error {
	if c == nil || kv == nil {
		return nil
	}
	var errs []error
	setInt := func(key string, dst *int) {
		if v, ok := kv[key]; ok {
			parsed, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, v))
				return
			}
			*dst = parsed
		}
	}
	setFloat := func(key string, dst *float64) {
		if v, ok := kv[key]; ok {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, key, v))
				return
			}
			*dst = parsed
		}
	}

	setInt("size", &c.Size)
	setInt("w", &c.Size)
	setInt("steps", &c.Steps)
	if v, ok := kv["seed"]; ok {
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: seed=%q is not an integer", ErrInvalidConfig, v))
		} else {
			c.Seed = parsed
		}
	}

	p := &c.Params
	setInt("burn_time", &p.BurnTime)
	setInt("exogenous_ignitions", &p.ExogenousIgnitions)
	setFloat("base_elevation", &p.BaseElevation)
	setFloat("valley_depth", &p.ValleyDepth)
	setFloat("valley_width_ratio", &p.ValleyWidthRatio)
	setFloat("barren_chance", &p.BarrenChance)
	setFloat("fuel_mean", &p.FuelMean)
	setFloat("fuel_stddev", &p.FuelStdDev)
	setFloat("wind_noise_sigma", &p.WindNoiseSigma)
	setFloat("wind_base_smoothing", &p.WindBaseSmoothing)
	setFloat("ignition_base", &p.IgnitionBase)
	setFloat("slope_coeff", &p.SlopeCoeff)
	setFloat("wind_speed_coeff", &p.WindSpeedCoeff)
	setFloat("wind_align_coeff", &p.WindAlignCoeff)
	setFloat("ambient_temp_c", &p.AmbientTemp)
	setFloat("peak_temp_c", &p.PeakTemp)
	setFloat("peak_drop_c", &p.PeakDrop)
	setInt("diffusion_radius", &p.DiffusionRadius)
	setFloat("diffusion_decay", &p.DiffusionDecay)
	setFloat("diffusion_gain", &p.DiffusionGain)
	setFloat("ash_temp_c", &p.AshTemp)
	setFloat("ash_cooling", &p.AshCooling)
	setFloat("cell_size_m", &p.CellSizeMeters)
	setFloat("hotspot_threshold_c", &p.HotspotThreshold)
	setInt("hotspot_limit", &p.HotspotLimit)
	return errors.Join(errs...)
}
