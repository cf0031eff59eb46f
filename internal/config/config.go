package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt                 = 1.0 / 60.0
	DefaultDuration           = 10.0
	DefaultVelocityIterations = 8
	DefaultPositionIterations = 3
	DefaultFluidDensity       = 2.0
	DefaultLinearDrag         = 5.0
	DefaultAngularDrag        = 2.0
)

type Config struct {
	Scenario           string       `yaml:"scenario"`
	Dt                 float64      `yaml:"dt"`
	Duration           float64      `yaml:"duration"`
	VelocityIterations int          `yaml:"velocity_iterations"`
	PositionIterations int          `yaml:"position_iterations"`
	WarmStarting       bool         `yaml:"warm_starting"`
	Seed               int64        `yaml:"seed"`
	Gravity            VecConfig    `yaml:"gravity"`
	Fluid              FluidConfig  `yaml:"fluid"`
	Spring             SpringConfig `yaml:"spring"`
}

type VecConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type FluidConfig struct {
	Density     float64 `yaml:"density"`
	LinearDrag  float64 `yaml:"linear_drag"`
	AngularDrag float64 `yaml:"angular_drag"`

	// Wave surface animation. Amplitude 0 keeps the surface flat.
	WaveAmplitude float64 `yaml:"wave_amplitude"`
	WaveFrequency float64 `yaml:"wave_frequency"`
	WaveNumber    float64 `yaml:"wave_number"`
}

type SpringConfig struct {
	Stiffness  float64 `yaml:"stiffness"`
	Damping    float64 `yaml:"damping"`
	Breakpoint float64 `yaml:"breakpoint"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario:           "weld_pair",
		Dt:                 DefaultDt,
		Duration:           DefaultDuration,
		VelocityIterations: DefaultVelocityIterations,
		PositionIterations: DefaultPositionIterations,
		WarmStarting:       true,
		Gravity:            VecConfig{X: 0.0, Y: -10.0},
		Fluid: FluidConfig{
			Density:     DefaultFluidDensity,
			LinearDrag:  DefaultLinearDrag,
			AngularDrag: DefaultAngularDrag,
		},
		Spring: SpringConfig{
			Stiffness: 30.0,
			Damping:   2.0,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
