package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plasmakit/tokaval/internal/mhd"
	"github.com/plasmakit/tokaval/internal/plasma"
)

// Config carries the equilibrium parameters and stability thresholds for
// one validation run. Loading starts from the defaults, so a partial yaml
// file overrides only the keys it names.
type Config struct {
	Preset      string            `yaml:"preset,omitempty"`
	Equilibrium EquilibriumConfig `yaml:"equilibrium"`
	Limits      LimitsConfig      `yaml:"limits"`
}

type EquilibriumConfig struct {
	MajorRadius   float64 `yaml:"major_radius"`
	MinorRadius   float64 `yaml:"minor_radius"`
	Field         float64 `yaml:"field"`
	Density       float64 `yaml:"density"`
	Temperature   float64 `yaml:"temperature"`
	Current       float64 `yaml:"current"`
	Beta          float64 `yaml:"beta"`
	Q0            float64 `yaml:"q0"`
	Q95           float64 `yaml:"q95"`
	Elongation    float64 `yaml:"elongation"`
	Triangularity float64 `yaml:"triangularity"`
	Enhancement   float64 `yaml:"enhancement,omitempty"`
}

type LimitsConfig struct {
	BallooningCoeff float64 `yaml:"ballooning_coeff"`
	Troyon          float64 `yaml:"troyon"`
	NTMBetaTrigger  float64 `yaml:"ntm_beta_trigger"`
	SawtoothQ0Min   float64 `yaml:"sawtooth_q0_min"`
	RWMCoeff        float64 `yaml:"rwm_coeff"`
	ELMBaseLoss     float64 `yaml:"elm_base_loss"`
	RadialSamples   int     `yaml:"radial_samples"`
}

// DefaultConfig returns the golden-section reference equilibrium with the
// published threshold set.
func DefaultConfig() *Config {
	eq := plasma.Reference()
	lim := mhd.DefaultLimits()
	return &Config{
		Equilibrium: EquilibriumConfig{
			MajorRadius:   eq.MajorRadius,
			MinorRadius:   eq.MinorRadius,
			Field:         eq.Field,
			Density:       eq.Density,
			Temperature:   eq.Temperature,
			Current:       eq.Current,
			Beta:          eq.Beta,
			Q0:            eq.Q0,
			Q95:           eq.Q95,
			Elongation:    eq.Elongation,
			Triangularity: eq.Triangularity,
		},
		Limits: LimitsConfig{
			BallooningCoeff: lim.BallooningCoeff,
			Troyon:          lim.Troyon,
			NTMBetaTrigger:  lim.NTMBetaTrigger,
			SawtoothQ0Min:   lim.SawtoothQ0Min,
			RWMCoeff:        lim.RWMCoeff,
			ELMBaseLoss:     lim.ELMBaseLoss,
			RadialSamples:   lim.RadialSamples,
		},
	}
}

// Load reads a yaml config file over the defaults.
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

// Save writes the config as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ToEquilibrium validates and builds the plasma equilibrium.
func (c *Config) ToEquilibrium() (plasma.Equilibrium, error) {
	return plasma.New(plasma.Equilibrium{
		MajorRadius:   c.Equilibrium.MajorRadius,
		MinorRadius:   c.Equilibrium.MinorRadius,
		Field:         c.Equilibrium.Field,
		Density:       c.Equilibrium.Density,
		Temperature:   c.Equilibrium.Temperature,
		Current:       c.Equilibrium.Current,
		Beta:          c.Equilibrium.Beta,
		Q0:            c.Equilibrium.Q0,
		Q95:           c.Equilibrium.Q95,
		Elongation:    c.Equilibrium.Elongation,
		Triangularity: c.Equilibrium.Triangularity,
		Enhancement:   c.Equilibrium.Enhancement,
	})
}

// ToLimits builds the threshold set, keeping the fixed golden-ratio
// derived terms from the defaults.
func (c *Config) ToLimits() mhd.Limits {
	lim := mhd.DefaultLimits()
	lim.BallooningCoeff = c.Limits.BallooningCoeff
	lim.Troyon = c.Limits.Troyon
	lim.NTMBetaTrigger = c.Limits.NTMBetaTrigger
	lim.SawtoothQ0Min = c.Limits.SawtoothQ0Min
	lim.RWMCoeff = c.Limits.RWMCoeff
	lim.ELMBaseLoss = c.Limits.ELMBaseLoss
	if c.Limits.RadialSamples > 0 {
		lim.RadialSamples = c.Limits.RadialSamples
	}
	return lim
}
