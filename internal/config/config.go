package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/deeporbit/internal/orbit"
)

const (
	DefaultStepMin  = 60.0
	DefaultSpanMin  = 10080.0 // one week
	MinutesPerDay   = 1440.0
	DegreesToRadian = math.Pi / 180.0
)

// Config describes one satellite and a propagation request. Element
// angles are degrees and mean motion is revolutions per day, the units
// element sets are usually published in; conversion to the internal
// radian/minute convention happens in ToElements.
type Config struct {
	Name     string         `yaml:"name"`
	Epoch    time.Time      `yaml:"epoch"`
	Elements ElementsConfig `yaml:"elements"`
	Span     SpanConfig     `yaml:"span"`
}

type ElementsConfig struct {
	Eccentricity float64 `yaml:"eccentricity"`
	Inclination  float64 `yaml:"inclination_deg"`
	RAAN         float64 `yaml:"raan_deg"`
	ArgPerigee   float64 `yaml:"arg_perigee_deg"`
	MeanAnomaly  float64 `yaml:"mean_anomaly_deg"`
	MeanMotion   float64 `yaml:"mean_motion_revday"`
}

type SpanConfig struct {
	Start float64 `yaml:"start_min"`
	Stop  float64 `yaml:"stop_min"`
	Step  float64 `yaml:"step_min"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:  "geostationary",
		Epoch: time.Date(2006, 6, 15, 12, 0, 0, 0, time.UTC),
		Elements: ElementsConfig{
			Eccentricity: 0.001,
			Inclination:  0.573,
			RAAN:         80.0,
			ArgPerigee:   45.0,
			MeanAnomaly:  120.0,
			MeanMotion:   1.00273896,
		},
		Span: SpanConfig{Start: 0, Stop: DefaultSpanMin, Step: DefaultStepMin},
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
	return cfg, cfg.Validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Elements.MeanMotion <= 0 {
		return fmt.Errorf("mean motion must be positive, got %f", c.Elements.MeanMotion)
	}
	if c.Elements.Eccentricity < 0 || c.Elements.Eccentricity >= 1 {
		return fmt.Errorf("eccentricity must be in [0, 1), got %f", c.Elements.Eccentricity)
	}
	if c.Span.Step <= 0 {
		return fmt.Errorf("step must be positive, got %f", c.Span.Step)
	}
	return nil
}

// ToElements converts the published units to the internal convention:
// radians and radians per minute.
func (c *Config) ToElements() orbit.Elements {
	return orbit.Elements{
		Eccentricity: c.Elements.Eccentricity,
		Inclination:  c.Elements.Inclination * DegreesToRadian,
		RAAN:         c.Elements.RAAN * DegreesToRadian,
		ArgPerigee:   c.Elements.ArgPerigee * DegreesToRadian,
		MeanAnomaly:  c.Elements.MeanAnomaly * DegreesToRadian,
		MeanMotion:   c.Elements.MeanMotion * orbit.TwoPi / MinutesPerDay,
	}
}
