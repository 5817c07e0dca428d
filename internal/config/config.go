package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Bunch-of-cells/oganesson/internal/body"
	"github.com/Bunch-of-cells/oganesson/internal/quantity"
	"github.com/Bunch-of-cells/oganesson/internal/universe"
)

const (
	DefaultDimension = 2
	DefaultDt        = 0.01
	DefaultDuration  = 10.0
)

// Config describes a scene: the universe to build and how long to run it.
type Config struct {
	Name      string       `yaml:"name"`
	Dimension int          `yaml:"dimension"`
	Dt        float64      `yaml:"dt"`
	Duration  float64      `yaml:"duration"`
	Workers   int          `yaml:"workers"`
	Fields    FieldsConfig `yaml:"fields"`
	Bodies    []BodyConfig `yaml:"bodies"`
}

// FieldsConfig holds the uniform fields, one slice per field, empty meaning
// off. Lengths must match the scene dimension.
type FieldsConfig struct {
	Gravity  []float64 `yaml:"gravity,omitempty"`
	Electric []float64 `yaml:"electric,omitempty"`
	Magnetic []float64 `yaml:"magnetic,omitempty"`
}

// BodyConfig describes one body. Restitution is a pointer so that an
// omitted key falls through to the builder default instead of zero.
type BodyConfig struct {
	Position    []float64   `yaml:"position"`
	Velocity    []float64   `yaml:"velocity,omitempty"`
	Mass        float64     `yaml:"mass"`
	Charge      float64     `yaml:"charge,omitempty"`
	Shape       ShapeConfig `yaml:"shape,omitempty"`
	Static      bool        `yaml:"static,omitempty"`
	Restitution *float64    `yaml:"restitution,omitempty"`
}

// ShapeConfig selects a collider. Kind is point, sphere or polygon; an
// empty kind means point.
type ShapeConfig struct {
	Kind   string      `yaml:"kind,omitempty"`
	Radius float64     `yaml:"radius,omitempty"`
	Points [][]float64 `yaml:"points,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:      "two_body_elastic",
		Dimension: DefaultDimension,
		Dt:        DefaultDt,
		Duration:  DefaultDuration,
		Workers:   1,
		Bodies: []BodyConfig{
			{Position: []float64{0, 0}, Velocity: []float64{1, 0}, Mass: 1,
				Shape: ShapeConfig{Kind: "sphere", Radius: 0.5}},
			{Position: []float64{3, 0}, Velocity: []float64{-1, 0}, Mass: 1,
				Shape: ShapeConfig{Kind: "sphere", Radius: 0.5}},
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

// Steps reports how many dt-sized steps cover the configured duration.
func (c *Config) Steps() int {
	if c.Dt <= 0 {
		return 0
	}
	return int(math.Round(c.Duration / c.Dt))
}

func (c *Config) Validate() error {
	if c.Dimension < 1 {
		return fmt.Errorf("config: dimension must be at least 1, got %d", c.Dimension)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("config: dt must be positive, got %v", c.Dt)
	}
	if c.Duration < 0 {
		return fmt.Errorf("config: duration must not be negative, got %v", c.Duration)
	}
	for name, field := range map[string][]float64{
		"gravity":  c.Fields.Gravity,
		"electric": c.Fields.Electric,
		"magnetic": c.Fields.Magnetic,
	} {
		if len(field) != 0 && len(field) != c.Dimension {
			return fmt.Errorf("config: %s field has %d components, want %d", name, len(field), c.Dimension)
		}
	}
	return nil
}

// Build validates the scene and constructs the universe it describes.
func (c *Config) Build() (*universe.Universe, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	u := universe.New(c.Dimension)
	u.SetWorkers(c.Workers)

	if len(c.Fields.Gravity) > 0 {
		if err := u.SetGravity(quantity.NewVector(c.Fields.Gravity, quantity.Acceleration)); err != nil {
			return nil, err
		}
	}
	if len(c.Fields.Electric) > 0 {
		if err := u.SetElectricField(quantity.NewVector(c.Fields.Electric, quantity.ElectricField)); err != nil {
			return nil, err
		}
	}
	if len(c.Fields.Magnetic) > 0 {
		if err := u.SetMagneticField(quantity.NewVector(c.Fields.Magnetic, quantity.Tesla)); err != nil {
			return nil, err
		}
	}

	for i, bc := range c.Bodies {
		b, err := bc.Build()
		if err != nil {
			return nil, fmt.Errorf("config: body %d: %w", i, err)
		}
		if _, err := u.AddObject(b); err != nil {
			return nil, fmt.Errorf("config: body %d: %w", i, err)
		}
	}
	return u, nil
}

// Build constructs the described body.
func (bc BodyConfig) Build() (*body.Body, error) {
	bl := body.NewBuilder(quantity.NewVector(bc.Position, quantity.Meter)).
		Mass(quantity.Kilograms(bc.Mass))
	if len(bc.Velocity) > 0 {
		bl = bl.Velocity(quantity.NewVector(bc.Velocity, quantity.Velocity))
	}
	if bc.Charge != 0 {
		bl = bl.Charge(quantity.Coulombs(bc.Charge))
	}
	shape, err := bc.Shape.build()
	if err != nil {
		return nil, err
	}
	bl = bl.Shape(shape)
	if bc.Static {
		bl = bl.Static(true)
	}
	if bc.Restitution != nil {
		bl = bl.Restitution(*bc.Restitution)
	}
	return bl.Build()
}

func (s ShapeConfig) build() (body.Shape, error) {
	switch s.Kind {
	case "", "point":
		return body.Point{}, nil
	case "sphere":
		return body.Sphere{Radius: quantity.Meters(s.Radius)}, nil
	case "polygon":
		pts := make([]quantity.Vector, len(s.Points))
		for i, p := range s.Points {
			pts[i] = quantity.NewVector(p, quantity.Meter)
		}
		return body.Polygon{Points: pts}, nil
	default:
		return nil, fmt.Errorf("config: unknown shape kind %q", s.Kind)
	}
}
