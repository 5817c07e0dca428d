package config

import "sort"

func coeff(e float64) *float64 { return &e }

var Presets = map[string]*Config{
	"two_body_elastic": {
		Name: "two_body_elastic", Dimension: 2, Dt: 1, Duration: 4,
		Bodies: []BodyConfig{
			{Position: []float64{0, 0}, Velocity: []float64{1, 0}, Mass: 1,
				Shape: ShapeConfig{Kind: "sphere", Radius: 0.5}},
			{Position: []float64{3, 0}, Velocity: []float64{-1, 0}, Mass: 1,
				Shape: ShapeConfig{Kind: "sphere", Radius: 0.5}},
		},
	},
	"head_on": {
		Name: "head_on", Dimension: 2, Dt: 0.01, Duration: 10,
		Bodies: []BodyConfig{
			{Position: []float64{-2, 0}, Velocity: []float64{1, 0}, Mass: 2,
				Shape: ShapeConfig{Kind: "sphere", Radius: 0.5}, Restitution: coeff(0.5)},
			{Position: []float64{2, 0}, Velocity: []float64{-1, 0}, Mass: 1,
				Shape: ShapeConfig{Kind: "sphere", Radius: 0.5}, Restitution: coeff(0.5)},
		},
	},
	"charged_pair": {
		Name: "charged_pair", Dimension: 2, Dt: 0.0001, Duration: 1,
		Bodies: []BodyConfig{
			{Position: []float64{-0.5, 0}, Velocity: []float64{0, 6.7}, Mass: 0.01, Charge: 1e-5},
			{Position: []float64{0.5, 0}, Velocity: []float64{0, -6.7}, Mass: 0.01, Charge: -1e-5},
		},
	},
	"orbit": {
		Name: "orbit", Dimension: 2, Dt: 1, Duration: 5400,
		Bodies: []BodyConfig{
			{Position: []float64{0, 0}, Mass: 5.972e24, Static: true},
			{Position: []float64{6.771e6, 0}, Velocity: []float64{0, 7672}, Mass: 1000},
		},
	},
	"box_fall": {
		Name: "box_fall", Dimension: 2, Dt: 0.005, Duration: 3,
		Fields: FieldsConfig{Gravity: []float64{0, -9.8}},
		Bodies: []BodyConfig{
			{Position: []float64{0, 3}, Mass: 1, Restitution: coeff(0.3),
				Shape: ShapeConfig{Kind: "polygon", Points: [][]float64{
					{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5},
				}}},
			{Position: []float64{0, -0.5}, Mass: 1000, Static: true, Restitution: coeff(0.3),
				Shape: ShapeConfig{Kind: "polygon", Points: [][]float64{
					{-5, -0.5}, {5, -0.5}, {5, 0.5}, {-5, 0.5},
				}}},
		},
	},
	"magnetic_helix": {
		Name: "magnetic_helix", Dimension: 3, Dt: 0.001, Duration: 10,
		Fields: FieldsConfig{Magnetic: []float64{0, 0, 1}},
		Bodies: []BodyConfig{
			{Position: []float64{0, 0, 0}, Velocity: []float64{1, 0, 0.2}, Mass: 0.001, Charge: 0.001},
		},
	},
	"polygon_drift": {
		Name: "polygon_drift", Dimension: 2, Dt: 0.01, Duration: 6,
		Bodies: []BodyConfig{
			{Position: []float64{-1.2, 0}, Velocity: []float64{0.5, 0}, Mass: 1,
				Shape: ShapeConfig{Kind: "polygon", Points: [][]float64{
					{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5},
				}}},
			{Position: []float64{1.2, 0}, Velocity: []float64{-0.5, 0}, Mass: 1,
				Shape: ShapeConfig{Kind: "polygon", Points: [][]float64{
					{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5},
				}}},
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
