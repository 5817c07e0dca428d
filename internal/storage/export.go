package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	Scene     string             `json:"scene"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Dimension int                `json:"dimension"`
	Bodies    int                `json:"bodies"`
	Steps     int                `json:"steps"`
	Times     []float64          `json:"times"`
	States    [][]float64        `json:"states"`
	Metrics   map[string]float64 `json:"metrics"`
}

// ExportJSON writes a stored run as a single JSON document to path.
func ExportJSON(path string, meta *RunMetadata, times []float64, states [][]float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return exportJSON(file, meta, times, states)
}

// ExportJSONStdout writes a stored run as a single JSON document to stdout.
func ExportJSONStdout(meta *RunMetadata, times []float64, states [][]float64) error {
	return exportJSON(os.Stdout, meta, times, states)
}

func exportJSON(w io.Writer, meta *RunMetadata, times []float64, states [][]float64) error {
	data := ExportData{
		Scene:     meta.Scene,
		Dt:        meta.Dt,
		Duration:  meta.Duration,
		Dimension: meta.Dimension,
		Bodies:    meta.Bodies,
		Steps:     len(times),
		Times:     times,
		States:    states,
		Metrics:   meta.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
