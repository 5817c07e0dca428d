package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Bunch-of-cells/oganesson/internal/universe"
)

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := &universe.Result{
		Times: []float64{0.0, 0.01},
		States: [][]float64{
			{1.0, 0.0, -0.5, 0.0},
			{0.995, 0.0, -0.5, 6.674e-11},
		},
		Metrics: map[string]float64{
			"energy_drift": 1.5e-9,
		},
	}

	runID, err := st.Save("test", 0.01, 1.0, 2, 1, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Scene != "test" {
		t.Errorf("expected scene 'test', got '%s'", meta.Scene)
	}
	if meta.Dimension != 2 {
		t.Errorf("expected dimension 2, got %d", meta.Dimension)
	}
	if meta.Bodies != 1 {
		t.Errorf("expected 1 body, got %d", meta.Bodies)
	}
	if meta.Metrics["energy_drift"] != 1.5e-9 {
		t.Errorf("expected energy_drift 1.5e-9, got %g", meta.Metrics["energy_drift"])
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		t.Fatalf("load states failed: %v", err)
	}

	if len(states) != 2 {
		t.Fatalf("expected 2 states, got %d", len(states))
	}
	if len(times) != 2 {
		t.Fatalf("expected 2 times, got %d", len(times))
	}

	// Full-precision formatting means the reloaded trajectory is bit-exact.
	for i, row := range result.States {
		for j, want := range row {
			if states[i][j] != want {
				t.Errorf("state[%d][%d]: expected %g, got %g", i, j, want, states[i][j])
			}
		}
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	result := &universe.Result{
		Times:   []float64{0.0},
		States:  [][]float64{{1.0, 0.0}},
		Metrics: map[string]float64{},
	}

	_, err = st.Save("test", 0.01, 1.0, 1, 1, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := &universe.Result{
		Times:   []float64{0.0},
		States:  [][]float64{{1.0, 0.0}},
		Metrics: map[string]float64{},
	}

	runID, err := st.Save("test", 0.01, 1.0, 1, 1, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	metaPath := filepath.Join(runDir, "metadata.json")
	csvPath := filepath.Join(runDir, "states.csv")

	if _, err := os.Stat(metaPath); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}

	if _, err := os.Stat(csvPath); os.IsNotExist(err) {
		t.Error("states.csv not created")
	}
}

func TestStateHeader(t *testing.T) {
	got := StateHeader(2, 2)
	want := []string{"time", "b0_p0", "b0_p1", "b0_v0", "b0_v1", "b1_p0", "b1_p1", "b1_v0", "b1_v1"}

	if len(got) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")

	meta := &RunMetadata{
		ID:        "test_1",
		Scene:     "head_on",
		Dt:        0.01,
		Duration:  1.0,
		Dimension: 2,
		Bodies:    2,
		Metrics:   map[string]float64{"kinetic_energy": 2.5},
	}
	times := []float64{0.0, 0.01}
	states := [][]float64{
		{-2, 0, 1, 0, 2, 0, -1, 0},
		{-1.99, 0, 1, 0, 1.99, 0, -1, 0},
	}

	if err := ExportJSON(path, meta, times, states); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	if data.Scene != "head_on" {
		t.Errorf("expected scene head_on, got %s", data.Scene)
	}
	if data.Steps != 2 {
		t.Errorf("expected 2 steps, got %d", data.Steps)
	}
	if len(data.States) != 2 || len(data.States[0]) != 8 {
		t.Errorf("unexpected state shape: %v", data.States)
	}
	if data.Metrics["kinetic_energy"] != 2.5 {
		t.Errorf("expected kinetic_energy 2.5, got %g", data.Metrics["kinetic_energy"])
	}
}
