package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(4, 4)

	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("expected pixel at (0,0) to be set")
	}

	c.Unset(0, 0)
	if c.Grid[0][0] != 0x2800 {
		t.Errorf("expected empty cell after unset, got %U", c.Grid[0][0])
	}
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(2, 2)

	c.Set(-1, 0)
	c.Set(0, -3)
	c.Set(4, 0)
	c.Set(0, 8)

	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				t.Fatalf("out-of-range set touched the grid: %U", cell)
			}
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.DrawLine(0, 0, 5, 11)
	c.Clear()

	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				t.Fatal("clear left pixels behind")
			}
		}
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	got := c.String()

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("expected 3 cells per line, got %d", len([]rune(line)))
		}
	}
}

func TestDrawCircleStaysCentered(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawCircle(10, 20, 6)

	set := func(x, y int) bool {
		return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
	}

	// Cardinal points of the outline.
	for _, p := range [][2]int{{16, 20}, {4, 20}, {10, 26}, {10, 14}} {
		if !set(p[0], p[1]) {
			t.Errorf("expected outline pixel at (%d,%d)", p[0], p[1])
		}
	}
	if set(10, 20) {
		t.Error("circle outline should not fill the center")
	}
}

func TestDrawCircleZeroRadius(t *testing.T) {
	c := NewCanvas(4, 4)
	c.DrawCircle(3, 3, 0)

	if c.Grid[0][1]&rune(pixelMap[3][1]) == 0 {
		t.Error("zero radius should set the center pixel")
	}
}

func TestSeries(t *testing.T) {
	states := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8},
	}

	got := Series(states, 2)
	want := []float64{3, 6, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("series[%d]: expected %v, got %v", i, want[i], got[i])
		}
	}
}
