package census

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"dull-life/pkg/life"
)

func TestObserveTracksBirthsAndDeaths(t *testing.T) {
	c := NewCollector(5, 5)

	vertical := []life.Cell{{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}}
	horizontal := []life.Cell{{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}}

	first := c.Observe(0, vertical)
	if first.Births != 0 || first.Deaths != 0 {
		t.Fatalf("first observation births=%d deaths=%d, want 0/0", first.Births, first.Deaths)
	}
	if first.Population != 3 {
		t.Fatalf("population = %d, want 3", first.Population)
	}
	if math.Abs(first.LiveFraction-0.12) > 1e-9 {
		t.Fatalf("live fraction = %v, want 0.12", first.LiveFraction)
	}

	second := c.Observe(1, horizontal)
	// The blinker flip keeps the center cell: two born, two died.
	if second.Births != 2 || second.Deaths != 2 {
		t.Fatalf("blinker flip births=%d deaths=%d, want 2/2", second.Births, second.Deaths)
	}
}

func TestSummary(t *testing.T) {
	c := NewCollector(10, 10)
	c.Observe(0, make([]life.Cell, 0))
	c.Observe(1, []life.Cell{{Row: 1, Col: 1}, {Row: 2, Col: 2}})
	c.Observe(2, []life.Cell{{Row: 3, Col: 3}})

	s := c.Summary()
	if s.Generations != 3 {
		t.Fatalf("Generations = %d, want 3", s.Generations)
	}
	if s.PeakPopulation != 2 {
		t.Fatalf("PeakPopulation = %d, want 2", s.PeakPopulation)
	}
	if s.FinalPopulation != 1 {
		t.Fatalf("FinalPopulation = %d, want 1", s.FinalPopulation)
	}
	if math.Abs(s.MeanLiveFraction-0.01) > 1e-9 {
		t.Fatalf("MeanLiveFraction = %v, want 0.01", s.MeanLiveFraction)
	}
	if s.StdLiveFraction <= 0 {
		t.Fatalf("StdLiveFraction = %v, want > 0", s.StdLiveFraction)
	}
}

func TestEmptySummary(t *testing.T) {
	s := NewCollector(4, 4).Summary()
	if s.Generations != 0 || s.PeakPopulation != 0 || s.MeanLiveFraction != 0 {
		t.Fatalf("empty summary not zeroed: %+v", s)
	}
}

func TestWriteCSV(t *testing.T) {
	c := NewCollector(5, 5)
	c.Observe(0, []life.Cell{{Row: 0, Col: 0}})
	c.Observe(1, nil)

	var buf bytes.Buffer
	if err := c.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("CSV has %d lines, want header plus 2 records:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "generation") || !strings.Contains(lines[0], "live_fraction") {
		t.Fatalf("CSV header missing columns: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0,1,") {
		t.Fatalf("first record unexpected: %q", lines[1])
	}
}
