// Package census records per-generation population data for a run and can
// export it as CSV or reduce it to summary statistics.
package census

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"dull-life/pkg/life"
)

// Record captures one observed generation.
type Record struct {
	Generation   int     `csv:"generation"`
	Population   int     `csv:"population"`
	LiveFraction float64 `csv:"live_fraction"`
	Births       int     `csv:"births"`
	Deaths       int     `csv:"deaths"`
}

// Summary reduces a whole run to a handful of numbers.
type Summary struct {
	Generations      int
	PeakPopulation   int
	FinalPopulation  int
	MeanLiveFraction float64
	StdLiveFraction  float64
}

// Collector accumulates Records across a run. Births and deaths are derived
// by diffing each observed live set against the previous one, so Observe
// must be called once per generation in order.
type Collector struct {
	area    int
	prev    map[life.Cell]bool
	records []Record
}

// NewCollector creates a collector for a rows x cols world.
func NewCollector(rows, cols int) *Collector {
	return &Collector{area: rows * cols}
}

// Observe records the live set of one generation and returns its Record.
func (c *Collector) Observe(generation int, cells []life.Cell) Record {
	set := make(map[life.Cell]bool, len(cells))
	for _, cell := range cells {
		set[cell] = true
	}

	births, deaths := 0, 0
	if c.prev != nil {
		for cell := range set {
			if !c.prev[cell] {
				births++
			}
		}
		for cell := range c.prev {
			if !set[cell] {
				deaths++
			}
		}
	}
	c.prev = set

	rec := Record{
		Generation:   generation,
		Population:   len(cells),
		LiveFraction: float64(len(cells)) / float64(c.area),
		Births:       births,
		Deaths:       deaths,
	}
	c.records = append(c.records, rec)
	return rec
}

// Records returns everything observed so far.
func (c *Collector) Records() []Record { return c.records }

// Summary computes run statistics over the observed generations.
func (c *Collector) Summary() Summary {
	s := Summary{Generations: len(c.records)}
	if len(c.records) == 0 {
		return s
	}

	fractions := make([]float64, len(c.records))
	for i, rec := range c.records {
		fractions[i] = rec.LiveFraction
		if rec.Population > s.PeakPopulation {
			s.PeakPopulation = rec.Population
		}
	}
	s.FinalPopulation = c.records[len(c.records)-1].Population
	s.MeanLiveFraction = stat.Mean(fractions, nil)
	if len(fractions) > 1 {
		s.StdLiveFraction = stat.StdDev(fractions, nil)
	}
	return s
}

// WriteCSV writes all records, with a header row, to w.
func (c *Collector) WriteCSV(w io.Writer) error {
	if err := gocsv.Marshal(c.records, w); err != nil {
		return fmt.Errorf("writing census: %w", err)
	}
	return nil
}
