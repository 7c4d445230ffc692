package pattern

import (
	"os"
	"path/filepath"
	"testing"

	"dull-life/pkg/life"
)

func TestBuiltinBlinker(t *testing.T) {
	grid, err := Builtin("blinker")
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	w, err := life.NewSparse(grid)
	if err != nil {
		t.Fatalf("builtin blinker failed kernel validation: %v", err)
	}
	if w.Population() != 3 {
		t.Fatalf("blinker population = %d, want 3", w.Population())
	}
	for _, c := range []life.Cell{{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}} {
		if !w.IsLive(c.Row, c.Col) {
			t.Fatalf("blinker missing cell %v", c)
		}
	}
}

func TestAllBuiltinsValidate(t *testing.T) {
	for _, name := range BuiltinNames() {
		grid, err := Builtin(name)
		if err != nil {
			t.Fatalf("Builtin(%q): %v", name, err)
		}
		if _, err := life.NewSparse(grid); err != nil {
			t.Fatalf("builtin %q failed kernel validation: %v", name, err)
		}
	}
}

func TestUnknownBuiltin(t *testing.T) {
	if _, err := Builtin("nope"); err == nil {
		t.Fatal("expected error for unknown builtin")
	}
}

func TestLoadPatternFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beacon.yaml")
	doc := "name: beacon\ncells:\n  - \"......\"\n  - \".##...\"\n  - \".##...\"\n  - \"...##.\"\n  - \"...##.\"\n  - \"......\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing pattern file: %v", err)
	}

	grid, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	w, err := life.NewSparse(grid)
	if err != nil {
		t.Fatalf("loaded pattern failed kernel validation: %v", err)
	}
	if w.Population() != 8 {
		t.Fatalf("beacon population = %d, want 8", w.Population())
	}
}

func TestLoadRejectsUnknownRune(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	doc := "name: bad\ncells:\n  - \"..x..\"\n  - \".....\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing pattern file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown cell rune")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRandomSoupDeterministic(t *testing.T) {
	a := Random(24, 40, DefaultDensity, 42)
	b := Random(24, 40, DefaultDensity, 42)
	for r := range a {
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				t.Fatalf("soups with equal seeds differ at (%d,%d)", r, c)
			}
		}
	}
}

func TestRandomSoupDensityExtremes(t *testing.T) {
	empty := Random(10, 10, 0, 7)
	full := Random(10, 10, 1, 7)
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			if empty[r][c] != 0 {
				t.Fatalf("density 0 produced live cell at (%d,%d)", r, c)
			}
			if full[r][c] != 1 {
				t.Fatalf("density 1 produced dead cell at (%d,%d)", r, c)
			}
		}
	}
}
