package sand

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"w":                "64",
		"h":                "48",
		"seed":             "42",
		"spawn_radius":     "4",
		"erase_radius":     "6",
		"avalanche_chance": "0.5",
		"hue_step":         "3",
	})

	if c.Width != 64 || c.Height != 48 || c.Seed != 42 {
		t.Fatalf("dimensions/seed not applied: %+v", c)
	}
	if c.Params.SpawnRadius != 4 || c.Params.EraseRadius != 6 {
		t.Fatalf("radii not applied: %+v", c.Params)
	}
	if c.Params.AvalancheChance != 0.5 || c.Params.HueStep != 3 {
		t.Fatalf("tuning not applied: %+v", c.Params)
	}
}

func TestFromMapRejectsBadValues(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{
		"w":                "-3",
		"h":                "zero",
		"avalanche_chance": "1.5",
		"saturation":       "-0.1",
	})

	if c.Width != def.Width || c.Height != def.Height {
		t.Fatalf("invalid dimensions overrode defaults: %+v", c)
	}
	if c.Params.AvalancheChance != def.Params.AvalancheChance {
		t.Fatalf("out-of-range chance accepted: %f", c.Params.AvalancheChance)
	}
	if c.Params.Saturation != def.Params.Saturation {
		t.Fatalf("negative saturation accepted: %f", c.Params.Saturation)
	}

	if c := FromMap(nil); c != def {
		t.Fatalf("FromMap(nil) = %+v, want defaults", c)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := []byte(`width: 64
height: 48
seed: 42
params:
  spawn_radius: 1
  avalanche_chance: 0.2
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Width != 64 || c.Height != 48 || c.Seed != 42 {
		t.Fatalf("file values not applied: %+v", c)
	}
	if c.Params.SpawnRadius != 1 || c.Params.AvalancheChance != 0.2 {
		t.Fatalf("params not applied: %+v", c.Params)
	}
	// Keys absent from the file keep their defaults.
	if c.Params.EraseRadius != DefaultConfig().Params.EraseRadius {
		t.Fatalf("unset erase radius changed: %d", c.Params.EraseRadius)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for a missing file")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("width: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Fatal("expected error for malformed YAML")
	}

	zero := filepath.Join(dir, "zero.yaml")
	if err := os.WriteFile(zero, []byte("width: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(zero); err == nil {
		t.Fatal("expected error for non-positive dimensions")
	}
}
