package configs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	def := NewDefaultDiscovery()
	if *c != *def {
		t.Fatalf("expected %+v, but got %+v", def, c)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subgroup.yaml")
	content := "result_set_size: 10\na: 0.25\ndedup_policy: containment\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SUBGROUP_NUM_BINS", "7")

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.ResultSetSize != 10 || c.A != 0.25 || c.DedupPolicy != DedupContainment {
		t.Fatalf("expected values from file, but got %+v", c)
	}
	if c.NumBins != 7 {
		t.Fatalf("expected num bins from env, but got %d", c.NumBins)
	}
	if c.Depth != 2 {
		t.Fatalf("expected default depth, but got %d", c.Depth)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subgroup.yaml")
	if err := os.WriteFile(path, []byte("depth: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != ErrInvalidDepth {
		t.Fatalf("expected %v, but got %v", ErrInvalidDepth, err)
	}
}
