package meta

import (
	"testing"
)

var info = []byte(`name: dark halo
parameters:
  indexing: false
  nlevel: 4
  EPS: 0.01
  output:
    compact: 1
`)

func TestDecodeLookups(t *testing.T) {
	tree, err := Decode(info)
	if err != nil {
		t.Fatalf("Decode failed: %s", err.Error())
	}

	if name, err := tree.Str("name"); err != nil {
		t.Errorf("Str(name) failed: %s", err.Error())
	} else if name != "dark halo" {
		t.Errorf("Expected name = 'dark halo', got '%s'.", name)
	}

	if b, err := tree.Bool("parameters.indexing"); err != nil {
		t.Errorf("Bool(parameters.indexing) failed: %s", err.Error())
	} else if b {
		t.Errorf("Expected parameters.indexing = false, got true.")
	}

	// EXP also writes flags as 0/1 integers.
	if b, err := tree.Bool("parameters.output.compact"); err != nil {
		t.Errorf("Bool(parameters.output.compact) failed: %s", err.Error())
	} else if !b {
		t.Errorf("Expected parameters.output.compact = true, got false.")
	}

	if n, err := tree.Int("parameters.nlevel"); err != nil || n != 4 {
		t.Errorf("Expected parameters.nlevel = 4, got %d (err: %v).", n, err)
	}
	if x, err := tree.Float("parameters.EPS"); err != nil || x != 0.01 {
		t.Errorf("Expected parameters.EPS = 0.01, got %g (err: %v).", x, err)
	}
	// Float accepts integers too.
	if x, err := tree.Float("parameters.nlevel"); err != nil || x != 4 {
		t.Errorf("Expected Float(parameters.nlevel) = 4, got %g (err: "+
			"%v).", x, err)
	}

	if !tree.Has("parameters.output") || tree.Has("parameters.missing") {
		t.Errorf("Has() disagrees with the decoded tree.")
	}
}

func TestDecodeFailures(t *testing.T) {
	tree, err := Decode(info)
	if err != nil {
		t.Fatalf("Decode failed: %s", err.Error())
	}

	// Missing keys, traversal through a scalar, and type mismatches all
	// come back as errors, never as panics or zero values.
	if _, err := tree.Str("missing"); err == nil {
		t.Errorf("Expected Str(missing) to fail.")
	}
	if _, err := tree.Bool("name.deeper"); err == nil {
		t.Errorf("Expected traversal through a scalar to fail.")
	}
	if _, err := tree.Bool("name"); err == nil {
		t.Errorf("Expected Bool(name) to fail on a string value.")
	}
	if _, err := tree.Int("parameters.EPS"); err == nil {
		t.Errorf("Expected Int(parameters.EPS) to fail on a float value.")
	}
	if _, err := tree.Str("parameters"); err == nil {
		t.Errorf("Expected Str(parameters) to fail on a mapping.")
	}

	if _, err := Decode([]byte("- just\n- a\n- sequence\n")); err == nil {
		t.Errorf("Expected a non-mapping document to fail decoding.")
	}
	if _, err := Decode([]byte("name: [unclosed\n")); err == nil {
		t.Errorf("Expected invalid YAML to fail decoding.")
	}
}
