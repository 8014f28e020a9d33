// SPDX-License-Identifier: MIT

// Package testutil loads txtar-based codec conformance vectors.
package testutil

import (
	"encoding/hex"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// Vector is a parsed conformance vector. The archive holds a
// description comment, an "input.hex" file with the wire bytes in hex
// (whitespace and // comment lines ignored), and one or more
// "want/<name>" files with expected results whose meaning is defined by
// the test consuming the vector.
type Vector struct {
	// Name is the archive filename without the .txtar extension.
	Name string

	// Description is the comment block before the first file.
	Description string

	// Input is the decoded wire bytes.
	Input []byte

	// Want maps names (e.g. "keys", "values", "error") to expected
	// content with surrounding whitespace trimmed.
	Want map[string]string
}

// ParseVector parses a txtar archive into a Vector.
func ParseVector(name string, ar *txtar.Archive) (*Vector, error) {
	v := &Vector{
		Name:        name,
		Description: string(ar.Comment),
		Want:        make(map[string]string),
	}

	for _, f := range ar.Files {
		switch {
		case f.Name == "input.hex":
			input, err := decodeHex(f.Data)
			if err != nil {
				return nil, fmt.Errorf("input.hex: %w", err)
			}
			v.Input = input
		case strings.HasPrefix(f.Name, "want/"):
			v.Want[strings.TrimPrefix(f.Name, "want/")] = strings.TrimSpace(string(f.Data))
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected input.hex or want/*)", f.Name)
		}
	}

	if v.Input == nil {
		return nil, fmt.Errorf("missing input.hex in archive")
	}
	if len(v.Want) == 0 {
		return nil, fmt.Errorf("missing want/* files in archive")
	}

	return v, nil
}

// WantLines splits the named expectation into lines. Fails the test if
// the expectation is absent.
func (v *Vector) WantLines(t *testing.T, name string) []string {
	t.Helper()
	content, ok := v.Want[name]
	if !ok {
		t.Fatalf("vector %q has no want/%s", v.Name, name)
	}
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

// LoadVectors loads all *.txtar vectors from dir, sorted by name.
func LoadVectors(t *testing.T, dir string) []*Vector {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}
	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var vectors []*Vector
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		v, err := ParseVector(name, ar)
		if err != nil {
			t.Fatalf("parse vector %q: %v", name, err)
		}
		vectors = append(vectors, v)
	}

	sort.Slice(vectors, func(i, j int) bool {
		return vectors[i].Name < vectors[j].Name
	})

	return vectors
}

// decodeHex decodes hex bytes, ignoring whitespace and // comment
// lines so vectors can annotate their wire layout.
func decodeHex(data []byte) ([]byte, error) {
	var b strings.Builder
	for _, line := range strings.Split(string(data), "\n") {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		for _, field := range strings.Fields(line) {
			b.WriteString(field)
		}
	}
	return hex.DecodeString(b.String())
}
