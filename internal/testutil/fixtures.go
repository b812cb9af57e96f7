// Package testutil provides dataset directory fixtures for tests and
// examples.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteDataset creates a dataset directory under root with the given
// sidecar JSON and payload files, returning the directory path.
//
// The sidecar is taken as raw JSON so tests control field order exactly.
func WriteDataset(t *testing.T, root, dirName, infoJSON string, payloads map[string][]byte) string {
	t.Helper()

	dir := filepath.Join(root, dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create dataset dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "dataset_info.json"), []byte(infoJSON), 0o644); err != nil {
		t.Fatalf("write sidecar: %v", err)
	}
	for name, data := range payloads {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatalf("write payload %s: %v", name, err)
		}
	}
	return dir
}

// SidecarJSON builds a minimal sidecar with the standard fields in their
// conventional order.
func SidecarJSON(id, title, format, file string) string {
	return `{"id":"` + id + `","title":"` + title + `","format":"` + format + `","file":"` + file + `","schemaVersion":"1.0"}`
}
