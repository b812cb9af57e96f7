package fgread

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fastgenomics/fgread-go/internal/testutil"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScanDatasets_ReturnsSortedMatches(t *testing.T) {
	root := t.TempDir()
	testutil.WriteDataset(t, root, "dataset_0002", testutil.SidecarJSON("b", "B", "Loom", "b.loom"), nil)
	testutil.WriteDataset(t, root, "dataset_0001", testutil.SidecarJSON("a", "A", "Loom", "a.loom"), nil)
	testutil.WriteDataset(t, root, "dataset_0010", testutil.SidecarJSON("c", "C", "Loom", "c.loom"), nil)

	paths, err := ScanDatasets(WithDataDir(root), WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(root, "dataset_0001"),
		filepath.Join(root, "dataset_0002"),
		filepath.Join(root, "dataset_0010"),
	}
	if len(paths) != len(want) {
		t.Fatalf("got %d paths, want %d", len(paths), len(want))
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestScanDatasets_IgnoresInvalidNamesAndFiles(t *testing.T) {
	root := t.TempDir()
	testutil.WriteDataset(t, root, "dataset_0001", testutil.SidecarJSON("a", "A", "Loom", "a.loom"), nil)

	// Wrong names and non-directories must not be picked up.
	if err := os.MkdirAll(filepath.Join(root, "dataset_1"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "dataset_00001"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "notes"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "dataset_0002"), []byte("a file"), 0o644); err != nil {
		t.Fatal(err)
	}

	paths, err := ScanDatasets(WithDataDir(root), WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1: %v", len(paths), paths)
	}
}

func TestScanDatasets_MissingRoot_WarnsAndReturnsEmpty(t *testing.T) {
	root := filepath.Join(t.TempDir(), "does-not-exist")

	paths, err := ScanDatasets(WithDataDir(root), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("expected no error for missing root, got: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("got %d paths, want 0", len(paths))
	}
}

func TestScanDatasets_EmptyRoot_ReturnsConfigurationError(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "not_a_dataset"), 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := ScanDatasets(WithDataDir(root), WithLogger(quietLogger()))
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigurationError, got: %v", err)
	}
	if cfgErr.Dir != root {
		t.Errorf("ConfigurationError.Dir = %q, want %q", cfgErr.Dir, root)
	}
}

func TestScanDatasets_RejectsLoadOnlyOptions(t *testing.T) {
	_, err := ScanDatasets(WithReaders(nil))
	if err == nil {
		t.Fatal("expected error for WithReaders on a discovery call, got nil")
	}
	if !errors.Is(err, ErrOptionNotValidForInfo) {
		t.Errorf("expected ErrOptionNotValidForInfo, got: %v", err)
	}
}
