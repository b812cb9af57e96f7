package readers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func writePayload(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDenseCSV_TransposesToCellsByGenes(t *testing.T) {
	path := writePayload(t, "data.csv", []byte(",c1,c2\ng1,1.5,2\ng2,3,4\n"))

	adata, err := DenseCSV(path)
	if err != nil {
		t.Fatal(err)
	}

	cells, genes := adata.Shape()
	if cells != 2 || genes != 2 {
		t.Fatalf("Shape() = (%d,%d), want (2,2)", cells, genes)
	}
	if got := adata.X.At(0, 0); got != 1.5 {
		t.Errorf("At(0,0) = %v, want 1.5 (cell c1, gene g1)", got)
	}
	if got := adata.X.At(1, 0); got != 2 {
		t.Errorf("At(1,0) = %v, want 2 (cell c2, gene g1)", got)
	}
	if got := adata.X.At(0, 1); got != 3 {
		t.Errorf("At(0,1) = %v, want 3 (cell c1, gene g2)", got)
	}

	if obs := adata.Obs.Index(); obs[0] != "c1" || obs[1] != "c2" {
		t.Errorf("Obs index = %v, want [c1 c2]", obs)
	}
	if vars := adata.Var.Index(); vars[0] != "g1" || vars[1] != "g2" {
		t.Errorf("Var index = %v, want [g1 g2]", vars)
	}
}

func TestDenseCSV_HeaderWithoutCornerField(t *testing.T) {
	// R-style export: the header names only the cell columns.
	path := writePayload(t, "data.csv", []byte("c1,c2\ng1,1,2\n"))

	adata, err := DenseCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if obs := adata.Obs.Index(); len(obs) != 2 || obs[0] != "c1" {
		t.Errorf("Obs index = %v, want [c1 c2]", obs)
	}
}

func TestDenseCSV_GzippedPayload(t *testing.T) {
	path := writePayload(t, "data.csv.gz", gzipBytes(t, []byte(",c1\ng1,9\n")))

	adata, err := DenseCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := adata.X.At(0, 0); got != 9 {
		t.Errorf("At(0,0) = %v, want 9", got)
	}
}

func TestDenseTSV(t *testing.T) {
	path := writePayload(t, "data.tsv", []byte("\tc1\tc2\ng1\t1\t2\ng2\t3\t4\n"))

	adata, err := DenseTSV(path)
	if err != nil {
		t.Fatal(err)
	}
	cells, genes := adata.Shape()
	if cells != 2 || genes != 2 {
		t.Fatalf("Shape() = (%d,%d), want (2,2)", cells, genes)
	}
	if got := adata.X.At(1, 1); got != 4 {
		t.Errorf("At(1,1) = %v, want 4", got)
	}
}

func TestDenseCSV_RaggedRow_ReturnsError(t *testing.T) {
	path := writePayload(t, "data.csv", []byte(",c1,c2\ng1,1,2\ng2,3\n"))

	if _, err := DenseCSV(path); err == nil {
		t.Fatal("expected error for ragged row, got nil")
	}
}

func TestDenseCSV_NonNumericValue_ReturnsError(t *testing.T) {
	path := writePayload(t, "data.csv", []byte(",c1\ng1,abc\n"))

	_, err := DenseCSV(path)
	if err == nil {
		t.Fatal("expected error for non-numeric value, got nil")
	}
	if !strings.Contains(err.Error(), "row 2") {
		t.Errorf("expected error naming the row, got: %v", err)
	}
}

func TestDenseCSV_HeaderOnly_ReturnsError(t *testing.T) {
	path := writePayload(t, "data.csv", []byte(",c1,c2\n"))

	if _, err := DenseCSV(path); err == nil {
		t.Fatal("expected error for matrix without rows, got nil")
	}
}
