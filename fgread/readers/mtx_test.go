package readers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const mtxPayload = `%%MatrixMarket matrix coordinate integer general
% generated fixture
3 2 3
1 1 5
3 2 7
2 1 1
`

func writeMTXDir(t *testing.T, gz bool, geneFile string, geneLines string) string {
	t.Helper()
	dir := t.TempDir()

	write := func(name string, data []byte) {
		t.Helper()
		if gz {
			data = gzipBytes(t, data)
			name += ".gz"
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("matrix.mtx", []byte(mtxPayload))
	write("barcodes.tsv", []byte("AAAC\nTTTG\n"))
	write(geneFile, []byte(geneLines))
	return dir
}

func TestTenxMTX_ReadsTriplets(t *testing.T) {
	dir := writeMTXDir(t, false, "genes.tsv",
		"ENSG1\tGeneA\nENSG2\tGeneB\nENSG3\tGeneC\n")

	adata, err := TenxMTX(filepath.Join(dir, "matrix.mtx"))
	if err != nil {
		t.Fatal(err)
	}

	cells, genes := adata.Shape()
	if cells != 2 || genes != 3 {
		t.Fatalf("Shape() = (%d,%d), want (2,3)", cells, genes)
	}
	// Entries are genes x cells, 1-based; the matrix is cells x genes.
	if got := adata.X.At(0, 0); got != 5 {
		t.Errorf("At(0,0) = %v, want 5", got)
	}
	if got := adata.X.At(1, 2); got != 7 {
		t.Errorf("At(1,2) = %v, want 7", got)
	}
	if got := adata.X.At(0, 1); got != 1 {
		t.Errorf("At(0,1) = %v, want 1", got)
	}
	if got := adata.X.At(1, 0); got != 0 {
		t.Errorf("At(1,0) = %v, want 0 (absent entry)", got)
	}

	if obs := adata.Obs.Index(); obs[0] != "AAAC" || obs[1] != "TTTG" {
		t.Errorf("Obs index = %v, want barcodes", obs)
	}
	if vars := adata.Var.Index(); vars[0] != "ENSG1" {
		t.Errorf("Var index = %v, want gene IDs", vars)
	}
	if symbols := adata.Var.Column("gene_symbols"); len(symbols) != 3 || symbols[1] != "GeneB" {
		t.Errorf("gene_symbols = %v, want the second genes.tsv column", symbols)
	}
}

func TestTenxMTX_GzippedV3Layout(t *testing.T) {
	dir := writeMTXDir(t, true, "features.tsv",
		"ENSG1\tGeneA\tGene Expression\nENSG2\tGeneB\tGene Expression\nENSG3\tGeneC\tGene Expression\n")

	adata, err := TenxMTX(filepath.Join(dir, "matrix.mtx.gz"))
	if err != nil {
		t.Fatal(err)
	}

	cells, genes := adata.Shape()
	if cells != 2 || genes != 3 {
		t.Fatalf("Shape() = (%d,%d), want (2,3)", cells, genes)
	}
	if types := adata.Var.Column("feature_types"); len(types) != 3 || types[0] != "Gene Expression" {
		t.Errorf("feature_types = %v, want the third features.tsv column", types)
	}
}

func TestTenxMTX_MissingBarcodes_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "matrix.mtx"), []byte(mtxPayload), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := TenxMTX(filepath.Join(dir, "matrix.mtx"))
	if err == nil {
		t.Fatal("expected error for missing barcodes, got nil")
	}
	if !strings.Contains(err.Error(), "barcodes.tsv") {
		t.Errorf("expected error naming barcodes.tsv, got: %v", err)
	}
}

func TestTenxMTX_ShapeMismatch_ReturnsError(t *testing.T) {
	// Only one barcode for a two-cell matrix.
	dir := t.TempDir()
	for name, data := range map[string]string{
		"matrix.mtx":   mtxPayload,
		"barcodes.tsv": "AAAC\n",
		"genes.tsv":    "ENSG1\nENSG2\nENSG3\n",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	_, err := TenxMTX(filepath.Join(dir, "matrix.mtx"))
	if err == nil {
		t.Fatal("expected error for barcode count mismatch, got nil")
	}
}

func TestTenxMTX_OutOfBoundsEntry_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	bad := "%%MatrixMarket matrix coordinate integer general\n2 1 1\n3 1 4\n"
	for name, data := range map[string]string{
		"matrix.mtx":   bad,
		"barcodes.tsv": "AAAC\n",
		"genes.tsv":    "ENSG1\nENSG2\n",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	_, err := TenxMTX(filepath.Join(dir, "matrix.mtx"))
	if err == nil {
		t.Fatal("expected error for out-of-bounds entry, got nil")
	}
	if !strings.Contains(err.Error(), "out of bounds") {
		t.Errorf("expected out-of-bounds error, got: %v", err)
	}
}
