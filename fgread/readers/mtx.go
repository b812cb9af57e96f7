package readers

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fastgenomics/fgread-go/anndata"
)

// TenxMTX reads a 10x Genomics Matrix Market directory.
//
// The payload path points at the coordinate matrix file (genes by cells);
// the cell barcodes and gene annotations live in sibling files, named
// barcodes.tsv and genes.tsv (cellranger v2) or features.tsv (v3), each
// optionally gzipped.
func TenxMTX(path string) (*anndata.AnnData, error) {
	dir := filepath.Dir(path)

	barcodes, err := readColumns(dir, "barcodes.tsv")
	if err != nil {
		return nil, err
	}
	genes, err := readColumns(dir, "genes.tsv", "features.tsv")
	if err != nil {
		return nil, err
	}

	m, err := readCoordinateMatrix(path, len(barcodes), len(genes))
	if err != nil {
		return nil, err
	}

	adata, err := anndata.New(m, firstColumn(barcodes), firstColumn(genes))
	if err != nil {
		return nil, err
	}
	if symbols := nthColumn(genes, 1); symbols != nil {
		_ = adata.Var.SetColumn("gene_symbols", symbols)
	}
	if types := nthColumn(genes, 2); types != nil {
		_ = adata.Var.SetColumn("feature_types", types)
	}
	return adata, nil
}

// readCoordinateMatrix parses a Matrix Market coordinate file with genes
// as rows and cells as columns, transposed to cells by genes.
func readCoordinateMatrix(path string, cells, genes int) (*anndata.Matrix, error) {
	rc, err := openPayload(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var m *anndata.Matrix
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)

		if m == nil {
			// Size line: rows (genes), columns (cells), entry count.
			if len(fields) != 3 {
				return nil, fmt.Errorf("readers: %s: malformed size line %q", path, line)
			}
			nGenes, err1 := strconv.Atoi(fields[0])
			nCells, err2 := strconv.Atoi(fields[1])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("readers: %s: malformed size line %q", path, line)
			}
			if nGenes != genes || nCells != cells {
				return nil, fmt.Errorf("readers: %s declares %dx%d but %d genes and %d cells are annotated",
					path, nGenes, nCells, genes, cells)
			}
			m, err = anndata.NewMatrix(cells, genes)
			if err != nil {
				return nil, err
			}
			continue
		}

		if len(fields) != 3 {
			return nil, fmt.Errorf("readers: %s: malformed entry %q", path, line)
		}
		gene, err1 := strconv.Atoi(fields[0])
		cell, err2 := strconv.Atoi(fields[1])
		value, err3 := strconv.ParseFloat(fields[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("readers: %s: malformed entry %q", path, line)
		}
		if gene < 1 || gene > genes || cell < 1 || cell > cells {
			return nil, fmt.Errorf("readers: %s: entry %q out of bounds", path, line)
		}
		// Coordinates are 1-based.
		m.Set(cell-1, gene-1, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("readers: read %s: %w", path, err)
	}
	if m == nil {
		return nil, fmt.Errorf("readers: %s holds no size line", path)
	}
	return m, nil
}

// readColumns loads a sibling annotation file, trying each base name plain
// and gzipped, and returns its tab-separated columns per line.
func readColumns(dir string, names ...string) ([][]string, error) {
	for _, name := range names {
		for _, candidate := range []string{name, name + ".gz"} {
			path := filepath.Join(dir, candidate)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			return parseColumns(path)
		}
	}
	return nil, fmt.Errorf("readers: no %s found in %s", strings.Join(names, " or "), dir)
}

func parseColumns(path string) ([][]string, error) {
	rc, err := openPayload(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	var rows [][]string
	scanner := bufio.NewScanner(rc)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, "\t"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("readers: read %s: %w", path, err)
	}
	return rows, nil
}

func firstColumn(rows [][]string) []string {
	return nthColumn(rows, 0)
}

// nthColumn extracts column i, or nil when any row is too short.
func nthColumn(rows [][]string, i int) []string {
	out := make([]string, len(rows))
	for r, row := range rows {
		if i >= len(row) {
			return nil
		}
		out[r] = row[i]
	}
	return out
}
