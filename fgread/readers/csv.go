package readers

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/fastgenomics/fgread-go/anndata"
)

// DenseCSV reads a dense comma-separated expression matrix.
//
// The file stores genes in rows and cells in columns: the header row holds
// the cell names and the first column of each data row holds the gene
// name. The result is transposed to cells by genes.
func DenseCSV(path string) (*anndata.AnnData, error) {
	return denseDelimited(path, ',')
}

// DenseTSV reads a dense tab-separated expression matrix, laid out like
// DenseCSV.
func DenseTSV(path string) (*anndata.AnnData, error) {
	return denseDelimited(path, '\t')
}

func denseDelimited(path string, comma rune) (*anndata.AnnData, error) {
	rc, err := openPayload(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	cr := csv.NewReader(rc)
	cr.Comma = comma
	cr.FieldsPerRecord = -1 // header may omit the gene-name column

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("readers: parse %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("readers: %s holds no expression rows", path)
	}

	header := rows[0]
	data := rows[1:]

	cells := len(data[0]) - 1
	if cells < 1 {
		return nil, fmt.Errorf("readers: %s holds no cell columns", path)
	}

	// Writers differ on whether the header names the gene column.
	var cellNames []string
	switch len(header) {
	case cells:
		cellNames = header
	case cells + 1:
		cellNames = header[1:]
	default:
		return nil, fmt.Errorf("readers: %s header has %d fields for %d cell columns",
			path, len(header), cells)
	}

	m, err := anndata.NewMatrix(cells, len(data))
	if err != nil {
		return nil, err
	}

	geneNames := make([]string, len(data))
	for gene, row := range data {
		if len(row) != cells+1 {
			return nil, fmt.Errorf("readers: %s row %d has %d fields, want %d",
				path, gene+2, len(row), cells+1)
		}
		geneNames[gene] = row[0]
		for cell, field := range row[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("readers: %s row %d: %w", path, gene+2, err)
			}
			m.Set(cell, gene, v)
		}
	}

	return anndata.New(m, cellNames, geneNames)
}
