package readers

import (
	"fmt"

	"github.com/parquet-go/parquet-go"

	"github.com/fastgenomics/fgread-go/anndata"
)

// expressionRow is the long-format parquet record: one matrix entry per
// row. Cells and genes take their order from first appearance.
type expressionRow struct {
	Cell  string  `parquet:"cell"`
	Gene  string  `parquet:"gene"`
	Value float64 `parquet:"value"`
}

// Parquet reads a long-format parquet expression table with cell, gene,
// and value columns into a dense matrix.
//
// The parquet format is not part of the platform's format vocabulary and
// therefore not in the default registry; register this reader via
// fgread.WithReaders to use it.
func Parquet(path string) (*anndata.AnnData, error) {
	rows, err := parquet.ReadFile[expressionRow](path)
	if err != nil {
		return nil, fmt.Errorf("readers: parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("readers: %s holds no expression rows", path)
	}

	var (
		cellNames []string
		geneNames []string
		cellIdx   = make(map[string]int)
		geneIdx   = make(map[string]int)
	)
	for _, row := range rows {
		if _, ok := cellIdx[row.Cell]; !ok {
			cellIdx[row.Cell] = len(cellNames)
			cellNames = append(cellNames, row.Cell)
		}
		if _, ok := geneIdx[row.Gene]; !ok {
			geneIdx[row.Gene] = len(geneNames)
			geneNames = append(geneNames, row.Gene)
		}
	}

	m, err := anndata.NewMatrix(len(cellNames), len(geneNames))
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		m.Set(cellIdx[row.Cell], geneIdx[row.Gene], row.Value)
	}

	return anndata.New(m, cellNames, geneNames)
}
