// Package anndata provides the in-memory container returned by dataset
// readers: a dense cells-by-genes expression matrix together with per-cell
// and per-gene annotation frames and a free-form global annotation map.
//
// The layout mirrors the annotated-data convention used across single-cell
// tooling: rows are observations (cells), columns are variables (genes).
package anndata

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Matrix
// -----------------------------------------------------------------------------

// Matrix is a dense row-major matrix of float64 values.
type Matrix struct {
	rows int
	cols int
	data []float64
}

// NewMatrix allocates a zero-filled matrix with the given dimensions.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("anndata: invalid matrix dimensions %dx%d", rows, cols)
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// Rows returns the number of rows (cells).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns (genes).
func (m *Matrix) Cols() int { return m.cols }

// Dims returns the matrix dimensions as (rows, cols).
func (m *Matrix) Dims() (int, int) { return m.rows, m.cols }

// At returns the value at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.data[i*m.cols+j] = v
}

// Row returns row i as a slice aliasing the matrix storage.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.cols : (i+1)*m.cols]
}

// -----------------------------------------------------------------------------
// Frame
// -----------------------------------------------------------------------------

// Frame is a fixed-length annotation table with a string index and ordered,
// named string columns. All columns share the index length.
type Frame struct {
	index   []string
	names   []string
	columns map[string][]string
}

// NewFrame creates a frame indexed by the given names. The index is copied.
func NewFrame(index []string) *Frame {
	idx := make([]string, len(index))
	copy(idx, index)
	return &Frame{
		index:   idx,
		columns: make(map[string][]string),
	}
}

// Len returns the number of entries in the frame.
func (f *Frame) Len() int { return len(f.index) }

// Index returns the frame's index values.
func (f *Frame) Index() []string { return f.index }

// Columns returns the column names in insertion order.
func (f *Frame) Columns() []string { return f.names }

// Column returns the named column, or nil if it does not exist.
func (f *Frame) Column(name string) []string {
	return f.columns[name]
}

// SetColumn stores a column under the given name. The value length must
// match the frame length. Re-setting an existing column keeps its position.
func (f *Frame) SetColumn(name string, values []string) error {
	if len(values) != len(f.index) {
		return fmt.Errorf("anndata: column %q has %d values, frame has %d entries",
			name, len(values), len(f.index))
	}
	if _, exists := f.columns[name]; !exists {
		f.names = append(f.names, name)
	}
	vals := make([]string, len(values))
	copy(vals, values)
	f.columns[name] = vals
	return nil
}

// Fill stores a column where every entry holds the same value.
func (f *Frame) Fill(name, value string) {
	values := make([]string, len(f.index))
	for i := range values {
		values[i] = value
	}
	// Length always matches by construction.
	_ = f.SetColumn(name, values)
}

// -----------------------------------------------------------------------------
// AnnData
// -----------------------------------------------------------------------------

// AnnData bundles an expression matrix with its annotations.
//
// X holds expression values with cells as rows and genes as columns. Obs
// annotates cells, Var annotates genes, and Uns carries unstructured
// dataset-level annotations.
type AnnData struct {
	X   *Matrix
	Obs *Frame
	Var *Frame
	Uns map[string]any
}

// New creates an AnnData from a matrix and its cell and gene names.
// The name slices must match the matrix dimensions.
func New(x *Matrix, obsNames, varNames []string) (*AnnData, error) {
	if x == nil {
		return nil, errors.New("anndata: matrix must not be nil")
	}
	if len(obsNames) != x.Rows() {
		return nil, fmt.Errorf("anndata: %d obs names for %d matrix rows", len(obsNames), x.Rows())
	}
	if len(varNames) != x.Cols() {
		return nil, fmt.Errorf("anndata: %d var names for %d matrix columns", len(varNames), x.Cols())
	}
	return &AnnData{
		X:   x,
		Obs: NewFrame(obsNames),
		Var: NewFrame(varNames),
		Uns: make(map[string]any),
	}, nil
}

// Shape returns the number of cells and genes.
func (a *AnnData) Shape() (cells, genes int) {
	return a.X.Rows(), a.X.Cols()
}
