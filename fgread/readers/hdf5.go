package readers

import (
	"fmt"

	"github.com/robert-malhotra/go-hdf5/hdf5"

	"github.com/fastgenomics/fgread-go/anndata"
)

// -----------------------------------------------------------------------------
// AnnData (.h5ad)
// -----------------------------------------------------------------------------

// H5AD reads an AnnData HDF5 file: the /X matrix (dense, or a CSR/CSC
// group) with cell and gene names from the /obs and /var groups.
func H5AD(path string) (*anndata.AnnData, error) {
	f, err := hdf5.Open(path)
	if err != nil {
		return nil, fmt.Errorf("readers: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	obsNames, err := readFrameIndex(f, "/obs")
	if err != nil {
		return nil, fmt.Errorf("readers: %s: %w", path, err)
	}
	varNames, err := readFrameIndex(f, "/var")
	if err != nil {
		return nil, fmt.Errorf("readers: %s: %w", path, err)
	}

	m, err := readExpressionMatrix(f, len(obsNames), len(varNames))
	if err != nil {
		return nil, fmt.Errorf("readers: %s: %w", path, err)
	}

	return anndata.New(m, obsNames, varNames)
}

// readFrameIndex resolves the index of an h5ad annotation group. The
// group's _index attribute names the index dataset; older files store it
// under "index".
func readFrameIndex(f *hdf5.File, group string) ([]string, error) {
	g, err := f.OpenGroup(group)
	if err != nil {
		return nil, fmt.Errorf("group %s: %w", group, err)
	}

	indexName := "_index"
	if g.HasAttr("_index") {
		if name, err := g.Attr("_index").ReadScalarString(); err == nil && name != "" {
			indexName = name
		}
	}

	for _, candidate := range []string{indexName, "index"} {
		ds, err := g.OpenDataset(candidate)
		if err != nil {
			continue
		}
		return ds.ReadString()
	}
	return nil, fmt.Errorf("group %s has no index dataset", group)
}

// readExpressionMatrix reads /X, which is either a dense 2-D dataset or a
// compressed-sparse group with data, indices, and indptr datasets.
func readExpressionMatrix(f *hdf5.File, cells, genes int) (*anndata.Matrix, error) {
	if ds, err := f.OpenDataset("/X"); err == nil {
		return readDense(ds, cells, genes)
	}

	g, err := f.OpenGroup("/X")
	if err != nil {
		return nil, fmt.Errorf("no /X dataset or group: %w", err)
	}
	return readSparseGroup(g, cells, genes, sparseEncoding(g))
}

// sparseEncoding decides between CSR and CSC from the group's encoding
// attributes, defaulting to CSR (the anndata default).
func sparseEncoding(g *hdf5.Group) string {
	for _, attr := range []string{"encoding-type", "h5sparse_format"} {
		if !g.HasAttr(attr) {
			continue
		}
		if v, err := g.Attr(attr).ReadScalarString(); err == nil {
			if v == "csc_matrix" || v == "csc" {
				return "csc"
			}
			return "csr"
		}
	}
	return "csr"
}

func readDense(ds *hdf5.Dataset, cells, genes int) (*anndata.Matrix, error) {
	shape := ds.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("expression matrix has rank %d, want 2", len(shape))
	}
	if int(shape[0]) != cells || int(shape[1]) != genes {
		return nil, fmt.Errorf("expression matrix is %dx%d but %d cells and %d genes are annotated",
			shape[0], shape[1], cells, genes)
	}

	data, err := ds.ReadFloat64()
	if err != nil {
		return nil, fmt.Errorf("read expression matrix: %w", err)
	}

	m, err := anndata.NewMatrix(cells, genes)
	if err != nil {
		return nil, err
	}
	for i := 0; i < cells; i++ {
		copy(m.Row(i), data[i*genes:(i+1)*genes])
	}
	return m, nil
}

func readSparseGroup(g *hdf5.Group, cells, genes int, encoding string) (*anndata.Matrix, error) {
	data, err := sparseFloat64(g, "data")
	if err != nil {
		return nil, err
	}
	indices, err := sparseInt64(g, "indices")
	if err != nil {
		return nil, err
	}
	indptr, err := sparseInt64(g, "indptr")
	if err != nil {
		return nil, err
	}

	m, err := anndata.NewMatrix(cells, genes)
	if err != nil {
		return nil, err
	}

	major := cells
	if encoding == "csc" {
		major = genes
	}
	if len(indptr) != major+1 {
		return nil, fmt.Errorf("sparse indptr has %d entries, want %d", len(indptr), major+1)
	}

	for i := 0; i < major; i++ {
		for k := indptr[i]; k < indptr[i+1]; k++ {
			j := int(indices[k])
			switch encoding {
			case "csc":
				if j >= cells {
					return nil, fmt.Errorf("sparse index %d out of %d cells", j, cells)
				}
				m.Set(j, i, data[k])
			default:
				if j >= genes {
					return nil, fmt.Errorf("sparse index %d out of %d genes", j, genes)
				}
				m.Set(i, j, data[k])
			}
		}
	}
	return m, nil
}

func sparseFloat64(g *hdf5.Group, name string) ([]float64, error) {
	ds, err := g.OpenDataset(name)
	if err != nil {
		return nil, fmt.Errorf("sparse group: %w", err)
	}
	return ds.ReadFloat64()
}

func sparseInt64(g *hdf5.Group, name string) ([]int64, error) {
	ds, err := g.OpenDataset(name)
	if err != nil {
		return nil, fmt.Errorf("sparse group: %w", err)
	}
	return ds.ReadInt64()
}

// -----------------------------------------------------------------------------
// Loom
// -----------------------------------------------------------------------------

// Loom reads a Loom HDF5 file: /matrix stores genes by cells and is
// transposed, with cell IDs in /col_attrs/CellID and gene names in
// /row_attrs/Gene.
func Loom(path string) (*anndata.AnnData, error) {
	f, err := hdf5.Open(path)
	if err != nil {
		return nil, fmt.Errorf("readers: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	cellNames, err := readStringDataset(f, "/col_attrs/CellID")
	if err != nil {
		return nil, fmt.Errorf("readers: %s: %w", path, err)
	}
	geneNames, err := readStringDataset(f, "/row_attrs/Gene")
	if err != nil {
		return nil, fmt.Errorf("readers: %s: %w", path, err)
	}

	ds, err := f.OpenDataset("/matrix")
	if err != nil {
		return nil, fmt.Errorf("readers: %s: no /matrix dataset: %w", path, err)
	}
	shape := ds.Shape()
	if len(shape) != 2 || int(shape[0]) != len(geneNames) || int(shape[1]) != len(cellNames) {
		return nil, fmt.Errorf("readers: %s: /matrix shape %v does not match %d genes and %d cells",
			path, shape, len(geneNames), len(cellNames))
	}

	data, err := ds.ReadFloat64()
	if err != nil {
		return nil, fmt.Errorf("readers: %s: read /matrix: %w", path, err)
	}

	cells, genes := len(cellNames), len(geneNames)
	m, err := anndata.NewMatrix(cells, genes)
	if err != nil {
		return nil, err
	}
	for gene := 0; gene < genes; gene++ {
		for cell := 0; cell < cells; cell++ {
			m.Set(cell, gene, data[gene*cells+cell])
		}
	}

	return anndata.New(m, cellNames, geneNames)
}

// -----------------------------------------------------------------------------
// 10x (hdf5)
// -----------------------------------------------------------------------------

// TenxHDF5 reads a 10x Genomics HDF5 matrix: the cellranger v3 /matrix
// group, or the single per-genome group of the v2 layout. The matrix is
// stored CSC with genes as rows and cells as columns.
func TenxHDF5(path string) (*anndata.AnnData, error) {
	f, err := hdf5.Open(path)
	if err != nil {
		return nil, fmt.Errorf("readers: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	g, v3, err := tenxMatrixGroup(f)
	if err != nil {
		return nil, fmt.Errorf("readers: %s: %w", path, err)
	}

	shapeDS, err := g.OpenDataset("shape")
	if err != nil {
		return nil, fmt.Errorf("readers: %s: no shape dataset: %w", path, err)
	}
	shape, err := shapeDS.ReadInt64()
	if err != nil {
		return nil, fmt.Errorf("readers: %s: read shape: %w", path, err)
	}
	if len(shape) != 2 {
		return nil, fmt.Errorf("readers: %s: shape has %d entries, want 2", path, len(shape))
	}
	genes, cells := int(shape[0]), int(shape[1])

	barcodes, err := groupStrings(g, "barcodes")
	if err != nil {
		return nil, fmt.Errorf("readers: %s: %w", path, err)
	}
	geneNames, err := tenxGeneNames(g, v3)
	if err != nil {
		return nil, fmt.Errorf("readers: %s: %w", path, err)
	}
	if len(barcodes) != cells || len(geneNames) != genes {
		return nil, fmt.Errorf("readers: %s: %d barcodes and %d genes for shape %dx%d",
			path, len(barcodes), len(geneNames), genes, cells)
	}

	// Genes are rows and cells are columns, so CSC major order is cells.
	m, err := readSparseGroup(g, cells, genes, "csr")
	if err != nil {
		return nil, fmt.Errorf("readers: %s: %w", path, err)
	}

	return anndata.New(m, barcodes, geneNames)
}

// tenxMatrixGroup locates the matrix group: /matrix for cellranger v3,
// otherwise the file's single genome group (v2).
func tenxMatrixGroup(f *hdf5.File) (*hdf5.Group, bool, error) {
	if g, err := f.OpenGroup("/matrix"); err == nil {
		return g, true, nil
	}

	members, err := f.Root().Members()
	if err != nil {
		return nil, false, fmt.Errorf("list root members: %w", err)
	}
	for _, name := range members {
		if g, err := f.Root().OpenGroup(name); err == nil {
			return g, false, nil
		}
	}
	return nil, false, fmt.Errorf("no matrix group found")
}

// tenxGeneNames reads gene identifiers: features/id for v3, genes for v2.
func tenxGeneNames(g *hdf5.Group, v3 bool) ([]string, error) {
	if v3 {
		features, err := g.OpenGroup("features")
		if err != nil {
			return nil, fmt.Errorf("no features group: %w", err)
		}
		return groupStrings(features, "id")
	}
	return groupStrings(g, "genes")
}

func groupStrings(g *hdf5.Group, name string) ([]string, error) {
	ds, err := g.OpenDataset(name)
	if err != nil {
		return nil, fmt.Errorf("no %s dataset: %w", name, err)
	}
	return ds.ReadString()
}

func readStringDataset(f *hdf5.File, path string) ([]string, error) {
	ds, err := f.OpenDataset(path)
	if err != nil {
		return nil, fmt.Errorf("no %s dataset: %w", path, err)
	}
	return ds.ReadString()
}
