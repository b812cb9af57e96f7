package fgread

import (
	"fmt"
	"maps"
	"slices"

	"github.com/fastgenomics/fgread-go/anndata"
)

// -----------------------------------------------------------------------------
// Legacy handle-based API
// -----------------------------------------------------------------------------

// DataSet is a handle to one discovered dataset, used by the legacy
// calling convention.
//
// Deprecated: use DatasetInfo and LoadData with a dataset ID or title
// instead. The handle API will be removed in a future release.
type DataSet struct {
	// ID is the dataset's unique identifier.
	ID string

	// Title is the dataset's display title.
	Title string

	// Format is the declared format label.
	Format string

	// Path is the dataset directory.
	Path string

	// File is the payload filename relative to Path.
	File string

	// Metadata is the full metadata record the handle was built from.
	Metadata *Record
}

func newDataSet(record *Record) *DataSet {
	return &DataSet{
		ID:       record.ID(),
		Title:    record.Title(),
		Format:   record.Format(),
		Path:     record.Path(),
		File:     record.File(),
		Metadata: record,
	}
}

// GetDatasets gathers all attached datasets as handles keyed by dataset ID.
//
// Deprecated: use ListDatasets or DatasetInfo instead.
func GetDatasets(opts ...Option) (map[string]*DataSet, error) {
	table, err := ListDatasets(opts...)
	if err != nil {
		return nil, err
	}

	datasets := make(map[string]*DataSet, table.Len())
	for _, record := range table.Records() {
		datasets[record.ID()] = newDataSet(record.clone())
	}
	return datasets, nil
}

// ReadDataset reads a single dataset via its handle. It is a thin adapter:
// the handle is translated into its dataset ID and the load delegates to
// LoadData, including the provenance enrichment and format error handling.
//
// Deprecated: use LoadData instead.
func ReadDataset(dataset *DataSet, opts ...Option) (*anndata.AnnData, error) {
	if dataset == nil {
		return nil, fmt.Errorf("fgread: dataset handle must not be nil")
	}
	return LoadData(dataset.ID, opts...)
}

// ReadDatasets reads every dataset in the given handle map, in sorted ID
// order, and returns the results keyed by dataset ID.
//
// Deprecated: use LoadData per dataset instead.
func ReadDatasets(datasets map[string]*DataSet, opts ...Option) (map[string]*anndata.AnnData, error) {
	ids := slices.Sorted(maps.Keys(datasets))

	results := make(map[string]*anndata.AnnData, len(datasets))
	for _, id := range ids {
		adata, err := ReadDataset(datasets[id], opts...)
		if err != nil {
			return nil, err
		}
		results[id] = adata
	}
	return results, nil
}
