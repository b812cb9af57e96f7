package fgread

import (
	"path/filepath"

	"github.com/fastgenomics/fgread-go/anndata"
)

// unsKeyMetadata is the Uns slot the loaded dataset's metadata is attached
// under, keyed by dataset ID.
const unsKeyMetadata = "ds_metadata"

// obsKeyID is the per-cell annotation column carrying the owning dataset's
// ID.
const obsKeyID = "fg_id"

// LoadData loads a single dataset into an AnnData object.
//
// With multiple datasets attached, ds selects one by its ID or title; with
// exactly one attached, ds may be empty. The dataset's declared format
// picks the reader from the default registry, overlaid per call with
// WithReaders.
//
// The result carries provenance: the dataset ID in the per-cell fg_id
// column and the full metadata record in Uns under "ds_metadata", keyed by
// dataset ID. Reader failures propagate unmodified.
func LoadData(ds string, opts ...Option) (*anndata.AnnData, error) {
	cfg, err := newLoadConfig(opts)
	if err != nil {
		return nil, err
	}

	record, err := resolveRecord(ds, cfg)
	if err != nil {
		return nil, err
	}

	registry := effectiveReaders(cfg.readers)
	format := record.Format()

	reader, ok := registry[format]
	switch {
	case ok:
	case format == FormatOther:
		return nil, &UnsupportedFormatError{Title: record.Title()}
	case format == FormatNotSet:
		return nil, &UnconfiguredFormatError{Title: record.Title()}
	default:
		return nil, &UnknownFormatError{
			Format:     format,
			Registered: RegisteredFormats(cfg.readers),
		}
	}

	cfg.logger.Info("loading dataset",
		"title", record.Title(),
		"format", format,
		"dir", record.Path(),
	)

	adata, err := reader(filepath.Join(record.Path(), record.File()))
	if err != nil {
		return nil, err
	}

	adata.Uns[unsKeyMetadata] = map[string]*Record{record.ID(): record}
	adata.Obs.Fill(obsKeyID, record.ID())

	cells, genes := adata.Shape()
	cfg.logger.Info("loaded dataset",
		"title", record.Title(),
		"cells", cells,
		"genes", genes,
	)
	return adata, nil
}

// resolveRecord narrows the dataset table to the one record to load.
func resolveRecord(ds string, cfg *loadConfig) (*Record, error) {
	table, err := listDatasets(&cfg.infoConfig)
	if err != nil {
		return nil, err
	}

	if ds != "" {
		return SelectDataset(ds, table)
	}
	if table.Len() != 1 {
		return nil, &AmbiguousSelectionError{
			Matches:    table.Len(),
			Candidates: table.Records(),
		}
	}
	return table.Record(0).clone(), nil
}
