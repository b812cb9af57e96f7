// Package fgread discovers locally attached single-cell datasets, aggregates
// their sidecar metadata, and loads a selected dataset into an
// anndata.AnnData via a format-keyed reader registry.
//
// Fgread focuses on access structure: discovery, selection, and format
// dispatch. It does not validate or transform the scientific content of a
// dataset, cache loaded data, or read remote sources.
package fgread

import (
	"github.com/fastgenomics/fgread-go/anndata"
)

// DefaultDataDir is the well-known directory datasets are attached under.
const DefaultDataDir = "/fastgenomics/data"

// DocsURL points at the module documentation referenced in error messages.
const DocsURL = "https://fastgenomics.github.io/fgread"

// Format sentinels a dataset owner can declare instead of a concrete format.
const (
	// FormatOther marks a dataset whose format is recognized as a category
	// but intentionally has no automatic reader.
	FormatOther = "Other"

	// FormatNotSet marks a dataset whose owner never declared a format.
	FormatNotSet = "Not set"
)

// Well-known metadata field names.
const (
	FieldID     = "id"
	FieldTitle  = "title"
	FieldFormat = "format"
	FieldPath   = "path"
	FieldFile   = "file"
)

// Reader converts a payload file into an AnnData object.
//
// Readers are opaque collaborators: their failures propagate to the caller
// unmodified. The returned object is newly allocated and owned by the
// caller; the loader mutates it after the call to attach provenance.
type Reader func(path string) (*anndata.AnnData, error)
