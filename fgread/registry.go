package fgread

import (
	"maps"
	"slices"

	"github.com/fastgenomics/fgread-go/fgread/readers"
)

// defaultRegistry maps the platform's format vocabulary to its automatic
// readers. Built once at startup and treated as immutable; per-call
// overlays are merged into a fresh map, never into this one.
//
// Adding a format means registering a new entry here, not branching in the
// loader.
var defaultRegistry = map[string]Reader{
	"Loom":                 readers.Loom,
	"AnnData":              readers.H5AD,
	"10x (hdf5)":           readers.TenxHDF5,
	"10x (mtx)":            readers.TenxMTX,
	"tab-separated text":   readers.DenseTSV,
	"comma-separated text": readers.DenseCSV,
}

// effectiveReaders builds the registry for one call: the defaults with the
// caller's readers merged on top, caller entries winning on collision.
func effectiveReaders(extra map[string]Reader) map[string]Reader {
	merged := maps.Clone(defaultRegistry)
	maps.Copy(merged, extra)
	return merged
}

// RegisteredFormats returns the sorted format labels of the registry that
// would be in effect for a call with the given extra readers. Pass nil for
// the default registry.
func RegisteredFormats(extra map[string]Reader) []string {
	labels := slices.Collect(maps.Keys(effectiveReaders(extra)))
	slices.Sort(labels)
	return labels
}
