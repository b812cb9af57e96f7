package fgread

import (
	"github.com/fastgenomics/fgread-go/internal/sidecar"
)

// ListDatasets aggregates the metadata sidecars of every attached dataset
// into one table, one record per dataset directory. The table is rebuilt
// from disk on every call.
func ListDatasets(opts ...Option) (*Table, error) {
	cfg, err := newInfoConfig(opts)
	if err != nil {
		return nil, err
	}
	return listDatasets(cfg)
}

func listDatasets(cfg *infoConfig) (*Table, error) {
	paths, err := scanDatasets(cfg)
	if err != nil {
		return nil, err
	}

	var (
		records        []*Record
		encounterOrder []string
		seen           = make(map[string]bool)
	)
	for _, path := range paths {
		sc, err := sidecar.Load(path)
		if err != nil {
			return nil, err
		}

		fields := sc.Fields
		fields[FieldPath] = path
		records = append(records, &Record{fields: fields})

		for _, name := range append(sc.Order, FieldPath) {
			if !seen[name] {
				seen[name] = true
				encounterOrder = append(encounterOrder, name)
			}
		}
	}

	return newTable(records, encounterOrder), nil
}

// DatasetInfo describes the attached datasets. With an empty selector it
// returns the full table; with a dataset ID or title it returns a one-row
// table holding the selected record.
func DatasetInfo(ds string, opts ...Option) (*Table, error) {
	table, err := ListDatasets(opts...)
	if err != nil {
		return nil, err
	}
	if ds == "" {
		return table, nil
	}

	record, err := SelectDataset(ds, table)
	if err != nil {
		return nil, err
	}
	return table.singleRow(record), nil
}
