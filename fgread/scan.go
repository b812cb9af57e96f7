package fgread

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// datasetDirPattern matches the fixed naming convention for attached
// dataset directories.
var datasetDirPattern = regexp.MustCompile(`^dataset_\d{4}$`)

// ScanDatasets lists the dataset directories attached under the data
// directory, sorted lexicographically (numeric order, given the
// fixed-width naming).
//
// A missing data directory is a valid state meaning no datasets are
// attached: a warning is logged and an empty slice returned. A data
// directory that exists but contains no validly named dataset directories
// is an inconsistency and returns a *ConfigurationError.
func ScanDatasets(opts ...Option) ([]string, error) {
	cfg, err := newInfoConfig(opts)
	if err != nil {
		return nil, err
	}
	return scanDatasets(cfg)
}

func scanDatasets(cfg *infoConfig) ([]string, error) {
	entries, err := os.ReadDir(cfg.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.logger.Warn("there are no datasets attached to this analysis", "dir", cfg.dataDir)
			return nil, nil
		}
		return nil, fmt.Errorf("fgread: failed to list data directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() || !datasetDirPattern.MatchString(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(cfg.dataDir, entry.Name()))
	}
	// ReadDir sorts by filename already; keep the guarantee explicit.
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, &ConfigurationError{Dir: cfg.dataDir}
	}
	return paths, nil
}
