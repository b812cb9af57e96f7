package fgread

import (
	"errors"
	"fmt"
	"log/slog"
)

// -----------------------------------------------------------------------------
// Option plumbing
// -----------------------------------------------------------------------------

// infoConfig holds the resolved configuration for discovery calls
// (ScanDatasets, ListDatasets, DatasetInfo, GetDatasets).
type infoConfig struct {
	dataDir string
	logger  *slog.Logger
}

// loadConfig holds the resolved configuration for load calls
// (LoadData, ReadDataset, ReadDatasets).
type loadConfig struct {
	infoConfig
	readers map[string]Reader
}

// Option configures discovery or load calls. Options implement methods for
// the operations they support; using an option with an unsupported
// operation returns an error.
type Option interface {
	applyInfo(*infoConfig) error
	applyLoad(*loadConfig) error
}

// ErrOptionNotValidForInfo indicates an option was used with a discovery
// call that only applies to load calls.
var ErrOptionNotValidForInfo = errors.New("option not valid for dataset info")

func newInfoConfig(opts []Option) (*infoConfig, error) {
	cfg := &infoConfig{
		dataDir: DefaultDataDir,
		logger:  defaultLogger(),
	}
	for _, opt := range opts {
		if err := opt.applyInfo(cfg); err != nil {
			return nil, fmt.Errorf("fgread: %w", err)
		}
	}
	return cfg, nil
}

func newLoadConfig(opts []Option) (*loadConfig, error) {
	cfg := &loadConfig{
		infoConfig: infoConfig{
			dataDir: DefaultDataDir,
			logger:  defaultLogger(),
		},
	}
	for _, opt := range opts {
		if err := opt.applyLoad(cfg); err != nil {
			return nil, fmt.Errorf("fgread: %w", err)
		}
	}
	return cfg, nil
}

// infoOptions narrows a load config back to the discovery options shared
// with it, so load calls can delegate to ListDatasets.
func (c *loadConfig) infoOptions() []Option {
	return []Option{WithDataDir(c.dataDir), WithLogger(c.logger)}
}

// dataDirOption implements Option for WithDataDir.
type dataDirOption struct {
	dir string
}

// WithDataDir sets the directory datasets are discovered under.
// Default: DefaultDataDir.
func WithDataDir(dir string) Option {
	return &dataDirOption{dir: dir}
}

func (o *dataDirOption) applyInfo(cfg *infoConfig) error {
	cfg.dataDir = o.dir
	return nil
}

func (o *dataDirOption) applyLoad(cfg *loadConfig) error {
	cfg.dataDir = o.dir
	return nil
}

// loggerOption implements Option for WithLogger.
type loggerOption struct {
	logger *slog.Logger
}

// WithLogger sets the logger progress and warnings are emitted on.
// Default: a tinted stderr logger at info level.
func WithLogger(logger *slog.Logger) Option {
	return &loggerOption{logger: logger}
}

func (o *loggerOption) applyInfo(cfg *infoConfig) error {
	cfg.logger = o.logger
	return nil
}

func (o *loggerOption) applyLoad(cfg *loadConfig) error {
	cfg.logger = o.logger
	return nil
}

// readersOption implements Option for WithReaders (load-only).
type readersOption struct {
	readers map[string]Reader
}

// WithReaders overlays the default reader registry for one call. Caller
// entries win on format label collision. The defaults are never mutated,
// so the overlay does not leak across calls.
// This option is only valid for load calls.
func WithReaders(readers map[string]Reader) Option {
	return &readersOption{readers: readers}
}

func (o *readersOption) applyInfo(*infoConfig) error {
	return fmt.Errorf("WithReaders: %w", ErrOptionNotValidForInfo)
}

func (o *readersOption) applyLoad(cfg *loadConfig) error {
	cfg.readers = o.readers
	return nil
}
