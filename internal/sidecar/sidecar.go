// Package sidecar decodes the dataset_info.json metadata file stored
// alongside each dataset's payload.
package sidecar

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// FileName is the metadata sidecar filename within a dataset directory.
const FileName = "dataset_info.json"

// schemaVersionField is internal platform versioning and is dropped on load.
const schemaVersionField = "schemaVersion"

// Sidecar holds one decoded metadata record. Fields maps field names to
// decoded values; Order preserves the field encounter order from the file,
// which downstream column ordering depends on.
type Sidecar struct {
	Fields map[string]any
	Order  []string
}

// Load reads and decodes the sidecar of the given dataset directory,
// dropping the schema version field.
func Load(dir string) (*Sidecar, error) {
	path := filepath.Join(dir, FileName)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sidecar: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sc, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("sidecar: decode %s: %w", path, err)
	}
	return sc, nil
}

// decode reads a single JSON object, preserving key encounter order.
// jsoniter's streaming iterator is used instead of map decoding because
// Go maps do not retain key order.
func decode(r io.Reader) (*Sidecar, error) {
	iter := jsoniter.Parse(jsonCodec, r, 4096)

	sc := &Sidecar{Fields: make(map[string]any)}
	ok := iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		value := it.Read()
		if field == schemaVersionField {
			return true
		}
		if _, seen := sc.Fields[field]; !seen {
			sc.Order = append(sc.Order, field)
		}
		sc.Fields[field] = value
		return true
	})
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, iter.Error
	}
	if !ok {
		return nil, errors.New("malformed metadata object")
	}
	return sc, nil
}
