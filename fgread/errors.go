package fgread

import (
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Error taxonomy
// -----------------------------------------------------------------------------

// ConfigurationError indicates a data directory that exists but contains no
// validly named dataset directories. An attached-but-empty directory is an
// operator-visible inconsistency, unlike a missing directory which simply
// means no datasets are attached.
type ConfigurationError struct {
	// Dir is the data directory that was scanned.
	Dir string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("fgread: no dataset directories found in %q", e.Dir)
}

// NotFoundError indicates a selection that matches no dataset.
type NotFoundError struct {
	// Selector is the ID or title that was searched for.
	Selector string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("fgread: selection %q matches no datasets, select exactly one by its ID or title", e.Selector)
}

// AmbiguousSelectionError indicates a selection that matches more than one
// dataset, or a load with no selector while more than one dataset is
// available.
type AmbiguousSelectionError struct {
	// Selector is the ID or title that was searched for. Empty when no
	// selector was supplied.
	Selector string

	// Matches is the number of datasets matched.
	Matches int

	// Candidates holds the matched records, for callers that want to
	// display them.
	Candidates []*Record
}

func (e *AmbiguousSelectionError) Error() string {
	if e.Selector == "" {
		if e.Matches == 0 {
			return "fgread: there are no datasets available to load"
		}
		return "fgread: there is more than one dataset available, please select one by its ID or title"
	}
	return fmt.Sprintf("fgread: selection %q matches %d datasets, select exactly one by its ID or title", e.Selector, e.Matches)
}

// UnsupportedFormatError indicates a dataset declared with the "Other"
// format, which has no automatic reader.
type UnsupportedFormatError struct {
	// Title is the dataset's display title.
	Title string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf(
		"fgread: the format of dataset %q is %q; datasets with the %q format have to be loaded manually, see %s for more information",
		e.Title, FormatOther, FormatOther, DocsURL)
}

// UnconfiguredFormatError indicates a dataset whose owner never declared a
// format. This is a metadata problem, not a code problem: the dataset owner
// has to set the format on the dataset's details page.
type UnconfiguredFormatError struct {
	// Title is the dataset's display title.
	Title string
}

func (e *UnconfiguredFormatError) Error() string {
	return fmt.Sprintf(
		"fgread: the format of dataset %q was not defined; if you can modify the dataset please specify its format in its details page, otherwise ask the dataset owner to do that, see %s for more information",
		e.Title, DocsURL)
}

// UnknownFormatError indicates a declared format with no registered reader.
type UnknownFormatError struct {
	// Format is the unrecognized format label.
	Format string

	// Registered lists the format labels of the effective registry, sorted.
	Registered []string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf(
		"fgread: unknown format %q, use one of [%s] or supply your own reading function, see %s for more information",
		e.Format, strings.Join(e.Registered, ", "), DocsURL)
}
