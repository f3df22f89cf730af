// Package bundle reads DART filing document bundles.
//
// A bundle is the zip archive returned by the document.xml endpoint:
// one or more markup documents for a single filing. The package lists
// entries, picks the main document by filename heuristics, and extracts
// plain text from it.
package bundle

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrEntryNotFound is returned when a named entry is not in the archive.
var ErrEntryNotFound = errors.New("bundle: entry not found in archive")

// ListEntries returns the archive's entry names in stored order.
func ListEntries(zipBytes []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return nil, fmt.Errorf("bundle: invalid archive: %w", err)
	}

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names, nil
}

// ReadEntry returns the raw bytes of one archive entry.
func ReadEntry(zipBytes []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return nil, fmt.Errorf("bundle: invalid archive: %w", err)
	}

	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("bundle: open entry %s: %w", name, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}

	return nil, ErrEntryNotFound
}
