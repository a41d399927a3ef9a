// Package csvfile reads and writes product fixture files.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"pkg.jsn.cam/partsfixture/pkg/fixture"
)

// Sentinel errors for fixture file I/O
var (
	ErrCreateDir  = errors.New("create output directory")
	ErrCreateFile = errors.New("create output file")
	ErrWriteFile  = errors.New("write output file")
	ErrOpenFile   = errors.New("open fixture file")
	ErrReadFile   = errors.New("read fixture file")
	ErrBadHeader  = errors.New("unexpected header")
)

// Write stores products at path as CSV with a header row, creating parent
// directories as needed. It returns the size of the written file.
func Write(products []fixture.Product, path string) (size int64, err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCreateDir, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCreateFile, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWriteFile, cerr)
		}
	}()

	if err := Encode(file, products); err != nil {
		return 0, err
	}

	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWriteFile, err)
	}

	return info.Size(), nil
}

// Encode writes the header and one row per product to w.
func Encode(w io.Writer, products []fixture.Product) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(fixture.Header()); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}
	for _, p := range products {
		if err := cw.Write(p.Fields()); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteFile, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}

	return nil
}

// Read loads a file produced by Write.
func Read(path string) ([]fixture.Product, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFile, err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode parses a header row followed by product rows.
func Decode(r io.Reader) ([]fixture.Product, error) {
	cr := csv.NewReader(r)

	head, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrBadHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	if !slices.Equal(head, fixture.Header()) {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, head)
	}

	products := []fixture.Product{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
		}

		p, err := fixture.FromFields(row)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
		}
		products = append(products, p)
	}

	return products, nil
}
