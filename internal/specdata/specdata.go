// Package specdata loads the spectral data tables (CIE standard observer,
// illuminants, reflectance bases, scene material spectra) that color and
// scene need at startup, from flat CSV files.
package specdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// ErrBadCSV is returned when a data file is malformed: unreadable, empty,
// or with rows of inconsistent column count.
var ErrBadCSV = errors.New("specdata: malformed CSV data file")

// LoadColumns reads path as a comma-separated table of floats and returns
// it transposed into columns, i.e. result[col][row]. Every row must have
// the same number of fields; if want is non-zero, every row must also
// have exactly that many columns.
func LoadColumns(path string, want int) ([][]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("specdata: opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadCSV, path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s: no rows", ErrBadCSV, path)
	}

	ncols := len(records[0])
	if want != 0 && ncols != want {
		return nil, fmt.Errorf("%w: %s: got %d columns, want %d", ErrBadCSV, path, ncols, want)
	}

	columns := make([][]float32, ncols)
	for c := range columns {
		columns[c] = make([]float32, len(records))
	}
	for row, rec := range records {
		if len(rec) != ncols {
			return nil, fmt.Errorf("%w: %s: row %d has %d columns, want %d", ErrBadCSV, path, row, len(rec), ncols)
		}
		for c, field := range rec {
			v, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: row %d col %d: %v", ErrBadCSV, path, row, c, err)
			}
			columns[c][row] = float32(v)
		}
	}
	return columns, nil
}
