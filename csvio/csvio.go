// Package csvio reads arrays of floating-point values from CSV input, the
// most common interchange form for data fed into the codec.
//
// All numeric fields are flattened into a single array in row-major order;
// blank fields are skipped so trailing commas and ragged rows are harmless.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadFloats parses every numeric field from r into one flat float64 array.
//
// Rows may have differing field counts. Blank fields are skipped; any
// non-blank field that does not parse as a float is an error.
func ReadFloats(r io.Reader) ([]float64, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var values []float64

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}

		for _, field := range record {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}

			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("parse csv field %q: %w", field, err)
			}

			values = append(values, v)
		}
	}

	return values, nil
}

// ReadFloatsFile is ReadFloats over the contents of the file at path.
func ReadFloatsFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	return ReadFloats(f)
}
