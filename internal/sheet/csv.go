package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVDecoder handles plain-text exports. Ragged rows are allowed; header
// mapping downstream copes with them.
type CSVDecoder struct{}

func (CSVDecoder) Rows(r io.Reader) ([][]any, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var out [][]any
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		cells := make([]any, len(rec))
		for i, c := range rec {
			cells[i] = c
		}
		out = append(out, cells)
	}
	return out, nil
}
