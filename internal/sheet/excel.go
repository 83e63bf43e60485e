package sheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExcelDecoder reads .xlsx/.xlsm workbooks via excelize. Only the first sheet
// is consumed; that matches how the report exports are produced.
type ExcelDecoder struct{}

func (ExcelDecoder) Rows(r io.Reader) ([][]any, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	out := make([][]any, 0, len(raw))
	for _, row := range raw {
		cells := make([]any, len(row))
		for i, c := range row {
			cells[i] = c
		}
		out = append(out, cells)
	}
	return out, nil
}
