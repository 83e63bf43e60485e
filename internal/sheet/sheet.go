// Package sheet is the spreadsheet decoding collaborator: it turns uploaded
// bytes into the first sheet's rows and knows nothing about what the columns
// mean.
package sheet

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
)

// Decoder reads one uploaded file and returns the rows of its first sheet.
// Cells keep their decoded type: strings for text, time.Time where the
// underlying format carries one.
type Decoder interface {
	Rows(r io.Reader) ([][]any, error)
}

var ErrUnsupportedFormat = errors.New("unsupported file format")

// ForFile picks a decoder by file extension.
func ForFile(filename string) (Decoder, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return ExcelDecoder{}, nil
	case ".csv":
		return CSVDecoder{}, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}
