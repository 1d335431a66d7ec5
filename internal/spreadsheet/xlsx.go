package spreadsheet

import (
	"fmt"
	"io"
	"slices"

	"github.com/xuri/excelize/v2"
)

// XLSX reads sheets from an Excel workbook.
type XLSX struct {
	f *excelize.File
}

func OpenXLSX(path string) (*XLSX, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %s: %w", path, err)
	}
	return &XLSX{f: f}, nil
}

// ReadXLSX reads a workbook from r, e.g. an uploaded file.
func ReadXLSX(r io.Reader) (*XLSX, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("read xlsx: %w", err)
	}
	return &XLSX{f: f}, nil
}

func (x *XLSX) Sheets() []string {
	return x.f.GetSheetList()
}

func (x *XLSX) Rows(sheet string) ([]Row, error) {
	if !slices.Contains(x.Sheets(), sheet) {
		return nil, fmt.Errorf("%s: %w", sheet, ErrNoSheet)
	}
	grid, err := x.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return toRows(grid), nil
}

func (x *XLSX) Close() error {
	return x.f.Close()
}
