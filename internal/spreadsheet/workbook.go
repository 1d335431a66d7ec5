// Package spreadsheet reads the named sheets of card data as header-keyed rows.
package spreadsheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:generate mockgen -destination=mock/mock.go -package=spreadsheetmock github.com/youruser/awayteam/internal/spreadsheet Workbook

// ErrNoSheet is returned by Workbook.Rows for a sheet the workbook does not have.
var ErrNoSheet = errors.New("sheet not found")

// Workbook is a set of named sheets.
type Workbook interface {
	Sheets() []string
	Rows(sheet string) ([]Row, error)
	Close() error
}

// Row is one data row of a sheet, keyed by the sheet's header row.
type Row struct {
	headers []string
	cols    map[string]int
	cells   []string
}

func NewRow(headers, cells []string) Row {
	cols := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	return Row{headers: headers, cols: cols, cells: cells}
}

// Get returns the trimmed cell under header name, or "" when the column or cell is missing.
func (r Row) Get(name string) string {
	if idx, ok := r.cols[name]; ok && idx < len(r.cells) {
		return strings.TrimSpace(r.cells[idx])
	}
	return ""
}

func (r Row) Headers() []string {
	return r.headers
}

// WithPrefix returns the non-blank cells of every column whose header starts with prefix,
// in column order.
func (r Row) WithPrefix(prefix string) []string {
	var out []string
	for i, h := range r.headers {
		if !strings.HasPrefix(strings.TrimSpace(h), prefix) || i >= len(r.cells) {
			continue
		}
		if v := strings.TrimSpace(r.cells[i]); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Blank reports whether every cell is empty.
func (r Row) Blank() bool {
	for _, c := range r.cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// toRows turns a grid whose first line is the header into rows, dropping blank ones.
func toRows(grid [][]string) []Row {
	if len(grid) == 0 {
		return nil
	}
	header := grid[0]
	out := make([]Row, 0, len(grid)-1)
	for _, cells := range grid[1:] {
		row := NewRow(header, cells)
		if row.Blank() {
			continue
		}
		out = append(out, row)
	}
	return out
}

// Open picks a reader for path: a directory is read as one CSV file per sheet, anything
// else as an XLSX workbook.
func Open(path string) (Workbook, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	if info.IsDir() {
		return OpenCSVDir(path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return OpenXLSX(path)
	}
	return nil, fmt.Errorf("open workbook %s: unsupported format", path)
}
