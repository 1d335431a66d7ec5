package spreadsheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CSVDir reads each sheet from <dir>/<sheet>.csv.
type CSVDir struct {
	dir string
}

func OpenCSVDir(dir string) (*CSVDir, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open csv dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open csv dir: %s is not a directory", dir)
	}
	return &CSVDir{dir: dir}, nil
}

func (d *CSVDir) Sheets() []string {
	matches, _ := filepath.Glob(filepath.Join(d.dir, "*.csv"))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.TrimSuffix(filepath.Base(m), filepath.Ext(m)))
	}
	sort.Strings(out)
	return out
}

func (d *CSVDir) Rows(sheet string) ([]Row, error) {
	path := filepath.Join(d.dir, sheet+".csv")
	fp, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", sheet, ErrNoSheet)
	}
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	grid, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(grid) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}
	return toRows(grid), nil
}

func (d *CSVDir) Close() error { return nil }
