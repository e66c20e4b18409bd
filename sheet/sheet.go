// Package sheet extracts the header row and data rows of an uploaded price list.
package sheet

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("sheet: unsupported file format")
	ErrLegacyFormat      = errors.New("sheet: legacy .xls workbooks cannot be read locally")
	ErrNoHeader          = errors.New("sheet: no header row found")
)

// Table is the first usable sheet of a file. Every row has len(Header) cells.
type Table struct {
	Sheet  string
	Header []string
	Rows   [][]string
}

// Index returns the position of column in the header, or -1.
func (t *Table) Index(column string) int {
	for i, h := range t.Header {
		if h == column {
			return i
		}
	}
	return -1
}

// Value returns the cell of row under column, or "" when the column is absent.
func (t *Table) Value(row []string, column string) string {
	i := t.Index(column)
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// Read dispatches on the file extension.
func Read(filename string, data []byte) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return readXLSX(data)
	case ".csv", ".tsv", ".txt":
		return readCSV(data)
	case ".xls":
		return nil, ErrLegacyFormat
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

// build turns a raw grid into a Table. The header is the first row with at
// least two non-empty cells; blank header cells get a positional name and
// repeated names get a numeric suffix so every column stays addressable.
func build(sheetName string, grid [][]string) (*Table, error) {
	headerRow := -1
	for i, row := range grid {
		if filled(row) >= 2 {
			headerRow = i
			break
		}
	}
	if headerRow < 0 {
		return nil, ErrNoHeader
	}

	raw := grid[headerRow]
	width := len(raw)
	for width > 0 && strings.TrimSpace(raw[width-1]) == "" {
		width--
	}
	header := make([]string, width)
	seen := make(map[string]bool, width)
	for i := 0; i < width; i++ {
		name := strings.TrimSpace(raw[i])
		if name == "" {
			name = fmt.Sprintf("Колонка %d", i+1)
		}
		header[i] = uniqueName(name, seen)
	}

	t := &Table{Sheet: sheetName, Header: header}
	for _, row := range grid[headerRow+1:] {
		if filled(row) == 0 {
			continue
		}
		cells := make([]string, width)
		for i := 0; i < width && i < len(row); i++ {
			cells[i] = strings.TrimSpace(row[i])
		}
		t.Rows = append(t.Rows, cells)
	}
	return t, nil
}

// uniqueName returns name, or "name (N)" with the smallest free N >= 2.
func uniqueName(name string, seen map[string]bool) string {
	candidate := name
	for n := 2; seen[candidate]; n++ {
		candidate = fmt.Sprintf("%s (%d)", name, n)
	}
	seen[candidate] = true
	return candidate
}

func filled(row []string) int {
	n := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			n++
		}
	}
	return n
}
