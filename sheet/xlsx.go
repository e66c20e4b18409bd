package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

func readXLSX(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	for _, name := range f.GetSheetList() {
		grid, err := filledGrid(f, name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		t, err := build(name, grid)
		if errors.Is(err, ErrNoHeader) {
			continue
		}
		return t, err
	}
	return nil, ErrNoHeader
}

// filledGrid returns a rectangular, trimmed grid with merged ranges filled
// with their top-left value.
func filledGrid(f *excelize.File, sheet string) ([][]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	maxCol := 0
	for _, row := range rows {
		maxCol = max(maxCol, len(row))
	}
	grid := make([][]string, len(rows))
	for i, row := range rows {
		grid[i] = make([]string, maxCol)
		for j, cell := range row {
			grid[i][j] = strings.TrimSpace(cell)
		}
	}

	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}
	for _, m := range merges {
		startCol, startRow, err := excelize.CellNameToCoordinates(m.GetStartAxis())
		if err != nil {
			continue
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(m.GetEndAxis())
		if err != nil {
			continue
		}
		val := strings.TrimSpace(m.GetCellValue())
		for r := startRow - 1; r < endRow && r < len(grid); r++ {
			for c := startCol - 1; c < endCol && c < maxCol; c++ {
				grid[r][c] = val
			}
		}
	}
	return grid, nil
}
