package sheet_test

import (
	"bytes"
	"testing"

	"github.com/pr-poehali-dev/office-supply-webshop/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

func workbook(t *testing.T, rows [][]interface{}, merges ...[2]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	for _, m := range merges {
		require.NoError(t, f.MergeCell("Sheet1", m[0], m[1]))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestRead_XLSXSkipsTitleRows(t *testing.T) {
	data := workbook(t, [][]interface{}{
		{"Прайс-лист ООО Канцмир"},
		{},
		{"Артикул", "Наименование", "", "Цена"},
		{"RU-001", "Ручка", "", 120},
		{},
		{"NB-005", "Блокнот", "x", 280},
	})

	tbl, err := sheet.Read("price.xlsx", data)
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", tbl.Sheet)
	assert.Equal(t, []string{"Артикул", "Наименование", "Колонка 3", "Цена"}, tbl.Header)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "120", tbl.Value(tbl.Rows[0], "Цена"))
	assert.Equal(t, "Блокнот", tbl.Value(tbl.Rows[1], "Наименование"))
	assert.Equal(t, "", tbl.Value(tbl.Rows[1], "Бренд"))
}

func TestRead_XLSXExpandsMerges(t *testing.T) {
	data := workbook(t, [][]interface{}{
		{"Наименование", "Бренд"},
		{"Степлер", "Office Space"},
		{"Скобы", nil},
	}, [2]string{"B2", "B3"})

	tbl, err := sheet.Read("merged.XLSX", data)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "Office Space", tbl.Value(tbl.Rows[1], "Бренд"))
}

func TestRead_CSVSemicolonWindows1251(t *testing.T) {
	src := "Артикул;Наименование;Цена\r\nRU-001;Ручка шариковая;120,50\r\n"
	encoded, err := charmap.Windows1251.NewEncoder().Bytes([]byte(src))
	require.NoError(t, err)

	tbl, err := sheet.Read("price.csv", encoded)
	require.NoError(t, err)
	assert.Equal(t, []string{"Артикул", "Наименование", "Цена"}, tbl.Header)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "120,50", tbl.Rows[0][2])
}

func TestRead_CSVWithBOMAndCommas(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Наименование,Бренд\n\"Скотч, прозрачный\",Scotch\n")...)

	tbl, err := sheet.Read("price.csv", data)
	require.NoError(t, err)
	assert.Equal(t, "Наименование", tbl.Header[0])
	assert.Equal(t, "Скотч, прозрачный", tbl.Rows[0][0])
}

func TestRead_TSV(t *testing.T) {
	tbl, err := sheet.Read("price.tsv", []byte("Наименование\tЦена\nКарандаш\t35\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Наименование", "Цена"}, tbl.Header)
	assert.Equal(t, "35", tbl.Rows[0][1])
}

func TestRead_RepeatedHeadersStayAddressable(t *testing.T) {
	tbl, err := sheet.Read("price.csv", []byte("Наименование;Цена;Цена;Цена (2)\nРучка;120;95;80\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Наименование", "Цена", "Цена (2)", "Цена (2) (2)"}, tbl.Header)
	assert.Equal(t, "120", tbl.Value(tbl.Rows[0], "Цена"))
	assert.Equal(t, "95", tbl.Value(tbl.Rows[0], "Цена (2)"))
	assert.Equal(t, "80", tbl.Value(tbl.Rows[0], "Цена (2) (2)"))
}

func TestRead_XLSXMergedHeaderCell(t *testing.T) {
	data := workbook(t, [][]interface{}{
		{"Наименование", "Цена", nil},
		{"Степлер", 450, 320},
	}, [2]string{"B1", "C1"})

	tbl, err := sheet.Read("merged-header.xlsx", data)
	require.NoError(t, err)

	assert.Equal(t, []string{"Наименование", "Цена", "Цена (2)"}, tbl.Header)
	assert.Equal(t, "450", tbl.Value(tbl.Rows[0], "Цена"))
	assert.Equal(t, "320", tbl.Value(tbl.Rows[0], "Цена (2)"))
}

func TestRead_Errors(t *testing.T) {
	_, err := sheet.Read("old.xls", []byte{0xD0, 0xCF})
	assert.ErrorIs(t, err, sheet.ErrLegacyFormat)

	_, err = sheet.Read("report.pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, sheet.ErrUnsupportedFormat)

	_, err = sheet.Read("single.csv", []byte("one\ntwo\n"))
	assert.ErrorIs(t, err, sheet.ErrNoHeader)
}
