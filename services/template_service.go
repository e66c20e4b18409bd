package services

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const templateSheet = "Каталог"

var templateHeader = []string{
	"Артикул",
	"Бренд",
	"Наименование",
	"Ед. (единицы измерения)",
	"Цена (Рекомендуемая)",
	"Цена дилер (по которой идет рассчет)",
	"Акция!!!",
	"% скидки",
	"Специальная цена!!!",
	"Упаковка (сколько единиц товара в большой коробке/средней коробки/малой коробки)",
	"Штрих-код",
	"Фото",
}

var templateRows = [][]string{
	{"RU-001", "Hatber", "Ручка шариковая синяя Megapolis", "шт", "120", "85", "", "", "", "", "4606782024689", "/images/pen-blue.jpg"},
	{"NB-005", "Brauberg", "Блокнот А5 80 листов клетка", "шт", "280", "195", "15%", "", "", "", "4606788000567", "/images/notebook-a5.jpg"},
	{"ST-012", "Office Space", "Степлер металлический №24/6", "шт", "450", "320", "", "", "290", "20 шт", "4606793245891", "/images/stapler.jpg"},
	{"PEN-003", "Erich Krause", "Карандаш чернографитный НВ", "шт", "35", "25", "Новинка!!!", "", "", "", "4606788567234", "/images/pencil-hb.jpg"},
	{"FOLD-008", "Sponsor", "Папка-регистратор А4 75мм", "шт", "220", "160", "", "", "149", "10 шт", "4606782156789", "/images/folder-a4.jpg"},
	{"MARK-002", "Attache", "Маркер выделитель желтый", "шт", "95", "70", "25", "", "", "", "4606789234567", "/images/marker-yellow.jpg"},
	{"CLIP-001", "Brauberg", "Скрепки металлические 28мм", "уп", "65", "45", "", "", "39", "50 уп", "4606788345678", "/images/clips.jpg"},
	{"TAPE-005", "Scotch", "Скотч прозрачный 19мм х 33м", "шт", "180", "125", "10%", "", "", "", "4606782987654", "/images/tape.jpg"},
}

// TemplateService renders the sample price list admins can start from.
type TemplateService struct{}

func NewTemplateService() *TemplateService {
	return &TemplateService{}
}

func (s *TemplateService) Header() []string {
	return append([]string(nil), templateHeader...)
}

// WriteCSV writes UTF-8 with a BOM so spreadsheet apps detect the encoding.
func (s *TemplateService) WriteCSV(w io.Writer) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(templateHeader); err != nil {
		return err
	}
	if err := cw.WriteAll(templateRows); err != nil {
		return fmt.Errorf("write csv template: %w", err)
	}
	return nil
}

func (s *TemplateService) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", templateSheet); err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "center"},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}

	for i, title := range templateHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(templateSheet, cell, title); err != nil {
			return err
		}
		colName, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(templateSheet, colName, colName, 22); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(templateHeader), 1)
	if err := f.SetCellStyle(templateSheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for r, row := range templateRows {
		for c, value := range row {
			if value == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(templateSheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx template: %w", err)
	}
	return nil
}
