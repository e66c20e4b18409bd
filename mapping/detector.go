package mapping

import (
	"strings"

	"github.com/pr-poehali-dev/office-supply-webshop/models"
)

// DefaultPatterns lists the lower-case keywords tried for each catalog field.
// Order matters only for readability; the first matching column wins.
var DefaultPatterns = map[models.CatalogField][]string{
	models.FieldArticle:          {"артикул", "код", "id", "sku", "арт"},
	models.FieldBrand:            {"бренд", "производитель", "марка", "торговая марка"},
	models.FieldName:             {"наименование", "название", "товар", "описание"},
	models.FieldUnit:             {"ед.", "единица", "упаковка", "шт", "уп"},
	models.FieldRecommendedPrice: {"цена", "рекомендуемая", "розничная", "ррц", "price"},
	models.FieldDealerPrice:      {"дилер", "оптовая", "базовая", "себестоимость"},
	models.FieldSpecialPrice:     {"специальная", "акционная", "промо", "sale"},
	models.FieldDiscount:         {"скидка", "процент", "дисконт", "%"},
	models.FieldPromo:            {"акция", "промо", "новинка", "спецпредложение"},
	models.FieldPackage:          {"упаковка", "кратность", "коробка", "количество"},
	models.FieldBarcode:          {"штрих", "код", "ean", "шк"},
	models.FieldPhoto:            {"фото", "изображение", "картинка", "image"},
}

// Detector guesses which uploaded column holds a catalog field.
type Detector struct {
	patterns map[models.CatalogField][]string
}

// NewDetector builds a detector over a copy of patterns.
func NewDetector(patterns map[models.CatalogField][]string) *Detector {
	cp := make(map[models.CatalogField][]string, len(patterns))
	for field, list := range patterns {
		lowered := make([]string, 0, len(list))
		for _, p := range list {
			lowered = append(lowered, strings.ToLower(p))
		}
		cp[field] = lowered
	}
	return &Detector{patterns: cp}
}

// DefaultDetector uses DefaultPatterns.
func DefaultDetector() *Detector {
	return NewDetector(DefaultPatterns)
}

// DetectColumn returns the first column, in input order, that contains one of
// the field's patterns or is contained in one. It returns "" when nothing
// matches, for unknown fields and for an empty column list.
func (d *Detector) DetectColumn(field models.CatalogField, columns []string) string {
	patterns := d.patterns[field]
	if len(patterns) == 0 {
		return ""
	}
	for _, column := range columns {
		lower := strings.ToLower(column)
		for _, p := range patterns {
			if strings.Contains(lower, p) || strings.Contains(p, lower) {
				return column
			}
		}
	}
	return ""
}
