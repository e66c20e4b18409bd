package mapping

import "github.com/pr-poehali-dev/office-supply-webshop/models"

var defaultSchema = []models.FieldMapping{
	{Field: models.FieldArticle, Label: "Артикул"},
	{Field: models.FieldBrand, Label: "Бренд"},
	{Field: models.FieldName, Label: "Наименование", Required: true},
	{Field: models.FieldUnit, Label: "Единица измерения"},
	{Field: models.FieldRecommendedPrice, Label: "Рекомендуемая цена"},
	{Field: models.FieldDealerPrice, Label: "Цена дилера"},
	{Field: models.FieldSpecialPrice, Label: "Специальная цена"},
	{Field: models.FieldDiscount, Label: "Скидка (%)"},
	{Field: models.FieldPromo, Label: "Акция"},
	{Field: models.FieldPackage, Label: "Упаковка"},
	{Field: models.FieldBarcode, Label: "Штрих-код"},
	{Field: models.FieldPhoto, Label: "Фото"},
}

// DefaultSchema returns a fresh copy of the price list fields, all unmapped.
func DefaultSchema() []models.FieldMapping {
	return append([]models.FieldMapping(nil), defaultSchema...)
}

// CanConfirm reports whether every required entry has a column.
func CanConfirm(mappings []models.FieldMapping) bool {
	for _, m := range mappings {
		if m.Required && m.DetectedColumn == "" {
			return false
		}
	}
	return true
}

// BuildConfirmed keeps only the mapped entries.
func BuildConfirmed(mappings []models.FieldMapping) models.ConfirmedMapping {
	confirmed := make(models.ConfirmedMapping, len(mappings))
	for _, m := range mappings {
		if m.DetectedColumn != "" {
			confirmed[m.Field] = m.DetectedColumn
		}
	}
	return confirmed
}
