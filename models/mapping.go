package models

// CatalogField identifies a target attribute an uploaded column can be mapped onto.
type CatalogField string

const (
	FieldArticle          CatalogField = "article"
	FieldBrand            CatalogField = "brand"
	FieldName             CatalogField = "name"
	FieldUnit             CatalogField = "unit"
	FieldRecommendedPrice CatalogField = "recommendedPrice"
	FieldDealerPrice      CatalogField = "dealerPrice"
	FieldSpecialPrice     CatalogField = "specialPrice"
	FieldDiscount         CatalogField = "discount"
	FieldPromo            CatalogField = "promo"
	FieldPackage          CatalogField = "package"
	FieldBarcode          CatalogField = "barcode"
	FieldPhoto            CatalogField = "photo"
)

func (f CatalogField) String() string {
	return string(f)
}

// FieldMapping is one row of the mapping dialog. An empty DetectedColumn means unmapped.
type FieldMapping struct {
	Field          CatalogField `json:"field"`
	Label          string       `json:"label"`
	DetectedColumn string       `json:"detected_column"`
	Required       bool         `json:"required"`
}

// ConfirmedMapping maps catalog fields to the chosen source column.
// Only mapped fields are present.
type ConfirmedMapping map[CatalogField]string

// MappingView is the mapping dialog state returned to clients.
type MappingView struct {
	Columns    []string       `json:"columns"`
	Mappings   []FieldMapping `json:"mappings"`
	CanConfirm bool           `json:"can_confirm"`
	Closed     bool           `json:"closed"`
}
