package services

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pr-poehali-dev/office-supply-webshop/models"
	"github.com/pr-poehali-dev/office-supply-webshop/sheet"
)

// promoNew marks a novelty rather than a promotional price.
const promoNew = "Новинка!!!"

// PriceListBuilder turns spreadsheet rows into catalog products using a
// confirmed column mapping.
type PriceListBuilder struct {
	newID func() string
}

func NewPriceListBuilder() *PriceListBuilder {
	return &PriceListBuilder{newID: uuid.NewString}
}

// BuildProducts skips rows without a name and returns the products together
// with their sorted categories.
func (b *PriceListBuilder) BuildProducts(table *sheet.Table, confirmed models.ConfirmedMapping) ([]models.Product, []string, error) {
	if confirmed[models.FieldName] == "" {
		return nil, nil, ErrNameNotMapped
	}
	for field, column := range confirmed {
		if table.Index(column) < 0 {
			return nil, nil, fmt.Errorf("column %q for %s is not in the file", column, field)
		}
	}

	var products []models.Product
	var categories []string
	for _, row := range table.Rows {
		get := func(f models.CatalogField) string {
			column, ok := confirmed[f]
			if !ok {
				return ""
			}
			return cleanText(table.Value(row, column))
		}

		name := get(models.FieldName)
		if name == "" {
			continue
		}
		p := b.buildProduct(name, get)
		if !slices.Contains(categories, p.Category) {
			categories = append(categories, p.Category)
		}
		products = append(products, p)
	}
	slices.Sort(categories)
	return products, categories, nil
}

func (b *PriceListBuilder) buildProduct(name string, get func(models.CatalogField) string) models.Product {
	brand := get(models.FieldBrand)
	recommended := parsePrice(get(models.FieldRecommendedPrice))
	dealer := parsePrice(get(models.FieldDealerPrice))
	special := parsePrice(get(models.FieldSpecialPrice))
	promo := get(models.FieldPromo)
	discount := get(models.FieldDiscount)

	regular := dealer
	if regular == 0 {
		regular = recommended
	}
	promoActive := promo != "" && promo != promoNew

	final, base := regular, regular
	switch {
	case special > 0:
		final = special
	case promoActive:
		// Text offers such as "Хит продаж" keep the regular price.
		if v := parsePrice(promo); v > 0 {
			final = v
		}
	case discount != "":
		if d := parsePrice(discount); d > 100 {
			final = d
		} else if d > 0 {
			final = regular * (1 - d/100)
		}
	}

	p := models.Product{
		ID:                b.newID(),
		Name:              name,
		Article:           get(models.FieldArticle),
		Brand:             brand,
		Category:          brand,
		Price:             round2(final),
		BasePrice:         round2(base),
		RecommendedPrice:  round2(recommended),
		Unit:              get(models.FieldUnit),
		Package:           get(models.FieldPackage),
		Barcode:           get(models.FieldBarcode),
		Image:             imagePath(get(models.FieldPhoto)),
		Description:       strings.TrimSpace(brand + " " + name),
		InStock:           true,
		HasSpecialPricing: promoActive || discount != "" || special > 0,
		SpecialOffer:      promo,
		DiscountPercent:   discount,
	}
	if p.Category == "" {
		p.Category = models.DefaultCategory
	}
	if special > 0 {
		sp := special
		p.SpecialPrice = &sp
	}
	return p
}

func cleanText(v string) string {
	v = strings.TrimSpace(v)
	switch v {
	case "nan", "None":
		return ""
	}
	return v
}

// parsePrice reads "1 234,50 ₽", "1,234.50", "15%" and similar. Unreadable
// values are zero.
func parsePrice(v string) float64 {
	v = strings.Map(func(r rune) rune {
		switch r {
		case '₽', '$', '€', '%', ' ', '\u00a0', '\t':
			return -1
		}
		return r
	}, v)
	if v == "" {
		return 0
	}
	switch {
	case strings.Contains(v, ",") && strings.Contains(v, "."):
		v = strings.ReplaceAll(v, ",", "")
	case strings.Count(v, ",") == 1:
		v = strings.Replace(v, ",", ".", 1)
	default:
		v = strings.ReplaceAll(v, ",", "")
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

// imagePath keeps URLs and absolute paths, places bare file names under
// /images and falls back to the placeholder.
func imagePath(photo string) string {
	switch {
	case photo == "":
		return models.PlaceholderImage
	case strings.HasPrefix(photo, "http://"), strings.HasPrefix(photo, "https://"), strings.HasPrefix(photo, "/"):
		return photo
	case strings.Contains(photo, "."):
		return "/images/" + photo
	default:
		return models.PlaceholderImage
	}
}
