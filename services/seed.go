package services

import "github.com/pr-poehali-dev/office-supply-webshop/models"

var seedCategories = []string{"Письменные принадлежности", "Тетради и блокноты", "Офисная техника"}

func seedProducts() []models.Product {
	p := func(id, name, category string, price float64, description string, inStock bool) models.Product {
		return models.Product{
			ID:          id,
			Name:        name,
			Category:    category,
			Price:       price,
			Image:       models.PlaceholderImage,
			Description: description,
			InStock:     inStock,
		}
	}
	return []models.Product{
		p("1", "Ручка шариковая синяя", "Письменные принадлежности", 45, "Качественная шариковая ручка с синими чернилами", true),
		p("2", "Блокнот А5 линейка", "Тетради и блокноты", 120, "Блокнот формата А5 с линованными страницами", true),
		p("3", "Степлер офисный", "Офисная техника", 350, "Надежный офисный степлер для документов", false),
		p("4", "Карандаш простой НВ", "Письменные принадлежности", 25, "Простой карандаш твердости НВ", true),
		p("5", "Папка-регистратор", "Офисная техника", 180, "Папка-регистратор А4 для документов", true),
		p("6", "Маркер выделитель желтый", "Письменные принадлежности", 65, "Маркер-выделитель флуоресцентный желтый", true),
	}
}
