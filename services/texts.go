package services

var texts = map[string]map[string]string{
	"ru": {
		"dealerPortal":  "DEALER PORTAL",
		"adminPanel":    "Панель администратора",
		"catalog":       "Каталог товаров",
		"cart":          "Корзина",
		"uploadExcel":   "Загрузить Excel каталог",
		"dragDrop":      "Перетащите файл Excel сюда или нажмите для выбора",
		"search":        "Поиск товаров...",
		"category":      "Категория",
		"allCategories": "Все категории",
		"addToCart":     "В корзину",
		"outOfStock":    "Нет в наличии",
		"dealerInfo":    "Информация о дилере",
		"dealerName":    "Наименование дилера",
		"inn":           "ИНН",
		"phone":         "Телефон",
		"discount":      "Скидка (%)",
		"total":         "Итого",
		"placeOrder":    "Оформить заказ",
		"cartEmpty":     "Корзина пуста",
		"cartItems":     "товаров",
	},
	"en": {
		"dealerPortal":  "DEALER PORTAL",
		"adminPanel":    "Admin Panel",
		"catalog":       "Product Catalog",
		"cart":          "Cart",
		"uploadExcel":   "Upload Excel Catalog",
		"dragDrop":      "Drag Excel file here or click to select",
		"search":        "Search products...",
		"category":      "Category",
		"allCategories": "All Categories",
		"addToCart":     "Add to Cart",
		"outOfStock":    "Out of Stock",
		"dealerInfo":    "Dealer Information",
		"dealerName":    "Dealer Name",
		"inn":           "Tax ID",
		"phone":         "Phone",
		"discount":      "Discount (%)",
		"total":         "Total",
		"placeOrder":    "Place Order",
		"cartEmpty":     "Cart is empty",
		"cartItems":     "items",
	},
}

// Texts returns the UI strings for lang.
func Texts(lang string) (map[string]string, error) {
	t, ok := texts[lang]
	if !ok {
		return nil, ErrUnknownLanguage
	}
	return t, nil
}
