// Package i18n provides the static string tables for the menu board.
// Lookups are pure; the chosen locale itself is client state, the service
// only echoes back direction and language tag for the document.
package i18n

// Locale is one of the small fixed set of supported languages.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleFR Locale = "fr"
	LocaleZH Locale = "zh"
	LocaleAR Locale = "ar"
	LocaleES Locale = "es"
)

// DefaultLocale is the fallback for unknown locales and missing keys.
const DefaultLocale = LocaleEN

// LocaleInfo describes a supported locale for language pickers.
type LocaleInfo struct {
	Value Locale `json:"value"`
	Label string `json:"label"`
	Dir   string `json:"dir"`
	Lang  string `json:"lang"`
}

var locales = []LocaleInfo{
	{Value: LocaleEN, Label: "English"},
	{Value: LocaleFR, Label: "Français"},
	{Value: LocaleZH, Label: "中文"},
	{Value: LocaleAR, Label: "العربية"},
	{Value: LocaleES, Label: "Español"},
}

// Locales returns the supported locales with direction and language tag filled in.
func Locales() []LocaleInfo {
	out := make([]LocaleInfo, len(locales))
	for i, l := range locales {
		l.Dir = Direction(l.Value)
		l.Lang = LangTag(l.Value)
		out[i] = l
	}
	return out
}

// Parse returns the locale matching s, or DefaultLocale when unrecognized.
func Parse(s string) Locale {
	for _, l := range locales {
		if string(l.Value) == s {
			return l.Value
		}
	}
	return DefaultLocale
}

// Direction returns the text direction for the locale.
func Direction(locale Locale) string {
	if locale == LocaleAR {
		return "rtl"
	}
	return "ltr"
}

// LangTag returns the document language tag for the locale.
func LangTag(locale Locale) string {
	if locale == LocaleZH {
		return "zh-Hans"
	}
	return string(locale)
}

var categoryLabels = map[string]map[Locale]string{
	"Breakfast":  {LocaleEN: "Breakfast", LocaleFR: "Petit-déjeuner", LocaleZH: "早餐", LocaleAR: "الإفطار", LocaleES: "Desayuno"},
	"Appetizers": {LocaleEN: "Appetizers", LocaleFR: "Entrées", LocaleZH: "开胃菜", LocaleAR: "المقبلات", LocaleES: "Entrantes"},
	"Salads":     {LocaleEN: "Salads", LocaleFR: "Salades", LocaleZH: "沙拉", LocaleAR: "السلطات", LocaleES: "Ensaladas"},
	"Soups":      {LocaleEN: "Soups", LocaleFR: "Soupes", LocaleZH: "汤", LocaleAR: "الشوربات", LocaleES: "Sopas"},
	"Sandwiches": {LocaleEN: "Sandwiches", LocaleFR: "Sandwichs", LocaleZH: "三明治", LocaleAR: "السندويشات", LocaleES: "Bocadillos"},
	"Burgers":    {LocaleEN: "Burgers", LocaleFR: "Burgers", LocaleZH: "汉堡", LocaleAR: "البرغر", LocaleES: "Hamburguesas"},
	"Pastas":     {LocaleEN: "Pastas", LocaleFR: "Pâtes", LocaleZH: "意面", LocaleAR: "المعكرونة", LocaleES: "Pastas"},
	"Mains":      {LocaleEN: "Mains", LocaleFR: "Plats principaux", LocaleZH: "主菜", LocaleAR: "الأطباق الرئيسية", LocaleES: "Platos principales"},
	"Sides":      {LocaleEN: "Sides", LocaleFR: "Accompagnements", LocaleZH: "配菜", LocaleAR: "الأطباق الجانبية", LocaleES: "Guarniciones"},
	"Desserts":   {LocaleEN: "Desserts", LocaleFR: "Desserts", LocaleZH: "甜点", LocaleAR: "الحلويات", LocaleES: "Postres"},
	"Drinks":     {LocaleEN: "Drinks", LocaleFR: "Boissons", LocaleZH: "饮品", LocaleAR: "المشروبات", LocaleES: "Bebidas"},
	"Other":      {LocaleEN: "Other", LocaleFR: "Autre", LocaleZH: "其他", LocaleAR: "أخرى", LocaleES: "Otros"},
}

// CategoryLabel translates a well-known category name. User-entered
// categories have no translation and come back unchanged.
func CategoryLabel(category string, locale Locale) string {
	if byLocale, ok := categoryLabels[category]; ok {
		if label, ok := byLocale[locale]; ok {
			return label
		}
	}
	return category
}

var translations = map[Locale]map[string]string{
	LocaleEN: {
		"hero.title": "Restaurant Menu",
		"ui.backToMenu": "Back to menu",
		"ui.tapToReadMore": "Tap to read more",
		"ui.noMenuItems": "No menu items yet.",
		"ui.noImage": "No image",
	},
	LocaleFR: {
		"hero.title": "Menu du restaurant",
		"ui.backToMenu": "Retour au menu",
		"ui.tapToReadMore": "Appuyez pour en savoir plus",
		"ui.noMenuItems": "Aucun article au menu.",
		"ui.noImage": "Pas d'image",
	},
	LocaleZH: {
		"hero.title": "餐厅菜单",
		"ui.backToMenu": "返回菜单",
		"ui.tapToReadMore": "点击阅读更多",
		"ui.noMenuItems": "暂无菜单项目。",
		"ui.noImage": "无图片",
	},
	LocaleAR: {
		"hero.title": "قائمة المطعم",
		"ui.backToMenu": "العودة إلى القائمة",
		"ui.tapToReadMore": "اضغط لقراءة المزيد",
		"ui.noMenuItems": "لا توجد عناصر في القائمة بعد.",
		"ui.noImage": "لا توجد صورة",
	},
	LocaleES: {
		"hero.title": "Menú del restaurante",
		"ui.backToMenu": "Volver al menú",
		"ui.tapToReadMore": "Toca para leer más",
		"ui.noMenuItems": "Aún no hay platos en el menú.",
		"ui.noImage": "Sin imagen",
	},
}

// T looks up a UI string for the locale, falling back to the default locale
// and finally to the key itself.
func T(key string, locale Locale) string {
	if s, ok := translations[locale][key]; ok {
		return s
	}
	if s, ok := translations[DefaultLocale][key]; ok {
		return s
	}
	return key
}
