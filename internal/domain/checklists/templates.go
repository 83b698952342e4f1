package checklists

type template struct {
	category    Category
	description string
}

var catalog = []template{
	{CategoryPrePour, "Verificar limpieza y preparación del área de vaciado"},
	{CategoryPrePour, "Confirmar disponibilidad de mezcla especificada"},
	{CategoryPrePour, "Verificar equipo de bombeo y mangueras"},
	{CategoryPrePour, "Confirmar acceso para camiones mixer"},

	{CategorySafety, "Verificar EPP del personal (casco, chaleco, botas)"},
	{CategorySafety, "Delimitación y señalización del área de trabajo"},
	{CategorySafety, "Verificar extintores y kit de primeros auxilios"},

	{CategoryQuality, "Toma de muestra para cilindros de prueba"},
	{CategoryQuality, "Verificar temperatura del concreto"},
	{CategoryQuality, "Control de asentamiento (slump test)"},

	{CategoryPostPour, "Limpieza final del área"},
	{CategoryPostPour, "Curado inicial aplicado"},
	{CategoryPostPour, "Documentación y reportes completados"},
}

// buildItems walks the catalog in order and numbers the selected items from 1.
func buildItems(categories []Category) []Item {
	want := make(map[Category]bool, len(categories))
	for _, c := range categories {
		want[c] = true
	}
	items := []Item{}
	for _, t := range catalog {
		if want[t.category] {
			items = append(items, Item{ID: len(items) + 1, Category: t.category, Description: t.description})
		}
	}
	return items
}
