package entity

import (
	"golang.org/x/text/cases"
)

// Category representa una de las categorías fijas de producto.
type Category string

const (
	CategoryFood      Category = "Alimentos"
	CategoryCleaning  Category = "Productos de limpieza"
	CategoryBeverages Category = "Bebidas y lácteos"
	CategoryOther     Category = "Otros"
)

// Categories lista las categorías en el orden en que se ofrecen al usuario.
var Categories = []Category{CategoryFood, CategoryCleaning, CategoryBeverages, CategoryOther}

// Etiquetas escritas por versiones anteriores del formulario de alta.
var legacyCategories = map[string]Category{
	"limpieza": CategoryCleaning,
}

// Fold aplica plegado de mayúsculas Unicode ("Lácteos" == "LÁCTEOS").
// Un Caser guarda estado, por eso se crea uno por llamada.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// ParseCategory resuelve una etiqueta sin distinguir mayúsculas. ok=false si no es una categoría conocida.
func ParseCategory(label string) (Category, bool) {
	f := Fold(label)
	for _, c := range Categories {
		if Fold(string(c)) == f {
			return c, true
		}
	}
	c, ok := legacyCategories[f]
	return c, ok
}

// CategoryLabels devuelve las etiquetas como strings (para menús).
func CategoryLabels() []string {
	out := make([]string, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, string(c))
	}
	return out
}
