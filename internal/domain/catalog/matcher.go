// Package catalog decide la pertenencia de un producto a una subcategoría de
// página. El backend solo entrega la categoría gruesa (perifericos, consolas,
// juegos); la subcategoría se infiere del nombre del producto contra una tabla
// fija de palabras clave. La tabla es un dato intercambiable: si el backend
// algún día agrega un campo subcategoria explícito, basta reemplazar la tabla
// sin tocar a los callers.
package catalog

import (
	"strings"

	"github.com/elpepe-gamestop/storefront/internal/domain/entity"
)

// Categorías gruesas del backend.
const (
	TipoPerifericos = "perifericos"
	TipoConsolas    = "consolas"
	TipoJuegos      = "juegos"
)

// Tabla mapea tipo → subcategoría → substrings requeridos (case-insensitive,
// combinados con OR). Un producto puede coincidir con varias subcategorías a
// la vez; no hay exclusividad mutua.
type Tabla map[string]map[string][]string

// TablaPorDefecto es la tabla de palabras clave del sitio.
var TablaPorDefecto = Tabla{
	TipoPerifericos: {
		"teclados":  {"teclado", "keyboard"},
		"mouse":     {"mouse", "ratón"},
		"audifonos": {"audífono", "headset", "auricular"},
		"volantes":  {"volante", "wheel", "racing"},
		"controles": {"control", "gamepad", "joystick", "dualsense"},
	},
	TipoConsolas: {
		"playstation": {"playstation", "ps5", "ps4", "sony"},
		"nintendo":    {"nintendo", "switch"},
		"xbox":        {"xbox", "microsoft"},
		"portable":    {"portable", "steam deck", "handheld", "switch lite"},
	},
	TipoJuegos: {
		"ps5":    {"ps5", "playstation 5"},
		"ps4":    {"ps4", "playstation 4"},
		"switch": {"switch", "nintendo"},
		"xbox":   {"xbox"},
	},
}

// Coincide decide si un producto pertenece a la página (tipo, subcategoria).
// Reglas:
//  1. Producto sin nombre o sin categoría nunca coincide.
//  2. La categoría gruesa debe igualar el tipo pedido (case-insensitive).
//  3. El nombre en minúsculas debe contener alguna palabra clave de la
//     subcategoría (OR).
//  4. Subcategoría desconocida incluye todo. Ojo: este fallback permisivo es
//     comportamiento observable de las páginas (una subcategoría mal tipeada
//     muestra la categoría completa) y se conserva a propósito, aunque huele
//     a bug.
func (t Tabla) Coincide(p entity.Producto, tipo, subcategoria string) bool {
	if p.Nombre == "" || p.Categoria == "" {
		return false
	}
	if !strings.EqualFold(p.Categoria, tipo) {
		return false
	}
	claves, ok := t[strings.ToLower(tipo)][strings.ToLower(subcategoria)]
	if !ok {
		return true
	}
	nombre := strings.ToLower(p.Nombre)
	for _, clave := range claves {
		if strings.Contains(nombre, clave) {
			return true
		}
	}
	return false
}

// Filtrar devuelve los productos que pertenecen a (tipo, subcategoria),
// preservando el orden de entrada.
func (t Tabla) Filtrar(productos []entity.Producto, tipo, subcategoria string) []entity.Producto {
	resultado := make([]entity.Producto, 0, len(productos))
	for _, p := range productos {
		if t.Coincide(p, tipo, subcategoria) {
			resultado = append(resultado, p)
		}
	}
	return resultado
}

// Subcategorias devuelve las subcategorías conocidas de un tipo (para armar
// navegación y validar rutas).
func (t Tabla) Subcategorias(tipo string) []string {
	subs := make([]string, 0, len(t[tipo]))
	for s := range t[strings.ToLower(tipo)] {
		subs = append(subs, s)
	}
	return subs
}
