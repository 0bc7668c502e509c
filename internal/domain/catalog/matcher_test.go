package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elpepe-gamestop/storefront/internal/domain/catalog"
	"github.com/elpepe-gamestop/storefront/internal/domain/entity"
)

func producto(categoria, nombre string) entity.Producto {
	return entity.Producto{ID: 1, Nombre: nombre, Categoria: categoria, Stock: 5}
}

// ──────────────────────────────────────────────────────────────────────────────
// Coincidencias positivas y negativas de la tabla
// ──────────────────────────────────────────────────────────────────────────────

func TestCoincide_TablaDeSubcategorias(t *testing.T) {
	tabla := catalog.TablaPorDefecto
	casos := []struct {
		nombre       string
		p            entity.Producto
		tipo         string
		subcategoria string
		esperado     bool
	}{
		{
			"switch coincide con nintendo",
			producto("consolas", "Nintendo Switch 2 OLED"),
			"consolas", "nintendo", true,
		},
		{
			"switch no coincide con playstation",
			producto("consolas", "Nintendo Switch 2 OLED"),
			"consolas", "playstation", false,
		},
		{
			"switch no coincide con xbox",
			producto("consolas", "Nintendo Switch 2 OLED"),
			"consolas", "xbox", false,
		},
		{
			"mouse coincide con mouse",
			producto("perifericos", "Logitech G Pro Wireless Mouse"),
			"perifericos", "mouse", true,
		},
		{
			"mouse no coincide con teclados",
			producto("perifericos", "Logitech G Pro Wireless Mouse"),
			"perifericos", "teclados", false,
		},
		{
			"keyword en ingles tambien matchea",
			producto("perifericos", "Corsair K70 Keyboard"),
			"perifericos", "teclados", true,
		},
		{
			"steam deck cae en portable",
			producto("consolas", "Steam Deck 512GB"),
			"consolas", "portable", true,
		},
		{
			"dualsense cae en controles",
			producto("perifericos", "Control Inalámbrico DualSense"),
			"perifericos", "controles", true,
		},
		{
			"playstation 5 escrito entero cae en juegos ps5",
			producto("juegos", "Gran Turismo 7 PlayStation 5"),
			"juegos", "ps5", true,
		},
		{
			"categoria es case-insensitive",
			producto("Consolas", "Xbox Series X"),
			"consolas", "xbox", true,
		},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, tabla.Coincide(c.p, c.tipo, c.subcategoria))
		})
	}
}

// Un producto puede aparecer en varias subcategorías a la vez: no hay
// exclusividad mutua entre páginas.
func TestCoincide_SinExclusividadMutua(t *testing.T) {
	tabla := catalog.TablaPorDefecto
	p := producto("consolas", "Nintendo Switch Lite")

	assert.True(t, tabla.Coincide(p, "consolas", "nintendo"))
	assert.True(t, tabla.Coincide(p, "consolas", "portable"), "switch lite es palabra clave de portable")
}

// ──────────────────────────────────────────────────────────────────────────────
// Rechazos incondicionales
// ──────────────────────────────────────────────────────────────────────────────

// La categoría gruesa manda: un juego jamás aparece bajo consolas, coincida o
// no su nombre con las palabras clave.
func TestCoincide_TipoDistintoExcluyeSiempre(t *testing.T) {
	tabla := catalog.TablaPorDefecto
	juego := producto("juegos", "God of War PS5")

	for _, sub := range []string{"playstation", "nintendo", "xbox", "portable"} {
		assert.False(t, tabla.Coincide(juego, "consolas", sub),
			"un producto de juegos no debe aparecer en consolas/%s", sub)
	}
}

func TestCoincide_SinNombreOSinCategoriaNuncaCoincide(t *testing.T) {
	tabla := catalog.TablaPorDefecto

	assert.False(t, tabla.Coincide(producto("consolas", ""), "consolas", "nintendo"))
	assert.False(t, tabla.Coincide(producto("", "Nintendo Switch"), "consolas", "nintendo"))
	// Ni siquiera con el fallback permisivo de subcategoría desconocida.
	assert.False(t, tabla.Coincide(producto("consolas", ""), "consolas", "subcategoria-x"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallback permisivo
// ──────────────────────────────────────────────────────────────────────────────

// Subcategoría desconocida incluye todo lo del tipo: una URL mal tipeada
// muestra la categoría completa. Conservado a propósito.
func TestCoincide_SubcategoriaDesconocidaIncluyeTodo(t *testing.T) {
	tabla := catalog.TablaPorDefecto
	p := producto("consolas", "Atari 2600+")

	assert.True(t, tabla.Coincide(p, "consolas", "retro"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtrar
// ──────────────────────────────────────────────────────────────────────────────

func TestFiltrar_PreservaOrdenYDescartaOtrosTipos(t *testing.T) {
	tabla := catalog.TablaPorDefecto
	productos := []entity.Producto{
		producto("consolas", "PlayStation 5 Slim"),
		producto("juegos", "EA FC 25 PS5"),        // tipo distinto: fuera
		producto("consolas", "PS4 Pro 1TB"),
		producto("consolas", "Xbox Series S"),     // no es playstation: fuera
		producto("consolas", "Sony PlayStation Portal"),
	}

	resultado := tabla.Filtrar(productos, "consolas", "playstation")

	assert.Len(t, resultado, 3)
	assert.Equal(t, "PlayStation 5 Slim", resultado[0].Nombre)
	assert.Equal(t, "PS4 Pro 1TB", resultado[1].Nombre)
	assert.Equal(t, "Sony PlayStation Portal", resultado[2].Nombre)
}
