// Package cart implementa el contenedor de estado del carrito de compras.
// Es el único componente con invariantes reales del storefront:
//   - a lo más una línea por ID de producto (agregar de nuevo suma cantidad)
//   - orden de inserción preservado para despliegue
//   - toda operación es síncrona y total: IDs ausentes son no-ops, nunca error
//   - el precio se normaliza una sola vez, en la frontera de ingreso (Agregar)
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/elpepe-gamestop/storefront/internal/domain/entity"
	"github.com/elpepe-gamestop/storefront/internal/domain/pricing"
)

// Entrada es la forma cruda que acepta Agregar. Según el origen de datos el
// producto llega con nombres de campo en español o en inglés; la ambigüedad
// se resuelve aquí y no se filtra más allá de esta frontera.
type Entrada struct {
	ID        int64          `json:"id"`
	Nombre    string         `json:"nombre"`
	Name      string         `json:"name"`
	Precio    pricing.Precio `json:"precio"`
	Price     pricing.Precio `json:"price"`
	Imagen    string         `json:"imagen"`
	ImageURL  string         `json:"imageUrl"`
	Categoria string         `json:"categoria"`
	Category  string         `json:"category"`
}

// normalizar colapsa las dos formas de campo en la forma canónica de línea.
// El campo en español tiene precedencia cuando ambos vienen.
func (e Entrada) normalizar() *entity.LineaCarrito {
	linea := &entity.LineaCarrito{
		ID:        e.ID,
		Nombre:    e.Nombre,
		Precio:    e.Precio,
		Imagen:    e.Imagen,
		Categoria: e.Categoria,
		Cantidad:  1,
	}
	if linea.Nombre == "" {
		linea.Nombre = e.Name
	}
	if linea.Precio.EsVacio() {
		linea.Precio = e.Price
	}
	if linea.Imagen == "" {
		linea.Imagen = e.ImageURL
	}
	if linea.Categoria == "" {
		linea.Categoria = e.Category
	}
	return linea
}

// Store mantiene las líneas del carrito y la bandera de visibilidad del panel.
// Estado confinado a una sesión; no se persiste entre sesiones. Cada request
// corre en su propia goroutine, así que el mutex serializa las mutaciones.
// Toda mutación pasa por los métodos nombrados: disciplina de escritor único.
type Store struct {
	mu      sync.Mutex
	lineas  []*entity.LineaCarrito
	visible bool
}

// New crea un carrito vacío con el panel cerrado.
func New() *Store {
	return &Store{}
}

// Agregar suma el producto al carrito. Si ya existe una línea con el mismo ID
// incrementa su cantidad en 1 (sin tope); si no, crea la línea normalizada con
// cantidad 1 y la anexa al final.
func (s *Store) Agregar(e Entrada) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.lineas {
		if l.ID == e.ID {
			l.Cantidad++
			return
		}
	}
	s.lineas = append(s.lineas, e.normalizar())
}

// Quitar elimina la línea con ese ID. No-op si no existe.
func (s *Store) Quitar(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quitar(id)
}

func (s *Store) quitar(id int64) {
	for i, l := range s.lineas {
		if l.ID == id {
			s.lineas = append(s.lineas[:i], s.lineas[i+1:]...)
			return
		}
	}
}

// FijarCantidad fija la cantidad de la línea. Cantidad <= 0 equivale a Quitar.
// No valida contra stock ni impone tope superior.
func (s *Store) FijarCantidad(id int64, cantidad int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cantidad <= 0 {
		s.quitar(id)
		return
	}
	for _, l := range s.lineas {
		if l.ID == id {
			l.Cantidad = cantidad
			return
		}
	}
}

// Vaciar elimina todas las líneas.
func (s *Store) Vaciar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lineas = nil
}

// Total suma precio numérico × cantidad sobre todas las líneas. Usa siempre
// la extracción numérica del normalizador, nunca el string de despliegue.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, l := range s.lineas {
		total = total.Add(l.Precio.Monto().Mul(decimal.NewFromInt(int64(l.Cantidad))))
	}
	return total
}

// ConteoItems suma las cantidades de todas las líneas (para el badge del
// carrito; no es el número de líneas distintas).
func (s *Store) ConteoItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	conteo := 0
	for _, l := range s.lineas {
		conteo += l.Cantidad
	}
	return conteo
}

// Lineas devuelve una copia de las líneas en orden de inserción.
func (s *Store) Lineas() []entity.LineaCarrito {
	s.mu.Lock()
	defer s.mu.Unlock()
	lineas := make([]entity.LineaCarrito, len(s.lineas))
	for i, l := range s.lineas {
		lineas[i] = *l
	}
	return lineas
}

// Visible devuelve el estado del panel del carrito.
func (s *Store) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// AlternarVisibilidad invierte la bandera del panel. Estado puramente de
// presentación, sin otros efectos.
func (s *Store) AlternarVisibilidad() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = !s.visible
	return s.visible
}

// FijarVisibilidad fija la bandera del panel explícitamente.
func (s *Store) FijarVisibilidad(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = v
}
