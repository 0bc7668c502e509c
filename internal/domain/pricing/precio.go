// Package pricing normaliza las representaciones heterogéneas de precio que
// entrega el backend: strings preformateados ("$559.990", pesos chilenos con
// separador de miles) o números crudos (559990). Expone el monto canónico
// como decimal y el string de despliegue con formato es-CL.
package pricing

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// impresora formatea números con separadores de miles del locale es-CL (punto).
var impresora = message.NewPrinter(language.MustParse("es-CL"))

// Precio conserva la representación original (número o texto) y deriva de ella
// el monto numérico canónico. El texto preformateado se respeta tal cual para
// despliegue; la extracción numérica siempre pasa por MontoDesdeTexto.
type Precio struct {
	texto   string
	monto   decimal.Decimal
	esTexto bool
}

// Desde construye un Precio a partir de un monto numérico.
func Desde(monto decimal.Decimal) Precio {
	return Precio{monto: monto}
}

// DesdeTexto construye un Precio a partir de un string (preformateado o no).
func DesdeTexto(s string) Precio {
	return Precio{texto: s, monto: MontoDesdeTexto(s), esTexto: true}
}

// UnmarshalJSON acepta número o string. Cualquier otra cosa (null, objeto)
// queda en cero: cero significa "no parseable", nunca un precio gratis real.
func (p *Precio) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*p = Precio{}
		return nil
	}
	if s[0] == '"' {
		var texto string
		if err := json.Unmarshal(data, &texto); err != nil {
			*p = Precio{}
			return nil
		}
		*p = DesdeTexto(texto)
		return nil
	}
	var n decimal.Decimal
	if err := json.Unmarshal(data, &n); err != nil {
		*p = Precio{}
		return nil
	}
	*p = Desde(n)
	return nil
}

// MarshalJSON re-emite la forma original: texto si llegó como texto, número si
// no (sin comillas, independiente del modo de marshal de decimal).
func (p Precio) MarshalJSON() ([]byte, error) {
	if p.esTexto {
		return json.Marshal(p.texto)
	}
	return []byte(p.monto.String()), nil
}

// Monto devuelve el valor numérico canónico. Cero si el input era malformado.
func (p Precio) Monto() decimal.Decimal {
	return p.monto
}

// Mostrar devuelve el string de despliegue. Un texto que ya trae el signo "$"
// se considera preformateado y se devuelve sin tocar.
func (p Precio) Mostrar() string {
	if p.esTexto {
		if strings.HasPrefix(p.texto, "$") {
			return p.texto
		}
		return FormatearMonto(p.monto)
	}
	return FormatearMonto(p.monto)
}

// EsCero indica si el monto es cero (precio no parseable o ausente).
func (p Precio) EsCero() bool {
	return p.monto.IsZero()
}

// EsVacio indica si el precio nunca fue poblado (ni texto ni monto).
func (p Precio) EsVacio() bool {
	return !p.esTexto && p.monto.IsZero()
}

// MontoDesdeTexto extrae el monto numérico de un string de precio: descarta el
// signo "$" y todo separador no numérico, y parsea el resto como entero.
// Falla en silencio devolviendo cero; el caller trata cero como "no parseable".
func MontoDesdeTexto(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatearMonto renderiza un monto como string de despliegue: signo "$" más
// el entero con separadores de miles es-CL ($1.234.567).
func FormatearMonto(d decimal.Decimal) string {
	return "$" + impresora.Sprintf("%v", number.Decimal(d.IntPart()))
}
