package memory

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elpepe-gamestop/storefront/internal/domain/cart"
	"github.com/elpepe-gamestop/storefront/internal/domain/entity"
	"github.com/elpepe-gamestop/storefront/internal/domain/pricing"
)

// tokenConExp firma un token HS256 con el exp dado. La firma no importa:
// el store solo lee el claim sin verificar.
func tokenConExp(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	firmado, err := tok.SignedString([]byte("clave-de-prueba"))
	require.NoError(t, err)
	return firmado
}

func TestCarrito_SeCreaPerezosamenteYEsEstable(t *testing.T) {
	s := NewSesionStore(time.Hour)

	carrito := s.Carrito("ses-1")
	require.NotNil(t, carrito)
	carrito.Agregar(cart.Entrada{ID: 1, Nombre: "PS5", Precio: pricing.DesdeTexto("$499.990")})

	// La misma sesión siempre ve el mismo carrito.
	assert.Equal(t, 1, s.Carrito("ses-1").ConteoItems())
	// Otra sesión parte de cero.
	assert.Equal(t, 0, s.Carrito("ses-2").ConteoItems())
	assert.Equal(t, 2, s.Activas())
}

func TestCredenciales_IdaYVuelta(t *testing.T) {
	s := NewSesionStore(time.Hour)

	_, ok := s.Credenciales("ses-1")
	assert.False(t, ok)

	creds := entity.Credenciales{AuthToken: "token-opaco", Usuario: []byte(`{"name":"Ana"}`)}
	s.GuardarCredenciales("ses-1", creds)

	got, ok := s.Credenciales("ses-1")
	require.True(t, ok)
	assert.Equal(t, creds, got)
}

// Un token que no es JWT se trata como opaco y nunca expira por sí solo.
func TestCredenciales_TokenOpacoNoExpira(t *testing.T) {
	s := NewSesionStore(time.Hour)
	s.GuardarCredenciales("ses-1", entity.Credenciales{AuthToken: "no-soy-un-jwt"})

	_, ok := s.Credenciales("ses-1")
	assert.True(t, ok)
}

func TestCredenciales_ExpVencidoBorraLasCredenciales(t *testing.T) {
	s := NewSesionStore(time.Hour)
	s.GuardarCredenciales("ses-1", entity.Credenciales{
		AuthToken: tokenConExp(t, time.Now().Add(-time.Minute)),
	})

	_, ok := s.Credenciales("ses-1")
	assert.False(t, ok)

	// Las credenciales quedaron borradas, no solo ocultas: guardar un token
	// fresco vuelve a abrir la sesión.
	s.GuardarCredenciales("ses-1", entity.Credenciales{
		AuthToken: tokenConExp(t, time.Now().Add(time.Hour)),
	})
	_, ok = s.Credenciales("ses-1")
	assert.True(t, ok)
}

func TestCerrarSesion_ConservaElCarrito(t *testing.T) {
	s := NewSesionStore(time.Hour)
	s.Carrito("ses-1").Agregar(cart.Entrada{ID: 1, Nombre: "PS5", Precio: pricing.DesdeTexto("$499.990")})
	s.GuardarCredenciales("ses-1", entity.Credenciales{AuthToken: "token-opaco"})

	s.CerrarSesion("ses-1")
	s.CerrarSesion("ses-desconocida") // no-op

	_, ok := s.Credenciales("ses-1")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Carrito("ses-1").ConteoItems())
}

func TestBarrer_EliminaSesionesInactivas(t *testing.T) {
	s := NewSesionStore(30 * time.Minute)
	reloj := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s.ahora = func() time.Time { return reloj }

	s.Carrito("vieja")
	reloj = reloj.Add(45 * time.Minute)
	s.Carrito("fresca")

	assert.Equal(t, 1, s.Barrer())
	assert.Equal(t, 1, s.Activas())

	// La sesión barrida renace vacía si vuelve.
	assert.Equal(t, 0, s.Carrito("vieja").ConteoItems())
}

func TestBarrer_SinTTLNoBarreNada(t *testing.T) {
	s := NewSesionStore(0)
	s.Carrito("ses-1")
	assert.Equal(t, 0, s.Barrer())
	assert.Equal(t, 1, s.Activas())
}
