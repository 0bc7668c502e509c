package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elpepe-gamestop/storefront/internal/domain"
	"github.com/elpepe-gamestop/storefront/internal/domain/repository"
	"github.com/elpepe-gamestop/storefront/internal/infrastructure/backend"
)

// servidor levanta un backend falso que responde con el handler dado y
// devuelve el cliente apuntando a él.
func servidor(t *testing.T, handler http.HandlerFunc) *backend.Cliente {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.NewCliente(srv.URL+"/api", 5*time.Second)
}

// ─────────────────────────────────────────────────────────────────────────────
// Catálogo
// ─────────────────────────────────────────────────────────────────────────────

func TestListar_RutaYDecodificacion(t *testing.T) {
	cliente := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/productos", r.URL.Path)
		w.Write([]byte(`[
			{"id":1,"nombre":"PlayStation 5","categoria":"consolas","precio":"$499.990","imagen":"/img/ps5.jpg","stock":3},
			{"id":2,"name":"Razer Viper","category":"perifericos","price":39990,"imageUrl":"/img/viper.jpg","stock":10}
		]`))
	})

	productos, err := cliente.Listar(context.Background(), repository.FiltrosProducto{})
	require.NoError(t, err)
	require.Len(t, productos, 2)

	// Campos en español directos.
	assert.Equal(t, "PlayStation 5", productos[0].Nombre)
	assert.Equal(t, "consolas", productos[0].Categoria)
	assert.Equal(t, "499990", productos[0].Precio.Monto().String())

	// Campos en inglés normalizados a la forma canónica.
	assert.Equal(t, "Razer Viper", productos[1].Nombre)
	assert.Equal(t, "perifericos", productos[1].Categoria)
	assert.Equal(t, "/img/viper.jpg", productos[1].Imagen)
	assert.Equal(t, "39990", productos[1].Precio.Monto().String())
}

func TestListar_FiltrosEnQueryString(t *testing.T) {
	verdadero := true
	cliente := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "consolas", q.Get("categoria"))
		assert.Equal(t, "true", q.Get("destacado"))
		assert.Empty(t, q.Get("enOferta"), "los filtros nil no viajan")
		w.Write([]byte(`[]`))
	})

	_, err := cliente.Listar(context.Background(), repository.FiltrosProducto{
		Categoria: "consolas",
		Destacado: &verdadero,
	})
	require.NoError(t, err)
}

func TestBuscar_EscapaElTermino(t *testing.T) {
	cliente := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/productos/buscar", r.URL.Path)
		assert.Equal(t, "steam deck oled", r.URL.Query().Get("q"))
		w.Write([]byte(`[]`))
	})

	_, err := cliente.Buscar(context.Background(), "steam deck oled")
	require.NoError(t, err)
}

func TestPorID_NoEncontrado(t *testing.T) {
	cliente := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/productos/99", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Producto no encontrado"}`))
	})

	_, err := cliente.PorID(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	var remoto *domain.ErrorRemoto
	require.ErrorAs(t, err, &remoto)
	assert.Equal(t, "Producto no encontrado", remoto.Mensaje)
}

func TestPorCategoria_EscapaLaRuta(t *testing.T) {
	cliente := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/productos/categoria/consolas", r.URL.Path)
		w.Write([]byte(`[]`))
	})

	_, err := cliente.PorCategoria(context.Background(), "consolas")
	require.NoError(t, err)
}

// ─────────────────────────────────────────────────────────────────────────────
// Usuarios
// ─────────────────────────────────────────────────────────────────────────────

func TestSignup_GuardaLaRespuestaCompletaComoUsuario(t *testing.T) {
	cliente := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/usuarios/signup", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var datos repository.DatosSignup
		require.NoError(t, json.NewDecoder(r.Body).Decode(&datos))
		assert.Equal(t, "Roberto Jara", datos.Name)

		w.Write([]byte(`{"authToken":"tok-123","name":"Roberto Jara","email":"roberto@correo.cl"}`))
	})

	creds, err := cliente.Signup(context.Background(), repository.DatosSignup{
		Name:     "Roberto Jara",
		Email:    "roberto@correo.cl",
		Password: "secreta1",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-123", creds.AuthToken)
	// El usuario guardado es el JSON completo de la respuesta, token incluido.
	assert.JSONEq(t,
		`{"authToken":"tok-123","name":"Roberto Jara","email":"roberto@correo.cl"}`,
		string(creds.Usuario))
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	cliente := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/usuarios/login", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Credenciales inválidas"}`))
	})

	_, err := cliente.Login(context.Background(), "roberto@correo.cl", "mala")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestErrorSinCuerpoJSON(t *testing.T) {
	cliente := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	_, err := cliente.Destacados(context.Background())
	var remoto *domain.ErrorRemoto
	require.ErrorAs(t, err, &remoto)
	assert.Equal(t, http.StatusInternalServerError, remoto.Status)
	assert.Empty(t, remoto.Mensaje)
}

func TestContextoCancelado(t *testing.T) {
	cliente := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cliente.Ofertas(ctx)
	assert.Error(t, err)
}
