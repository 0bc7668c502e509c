// Package memory implementa el estado por sesión en memoria: el análogo del
// local storage del navegador. Cada sesión tiene su carrito y sus claves
// authToken/user; nada se persiste ni se comparte entre sesiones.
package memory

import (
	"sync"
	"time"

	"github.com/elpepe-gamestop/storefront/internal/domain/cart"
	"github.com/elpepe-gamestop/storefront/internal/domain/entity"
	"github.com/elpepe-gamestop/storefront/internal/domain/repository"
	"github.com/elpepe-gamestop/storefront/pkg/token"
)

var _ repository.Sesiones = (*SesionStore)(nil)

type sesion struct {
	carrito      *cart.Store
	creds        entity.Credenciales
	ultimoAcceso time.Time
}

// SesionStore guarda el estado de todas las sesiones activas, con clave el
// session id de la cookie. TTL de inactividad configurable; además una sesión
// cuyo authToken trae exp vencido pierde sus credenciales (el token es opaco,
// solo se lee exp sin verificar).
type SesionStore struct {
	mu       sync.RWMutex
	sesiones map[string]*sesion
	ttl      time.Duration
	ahora    func() time.Time
}

// NewSesionStore construye el store. ttl <= 0 desactiva la expiración por
// inactividad.
func NewSesionStore(ttl time.Duration) *SesionStore {
	return &SesionStore{
		sesiones: make(map[string]*sesion),
		ttl:      ttl,
		ahora:    time.Now,
	}
}

// Carrito devuelve el carrito de la sesión, creando la sesión si no existe.
func (s *SesionStore) Carrito(sessionID string) *cart.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.obtener(sessionID).carrito
}

// GuardarCredenciales guarda authToken y usuario serializado en la sesión.
func (s *SesionStore) GuardarCredenciales(sessionID string, c entity.Credenciales) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.obtener(sessionID).creds = c
}

// Credenciales devuelve lo guardado. Si el token ya expiró se borran las
// credenciales y se responde como si no hubiera sesión iniciada.
func (s *SesionStore) Credenciales(sessionID string) (entity.Credenciales, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ses, ok := s.sesiones[sessionID]
	if !ok || ses.creds.Vacias() {
		return entity.Credenciales{}, false
	}
	if token.Expirado(ses.creds.AuthToken, s.ahora()) {
		ses.creds = entity.Credenciales{}
		return entity.Credenciales{}, false
	}
	ses.ultimoAcceso = s.ahora()
	return ses.creds, true
}

// CerrarSesion borra authToken y user. El carrito queda intacto.
func (s *SesionStore) CerrarSesion(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ses, ok := s.sesiones[sessionID]; ok {
		ses.creds = entity.Credenciales{}
	}
}

// Barrer elimina sesiones inactivas más allá del TTL. Pensado para llamarse
// periódicamente desde una goroutine en main.
func (s *SesionStore) Barrer() int {
	if s.ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	limite := s.ahora().Add(-s.ttl)
	barridas := 0
	for id, ses := range s.sesiones {
		if ses.ultimoAcceso.Before(limite) {
			delete(s.sesiones, id)
			barridas++
		}
	}
	return barridas
}

// Activas devuelve el número de sesiones vivas (para logging/health).
func (s *SesionStore) Activas() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sesiones)
}

// obtener busca o crea la sesión; requiere mu tomado.
func (s *SesionStore) obtener(sessionID string) *sesion {
	ses, ok := s.sesiones[sessionID]
	if !ok {
		ses = &sesion{carrito: cart.New()}
		s.sesiones[sessionID] = ses
	}
	ses.ultimoAcceso = s.ahora()
	return ses
}
