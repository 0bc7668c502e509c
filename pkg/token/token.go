// Package token inspecciona el authToken que emite el backend. El storefront
// no valida tokens (son opacos: se guardan y se reenvían); lo único que lee,
// sin verificar la firma, es el claim exp para poder barrer sesiones muertas.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expiracion extrae el exp del token sin validar la firma. ok=false si el
// token no es un JWT o no trae exp; en ese caso la sesión no expira por token.
func Expiracion(tokenString string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expirado indica si el token trae un exp ya vencido. Un token sin exp (u
// opaco no-JWT) nunca se considera expirado.
func Expirado(tokenString string, ahora time.Time) bool {
	exp, ok := Expiracion(tokenString)
	return ok && exp.Before(ahora)
}
