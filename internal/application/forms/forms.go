// Package forms valida los formularios del storefront (registro, login,
// contacto). Las fallas se acumulan como mensajes por campo y nunca se
// lanzan: el mapa resultante es parte del contrato observable de la vista.
package forms

import (
	"regexp"
	"strings"

	"github.com/elpepe-gamestop/storefront/internal/application/dto"
)

// emailRe es el patrón laxo del formulario: algo@algo.algo.
var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// LargoMinimoPassword mínimo de caracteres de la contraseña de registro.
const LargoMinimoPassword = 6

// ErroresCampo mensajes de validación por campo. Implementa error para viajar
// por las firmas habituales sin perder la estructura.
type ErroresCampo map[string]string

func (e ErroresCampo) Error() string {
	return "el formulario tiene errores de validación"
}

// ValidarRegistro aplica las reglas del formulario de registro. Devuelve nil
// si todo está bien.
func ValidarRegistro(in dto.SignupRequest) ErroresCampo {
	errs := ErroresCampo{}
	if strings.TrimSpace(in.Nombre) == "" {
		errs["nombre"] = "El nombre es requerido"
	}
	if strings.TrimSpace(in.Apellido) == "" {
		errs["apellido"] = "El apellido es requerido"
	}
	validarEmail(errs, in.Email)
	if in.Password == "" {
		errs["password"] = "La contraseña es requerida"
	} else if len(in.Password) < LargoMinimoPassword {
		errs["password"] = "La contraseña debe tener al menos 6 caracteres"
	}
	if in.ConfirmPassword == "" {
		errs["confirmPassword"] = "Confirma tu contraseña"
	} else if in.Password != in.ConfirmPassword {
		errs["confirmPassword"] = "Las contraseñas no coinciden"
	}
	if strings.TrimSpace(in.Telefono) == "" {
		errs["telefono"] = "El teléfono es requerido"
	}
	// direccion es opcional
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidarLogin exige email y password presentes y un email bien formado.
func ValidarLogin(in dto.LoginRequest) ErroresCampo {
	errs := ErroresCampo{}
	validarEmail(errs, in.Email)
	if in.Password == "" {
		errs["password"] = "La contraseña es requerida"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidarContacto exige nombre, email y mensaje.
func ValidarContacto(in dto.ContactoRequest) ErroresCampo {
	errs := ErroresCampo{}
	if strings.TrimSpace(in.Nombre) == "" {
		errs["nombre"] = "El nombre es requerido"
	}
	validarEmail(errs, in.Email)
	if strings.TrimSpace(in.Mensaje) == "" {
		errs["mensaje"] = "El mensaje es requerido"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validarEmail(errs ErroresCampo, email string) {
	switch {
	case strings.TrimSpace(email) == "":
		errs["email"] = "El email es requerido"
	case !emailRe.MatchString(email):
		errs["email"] = "El email no es válido"
	}
}
