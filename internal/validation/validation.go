// Package validation reune los chequeos estructurales que cada entidad aplica
// antes de persistir: campos obligatorios, formato de identificadores y
// valores enumerados. Los errores se acumulan por campo y nunca escapan del
// handler como panic.
package validation

import "github.com/google/uuid"

// FieldError describe un problema puntual de un campo del cuerpo recibido.
type FieldError struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// Errors acumula errores de campo durante la validacion de una entidad.
type Errors []FieldError

// OK informa si la validacion paso sin errores.
func (e Errors) OK() bool { return len(e) == 0 }

func (e *Errors) add(campo, mensaje string) {
	*e = append(*e, FieldError{Campo: campo, Mensaje: mensaje})
}

// Require exige una cadena no vacia.
func (e *Errors) Require(campo, valor string) {
	if valor == "" {
		e.add(campo, "es obligatorio")
	}
}

// RequireUUID exige un identificador con formato UUID valido.
func (e *Errors) RequireUUID(campo, valor string) {
	if !IsUUID(valor) {
		e.add(campo, "no es un UUID válido")
	}
}

// RequireOneOf exige que el valor pertenezca al conjunto permitido.
func (e *Errors) RequireOneOf(campo, valor string, permitidos ...string) {
	for _, p := range permitidos {
		if valor == p {
			return
		}
	}
	e.add(campo, "no es un valor permitido")
}

// RequireNonNegative exige una cantidad mayor o igual a cero.
func (e *Errors) RequireNonNegative(campo string, valor int) {
	if valor < 0 {
		e.add(campo, "no puede ser negativo")
	}
}

// IsUUID informa si s es un UUID bien formado. Los parametros de ruta
// malformados cortan con 400 antes de tocar el repositorio.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
