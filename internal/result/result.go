// Package result implementa el contenedor exito/fallo que atraviesa toda la
// capa de acceso a datos. Reemplaza el control de flujo por excepciones: cada
// operacion de repositorio devuelve un Result y el handler lo traduce a HTTP.
package result

import "fmt"

// Result guarda exactamente uno de: un valor de exito o un mensaje de error.
// Leer el lado equivocado es un error de programacion y provoca panic.
type Result[T any] struct {
	ok    bool
	value T
	err   string
}

// Success construye un resultado exitoso con el valor dado.
func Success[T any](value T) Result[T] {
	return Result[T]{ok: true, value: value}
}

// Fail construye un resultado fallido con el mensaje dado.
func Fail[T any](err string) Result[T] {
	return Result[T]{ok: false, err: err}
}

// Failf es Fail con formato estilo fmt.Sprintf.
func Failf[T any](format string, args ...any) Result[T] {
	return Fail[T](fmt.Sprintf(format, args...))
}

// IsSuccess informa si el resultado es exitoso.
func (r Result[T]) IsSuccess() bool { return r.ok }

// IsFailure informa si el resultado es fallido.
func (r Result[T]) IsFailure() bool { return !r.ok }

// Value devuelve el valor de un resultado exitoso.
// Panic si el resultado es fallido.
func (r Result[T]) Value() T {
	if !r.ok {
		panic("result: Value() sobre un resultado fallido")
	}
	return r.value
}

// Err devuelve el mensaje de un resultado fallido.
// Panic si el resultado es exitoso.
func (r Result[T]) Err() string {
	if r.ok {
		panic("result: Err() sobre un resultado exitoso")
	}
	return r.err
}
