// Package httpx concentra la disciplina de respuesta del servicio: exito es
// 200 con el valor, todo fallo colapsa a 400 con { "Respuesta": ... }.
package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/dcastellanos/inventario-backend/internal/validation"
)

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// OK escribe 200 con el valor tal cual.
func OK(w http.ResponseWriter, body interface{}) {
	respond(w, http.StatusOK, body)
}

// Respuesta escribe 200 con { "Respuesta": mensaje }.
func Respuesta(w http.ResponseWriter, mensaje string) {
	respond(w, http.StatusOK, map[string]string{"Respuesta": mensaje})
}

// Fail escribe 400 con { "Respuesta": mensaje }.
func Fail(w http.ResponseWriter, mensaje string) {
	respond(w, http.StatusBadRequest, map[string]string{"Respuesta": mensaje})
}

// FailValidation escribe 400 con el detalle por campo.
func FailValidation(w http.ResponseWriter, errs validation.Errors) {
	respond(w, http.StatusBadRequest, map[string]interface{}{
		"Respuesta": "Datos inválidos",
		"errors":    errs,
	})
}

// Unauthorized escribe 401 con { "Respuesta": mensaje }.
func Unauthorized(w http.ResponseWriter, mensaje string) {
	respond(w, http.StatusUnauthorized, map[string]string{"Respuesta": mensaje})
}
