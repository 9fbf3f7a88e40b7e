package store

import (
	"github.com/google/uuid"

	"github.com/dcastellanos/inventario-backend/internal/validation"
)

// Store es la raiz del particionado por tienda: toda categoria, producto y
// usuario pertenece a exactamente una tienda.
type Store struct {
	ID          uuid.UUID `json:"id"`
	Nombre      string    `json:"nombre"`
	Direccion   string    `json:"direccion"`
	Telefono    string    `json:"telefono"`
	Propietario string    `json:"propietario"`
}

// EmployeeCount es una fila del contador de empleados por tienda.
type EmployeeCount struct {
	ID        uuid.UUID `json:"id"`
	Nombre    string    `json:"nombre"`
	Empleados int       `json:"# empleados"`
}

// EmployeeCountPage agrega el total de registros a la pagina pedida.
type EmployeeCountPage struct {
	Tiendas []EmployeeCount `json:"tiendas"`
	Total   int             `json:"total"`
}

// CreateRequest es el cuerpo de creacion de una tienda.
type CreateRequest struct {
	Nombre      string `json:"nombre"`
	Direccion   string `json:"direccion"`
	Telefono    string `json:"telefono"`
	Propietario string `json:"propietario"`
}

func (r CreateRequest) Validate() validation.Errors {
	var errs validation.Errors
	errs.Require("nombre", r.Nombre)
	errs.Require("direccion", r.Direccion)
	errs.Require("telefono", r.Telefono)
	errs.Require("propietario", r.Propietario)
	return errs
}

// UpdateRequest es el parche parcial de una tienda: solo los campos presentes
// y no vacios se aplican.
type UpdateRequest struct {
	Nombre      *string `json:"nombre,omitempty"`
	Direccion   *string `json:"direccion,omitempty"`
	Telefono    *string `json:"telefono,omitempty"`
	Propietario *string `json:"propietario,omitempty"`
}

// filtered descarta campos ausentes o con cadena vacia, igual que el parche
// de usuarios.
func (r UpdateRequest) filtered() UpdateRequest {
	out := UpdateRequest{}
	if r.Nombre != nil && *r.Nombre != "" {
		out.Nombre = r.Nombre
	}
	if r.Direccion != nil && *r.Direccion != "" {
		out.Direccion = r.Direccion
	}
	if r.Telefono != nil && *r.Telefono != "" {
		out.Telefono = r.Telefono
	}
	if r.Propietario != nil && *r.Propietario != "" {
		out.Propietario = r.Propietario
	}
	return out
}

func (r UpdateRequest) empty() bool {
	return r.Nombre == nil && r.Direccion == nil && r.Telefono == nil && r.Propietario == nil
}

// Created es la respuesta de una creacion exitosa.
type Created struct {
	ID uuid.UUID `json:"id"`
}
