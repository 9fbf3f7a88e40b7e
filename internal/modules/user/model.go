package user

import (
	"github.com/google/uuid"

	"github.com/dcastellanos/inventario-backend/internal/validation"
)

// Roles del sistema.
const (
	RolAdministrador = "Administrador"
	RolCajero        = "Cajero"
)

// User es la fila completa de usuarios. La credencial jamas viaja en una
// respuesta: no tiene tag JSON de salida y las proyecciones publicas ni
// siquiera la leen de la base.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Password string    `json:"-"`
	TiendaID uuid.UUID `json:"tienda_id"`
	Rol      string    `json:"rol"`
}

// PublicUser es la proyeccion de listado y detalle, sin credencial.
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Rol      string    `json:"rol"`
	TiendaID uuid.UUID `json:"tienda_id"`
}

type CreateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TiendaID string `json:"tienda_id"`
	Rol      string `json:"rol"`
}

func (r CreateRequest) Validate() validation.Errors {
	var errs validation.Errors
	errs.Require("username", r.Username)
	errs.Require("password", r.Password)
	errs.RequireUUID("tienda_id", r.TiendaID)
	errs.RequireOneOf("rol", r.Rol, RolAdministrador, RolCajero)
	return errs
}

// UpdateRequest es el parche parcial; los campos vacios se descartan antes de
// aplicar.
type UpdateRequest struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	TiendaID *string `json:"tienda_id,omitempty"`
	Rol      *string `json:"rol,omitempty"`
}

func (r UpdateRequest) filtered() UpdateRequest {
	out := UpdateRequest{}
	if r.Username != nil && *r.Username != "" {
		out.Username = r.Username
	}
	if r.Password != nil && *r.Password != "" {
		out.Password = r.Password
	}
	if r.TiendaID != nil && *r.TiendaID != "" {
		out.TiendaID = r.TiendaID
	}
	if r.Rol != nil && *r.Rol != "" {
		out.Rol = r.Rol
	}
	return out
}

func (r UpdateRequest) empty() bool {
	return r.Username == nil && r.Password == nil && r.TiendaID == nil && r.Rol == nil
}

func (r UpdateRequest) validate() validation.Errors {
	var errs validation.Errors
	if r.TiendaID != nil {
		errs.RequireUUID("tienda_id", *r.TiendaID)
	}
	if r.Rol != nil {
		errs.RequireOneOf("rol", *r.Rol, RolAdministrador, RolCajero)
	}
	return errs
}

type Created struct {
	ID uuid.UUID `json:"id"`
}

// BulkOutcome es el resultado parcial de una creacion masiva: los ids creados
// junto a los errores por item. El lote nunca falla entero por un duplicado.
type BulkOutcome struct {
	Created []Created `json:"created"`
	Errors  []string  `json:"errors"`
}
