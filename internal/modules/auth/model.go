package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/dcastellanos/inventario-backend/internal/validation"
)

// TokenRequest son las credenciales recibidas en POST /token.
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r TokenRequest) Validate() validation.Errors {
	var errs validation.Errors
	errs.Require("username", r.Username)
	errs.Require("password", r.Password)
	return errs
}

// Claims son los datos embebidos en el token de sesion: identidad, tienda,
// rol y la URL de aterrizaje derivada del rol.
type Claims struct {
	Username string `json:"username"`
	TiendaID string `json:"tienda_id"`
	Rol      string `json:"rol"`
	URL      string `json:"url"`
	jwt.RegisteredClaims
}

// Issued es la respuesta de una emision exitosa.
type Issued struct {
	Token string `json:"token"`
}
