package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dcastellanos/inventario-backend/internal/modules/user"
	"github.com/dcastellanos/inventario-backend/internal/result"
)

// Service emite y valida tokens de sesion.
type Service interface {
	GenerateToken(ctx context.Context, req TokenRequest) result.Result[Issued]
	ValidateToken(tokenString string) (*Claims, error)
}

type service struct {
	userRepo user.Repository
	secret   []byte
	expiry   time.Duration
}

// NewService crea el servicio de autenticacion. expiryDays controla el
// vencimiento del token (10000 dias por defecto, los clientes no renuevan).
func NewService(userRepo user.Repository, secret string, expiryDays int) Service {
	return &service{
		userRepo: userRepo,
		secret:   []byte(secret),
		expiry:   time.Duration(expiryDays) * 24 * time.Hour,
	}
}

func (s *service) GenerateToken(ctx context.Context, req TokenRequest) result.Result[Issued] {
	// Busqueda sin acotar por tienda: la credencial sola determina identidad.
	u, err := s.userRepo.FindByCredentials(ctx, req.Username, req.Password)
	if err != nil {
		return result.Failf[Issued]("No se puede generar el token, %v", err)
	}
	if u == nil {
		return result.Fail[Issued]("No se encontraron registros")
	}

	now := time.Now()
	claims := Claims{
		Username: u.Username,
		TiendaID: u.TiendaID.String(),
		Rol:      u.Rol,
		URL:      urlByRole(u.Rol),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return result.Failf[Issued]("No se puede generar el token, %v", err)
	}
	return result.Success(Issued{Token: signed})
}

func (s *service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

func urlByRole(rol string) string {
	switch rol {
	case user.RolAdministrador:
		return "/dashboard/administrador"
	case user.RolCajero:
		return "/dashboard/cajero/facturas"
	default:
		return "/"
	}
}
