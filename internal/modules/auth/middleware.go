package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/dcastellanos/inventario-backend/internal/httpx"
)

type claimsContextKey struct{}

// ClaimsFromContext recupera los claims que el middleware adjunto al request.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsContextKey{}).(*Claims)
	return c, ok
}

// Middleware inspecciona el token firmado y adjunta rol y tienda al contexto.
// Toda ruta pasa por aca salvo la emision del token.
func Middleware(s Service, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				httpx.Unauthorized(w, "Token no proporcionado")
				return
			}

			parts := strings.Split(header, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				httpx.Unauthorized(w, "Token no proporcionado")
				return
			}

			claims, err := s.ValidateToken(parts[1])
			if err != nil {
				log.Debug("token rechazado", zap.Error(err))
				httpx.Unauthorized(w, "Token inválido")
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
