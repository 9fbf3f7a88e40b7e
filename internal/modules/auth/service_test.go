package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dcastellanos/inventario-backend/internal/modules/user"
)

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) ExistsInStore(context.Context, string, string) (bool, error) {
	return false, nil
}

func (f *fakeUserRepo) Insert(context.Context, user.CreateRequest) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (f *fakeUserRepo) ListByStore(context.Context, string) ([]user.PublicUser, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetByStoreAndID(context.Context, string, string) (*user.PublicUser, error) {
	return nil, nil
}

func (f *fakeUserRepo) Update(context.Context, string, string, user.UpdateRequest) (int64, error) {
	return 0, nil
}

func (f *fakeUserRepo) Delete(context.Context, string, string) (int64, error) {
	return 0, nil
}

func (f *fakeUserRepo) FindByCredentials(_ context.Context, username, password string) (*user.User, error) {
	for _, u := range f.users {
		if u.Username == username && u.Password == password {
			copia := u
			return &copia, nil
		}
	}
	return nil, nil
}

func newAuthService(users ...user.User) Service {
	return NewService(&fakeUserRepo{users: users}, "LaSuperClave", 10000)
}

func adminUser() user.User {
	return user.User{
		ID:       uuid.New(),
		Username: "marta",
		Password: "secreto123",
		TiendaID: uuid.New(),
		Rol:      user.RolAdministrador,
	}
}

func TestGenerateTokenAdmin(t *testing.T) {
	u := adminUser()
	svc := newAuthService(u)

	res := svc.GenerateToken(context.Background(), TokenRequest{Username: "marta", Password: "secreto123"})
	require.True(t, res.IsSuccess())
	require.NotEmpty(t, res.Value().Token)

	claims, err := svc.ValidateToken(res.Value().Token)
	require.NoError(t, err)
	assert.Equal(t, "marta", claims.Username)
	assert.Equal(t, u.TiendaID.String(), claims.TiendaID)
	assert.Equal(t, user.RolAdministrador, claims.Rol)
	assert.Equal(t, "/dashboard/administrador", claims.URL)
}

func TestGenerateTokenCajeroURL(t *testing.T) {
	u := adminUser()
	u.Rol = user.RolCajero
	svc := newAuthService(u)

	res := svc.GenerateToken(context.Background(), TokenRequest{Username: "marta", Password: "secreto123"})
	require.True(t, res.IsSuccess())

	claims, err := svc.ValidateToken(res.Value().Token)
	require.NoError(t, err)
	assert.Equal(t, "/dashboard/cajero/facturas", claims.URL)
}

func TestGenerateTokenWrongPassword(t *testing.T) {
	svc := newAuthService(adminUser())

	res := svc.GenerateToken(context.Background(), TokenRequest{Username: "marta", Password: "otra"})
	require.True(t, res.IsFailure())
	assert.Equal(t, "No se encontraron registros", res.Err())
}

func TestGenerateTokenUnknownUser(t *testing.T) {
	svc := newAuthService()

	res := svc.GenerateToken(context.Background(), TokenRequest{Username: "nadie", Password: "x"})
	require.True(t, res.IsFailure())
	assert.Equal(t, "No se encontraron registros", res.Err())
}

func TestValidateTokenWrongSecret(t *testing.T) {
	u := adminUser()
	emisor := NewService(&fakeUserRepo{users: []user.User{u}}, "clave-a", 1)
	receptor := NewService(&fakeUserRepo{}, "clave-b", 1)

	res := emisor.GenerateToken(context.Background(), TokenRequest{Username: "marta", Password: "secreto123"})
	require.True(t, res.IsSuccess())

	_, err := receptor.ValidateToken(res.Value().Token)
	assert.Error(t, err)
}

func TestMiddlewareMissingToken(t *testing.T) {
	svc := newAuthService()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no debe alcanzar el handler sin token")
	})
	handler := Middleware(svc, zap.NewNop())(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tiendas", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"Respuesta":"Token no proporcionado"}`, rec.Body.String())
}

func TestMiddlewareMalformedHeader(t *testing.T) {
	svc := newAuthService()
	handler := Middleware(svc, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/tiendas", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareInvalidToken(t *testing.T) {
	svc := newAuthService()
	handler := Middleware(svc, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/tiendas", nil)
	req.Header.Set("Authorization", "Bearer no.es.jwt")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"Respuesta":"Token inválido"}`, rec.Body.String())
}

func TestMiddlewareAttachesClaims(t *testing.T) {
	u := adminUser()
	svc := newAuthService(u)

	issued := svc.GenerateToken(context.Background(), TokenRequest{Username: "marta", Password: "secreto123"})
	require.True(t, issued.IsSuccess())

	var got *Claims
	handler := Middleware(svc, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		got = c
	}))

	req := httptest.NewRequest(http.MethodGet, "/tiendas", nil)
	req.Header.Set("Authorization", "Bearer "+issued.Value().Token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "marta", got.Username)
	assert.Equal(t, u.TiendaID.String(), got.TiendaID)
}
