package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequire(t *testing.T) {
	var errs Errors
	errs.Require("nombre", "")
	errs.Require("direccion", "Av. Siempre Viva 742")

	assert.False(t, errs.OK())
	assert.Len(t, errs, 1)
	assert.Equal(t, "nombre", errs[0].Campo)
}

func TestRequireUUID(t *testing.T) {
	var errs Errors
	errs.RequireUUID("tienda_id", "no-es-un-uuid")
	errs.RequireUUID("categoria_id", "1b4e28ba-2fa1-11d2-883f-0016d3cca427")

	assert.Len(t, errs, 1)
	assert.Equal(t, "tienda_id", errs[0].Campo)
}

func TestRequireOneOf(t *testing.T) {
	var errs Errors
	errs.RequireOneOf("rol", "Administrador", "Administrador", "Cajero")
	errs.RequireOneOf("rol", "Gerente", "Administrador", "Cajero")

	assert.Len(t, errs, 1)
}

func TestRequireNonNegative(t *testing.T) {
	var errs Errors
	errs.RequireNonNegative("cantidad", 0)
	errs.RequireNonNegative("cantidad", 10)
	errs.RequireNonNegative("cantidad", -1)

	assert.Len(t, errs, 1)
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("1b4e28ba-2fa1-11d2-883f-0016d3cca427"))
	assert.False(t, IsUUID("123"))
	assert.False(t, IsUUID(""))
}
