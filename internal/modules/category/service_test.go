package category

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	categories map[uuid.UUID]Category
	products   map[uuid.UUID][]ProductSummary // por categoria
}

func newMemRepo() *memRepo {
	return &memRepo{
		categories: map[uuid.UUID]Category{},
		products:   map[uuid.UUID][]ProductSummary{},
	}
}

func (m *memRepo) ExistsDuplicate(_ context.Context, req CreateRequest) (bool, error) {
	for _, c := range m.categories {
		if strings.EqualFold(c.Nombre, req.Nombre) &&
			strings.EqualFold(c.Descripcion, req.Descripcion) &&
			c.TiendaID.String() == req.TiendaID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) Insert(_ context.Context, req CreateRequest) (uuid.UUID, error) {
	id := uuid.New()
	m.categories[id] = Category{
		ID:          id,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		TiendaID:    uuid.MustParse(req.TiendaID),
	}
	return id, nil
}

func (m *memRepo) ListByStore(_ context.Context, tiendaID string) ([]ListItem, error) {
	out := []ListItem{}
	for _, c := range m.categories {
		if c.TiendaID.String() == tiendaID {
			out = append(out, ListItem{ID: c.ID, Nombre: c.Nombre, Descripcion: c.Descripcion})
		}
	}
	return out, nil
}

func (m *memRepo) GetByStoreAndID(_ context.Context, tiendaID, id string) (*Category, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	c, ok := m.categories[uid]
	if !ok || c.TiendaID.String() != tiendaID {
		return nil, nil
	}
	return &c, nil
}

func (m *memRepo) ProductsByCategory(_ context.Context, tiendaID, id string) ([]ProductSummary, error) {
	uid, _ := uuid.Parse(id)
	if ps, ok := m.products[uid]; ok {
		return ps, nil
	}
	return []ProductSummary{}, nil
}

func (m *memRepo) Update(_ context.Context, tiendaID, id string, patch UpdateRequest) (*Category, error) {
	uid, _ := uuid.Parse(id)
	c, ok := m.categories[uid]
	if !ok || c.TiendaID.String() != tiendaID {
		return nil, nil
	}
	if patch.Nombre != nil {
		c.Nombre = *patch.Nombre
	}
	if patch.Descripcion != nil {
		c.Descripcion = *patch.Descripcion
	}
	m.categories[uid] = c
	return &c, nil
}

func (m *memRepo) DeleteCascade(_ context.Context, tiendaID, id string) (int64, error) {
	uid, _ := uuid.Parse(id)
	c, ok := m.categories[uid]
	if !ok || c.TiendaID.String() != tiendaID {
		return 0, nil
	}
	delete(m.products, uid)
	delete(m.categories, uid)
	return 1, nil
}

func newCategoryReq(nombre, tiendaID string) CreateRequest {
	return CreateRequest{Nombre: nombre, Descripcion: "Bebidas frias y calientes", TiendaID: tiendaID}
}

func TestCreateCategory(t *testing.T) {
	svc := NewService(newMemRepo())

	res := svc.Create(context.Background(), newCategoryReq("Bebidas", uuid.NewString()))
	require.True(t, res.IsSuccess())
	assert.NotEqual(t, uuid.Nil, res.Value().IDCategoria)
}

func TestCreateCategoryDuplicate(t *testing.T) {
	svc := NewService(newMemRepo())
	tienda := uuid.NewString()

	first := svc.Create(context.Background(), newCategoryReq("Bebidas", tienda))
	require.True(t, first.IsSuccess())

	res := svc.Create(context.Background(), newCategoryReq("bebidas", tienda))
	require.True(t, res.IsFailure())
	assert.Equal(t, "La categoria ya existe", res.Err())
}

func TestCreateCategorySameNameOtherStore(t *testing.T) {
	svc := NewService(newMemRepo())

	first := svc.Create(context.Background(), newCategoryReq("Bebidas", uuid.NewString()))
	require.True(t, first.IsSuccess())

	// El duplicado se evalua dentro de la tienda, no globalmente.
	res := svc.Create(context.Background(), newCategoryReq("Bebidas", uuid.NewString()))
	assert.True(t, res.IsSuccess())
}

func TestListByStoreIsScoped(t *testing.T) {
	svc := NewService(newMemRepo())
	tiendaA := uuid.NewString()
	tiendaB := uuid.NewString()

	svc.Create(context.Background(), newCategoryReq("Bebidas", tiendaA))
	svc.Create(context.Background(), newCategoryReq("Snacks", tiendaA))
	svc.Create(context.Background(), newCategoryReq("Aseo", tiendaB))

	res := svc.ListByStore(context.Background(), tiendaA)
	require.True(t, res.IsSuccess())
	assert.Len(t, res.Value(), 2)
}

func TestGetDetailIncludesProducts(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	tienda := uuid.NewString()

	created := svc.Create(context.Background(), newCategoryReq("Bebidas", tienda))
	id := created.Value().IDCategoria
	repo.products[id] = []ProductSummary{{ID: uuid.New(), Nombre: "Gaseosa", Marca: "Postobon"}}

	res := svc.GetByStoreAndID(context.Background(), tienda, id.String())
	require.True(t, res.IsSuccess())
	require.NotNil(t, res.Value())
	assert.Equal(t, "Bebidas", res.Value().Nombre)
	require.Len(t, res.Value().Productos, 1)
	assert.Equal(t, "Gaseosa", res.Value().Productos[0].Nombre)
}

func TestGetDetailAbsentIsNotFailure(t *testing.T) {
	svc := NewService(newMemRepo())

	res := svc.GetByStoreAndID(context.Background(), uuid.NewString(), uuid.NewString())
	require.True(t, res.IsSuccess())
	assert.Nil(t, res.Value())
}

func TestUpdateCategoryNotFound(t *testing.T) {
	svc := NewService(newMemRepo())

	nombre := "Licores"
	res := svc.Update(context.Background(), uuid.NewString(), uuid.NewString(), UpdateRequest{Nombre: &nombre})
	require.True(t, res.IsFailure())
	assert.Equal(t, "Categoría no encontrada", res.Err())
}

func TestUpdateCategoryEmptyPatch(t *testing.T) {
	svc := NewService(newMemRepo())
	tienda := uuid.NewString()

	created := svc.Create(context.Background(), newCategoryReq("Bebidas", tienda))

	res := svc.Update(context.Background(), tienda, created.Value().IDCategoria.String(), UpdateRequest{})
	require.True(t, res.IsFailure())
	assert.Equal(t, "No se proporcionaron campos válidos para actualizar", res.Err())
}

func TestUpdateCategoryReturnsUpdatedRow(t *testing.T) {
	svc := NewService(newMemRepo())
	tienda := uuid.NewString()

	created := svc.Create(context.Background(), newCategoryReq("Bebidas", tienda))

	nombre := "Licores"
	res := svc.Update(context.Background(), tienda, created.Value().IDCategoria.String(), UpdateRequest{Nombre: &nombre})
	require.True(t, res.IsSuccess())
	assert.Equal(t, "Licores", res.Value().Nombre)
	assert.Equal(t, "Bebidas frias y calientes", res.Value().Descripcion)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	svc := NewService(newMemRepo())

	res := svc.Delete(context.Background(), uuid.NewString(), uuid.NewString())
	require.True(t, res.IsFailure())
	assert.Equal(t, "Categoria no encontrada", res.Err())
}

func TestDeleteCategoryCascades(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	tienda := uuid.NewString()

	created := svc.Create(context.Background(), newCategoryReq("Bebidas", tienda))
	id := created.Value().IDCategoria
	repo.products[id] = []ProductSummary{{ID: uuid.New(), Nombre: "Gaseosa"}}

	res := svc.Delete(context.Background(), tienda, id.String())
	require.True(t, res.IsSuccess())
	assert.Equal(t, "Categoria eliminada", res.Value())
	assert.Empty(t, repo.categories)
	assert.Empty(t, repo.products)
}

func TestDeleteCategoryWrongStore(t *testing.T) {
	svc := NewService(newMemRepo())
	tienda := uuid.NewString()

	created := svc.Create(context.Background(), newCategoryReq("Bebidas", tienda))

	res := svc.Delete(context.Background(), uuid.NewString(), created.Value().IDCategoria.String())
	require.True(t, res.IsFailure())
	assert.Equal(t, "Categoria no encontrada", res.Err())
}
