package product

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	products map[uuid.UUID]Product
	stock    map[uuid.UUID][]StockEntry
}

func newMemRepo() *memRepo {
	return &memRepo{
		products: map[uuid.UUID]Product{},
		stock:    map[uuid.UUID][]StockEntry{},
	}
}

func (m *memRepo) ExistsDuplicate(_ context.Context, req CreateRequest) (bool, error) {
	for _, p := range m.products {
		if strings.EqualFold(p.Nombre, req.Nombre) &&
			strings.EqualFold(p.Marca, req.Marca) &&
			strings.EqualFold(p.Descripcion, req.Descripcion) &&
			p.PrecioUnitario.Equal(req.PrecioUnitario) &&
			p.CategoriaID.String() == req.CategoriaID &&
			p.TiendaID.String() == req.TiendaID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) InsertWithStock(_ context.Context, req CreateRequest) (uuid.UUID, error) {
	id := uuid.New()
	m.products[id] = Product{
		ID:             id,
		Nombre:         req.Nombre,
		Marca:          req.Marca,
		PrecioUnitario: req.PrecioUnitario,
		Descripcion:    req.Descripcion,
		CategoriaID:    uuid.MustParse(req.CategoriaID),
		TiendaID:       uuid.MustParse(req.TiendaID),
	}
	m.stock[id] = []StockEntry{{Cantidad: req.Stock.Cantidad, FechaHora: time.Now()}}
	return id, nil
}

func (m *memRepo) fetched(p Product) Fetched {
	return Fetched{
		ID:             p.ID,
		Nombre:         p.Nombre,
		Marca:          p.Marca,
		PrecioUnitario: p.PrecioUnitario,
		Descripcion:    p.Descripcion,
		Stock:          m.stock[p.ID],
		Categoria:      CategoryRef{CategoriaID: p.CategoriaID},
		Tienda:         StoreRef{TiendaID: p.TiendaID},
	}
}

func (m *memRepo) ListByStore(_ context.Context, tiendaID, categoriaID string) ([]Fetched, error) {
	out := []Fetched{}
	for _, p := range m.products {
		if p.TiendaID.String() != tiendaID {
			continue
		}
		if categoriaID != "" && p.CategoriaID.String() != categoriaID {
			continue
		}
		out = append(out, m.fetched(p))
	}
	return out, nil
}

func (m *memRepo) GetByStoreAndID(_ context.Context, tiendaID, id string) (*Fetched, error) {
	p, err := m.GetRow(context.Background(), tiendaID, id)
	if err != nil || p == nil {
		return nil, err
	}
	f := m.fetched(*p)
	return &f, nil
}

func (m *memRepo) GetRow(_ context.Context, tiendaID, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	p, ok := m.products[uid]
	if !ok || p.TiendaID.String() != tiendaID {
		return nil, nil
	}
	return &p, nil
}

func (m *memRepo) Count(_ context.Context, tiendaID string) (int, error) {
	n := 0
	for _, p := range m.products {
		if p.TiendaID.String() == tiendaID {
			n++
		}
	}
	return n, nil
}

func (m *memRepo) Update(_ context.Context, tiendaID, id string, patch UpdateRequest) error {
	uid, _ := uuid.Parse(id)
	p := m.products[uid]
	if patch.Nombre != nil {
		p.Nombre = *patch.Nombre
	}
	if patch.Marca != nil {
		p.Marca = *patch.Marca
	}
	if patch.PrecioUnitario != nil {
		p.PrecioUnitario = *patch.PrecioUnitario
	}
	if patch.Descripcion != nil {
		p.Descripcion = *patch.Descripcion
	}
	if patch.CategoriaID != nil {
		p.CategoriaID = uuid.MustParse(*patch.CategoriaID)
	}
	m.products[uid] = p
	return nil
}

func (m *memRepo) DeleteCascade(_ context.Context, tiendaID, id string) (int64, error) {
	uid, _ := uuid.Parse(id)
	p, ok := m.products[uid]
	if !ok || p.TiendaID.String() != tiendaID {
		return 0, nil
	}
	delete(m.stock, uid)
	delete(m.products, uid)
	return 1, nil
}

func newProductReq(nombre, tiendaID string) CreateRequest {
	return CreateRequest{
		Nombre:         nombre,
		Marca:          "Postobon",
		PrecioUnitario: decimal.NewFromFloat(2500.50),
		Descripcion:    "Gaseosa de manzana 1.5L",
		Stock:          InitialStock{Cantidad: 20},
		CategoriaID:    uuid.NewString(),
		TiendaID:       tiendaID,
	}
}

func TestCreateProductWithInitialStock(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)

	res := svc.Create(context.Background(), newProductReq("Manzana", uuid.NewString()))
	require.True(t, res.IsSuccess())

	id := res.Value().IDProducto
	require.Len(t, repo.stock[id], 1)
	assert.Equal(t, 20, repo.stock[id][0].Cantidad)
}

func TestCreateProductDuplicate(t *testing.T) {
	svc := NewService(newMemRepo())
	req := newProductReq("Manzana", uuid.NewString())

	first := svc.Create(context.Background(), req)
	require.True(t, first.IsSuccess())

	// El stock inicial no forma parte de la clave de duplicado.
	req.Stock.Cantidad = 99
	res := svc.Create(context.Background(), req)
	require.True(t, res.IsFailure())
	assert.Equal(t, "El producto ya existe", res.Err())
}

func TestListByStoreWithCategoryFilter(t *testing.T) {
	svc := NewService(newMemRepo())
	tienda := uuid.NewString()

	a := newProductReq("Manzana", tienda)
	b := newProductReq("Uva", tienda)
	svc.Create(context.Background(), a)
	svc.Create(context.Background(), b)

	res := svc.ListByStore(context.Background(), tienda, a.CategoriaID)
	require.True(t, res.IsSuccess())
	require.Len(t, res.Value(), 1)
	assert.Equal(t, "Manzana", res.Value()[0].Nombre)

	all := svc.ListByStore(context.Background(), tienda, "")
	require.True(t, all.IsSuccess())
	assert.Len(t, all.Value(), 2)
}

func TestGetProductNotFound(t *testing.T) {
	svc := NewService(newMemRepo())

	res := svc.GetByStoreAndID(context.Background(), uuid.NewString(), uuid.NewString())
	require.True(t, res.IsFailure())
	assert.Equal(t, "Producto no encontrado", res.Err())
}

func TestCountIsScopedToStore(t *testing.T) {
	svc := NewService(newMemRepo())
	tienda := uuid.NewString()

	svc.Create(context.Background(), newProductReq("Manzana", tienda))
	svc.Create(context.Background(), newProductReq("Uva", tienda))
	svc.Create(context.Background(), newProductReq("Pera", uuid.NewString()))

	res := svc.Count(context.Background(), tienda)
	require.True(t, res.IsSuccess())
	assert.Equal(t, 2, res.Value())
}

func TestUpdateProductNoChanges(t *testing.T) {
	svc := NewService(newMemRepo())
	tienda := uuid.NewString()
	req := newProductReq("Manzana", tienda)

	created := svc.Create(context.Background(), req)
	id := created.Value().IDProducto.String()

	// Parche identico a lo almacenado.
	mismoNombre := req.Nombre
	mismoPrecio := decimal.NewFromFloat(2500.5)
	res := svc.Update(context.Background(), tienda, id, UpdateRequest{
		Nombre:         &mismoNombre,
		PrecioUnitario: &mismoPrecio,
	})

	require.True(t, res.IsFailure())
	assert.Equal(t, "No hay cambios en los datos. Actualización innecesaria.", res.Err())
}

func TestUpdateProductWithChange(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	tienda := uuid.NewString()

	created := svc.Create(context.Background(), newProductReq("Manzana", tienda))
	id := created.Value().IDProducto

	precio := decimal.NewFromFloat(3000)
	res := svc.Update(context.Background(), tienda, id.String(), UpdateRequest{PrecioUnitario: &precio})
	require.True(t, res.IsSuccess())
	assert.True(t, repo.products[id].PrecioUnitario.Equal(precio))
}

func TestUpdateProductEmptyPatch(t *testing.T) {
	svc := NewService(newMemRepo())

	res := svc.Update(context.Background(), uuid.NewString(), uuid.NewString(), UpdateRequest{})
	require.True(t, res.IsFailure())
	assert.Equal(t, "No se proporcionaron campos para actualizar", res.Err())
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := NewService(newMemRepo())

	nombre := "Pera"
	res := svc.Update(context.Background(), uuid.NewString(), uuid.NewString(), UpdateRequest{Nombre: &nombre})
	require.True(t, res.IsFailure())
	assert.Equal(t, "Producto no encontrado", res.Err())
}

func TestDeleteProductCascadesStock(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	tienda := uuid.NewString()

	created := svc.Create(context.Background(), newProductReq("Manzana", tienda))
	id := created.Value().IDProducto

	res := svc.Delete(context.Background(), tienda, id.String())
	require.True(t, res.IsSuccess())
	assert.Empty(t, repo.products)
	assert.Empty(t, repo.stock)
}

func TestDeleteProductWrongStore(t *testing.T) {
	svc := NewService(newMemRepo())

	created := svc.Create(context.Background(), newProductReq("Manzana", uuid.NewString()))

	res := svc.Delete(context.Background(), uuid.NewString(), created.Value().IDProducto.String())
	require.True(t, res.IsFailure())
	assert.Equal(t, "Producto no encontrado", res.Err())
}
