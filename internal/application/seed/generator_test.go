package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// fakeSupplierRepo almacena proveedores en memoria asignando ids secuenciales.
type fakeSupplierRepo struct {
	repository.SupplierRepository
	rows   []*entity.Supplier
	nextID int64
	// dropOnReread simula una re-lectura incompleta.
	dropOnReread bool
}

func (f *fakeSupplierRepo) CreateBatch(_ context.Context, suppliers []*entity.Supplier) error {
	for _, s := range suppliers {
		f.nextID++
		s.ID = f.nextID
		f.rows = append(f.rows, s)
	}
	return nil
}

func (f *fakeSupplierRepo) ListByNamePrefix(_ context.Context, prefix string) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range f.rows {
		if strings.HasPrefix(s.Name, prefix) {
			out = append(out, s)
		}
	}
	if f.dropOnReread && len(out) > 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

type fakeProductRepo struct {
	repository.ProductRepository
	rows    []*entity.Product
	batches int
}

func (f *fakeProductRepo) CreateBatch(_ context.Context, products []*entity.Product) error {
	f.batches++
	f.rows = append(f.rows, products...)
	return nil
}

// fakeTxRunner ejecuta fn directo, sin transacción real.
type fakeTxRunner struct {
	suppliers *fakeSupplierRepo
	products  *fakeProductRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.SupplierRepository, repository.ProductRepository) error) error {
	return fn(f.suppliers, f.products)
}

func TestGenerator_Run(t *testing.T) {
	suppliers := &fakeSupplierRepo{}
	products := &fakeProductRepo{}
	g := NewGenerator(&fakeTxRunner{suppliers, products}, zerolog.Nop())

	err := g.Run(context.Background(), Options{
		Suppliers:           10,
		ProductsPerSupplier: 25,
		BatchSize:           40,
		Seed:                123,
	})
	require.NoError(t, err)

	assert.Len(t, suppliers.rows, 10)
	assert.Len(t, products.rows, 250)
	// 250 productos en lotes de 40: 6 llenos más el resto.
	assert.Equal(t, 7, products.batches)

	// Cada producto referencia un proveedor insertado y trae ambos precios.
	ids := make(map[int64]bool, len(suppliers.rows))
	for _, s := range suppliers.rows {
		ids[s.ID] = true
	}
	for _, p := range products.rows {
		assert.True(t, ids[p.SupplierID], "producto con proveedor desconocido %d", p.SupplierID)
		require.True(t, p.PurchasePrice.Valid)
		require.True(t, p.SalePrice.Valid)
		assert.True(t, p.SalePrice.Decimal.GreaterThan(p.PurchasePrice.Decimal))
	}
}

func TestGenerator_Run_AbortaSiLaRelecturaNoCoincide(t *testing.T) {
	suppliers := &fakeSupplierRepo{dropOnReread: true}
	products := &fakeProductRepo{}
	g := NewGenerator(&fakeTxRunner{suppliers, products}, zerolog.Nop())

	err := g.Run(context.Background(), Options{Suppliers: 5, ProductsPerSupplier: 3, Seed: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "re-lectura")
	// No se llegó a la fase de productos.
	assert.Empty(t, products.rows)
}

func TestGenerator_Run_CantidadesInvalidas(t *testing.T) {
	g := NewGenerator(&fakeTxRunner{&fakeSupplierRepo{}, &fakeProductRepo{}}, zerolog.Nop())
	err := g.Run(context.Background(), Options{Suppliers: 0, ProductsPerSupplier: 5})
	require.Error(t, err)
}
