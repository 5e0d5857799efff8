package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/ports"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// fakeProductRepo implementación en memoria del puerto para los tests.
type fakeProductRepo struct {
	repository.ProductRepository
	rows   []*entity.Product
	nextID int64
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.nextID++
	p.ID = f.nextID
	f.rows = append(f.rows, p)
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for _, p := range f.rows {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetDetail(_ context.Context, id int64) (*repository.ProductDetail, error) {
	p, _ := f.GetByID(context.Background(), id)
	if p == nil {
		return nil, nil
	}
	return &repository.ProductDetail{Product: *p, SupplierName: "Proveedor"}, nil
}

func (f *fakeProductRepo) ExistsBySupplierAndName(_ context.Context, supplierID int64, name string, excludeID int64) (bool, error) {
	for _, p := range f.rows {
		if p.SupplierID == supplierID &&
			strings.EqualFold(p.Name, name) &&
			(excludeID == 0 || p.ID != excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error { return nil }

func (f *fakeProductRepo) Count(_ context.Context) (int, error) { return len(f.rows), nil }

// noopImageStore satisface ports.ImageStore sin tocar disco.
type noopImageStore struct{}

func (noopImageStore) Save(name string, _ io.Reader) (string, error) { return name, nil }
func (noopImageStore) Remove(string) error                           { return nil }

var _ ports.ImageStore = noopImageStore{}

func crearProducto(t *testing.T, uc *ProductUseCase, supplierID int64, name string) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SupplierID: supplierID,
		Name:       name,
	})
	require.NoError(t, err)
	return out
}

// Mismo nombre con otra capitalización bajo el mismo proveedor → rechazado.
func TestProductCreate_DuplicadoMismoProveedor(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := NewProductUseCase(repo, noopImageStore{})

	crearProducto(t, uc, 1, "Widget")

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SupplierID: 1,
		Name:       "widget",
	})
	require.Error(t, err)
	assert.Equal(t, "Ya existe un producto con ese nombre en este proveedor", err.Error())
}

// El mismo nombre bajo otro proveedor es válido.
func TestProductCreate_MismoNombreOtroProveedor(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := NewProductUseCase(repo, noopImageStore{})

	crearProducto(t, uc, 1, "Widget")
	out := crearProducto(t, uc, 2, "widget")
	assert.Equal(t, int64(2), out.SupplierID)
}

// Renombrar sin cambiar el nombre no choca consigo mismo.
func TestProductUpdate_NoChocaConsigoMismo(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := NewProductUseCase(repo, noopImageStore{})

	created := crearProducto(t, uc, 1, "Widget")

	name := "WIDGET"
	_, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
}

// Con el tope global alcanzado, el alta falla con el mensaje del límite.
func TestProductCreate_LimiteGlobal(t *testing.T) {
	repo := &fakeProductRepo{}
	for i := 0; i < maxProducts; i++ {
		repo.nextID++
		repo.rows = append(repo.rows, &entity.Product{ID: repo.nextID, SupplierID: 1})
	}
	uc := NewProductUseCase(repo, noopImageStore{})

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{SupplierID: 1, Name: "Uno más"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Límite de 2000 productos")
}
