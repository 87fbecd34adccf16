package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/inventory"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}

func buildProductUseCase(products ...*entity.Product) (*inventory.ProductUseCase, *fakeProductRepo, *fakeCategoryRepo) {
	productRepo := newFakeProductRepo(products...)
	categoryRepo := newFakeCategoryRepo()
	return inventory.NewProductUseCase(productRepo, categoryRepo), productRepo, categoryRepo
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProduct_CambiosParciales(t *testing.T) {
	p := unitProduct("p-1", 10)
	p.SKU = "SKU-1"
	p.UnitPrice = decimal.RequireFromString("10.00")
	p.MinQuantityAlert = 5
	uc, productRepo, _ := buildProductUseCase(p)

	updated, err := uc.UpdateProduct("p-1", dto.UpdateProductRequest{
		Name:      strPtr("Arroz premium"),
		UnitPrice: decPtr("12.50"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Arroz premium", updated.Name)
	assert.True(t, updated.UnitPrice.Equal(decimal.RequireFromString("12.50")))
	// Los campos no enviados quedan como estaban
	assert.Equal(t, "SKU-1", updated.SKU)
	assert.Equal(t, 5, updated.MinQuantityAlert)
	// El saldo de stock no se toca por esta vía
	assert.Equal(t, 10, productRepo.products["p-1"].Quantity)
}

func TestUpdateProduct_Validaciones(t *testing.T) {
	uc, _, _ := buildProductUseCase(unitProduct("p-1", 10))

	_, err := uc.UpdateProduct("p-1", dto.UpdateProductRequest{Name: strPtr("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	_, err = uc.UpdateProduct("p-1", dto.UpdateProductRequest{UnitPrice: decPtr("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	_, err = uc.UpdateProduct("p-1", dto.UpdateProductRequest{MinQuantityAlert: intPtr(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "umbral no positivo")

	_, err = uc.UpdateProduct("no-existe", dto.UpdateProductRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProduct_SKUDuplicadoRechazado(t *testing.T) {
	p1 := unitProduct("p-1", 10)
	p1.SKU = "SKU-1"
	p2 := unitProduct("p-2", 10)
	p2.SKU = "SKU-2"
	uc, _, _ := buildProductUseCase(p1, p2)

	_, err := uc.UpdateProduct("p-2", dto.UpdateProductRequest{SKU: strPtr("SKU-1")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Reenviar el propio SKU no cuenta como duplicado
	_, err = uc.UpdateProduct("p-2", dto.UpdateProductRequest{SKU: strPtr("SKU-2")})
	assert.NoError(t, err)
}

func TestUpdateProduct_CategoriaInexistenteRechazada(t *testing.T) {
	uc, _, categoryRepo := buildProductUseCase(unitProduct("p-1", 10))

	_, err := uc.UpdateProduct("p-1", dto.UpdateProductRequest{CategoryID: strPtr("cat-x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, categoryRepo.Create(&entity.Category{ID: "cat-1", Name: "Granos"}))
	updated, err := uc.UpdateProduct("p-1", dto.UpdateProductRequest{CategoryID: strPtr("cat-1")})
	require.NoError(t, err)
	assert.Equal(t, "cat-1", updated.CategoryID)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteProduct_EliminaDelCatalogo(t *testing.T) {
	uc, productRepo, _ := buildProductUseCase(unitProduct("p-1", 10))

	require.NoError(t, uc.DeleteProduct("p-1"))
	assert.NotContains(t, productRepo.products, "p-1")

	assert.ErrorIs(t, uc.DeleteProduct("p-1"), domain.ErrNotFound)
}
