package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Gestion-api/internal/domain/inventory"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos y categorías. El saldo de stock no se toca
// aquí: solo el motor de movimientos (StockUseCase) lo muta.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, categoryRepo: categoryRepo}
}

// CreateProduct valida el método de seguimiento y persiste el producto con stock en cero.
func (uc *ProductUseCase) CreateProduct(actorID string, in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	track := in.TrackMethod
	if track == "" {
		track = entity.TrackMethodUnit
	}
	switch track {
	case entity.TrackMethodUnit:
		// BoxWeightKg no aplica al método unit
		if in.BoxWeightKg.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	case entity.TrackMethodBoxedWeight:
		if !in.BoxWeightKg.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.IsNegative() || in.WholesalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
	}
	if in.SKU != "" {
		if existing, _ := uc.productRepo.GetBySKU(in.SKU); existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	minAlert := in.MinQuantityAlert
	if minAlert <= 0 {
		minAlert = 5
	}
	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		SKU:              in.SKU,
		Name:             in.Name,
		CategoryID:       in.CategoryID,
		TrackMethod:      track,
		UnitPrice:        in.UnitPrice,
		WholesalePrice:   in.WholesalePrice,
		MinQuantityAlert: minAlert,
		BoxWeightKg:      in.BoxWeightKg,
		CreatedBy:        actorID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct aplica cambios parciales al producto. El método de seguimiento,
// el peso por caja y los campos de saldo no se tocan: los saldos son del motor
// de movimientos y cambiar el método invalidaría el stock existente.
func (uc *ProductUseCase) UpdateProduct(id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	product, err := uc.GetProduct(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.SKU != nil && *in.SKU != product.SKU {
		if *in.SKU != "" {
			if existing, _ := uc.productRepo.GetBySKU(*in.SKU); existing != nil {
				return nil, domain.ErrDuplicate
			}
		}
		product.SKU = *in.SKU
	}
	if in.CategoryID != nil {
		if *in.CategoryID != "" {
			category, err := uc.categoryRepo.GetByID(*in.CategoryID)
			if err != nil {
				return nil, err
			}
			if category == nil {
				return nil, domain.ErrNotFound
			}
		}
		product.CategoryID = *in.CategoryID
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.UnitPrice = *in.UnitPrice
	}
	if in.WholesalePrice != nil {
		if in.WholesalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.WholesalePrice = *in.WholesalePrice
	}
	if in.MinQuantityAlert != nil {
		if *in.MinQuantityAlert <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinQuantityAlert = *in.MinQuantityAlert
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct elimina el producto del catálogo.
func (uc *ProductUseCase) DeleteProduct(id string) error {
	if _, err := uc.GetProduct(id); err != nil {
		return err
	}
	return uc.productRepo.Delete(id)
}

// GetProduct devuelve el producto o ErrNotFound.
func (uc *ProductUseCase) GetProduct(id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// ListProducts listado paginado.
func (uc *ProductUseCase) ListProducts(limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.List(limit, offset)
}

// LowStock productos por debajo de su umbral de alerta.
func (uc *ProductUseCase) LowStock() ([]*entity.Product, error) {
	return uc.productRepo.ListBelowMinQuantity()
}

// StockStatus estado de stock del producto, incluyendo peso disponible si aplica.
func (uc *ProductUseCase) StockStatus(id string) (*dto.ProductStockResponse, error) {
	product, err := uc.GetProduct(id)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductStockResponse{
		ProductID:     product.ID,
		TrackMethod:   product.TrackMethod,
		Quantity:      product.Quantity,
		BelowMinAlert: product.TrackMethod == entity.TrackMethodUnit && product.Quantity < product.MinQuantityAlert,
	}
	if product.IsWeighted() {
		resp.BoxesInStock = product.BoxesInStock
		resp.BoxRemainingKg = product.BoxRemainingKg
		resp.AvailableWeightKg = domaininv.AvailableWeightKg(product)
	}
	return resp, nil
}

// CreateCategory crea una categoría de productos (nombre único).
func (uc *ProductUseCase) CreateCategory(name, description string) (*entity.Category, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories devuelve todas las categorías.
func (uc *ProductUseCase) ListCategories() ([]*entity.Category, error) {
	return uc.categoryRepo.List()
}
