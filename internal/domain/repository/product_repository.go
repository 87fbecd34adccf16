package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro de una tx.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock actualiza solo los campos de saldo (usado por el motor de stock).
	UpdateStock(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	ListBelowMinQuantity() ([]*entity.Product, error)
	Delete(id string) error
}
