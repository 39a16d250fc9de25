// Package itemrepo implements the item store on top of the order_items table.
// Items are created through the order repository as part of the aggregate;
// this package covers per-item updates and the unreturned-items projection.
package itemrepo

import (
	"context"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Update persists the item's returned flag.
// It is an update to the existing row; updating an absent item fails.
func (r *GormItemRepository) Update(ctx context.Context, item *order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&orderrepo.ItemDTO{}).
		Where("id = ?", item.ID().Bytes()).
		Update("returned", item.IsReturned())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// UnreturnedProductIDs returns the product ids of the order's items whose
// returned flag is still false, in item creation order.
func (r *GormItemRepository) UnreturnedProductIDs(ctx context.Context, orderID kernel.UUID) ([]int64, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	productIDs := make([]int64, 0)
	err := r.db.WithContext(ctx).
		Model(&orderrepo.ItemDTO{}).
		Where("order_id = ? AND returned = false", orderID.Bytes()).
		Order("position").
		Pluck("product_id", &productIDs).Error
	if err != nil {
		return nil, err
	}

	return productIDs, nil
}
