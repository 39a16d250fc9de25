package queries

import (
	"context"
	"database/sql"

	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler projects persisted orders into order summaries.
// Runs one raw SQL join over the orders and order_items tables; orders with
// every item returned still appear, with an empty product list.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the list-orders query.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one summary per persisted order.
// Enumeration order is ascending order id, items in creation order within
// each order, so repeated calls against an unchanged store yield identical
// output.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			i.product_id
		FROM orders o
		LEFT JOIN order_items i
			ON i.order_id = o.id AND i.returned = false
		ORDER BY o.id, i.position
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var productID sql.NullInt64

		if err = rows.Scan(&id, &productID); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		if len(summaries) == 0 || !summaries[len(summaries)-1].OrderID.IsEqual(orderID) {
			summaries = append(summaries, GetAllOrdersQueryResponse{
				OrderID:              orderID,
				UnreturnedProductIDs: make([]int64, 0),
			})
		}

		if productID.Valid {
			last := &summaries[len(summaries)-1]
			last.UnreturnedProductIDs = append(last.UnreturnedProductIDs, productID.Int64)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
