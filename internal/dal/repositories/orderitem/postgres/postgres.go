package postgresrepo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/flatline-dot/skytrack-marketplace/internal/dal/postgres"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/orderitem"
)

// OrderItemDal represents the order item data access layer model.
type OrderItemDal struct {
	Id           int64 `db:"id"`
	OrderId      int64 `db:"order_id"`
	BookId       int64 `db:"book_id"`
	ShopId       int64 `db:"shop_id"`
	BookQuantity int   `db:"book_quantity"`
}

// ToModel converts OrderItemDal to the service layer OrderItem model.
func (oi *OrderItemDal) ToModel() *orderitem.OrderItem {
	return &orderitem.OrderItem{
		ID:           oi.Id,
		OrderID:      oi.OrderId,
		BookID:       oi.BookId,
		ShopID:       oi.ShopId,
		BookQuantity: oi.BookQuantity,
	}
}

// OrderItemDalFromModel converts the service layer OrderItem model to OrderItemDal.
func OrderItemDalFromModel(oi *orderitem.OrderItem) *OrderItemDal {
	return &OrderItemDal{
		Id:           oi.ID,
		OrderId:      oi.OrderID,
		BookId:       oi.BookID,
		ShopId:       oi.ShopID,
		BookQuantity: oi.BookQuantity,
	}
}

// PostgresOrderItemRepository represents a Postgres order item repository.
type PostgresOrderItemRepository struct {
	conn postgres.GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresOrderItemRepository creates a new Postgres order item repository.
func NewPostgresOrderItemRepository(conn postgres.GenericConn) *PostgresOrderItemRepository {
	return &PostgresOrderItemRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PostgresOrderItemRepository) buildBulkInsert(
	orderItems []orderitem.OrderItem,
) (string, []interface{}, error) {
	builder := r.sb.
		Insert("order_items").
		Columns("order_id", "book_id", "shop_id", "book_quantity")

	for _, oi := range orderItems {
		builder = builder.Values(oi.OrderID, oi.BookID, oi.ShopID, oi.BookQuantity)
	}

	return builder.
		Suffix("RETURNING id, order_id, book_id, shop_id, book_quantity").
		ToSql()
}

// BulkInsert inserts multiple order items and returns them with generated ids,
// preserving input order.
func (r *PostgresOrderItemRepository) BulkInsert(
	ctx context.Context,
	orderItems []orderitem.OrderItem,
) ([]orderitem.OrderItem, error) {
	if len(orderItems) == 0 {
		return []orderitem.OrderItem{}, nil
	}

	sql, args, err := r.buildBulkInsert(orderItems)
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk insert order items: %w", err)
	}
	defer rows.Close()

	var result []orderitem.OrderItem
	for rows.Next() {
		var dal OrderItemDal
		err := rows.Scan(&dal.Id, &dal.OrderId, &dal.BookId, &dal.ShopId, &dal.BookQuantity)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Query retrieves order items based on filter criteria.
func (r *PostgresOrderItemRepository) Query(
	ctx context.Context,
	filter *orderitem.QueryOrderItemsModel,
) ([]orderitem.OrderItem, error) {
	query := r.sb.
		Select("id", "order_id", "book_id", "shop_id", "book_quantity").
		From("order_items")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"id": filter.Ids})
	}

	if len(filter.OrderIds) > 0 {
		query = query.Where(sq.Eq{"order_id": filter.OrderIds})
	}

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	query = query.OrderBy("id ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var result []orderitem.OrderItem
	for rows.Next() {
		var dal OrderItemDal
		err := rows.Scan(&dal.Id, &dal.OrderId, &dal.BookId, &dal.ShopId, &dal.BookQuantity)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
