package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/flatline-dot/skytrack-marketplace/internal/dal/postgres"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/date"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/order"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/orderitem"
)

// OrderDal represents the order data access layer model.
type OrderDal struct {
	Id      int64     `db:"id"`
	RegDate time.Time `db:"reg_date"`
	UserId  int64     `db:"user_id"`
}

// ToModel converts OrderDal to the service layer Order model.
func (o *OrderDal) ToModel() *order.Order {
	return &order.Order{
		ID:         o.Id,
		RegDate:    date.New(o.RegDate),
		UserID:     o.UserId,
		OrderItems: []orderitem.OrderItem{}, // Will be populated separately
	}
}

// PostgresOrderRepository represents a Postgres order repository.
type PostgresOrderRepository struct {
	conn postgres.GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresOrderRepository creates a new Postgres order repository.
func NewPostgresOrderRepository(conn postgres.GenericConn) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PostgresOrderRepository) buildInsert(o order.Order) (string, []interface{}, error) {
	return r.sb.
		Insert("orders").
		Columns("reg_date", "user_id").
		Values(o.RegDate, o.UserID).
		Suffix("RETURNING id, reg_date, user_id").
		ToSql()
}

// Insert inserts a single order and returns it with the generated id.
// The statement executes immediately on the supplied connection, so inside an
// open transaction the id is available before commit.
func (r *PostgresOrderRepository) Insert(ctx context.Context, o order.Order) (order.Order, error) {
	sql, args, err := r.buildInsert(o)
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to build insert query: %w", err)
	}

	var dal OrderDal
	if err := r.conn.QueryRow(ctx, sql, args...).Scan(&dal.Id, &dal.RegDate, &dal.UserId); err != nil {
		return order.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	inserted := dal.ToModel()
	inserted.OrderItems = o.OrderItems

	return *inserted, nil
}

// Query retrieves orders based on filter criteria.
func (r *PostgresOrderRepository) Query(
	ctx context.Context,
	filter *order.QueryOrdersModel,
) ([]order.Order, error) {
	query := r.sb.
		Select("id", "reg_date", "user_id").
		From("orders")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"id": filter.Ids})
	}

	if len(filter.UserIds) > 0 {
		query = query.Where(sq.Eq{"user_id": filter.UserIds})
	}

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var result []order.Order
	for rows.Next() {
		var dal OrderDal
		if err := rows.Scan(&dal.Id, &dal.RegDate, &dal.UserId); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
