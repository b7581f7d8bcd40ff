package postgresrepo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/flatline-dot/skytrack-marketplace/internal/dal/postgres"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/shop"
)

// ShopDal represents the shop data access layer model.
type ShopDal struct {
	Id      int64  `db:"id"`
	Name    string `db:"name"`
	Address string `db:"address"`
}

// ToModel converts ShopDal to the service layer Shop model.
func (s *ShopDal) ToModel() *shop.Shop {
	return &shop.Shop{
		ID:      s.Id,
		Name:    s.Name,
		Address: s.Address,
	}
}

// PostgresShopRepository represents a Postgres shop repository.
type PostgresShopRepository struct {
	conn postgres.GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresShopRepository creates a new Postgres shop repository.
func NewPostgresShopRepository(conn postgres.GenericConn) *PostgresShopRepository {
	return &PostgresShopRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Query retrieves shops based on filter criteria.
func (r *PostgresShopRepository) Query(
	ctx context.Context,
	filter *shop.QueryShopsModel,
) ([]shop.Shop, error) {
	query := r.sb.
		Select("id", "name", "address").
		From("shops")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"id": filter.Ids})
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
		return nil, fmt.Errorf("failed to query shops: %w", err)
	}
	defer rows.Close()

	var result []shop.Shop
	for rows.Next() {
		var dal ShopDal
		if err := rows.Scan(&dal.Id, &dal.Name, &dal.Address); err != nil {
			return nil, fmt.Errorf("failed to scan shop: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
