package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/flatline-dot/skytrack-marketplace/internal/dal/postgres"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/book"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/date"
)

// BookDal represents the book data access layer model.
type BookDal struct {
	Id          int64     `db:"id"`
	Name        string    `db:"name"`
	Author      string    `db:"author"`
	ReleaseDate time.Time `db:"release_date"`
}

// ToModel converts BookDal to the service layer Book model.
func (b *BookDal) ToModel() *book.Book {
	return &book.Book{
		ID:          b.Id,
		Name:        b.Name,
		Author:      b.Author,
		ReleaseDate: date.New(b.ReleaseDate),
	}
}

// PostgresBookRepository represents a Postgres book repository.
type PostgresBookRepository struct {
	conn postgres.GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresBookRepository creates a new Postgres book repository.
func NewPostgresBookRepository(conn postgres.GenericConn) *PostgresBookRepository {
	return &PostgresBookRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Query retrieves books based on filter criteria.
func (r *PostgresBookRepository) Query(
	ctx context.Context,
	filter *book.QueryBooksModel,
) ([]book.Book, error) {
	query := r.sb.
		Select("id", "name", "author", "release_date").
		From("books")

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
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var result []book.Book
	for rows.Next() {
		var dal BookDal
		if err := rows.Scan(&dal.Id, &dal.Name, &dal.Author, &dal.ReleaseDate); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
