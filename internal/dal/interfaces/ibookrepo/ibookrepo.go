package ibookrepo

import (
	"context"

	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/book"
)

// IBookRepository is an interface for the book postgres repository.
type IBookRepository interface {
	Query(ctx context.Context, filter *book.QueryBooksModel) ([]book.Book, error)
}
