package book

import (
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/date"
)

// Book represents a catalog book referenced by order items.
type Book struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Author      string    `json:"author"`
	ReleaseDate date.Date `json:"release_date"`
}

// QueryBooksModel represents filter parameters for querying books.
type QueryBooksModel struct {
	Ids    []int64 `json:"ids,omitempty"`
	Limit  int     `json:"limit,omitempty"`
	Offset int     `json:"offset,omitempty"`
}
