package getbook

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/book"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/services/ordersvc"
	"github.com/flatline-dot/skytrack-marketplace/internal/transport/http/responses"
)

type service interface {
	GetBook(ctx context.Context, id int64) (*book.Book, error)
}

// GetBook handles the get book request.
func GetBook(w http.ResponseWriter, r *http.Request, service service) {
	id, err := strconv.ParseInt(chi.URLParam(r, "book_id"), 10, 64)
	if err != nil {
		responses.Detail(w, http.StatusNotFound, "Book not found")

		return
	}

	b, err := service.GetBook(r.Context(), id)
	if err != nil {
		if errors.Is(err, ordersvc.ErrBookNotFound) {
			responses.Detail(w, http.StatusNotFound, "Book not found")

			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error getting book", "error", err)

		return
	}

	responses.JSON(w, http.StatusOK, b)
}
