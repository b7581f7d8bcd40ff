package getshop

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/shop"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/services/ordersvc"
	"github.com/flatline-dot/skytrack-marketplace/internal/transport/http/responses"
)

type service interface {
	GetShop(ctx context.Context, id int64) (*shop.Shop, error)
}

// GetShop handles the get shop request.
func GetShop(w http.ResponseWriter, r *http.Request, service service) {
	id, err := strconv.ParseInt(chi.URLParam(r, "shop_id"), 10, 64)
	if err != nil {
		responses.Detail(w, http.StatusNotFound, "Shop not found")

		return
	}

	s, err := service.GetShop(r.Context(), id)
	if err != nil {
		if errors.Is(err, ordersvc.ErrShopNotFound) {
			responses.Detail(w, http.StatusNotFound, "Shop not found")

			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error getting shop", "error", err)

		return
	}

	responses.JSON(w, http.StatusOK, s)
}
