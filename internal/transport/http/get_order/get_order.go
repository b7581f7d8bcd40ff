package getorder

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/order"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/services/ordersvc"
	"github.com/flatline-dot/skytrack-marketplace/internal/transport/http/responses"
)

// service is an interface for the service layer.
type service interface {
	GetOrder(ctx context.Context, id int64) (*order.Order, error)
}

// GetOrder handles the get order request. The response always carries the full
// item list.
func GetOrder(w http.ResponseWriter, r *http.Request, service service) {
	id, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		responses.Detail(w, http.StatusNotFound, responses.Description{Description: "Order not found"})

		return
	}

	o, err := service.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, ordersvc.ErrOrderNotFound) {
			responses.Detail(w, http.StatusNotFound, responses.Description{Description: "Order not found"})

			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error getting order", "error", err)

		return
	}

	responses.JSON(w, http.StatusOK, o)
}
