package listorders

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/date"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/order"
	"github.com/flatline-dot/skytrack-marketplace/internal/transport/http/responses"
)

// service is an interface for the service layer.
type service interface {
	ListUserOrders(ctx context.Context, userID int64) ([]order.Order, error)
}

// orderResponse is the list entry shape: items are not included on this path.
type orderResponse struct {
	ID      int64     `json:"id"`
	UserID  int64     `json:"user_id"`
	RegDate date.Date `json:"reg_date"`
}

// ListOrders handles the list user orders request. An unknown user id yields
// an empty list, matching the read path's contract.
func ListOrders(w http.ResponseWriter, r *http.Request, service service) {
	id, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		responses.JSON(w, http.StatusOK, []orderResponse{})

		return
	}

	orders, err := service.ListUserOrders(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error listing user orders", "error", err)

		return
	}

	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = orderResponse{
			ID:      o.ID,
			UserID:  o.UserID,
			RegDate: o.RegDate,
		}
	}

	responses.JSON(w, http.StatusOK, resp)
}
