package createorder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/date"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/order"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/orderitem"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/services/ordersvc"
	"github.com/flatline-dot/skytrack-marketplace/internal/transport/http/responses"
)

// service is an interface for the service layer.
type service interface {
	CreateOrder(ctx context.Context, o order.Order) (*order.Order, error)
}

// intField is an int64 that also accepts numeric strings, so bodies like
// {"user_id": "1"} decode the same as {"user_id": 1}.
type intField int64

func (f *intField) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		return nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer value %q", s)
	}
	*f = intField(v)

	return nil
}

// itemInCreateOrderRequest represents an item in a create order request.
type itemInCreateOrderRequest struct {
	BookID       intField `json:"book_id"       validate:"required"`
	ShopID       intField `json:"shop_id"       validate:"required"`
	BookQuantity intField `json:"book_quantity" validate:"required"`
}

// toModel converts itemInCreateOrderRequest to orderitem.OrderItem.
func (r *itemInCreateOrderRequest) toModel() orderitem.OrderItem {
	return orderitem.OrderItem{
		BookID:       int64(r.BookID),
		ShopID:       int64(r.ShopID),
		BookQuantity: int(r.BookQuantity),
	}
}

// createOrderRequest represents a create order request.
type createOrderRequest struct {
	RegDate    date.Date                  `json:"reg_date" validate:"required"`
	UserID     intField                   `json:"user_id"  validate:"required"`
	OrderItems []itemInCreateOrderRequest `json:"orderitems" validate:"dive"`
}

// Validate validates the create order request. An empty item list is allowed.
func (r *createOrderRequest) Validate() error {
	return validator.New().Struct(r)
}

// toModel converts createOrderRequest to order.Order.
func (r *createOrderRequest) toModel() order.Order {
	items := make([]orderitem.OrderItem, len(r.OrderItems))
	for i := range r.OrderItems {
		items[i] = r.OrderItems[i].toModel()
	}

	return order.Order{
		RegDate:    r.RegDate,
		UserID:     int64(r.UserID),
		OrderItems: items,
	}
}

// CreateOrder handles the create order request.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) {
	orderReq := createOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&orderReq); err != nil {
		responses.Detail(w, http.StatusUnprocessableEntity, responses.Description{Description: "Data entry error"})
		slog.Error("Error decoding request body for create order", "error", err)

		return
	}

	if err := orderReq.Validate(); err != nil {
		responses.Detail(w, http.StatusUnprocessableEntity, responses.Description{Description: "Data entry error"})
		slog.Error("Error validating request body for create order", "error", err)

		return
	}

	created, err := service.CreateOrder(r.Context(), orderReq.toModel())
	if err != nil {
		switch {
		case errors.Is(err, ordersvc.ErrUserNotFound):
			responses.Detail(w, http.StatusNotFound, responses.Description{Description: "User not found"})
		case errors.Is(err, ordersvc.ErrEntry):
			responses.Detail(w, http.StatusUnprocessableEntity, responses.Description{Description: "Data entry error"})
			slog.Error("Error creating order", "error", err)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
			slog.Error("Error creating order", "error", err)
		}

		return
	}

	responses.JSON(w, http.StatusOK, created)
}
