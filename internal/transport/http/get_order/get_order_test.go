package getorder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/date"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/order"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/orderitem"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/services/ordersvc"
)

type mockService struct{ mock.Mock }

func (m *mockService) GetOrder(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func doGetOrder(t *testing.T, svc service, path string) *httptest.ResponseRecorder {
	t.Helper()

	router := chi.NewRouter()
	router.Get("/order/{order_id}", func(w http.ResponseWriter, r *http.Request) {
		GetOrder(w, r, svc)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestGetOrderHandler(t *testing.T) {
	regDate, err := date.Parse("2024-05-10")
	require.NoError(t, err)

	t.Run("order with items", func(t *testing.T) {
		svc := &mockService{}
		svc.On("GetOrder", mock.Anything, int64(1)).
			Return(&order.Order{
				ID:      1,
				RegDate: regDate,
				UserID:  2,
				OrderItems: []orderitem.OrderItem{
					{ID: 10, OrderID: 1, BookID: 1, ShopID: 1, BookQuantity: 15},
				},
			}, nil)

		rec := doGetOrder(t, svc, "/order/1")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"id": 1,
			"reg_date": "2024-05-10",
			"user_id": 2,
			"orderitems": [{"id": 10, "book_id": 1, "shop_id": 1, "book_quantity": 15}]
		}`, rec.Body.String())
	})

	t.Run("order without items keeps an empty array", func(t *testing.T) {
		svc := &mockService{}
		svc.On("GetOrder", mock.Anything, int64(5)).
			Return(&order.Order{ID: 5, RegDate: regDate, UserID: 2, OrderItems: []orderitem.OrderItem{}}, nil)

		rec := doGetOrder(t, svc, "/order/5")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id": 5, "reg_date": "2024-05-10", "user_id": 2, "orderitems": []}`, rec.Body.String())
	})

	t.Run("unknown order", func(t *testing.T) {
		svc := &mockService{}
		svc.On("GetOrder", mock.Anything, int64(42)).
			Return(nil, ordersvc.ErrOrderNotFound)

		rec := doGetOrder(t, svc, "/order/42")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail": {"description": "Order not found"}}`, rec.Body.String())
	})

	t.Run("non-numeric id never reaches the service", func(t *testing.T) {
		svc := &mockService{}

		rec := doGetOrder(t, svc, "/order/abc")

		require.Equal(t, http.StatusNotFound, rec.Code)
		svc.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
	})
}
