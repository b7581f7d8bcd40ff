package createorder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/date"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/order"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/orderitem"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/services/ordersvc"
)

type mockService struct{ mock.Mock }

func (m *mockService) CreateOrder(ctx context.Context, o order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func doCreateOrder(t *testing.T, svc service, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(body))
	rec := httptest.NewRecorder()
	CreateOrder(rec, req, svc)

	return rec
}

func TestCreateOrderHandler(t *testing.T) {
	regDate, err := date.Parse("2024-05-10")
	require.NoError(t, err)

	t.Run("created order is echoed back", func(t *testing.T) {
		svc := &mockService{}
		svc.On("CreateOrder", mock.Anything, order.Order{
			RegDate: regDate,
			UserID:  1,
			OrderItems: []orderitem.OrderItem{
				{BookID: 1, ShopID: 1, BookQuantity: 15},
			},
		}).Return(&order.Order{
			ID:      3,
			RegDate: regDate,
			UserID:  1,
			OrderItems: []orderitem.OrderItem{
				{ID: 10, OrderID: 3, BookID: 1, ShopID: 1, BookQuantity: 15},
			},
		}, nil)

		rec := doCreateOrder(t, svc, `{
			"reg_date": "2024-05-10",
			"user_id": 1,
			"orderitems": [{"book_id": 1, "shop_id": 1, "book_quantity": 15}]
		}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"id": 3,
			"reg_date": "2024-05-10",
			"user_id": 1,
			"orderitems": [{"id": 10, "book_id": 1, "shop_id": 1, "book_quantity": 15}]
		}`, rec.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("numeric strings decode like numbers", func(t *testing.T) {
		svc := &mockService{}
		svc.On("CreateOrder", mock.Anything, order.Order{
			RegDate: regDate,
			UserID:  2,
			OrderItems: []orderitem.OrderItem{
				{BookID: 4, ShopID: 5, BookQuantity: 6},
			},
		}).Return(&order.Order{ID: 1, RegDate: regDate, UserID: 2, OrderItems: []orderitem.OrderItem{}}, nil)

		rec := doCreateOrder(t, svc, `{
			"reg_date": "2024-05-10",
			"user_id": "2",
			"orderitems": [{"book_id": "4", "shop_id": "5", "book_quantity": "6"}]
		}`)

		require.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := &mockService{}
		svc.On("CreateOrder", mock.Anything, mock.Anything).
			Return(nil, ordersvc.ErrUserNotFound)

		rec := doCreateOrder(t, svc, `{"reg_date": "2024-05-10", "user_id": 999, "orderitems": []}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail": {"description": "User not found"}}`, rec.Body.String())
	})

	t.Run("storage rejection maps to 422", func(t *testing.T) {
		svc := &mockService{}
		svc.On("CreateOrder", mock.Anything, mock.Anything).
			Return(nil, ordersvc.ErrEntry)

		rec := doCreateOrder(t, svc, `{
			"reg_date": "2024-05-10",
			"user_id": 1,
			"orderitems": [{"book_id": 404, "shop_id": 1, "book_quantity": 1}]
		}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{"detail": {"description": "Data entry error"}}`, rec.Body.String())
	})

	t.Run("malformed body never reaches the service", func(t *testing.T) {
		svc := &mockService{}

		rec := doCreateOrder(t, svc, `{"reg_date": `)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{"detail": {"description": "Data entry error"}}`, rec.Body.String())
		svc.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("missing required fields fail validation", func(t *testing.T) {
		svc := &mockService{}

		rec := doCreateOrder(t, svc, `{"orderitems": [{"book_id": 1, "shop_id": 1, "book_quantity": 1}]}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		svc.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("non-numeric id is a decode error", func(t *testing.T) {
		svc := &mockService{}

		rec := doCreateOrder(t, svc, `{"reg_date": "2024-05-10", "user_id": "abc", "orderitems": []}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		svc.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})
}

func TestIntFieldUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    intField
		wantErr bool
	}{
		{name: "number", input: `7`, want: 7},
		{name: "quoted number", input: `"7"`, want: 7},
		{name: "null keeps zero", input: `null`, want: 0},
		{name: "word", input: `"seven"`, wantErr: true},
		{name: "float", input: `1.5`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f intField
			err := json.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
		})
	}
}
