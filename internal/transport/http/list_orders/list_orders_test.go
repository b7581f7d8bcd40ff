package listorders

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/date"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/order"
)

type mockService struct{ mock.Mock }

func (m *mockService) ListUserOrders(ctx context.Context, userID int64) ([]order.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]order.Order), args.Error(1)
}

func doListOrders(t *testing.T, svc service, path string) *httptest.ResponseRecorder {
	t.Helper()

	router := chi.NewRouter()
	router.Get("/user/{user_id}/orders", func(w http.ResponseWriter, r *http.Request) {
		ListOrders(w, r, svc)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestListOrdersHandler(t *testing.T) {
	regDate, err := date.Parse("2024-05-10")
	require.NoError(t, err)

	t.Run("orders are listed without items", func(t *testing.T) {
		svc := &mockService{}
		svc.On("ListUserOrders", mock.Anything, int64(1)).
			Return([]order.Order{
				{ID: 1, UserID: 1, RegDate: regDate},
				{ID: 2, UserID: 1, RegDate: regDate},
			}, nil)

		rec := doListOrders(t, svc, "/user/1/orders")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[
			{"id": 1, "user_id": 1, "reg_date": "2024-05-10"},
			{"id": 2, "user_id": 1, "reg_date": "2024-05-10"}
		]`, rec.Body.String())
	})

	t.Run("unknown user gets an empty list", func(t *testing.T) {
		svc := &mockService{}
		svc.On("ListUserOrders", mock.Anything, int64(999)).
			Return([]order.Order{}, nil)

		rec := doListOrders(t, svc, "/user/999/orders")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("non-numeric id gets an empty list without a service call", func(t *testing.T) {
		svc := &mockService{}

		rec := doListOrders(t, svc, "/user/abc/orders")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
		svc.AssertNotCalled(t, "ListUserOrders", mock.Anything, mock.Anything)
	})

	t.Run("storage error", func(t *testing.T) {
		svc := &mockService{}
		svc.On("ListUserOrders", mock.Anything, int64(1)).
			Return([]order.Order(nil), errors.New("connection reset"))

		rec := doListOrders(t, svc, "/user/1/orders")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
