package getuser

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/user"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/services/ordersvc"
	"github.com/flatline-dot/skytrack-marketplace/internal/transport/http/responses"
)

// service is an interface for the service layer.
type service interface {
	GetUser(ctx context.Context, id int64) (*user.User, error)
}

// userResponse mirrors the public user shape: the id is not exposed.
type userResponse struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// GetUser handles the get user request.
func GetUser(w http.ResponseWriter, r *http.Request, service service) {
	id, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		responses.Detail(w, http.StatusNotFound, "User not found")

		return
	}

	u, err := service.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, ordersvc.ErrUserNotFound) {
			responses.Detail(w, http.StatusNotFound, "User not found")

			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error getting user", "error", err)

		return
	}

	responses.JSON(w, http.StatusOK, userResponse{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	})
}
