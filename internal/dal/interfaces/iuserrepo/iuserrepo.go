package iuserrepo

import (
	"context"

	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/user"
)

// IUserRepository is an interface for the user postgres repository.
type IUserRepository interface {
	Query(ctx context.Context, filter *user.QueryUsersModel) ([]user.User, error)
}
