package ishoprepo

import (
	"context"

	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/shop"
)

// IShopRepository is an interface for the shop postgres repository.
type IShopRepository interface {
	Query(ctx context.Context, filter *shop.QueryShopsModel) ([]shop.Shop, error)
}
