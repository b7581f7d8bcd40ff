package order

import (
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/date"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/orderitem"
)

// Order represents a customer order in the system.
type Order struct {
	ID         int64                 `json:"id"`
	RegDate    date.Date             `json:"reg_date"`
	UserID     int64                 `json:"user_id"`
	OrderItems []orderitem.OrderItem `json:"orderitems"`
}
