package outbox

import (
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/date"
)

// Routing configuration for order lifecycle events.
const (
	OrderCreatedQueue      = "marketplace.order.created"
	OrderCreatedRoutingKey = "marketplace.order.created"
)

// OrderCreatedEvent is the payload staged in the outbox when an order commits.
type OrderCreatedEvent struct {
	EventID string    `json:"event_id"`
	OrderID int64     `json:"order_id"`
	UserID  int64     `json:"user_id"`
	RegDate date.Date `json:"reg_date"`
	ItemIds []int64   `json:"item_ids"`
}
