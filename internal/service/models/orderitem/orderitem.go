package orderitem

// OrderItem represents a single book position within an order.
type OrderItem struct {
	ID           int64 `json:"id"`
	OrderID      int64 `json:"-"`
	BookID       int64 `json:"book_id"`
	ShopID       int64 `json:"shop_id"`
	BookQuantity int   `json:"book_quantity"`
}
