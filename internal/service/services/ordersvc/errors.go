package ordersvc

import "errors"

var (
	// ErrUserNotFound is returned when a lookup or an order creation references
	// a user that does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrOrderNotFound is returned when an order lookup finds no row.
	ErrOrderNotFound = errors.New("order not found")

	// ErrBookNotFound is returned when a book lookup finds no row.
	ErrBookNotFound = errors.New("book not found")

	// ErrShopNotFound is returned when a shop lookup finds no row.
	ErrShopNotFound = errors.New("shop not found")

	// ErrEntry covers any storage failure inside the order-creation
	// transaction after the user-existence check. The transaction is fully
	// rolled back and the specific cause is not further categorized.
	ErrEntry = errors.New("data entry error")
)
