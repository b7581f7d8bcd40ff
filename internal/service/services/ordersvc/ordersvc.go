package ordersvc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flatline-dot/skytrack-marketplace/internal/dal/interfaces/ibookrepo"
	"github.com/flatline-dot/skytrack-marketplace/internal/dal/interfaces/iorderitemrepo"
	"github.com/flatline-dot/skytrack-marketplace/internal/dal/interfaces/iorderrepo"
	"github.com/flatline-dot/skytrack-marketplace/internal/dal/interfaces/ioutboxrepo"
	"github.com/flatline-dot/skytrack-marketplace/internal/dal/interfaces/ishoprepo"
	"github.com/flatline-dot/skytrack-marketplace/internal/dal/interfaces/iuserrepo"
	"github.com/flatline-dot/skytrack-marketplace/internal/dal/postgres"
	"github.com/flatline-dot/skytrack-marketplace/internal/dal/uow"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/book"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/order"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/orderitem"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/outbox"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/shop"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/user"
)

const outboxMaxRetries = 5

// OrderService is a service for managing users, orders and reference data.
type OrderService struct {
	pgClient   *postgres.Client
	uowFactory func() unitOfWork
}

type unitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	UserRepository() iuserrepo.IUserRepository
	OrderRepository() iorderrepo.IOrderRepository
	OrderItemRepository() iorderitemrepo.IOrderItemRepository
	BookRepository() ibookrepo.IBookRepository
	ShopRepository() ishoprepo.IShopRepository
	OutboxRepository() ioutboxrepo.IOutboxRepository
}

func (s *OrderService) newUOW() unitOfWork {
	return s.uowFactory()
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.uowFactory == nil {
		s.uowFactory = func() unitOfWork {
			return uow.NewUnitOfWork(s.pgClient)
		}
	}

	return s
}

// WithPostgresClient sets the Postgres client for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *OrderService) {
		s.pgClient = pgClient
	}
}

// GetUser retrieves a single user by id.
func (s *OrderService) GetUser(ctx context.Context, id int64) (*user.User, error) {
	work := s.newUOW()

	users, err := work.UserRepository().Query(ctx, &user.QueryUsersModel{Ids: []int64{id}})
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if len(users) == 0 {
		return nil, ErrUserNotFound
	}

	return &users[0], nil
}

// ListUserOrders retrieves the orders of a user, without items. An unknown
// user yields an empty list, not an error: user existence is deliberately not
// re-validated on this path.
func (s *OrderService) ListUserOrders(ctx context.Context, userID int64) ([]order.Order, error) {
	work := s.newUOW()

	orders, err := work.OrderRepository().Query(ctx, &order.QueryOrdersModel{UserIds: []int64{userID}})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	if orders == nil {
		orders = []order.Order{}
	}

	return orders, nil
}

// GetOrder retrieves a single order with its items eagerly loaded.
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*order.Order, error) {
	work := s.newUOW()

	orders, err := work.OrderRepository().Query(ctx, &order.QueryOrdersModel{Ids: []int64{id}})
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if len(orders) == 0 {
		return nil, ErrOrderNotFound
	}

	found := orders[0]

	items, err := work.OrderItemRepository().Query(ctx, &orderitem.QueryOrderItemsModel{
		OrderIds: []int64{found.ID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}

	found.OrderItems = []orderitem.OrderItem{}
	found.OrderItems = append(found.OrderItems, items...)

	return &found, nil
}

// GetBook retrieves a single book by id.
func (s *OrderService) GetBook(ctx context.Context, id int64) (*book.Book, error) {
	work := s.newUOW()

	books, err := work.BookRepository().Query(ctx, &book.QueryBooksModel{Ids: []int64{id}})
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	if len(books) == 0 {
		return nil, ErrBookNotFound
	}

	return &books[0], nil
}

// GetShop retrieves a single shop by id.
func (s *OrderService) GetShop(ctx context.Context, id int64) (*shop.Shop, error) {
	work := s.newUOW()

	shops, err := work.ShopRepository().Query(ctx, &shop.QueryShopsModel{Ids: []int64{id}})
	if err != nil {
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	if len(shops) == 0 {
		return nil, ErrShopNotFound
	}

	return &shops[0], nil
}

// CreateOrder creates an order with its items as one atomic unit of work.
//
// The parent row is inserted first and its generated id is obtained inside the
// open transaction, since the item rows need it for their foreign key. Any
// storage failure after the user-existence check rolls the whole unit back and
// surfaces as ErrEntry; no partial state remains visible.
func (s *OrderService) CreateOrder(ctx context.Context, o order.Order) (*order.Order, error) {
	work := s.newUOW()

	if err := work.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = work.Rollback(ctx)
	}()

	users, err := work.UserRepository().Query(ctx, &user.QueryUsersModel{Ids: []int64{o.UserID}})
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}

	inserted, err := work.OrderRepository().Insert(ctx, o)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntry, err)
	}

	items := make([]orderitem.OrderItem, len(o.OrderItems))
	for i, item := range o.OrderItems {
		item.OrderID = inserted.ID
		items[i] = item
	}

	items, err = work.OrderItemRepository().BulkInsert(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntry, err)
	}
	inserted.OrderItems = items

	if err := s.stageOrderCreatedEvent(ctx, work, inserted); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntry, err)
	}

	if err := work.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntry, err)
	}

	return &inserted, nil
}

// stageOrderCreatedEvent writes the order.created event into the outbox within
// the same transaction as the order itself.
func (s *OrderService) stageOrderCreatedEvent(
	ctx context.Context,
	work unitOfWork,
	o order.Order,
) error {
	itemIds := make([]int64, len(o.OrderItems))
	for i, item := range o.OrderItems {
		itemIds[i] = item.ID
	}

	payload, err := json.Marshal(outbox.OrderCreatedEvent{
		EventID: uuid.NewString(),
		OrderID: o.ID,
		UserID:  o.UserID,
		RegDate: o.RegDate,
		ItemIds: itemIds,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal order created event: %w", err)
	}

	now := time.Now()

	return work.OutboxRepository().Insert(ctx, outbox.OutboxMessage{
		QueueName:   outbox.OrderCreatedQueue,
		RoutingKey:  outbox.OrderCreatedRoutingKey,
		Payload:     payload,
		ContentType: "application/json",
		MaxRetries:  outboxMaxRetries,
		CreatedAt:   now,
		UpdatedAt:   now,
		NextRetryAt: now,
	})
}
