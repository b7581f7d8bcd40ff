package uow

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/flatline-dot/skytrack-marketplace/internal/dal/interfaces/ibookrepo"
	"github.com/flatline-dot/skytrack-marketplace/internal/dal/interfaces/iorderitemrepo"
	"github.com/flatline-dot/skytrack-marketplace/internal/dal/interfaces/iorderrepo"
	"github.com/flatline-dot/skytrack-marketplace/internal/dal/interfaces/ioutboxrepo"
	"github.com/flatline-dot/skytrack-marketplace/internal/dal/interfaces/ishoprepo"
	"github.com/flatline-dot/skytrack-marketplace/internal/dal/interfaces/iuserrepo"
	"github.com/flatline-dot/skytrack-marketplace/internal/dal/postgres"
	bookrepo "github.com/flatline-dot/skytrack-marketplace/internal/dal/repositories/book/postgres"
	orderrepo "github.com/flatline-dot/skytrack-marketplace/internal/dal/repositories/order/postgres"
	orderitemrepo "github.com/flatline-dot/skytrack-marketplace/internal/dal/repositories/orderitem/postgres"
	outboxrepo "github.com/flatline-dot/skytrack-marketplace/internal/dal/repositories/outbox/postgres"
	shoprepo "github.com/flatline-dot/skytrack-marketplace/internal/dal/repositories/shop/postgres"
	userrepo "github.com/flatline-dot/skytrack-marketplace/internal/dal/repositories/user/postgres"
)

// unitOfWork scopes repository access to a single request. Before Begin the
// repositories run on the pool; after Begin they run on one transaction until
// Commit or Rollback.
type unitOfWork struct {
	client *postgres.Client
	tx     pgx.Tx

	userRepo      iuserrepo.IUserRepository
	orderRepo     iorderrepo.IOrderRepository
	orderItemRepo iorderitemrepo.IOrderItemRepository
	bookRepo      ibookrepo.IBookRepository
	shopRepo      ishoprepo.IShopRepository
	outboxRepo    ioutboxrepo.IOutboxRepository
}

// NewUnitOfWork creates a unit of work bound to the connection pool.
func NewUnitOfWork(client *postgres.Client) *unitOfWork {
	u := &unitOfWork{client: client}
	u.bindRepositories(client.Pool())

	return u
}

func (u *unitOfWork) bindRepositories(conn postgres.GenericConn) {
	u.userRepo = userrepo.NewPostgresUserRepository(conn)
	u.orderRepo = orderrepo.NewPostgresOrderRepository(conn)
	u.orderItemRepo = orderitemrepo.NewPostgresOrderItemRepository(conn)
	u.bookRepo = bookrepo.NewPostgresBookRepository(conn)
	u.shopRepo = shoprepo.NewPostgresShopRepository(conn)
	u.outboxRepo = outboxrepo.NewOutboxRepository(conn)
}

func (u *unitOfWork) UserRepository() iuserrepo.IUserRepository {
	return u.userRepo
}

func (u *unitOfWork) OrderRepository() iorderrepo.IOrderRepository {
	return u.orderRepo
}

func (u *unitOfWork) OrderItemRepository() iorderitemrepo.IOrderItemRepository {
	return u.orderItemRepo
}

func (u *unitOfWork) BookRepository() ibookrepo.IBookRepository {
	return u.bookRepo
}

func (u *unitOfWork) ShopRepository() ishoprepo.IShopRepository {
	return u.shopRepo
}

func (u *unitOfWork) OutboxRepository() ioutboxrepo.IOutboxRepository {
	return u.outboxRepo
}

// Begin opens a transaction and rebinds the repositories to it.
func (u *unitOfWork) Begin(ctx context.Context) error {
	tx, err := u.client.Pool().Begin(ctx)
	if err != nil {
		return err
	}

	u.tx = tx
	u.bindRepositories(tx)

	return nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}

	return u.tx.Commit(ctx)
}

// Rollback aborts the transaction. After a successful Commit it is a no-op, so
// it can be deferred for guaranteed release on every exit path.
func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}

	if err := u.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}

	return nil
}
