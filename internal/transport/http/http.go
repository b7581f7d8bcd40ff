package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"

	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/book"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/order"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/shop"
	"github.com/flatline-dot/skytrack-marketplace/internal/service/models/user"
	createorder "github.com/flatline-dot/skytrack-marketplace/internal/transport/http/create_order"
	getbook "github.com/flatline-dot/skytrack-marketplace/internal/transport/http/get_book"
	getorder "github.com/flatline-dot/skytrack-marketplace/internal/transport/http/get_order"
	getshop "github.com/flatline-dot/skytrack-marketplace/internal/transport/http/get_shop"
	getuser "github.com/flatline-dot/skytrack-marketplace/internal/transport/http/get_user"
	listorders "github.com/flatline-dot/skytrack-marketplace/internal/transport/http/list_orders"
	"github.com/flatline-dot/skytrack-marketplace/pkg/http/middleware/trace"
	"github.com/flatline-dot/skytrack-marketplace/pkg/logger"
)

type service interface {
	GetUser(ctx context.Context, id int64) (*user.User, error)
	ListUserOrders(ctx context.Context, userID int64) ([]order.Order, error)
	GetOrder(ctx context.Context, id int64) (*order.Order, error)
	CreateOrder(ctx context.Context, o order.Order) (*order.Order, error)
	GetBook(ctx context.Context, id int64) (*book.Book, error)
	GetShop(ctx context.Context, id int64) (*shop.Shop, error)
}

type HTTPTransport struct {
	server  *http.Server
	router  *chi.Mux
	service service
}

func NewHTTPTransport(service service) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:  server,
		router:  router,
		service: service,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Get("/user/{user_id}", h.getUser)
	h.router.Get("/user/{user_id}/orders", h.listOrders)
	h.router.Post("/order", h.createOrder)
	h.router.Get("/order/{order_id}", h.getOrder)
	h.router.Get("/book/{book_id}", h.getBook)
	h.router.Get("/shop/{shop_id}", h.getShop)
}

func (h *HTTPTransport) getUser(w http.ResponseWriter, r *http.Request) {
	getuser.GetUser(w, r, h.service)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	listorders.ListOrders(w, r, h.service)
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	createorder.CreateOrder(w, r, h.service)
}

func (h *HTTPTransport) getOrder(w http.ResponseWriter, r *http.Request) {
	getorder.GetOrder(w, r, h.service)
}

func (h *HTTPTransport) getBook(w http.ResponseWriter, r *http.Request) {
	getbook.GetBook(w, r, h.service)
}

func (h *HTTPTransport) getShop(w http.ResponseWriter, r *http.Request) {
	getshop.GetShop(w, r, h.service)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(trace.NewTraceMiddleware)

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
