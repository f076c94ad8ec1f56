package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/vinylcrate/go-backend/docs" // Импорт сгенерированных файлов
	"github.com/vinylcrate/go-backend/internal/usecase"
	"github.com/vinylcrate/go-backend/pkg/e"
	"github.com/vinylcrate/go-backend/pkg/logger"
)

type Router struct {
	router  *chi.Mux
	session *SessionManager
	logger  logger.Logger
}

func NewRouter(router *chi.Mux, session *SessionManager, logger logger.Logger) *Router {
	return &Router{router: router, session: session, logger: logger}
}

func (r *Router) Init(healthUC usecase.HealthUC, catalogUC usecase.CatalogUC, cartUC usecase.CartUC, orderUC usecase.OrderUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api", func(api chi.Router) {
		api.Use(r.session.Middleware)

		healthHandler := NewHealthHandler(healthUC, r.logger)
		api.Get("/health-check", healthHandler.healthCheck)

		prHandler := NewProductHandler(catalogUC, r.logger)
		registerProductRoutes(api, prHandler)

		cartHandler := NewCartHandler(cartUC, r.logger)
		registerCartRoutes(api, cartHandler)

		orderHandler := NewOrderHandler(orderUC, r.logger)
		registerOrderRoutes(api, orderHandler)

		// Любой несовпавший путь под /api — клиентская 404 с методом и путём
		api.NotFound(r.apiNotFound)
		api.MethodNotAllowed(r.apiNotFound)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Get("/{productId}", prHandler.getProduct)
	})
}

func registerCartRoutes(router chi.Router, cartHandler *CartHandler) {
	router.Route("/cart", func(cart chi.Router) {
		cart.Get("/", cartHandler.getCart)
		cart.Post("/", cartHandler.addToCart)
	})
}

func registerOrderRoutes(router chi.Router, orderHandler *OrderHandler) {
	router.Route("/orders", func(orders chi.Router) {
		orders.Post("/", orderHandler.createOrder)
	})
}

func (r *Router) apiNotFound(w http.ResponseWriter, req *http.Request) {
	WriteError(w, r.logger, e.NotFound("cannot %s %s", req.Method, req.URL.Path))
}
