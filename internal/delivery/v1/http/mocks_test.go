package http

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vinylcrate/go-backend/internal/cfg"
	"github.com/vinylcrate/go-backend/internal/domain"
	"github.com/vinylcrate/go-backend/internal/usecase"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{})            {}
func (nopLogger) Infof(format string, args ...interface{})             {}
func (nopLogger) Warnf(format string, args ...interface{})             {}
func (nopLogger) Errorf(err error, format string, args ...interface{}) {}

type mockHealthUC struct {
	res *usecase.HealthRes
	err error
}

func (m *mockHealthUC) Check(ctx context.Context) (*usecase.HealthRes, error) {
	return m.res, m.err
}

type mockCatalogUC struct {
	products []usecase.ProductSummary
	listErr  error
	product  *domain.Product
	getErr   error
}

func (m *mockCatalogUC) ListProducts(ctx context.Context) ([]usecase.ProductSummary, error) {
	return m.products, m.listErr
}

func (m *mockCatalogUC) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	return m.product, m.getErr
}

type mockCartUC struct {
	items        []usecase.CartItemInfo
	getErr       error
	item         *usecase.CartItemInfo
	addErr       error
	gotProductID int64
}

func (m *mockCartUC) GetCart(ctx context.Context, token string) ([]usecase.CartItemInfo, error) {
	return m.items, m.getErr
}

func (m *mockCartUC) AddItem(ctx context.Context, token string, productID int64) (*usecase.CartItemInfo, error) {
	m.gotProductID = productID
	return m.item, m.addErr
}

type mockOrderUC struct {
	res    *usecase.CheckoutRes
	err    error
	gotReq *usecase.CheckoutReq
}

func (m *mockOrderUC) Checkout(ctx context.Context, token string, req *usecase.CheckoutReq) (*usecase.CheckoutRes, error) {
	m.gotReq = req
	return m.res, m.err
}

func testSessionCfg() *cfg.SessionCfg {
	return &cfg.SessionCfg{
		Secret:     "test-secret",
		CookieName: "session_token",
		TTL:        time.Hour,
	}
}

// newTestRouter собирает полный роутер с мидлварой сессии поверх моков.
func newTestRouter(health usecase.HealthUC, catalog usecase.CatalogUC, cart usecase.CartUC, order usecase.OrderUC) *chi.Mux {
	r := chi.NewRouter()
	router := NewRouter(r, NewSessionManager(testSessionCfg()), nopLogger{})
	router.Init(health, catalog, cart, order)
	return r
}
