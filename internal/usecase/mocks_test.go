package usecase

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vinylcrate/go-backend/internal/domain"
)

// nopLogger гасит логи в тестах.
type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{})            {}
func (nopLogger) Infof(format string, args ...interface{})             {}
func (nopLogger) Warnf(format string, args ...interface{})             {}
func (nopLogger) Errorf(err error, format string, args ...interface{}) {}

// fakeTx реализует pgx.Tx; запросы в тестах не выполняются,
// нужны только Commit и Rollback.
type fakeTx struct {
	commits   int
	rollbacks int
}

func (f *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return f, nil }
func (f *fakeTx) Commit(ctx context.Context) error {
	f.commits++
	return nil
}
func (f *fakeTx) Rollback(ctx context.Context) error {
	f.rollbacks++
	return nil
}
func (f *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (f *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (f *fakeTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (f *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (f *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (f *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (f *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (f *fakeTx) Conn() *pgx.Conn                                               { return nil }

// mockDB реализует transaction.Transactional поверх fakeTx.
type mockDB struct {
	tx *fakeTx
}

func newMockDB() *mockDB {
	return &mockDB{tx: &fakeTx{}}
}

func (m *mockDB) Begin(ctx context.Context) (pgx.Tx, error) { return m.tx, nil }
func (m *mockDB) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	return m.tx, nil
}

type mockSessionRepo struct {
	cartID   int64
	hasCart  bool
	getErr   error
	setCart  *int64
	setErr   error
	cleared  bool
	clearErr error
}

func (m *mockSessionRepo) GetCartID(ctx context.Context, token string) (int64, bool, error) {
	return m.cartID, m.hasCart, m.getErr
}

func (m *mockSessionRepo) SetCartID(ctx context.Context, token string, cartID int64) error {
	m.setCart = &cartID
	return m.setErr
}

func (m *mockSessionRepo) ClearCartID(ctx context.Context, token string) error {
	m.cleared = true
	return m.clearErr
}

type mockProductRepo struct {
	products []ProductSummary
	listErr  error
	product  *domain.Product
	getErr   error
	price    int64
	priceErr error
}

func (m *mockProductRepo) List(ctx context.Context) ([]ProductSummary, error) {
	return m.products, m.listErr
}

func (m *mockProductRepo) GetByID(ctx context.Context, productID int64) (*domain.Product, error) {
	return m.product, m.getErr
}

func (m *mockProductRepo) GetPrice(ctx context.Context, productID int64) (int64, error) {
	return m.price, m.priceErr
}

type mockCartRepo struct {
	createdCart  *domain.Cart
	createErr    error
	createCalled bool
	insertedItem *domain.CartItem
	insertID     int64
	insertErr    error
	item         *CartItemInfo
	getItemErr   error
	listItems    []CartItemInfo
	listItemsErr error
	listedCartID int64
}

func (m *mockCartRepo) CreateCart(ctx context.Context) (*domain.Cart, error) {
	m.createCalled = true
	return m.createdCart, m.createErr
}

func (m *mockCartRepo) InsertItem(ctx context.Context, item *domain.CartItem) (int64, error) {
	m.insertedItem = item
	return m.insertID, m.insertErr
}

func (m *mockCartRepo) GetItem(ctx context.Context, cartItemID int64) (*CartItemInfo, error) {
	return m.item, m.getItemErr
}

func (m *mockCartRepo) ListItems(ctx context.Context, cartID int64) ([]CartItemInfo, error) {
	m.listedCartID = cartID
	return m.listItems, m.listItemsErr
}

type mockOrderRepo struct {
	created       *domain.Order
	createErr     error
	receivedOrder *domain.Order
}

func (m *mockOrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	m.receivedOrder = order
	return m.created, m.createErr
}

type mockOutboxRepo struct {
	event     *OutboxEvent
	createErr error
}

func (m *mockOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	m.event = event
	return event, m.createErr
}

func (m *mockOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (m *mockOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	return nil
}
