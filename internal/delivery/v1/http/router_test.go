package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinylcrate/go-backend/internal/domain"
	"github.com/vinylcrate/go-backend/internal/usecase"
	"github.com/vinylcrate/go-backend/pkg/e"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHealthCheckRoute(t *testing.T) {
	r := newTestRouter(
		&mockHealthUC{res: usecase.NewHealthRes("successfully connected")},
		&mockCatalogUC{}, &mockCartUC{}, &mockOrderUC{},
	)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/health-check", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "successfully connected", resp.Message)
}

func TestListProductsRoute(t *testing.T) {
	r := newTestRouter(
		&mockHealthUC{},
		&mockCatalogUC{products: []usecase.ProductSummary{
			{ID: 1, Name: "Rumours", Price: 2999, BandName: "Fleetwood Mac"},
		}},
		&mockCartUC{}, &mockOrderUC{},
	)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []ProductSummaryResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, int64(1), resp[0].ProductID)
	assert.Equal(t, "Fleetwood Mac", resp[0].BandName)
}

func TestGetProductRoute_NonNumericID(t *testing.T) {
	r := newTestRouter(&mockHealthUC{}, &mockCatalogUC{}, &mockCartUC{}, &mockOrderUC{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products/abc", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "abc is not a valid productId", decodeError(t, rec).Message)
}

func TestGetProductRoute_Unknown(t *testing.T) {
	r := newTestRouter(
		&mockHealthUC{},
		&mockCatalogUC{getErr: e.NotFound("42 is not a valid productId")},
		&mockCartUC{}, &mockOrderUC{},
	)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products/42", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "42 is not a valid productId", decodeError(t, rec).Message)
}

func TestGetProductRoute_Success(t *testing.T) {
	r := newTestRouter(
		&mockHealthUC{},
		&mockCatalogUC{product: &domain.Product{
			ID:        3,
			Name:      "Kind of Blue",
			Price:     2750,
			BandName:  "Miles Davis",
			Genre:     "Jazz",
			Year:      1959,
			CreatedAt: time.Now(),
		}},
		&mockCartUC{}, &mockOrderUC{},
	)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products/3", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ProductDetailResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(3), resp.ProductID)
	assert.Equal(t, "Miles Davis", resp.BandName)
	assert.Equal(t, int32(1959), resp.Year)
}

func TestGetCartRoute_EmptySessionReturnsEmptyArray(t *testing.T) {
	r := newTestRouter(
		&mockHealthUC{}, &mockCatalogUC{},
		&mockCartUC{items: []usecase.CartItemInfo{}},
		&mockOrderUC{},
	)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/cart", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestAddToCartRoute_BadProductID(t *testing.T) {
	r := newTestRouter(&mockHealthUC{}, &mockCatalogUC{}, &mockCartUC{}, &mockOrderUC{})

	bodies := []string{
		`{"productId":"abc"}`,
		`{"productId":3.5}`,
		`{}`,
		``,
	}

	for _, body := range bodies {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/cart", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, "body: %q", body)
		assert.Equal(t, "productId must be a positive integer", decodeError(t, rec).Message, "body: %q", body)
	}
}

func TestAddToCartRoute_Success(t *testing.T) {
	cartUC := &mockCartUC{
		item: &usecase.CartItemInfo{
			CartItemID: 101,
			ProductID:  3,
			Price:      2599,
			Name:       "Abbey Road",
			BandName:   "The Beatles",
		},
	}
	r := newTestRouter(&mockHealthUC{}, &mockCatalogUC{}, cartUC, &mockOrderUC{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/cart", bytes.NewBufferString(`{"productId":3}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(3), cartUC.gotProductID)

	var resp CartItemResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(101), resp.CartItemID)
	assert.Equal(t, "The Beatles", resp.BandName)
}

func TestCreateOrderRoute_EmptyBodyReportsMissingCart(t *testing.T) {
	orderUC := &mockOrderUC{err: e.BadRequest("valid cartId is required")}
	r := newTestRouter(&mockHealthUC{}, &mockCatalogUC{}, &mockCartUC{}, orderUC)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString("")))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "valid cartId is required", decodeError(t, rec).Message)
	require.NotNil(t, orderUC.gotReq)
	assert.Empty(t, orderUC.gotReq.Name)
}

func TestCreateOrderRoute_Success(t *testing.T) {
	orderUC := &mockOrderUC{
		res: &usecase.CheckoutRes{
			OrderID:         21,
			CreatedAt:       time.Now(),
			Name:            "Ann",
			CreditCard:      "4111",
			ShippingAddress: "street",
		},
	}
	r := newTestRouter(&mockHealthUC{}, &mockCatalogUC{}, &mockCartUC{}, orderUC)

	body := `{"name":"Ann","creditCard":"4111","shippingAddress":"street"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp OrderResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(21), resp.OrderID)
	assert.Equal(t, "Ann", resp.Name)

	require.NotNil(t, orderUC.gotReq)
	assert.Equal(t, "4111", orderUC.gotReq.CreditCard)
}

func TestUnknownAPIRoute(t *testing.T) {
	r := newTestRouter(&mockHealthUC{}, &mockCatalogUC{}, &mockCartUC{}, &mockOrderUC{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/nothing-here", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "cannot GET /api/nothing-here", decodeError(t, rec).Message)
}

func TestUnknownMethodOnKnownRoute(t *testing.T) {
	r := newTestRouter(&mockHealthUC{}, &mockCatalogUC{}, &mockCartUC{}, &mockOrderUC{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/products", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "cannot DELETE /api/products", decodeError(t, rec).Message)
}

func TestInternalErrorIsMasked(t *testing.T) {
	r := newTestRouter(
		&mockHealthUC{},
		&mockCatalogUC{listErr: errors.New("pq: relation does not exist")},
		&mockCartUC{}, &mockOrderUC{},
	)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "an unexpected error occurred", resp.Message)
	assert.NotContains(t, resp.Message, "relation")
}
