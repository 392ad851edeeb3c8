package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appLabels "github.com/pabloarenaso/Criemos-visor-pedidos/internal/application/labels"
	appOrders "github.com/pabloarenaso/Criemos-visor-pedidos/internal/application/orders"
	appOverrides "github.com/pabloarenaso/Criemos-visor-pedidos/internal/application/overrides"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/orders"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/override"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/shared"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/shared/valueobject"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/interfaces/http/router"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubSource is a canned orders.DataSource for handler tests
type stubSource struct {
	orders     map[int64]orders.Order
	fulfillErr map[int64]error
	listErr    error
	fulfilled  []int64
}

func newStubSource(set ...orders.Order) *stubSource {
	s := &stubSource{
		orders:     make(map[int64]orders.Order),
		fulfillErr: make(map[int64]error),
	}
	for _, o := range set {
		s.orders[o.ID] = o
	}
	return s
}

func (s *stubSource) ListOrders(_ context.Context, _ orders.ListFilter) ([]orders.Order, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	result := make([]orders.Order, 0, len(s.orders))
	for _, o := range s.orders {
		result = append(result, o)
	}
	return result, nil
}

func (s *stubSource) GetOrder(_ context.Context, id int64) (*orders.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: order %d", shared.ErrNotFound, id)
	}
	return &o, nil
}

func (s *stubSource) MarkFulfilled(_ context.Context, id int64, _ orders.TrackingInfo) error {
	if err := s.fulfillErr[id]; err != nil {
		return err
	}
	s.fulfilled = append(s.fulfilled, id)
	return nil
}

func (s *stubSource) ListProducts(_ context.Context) ([]orders.Product, error) {
	return []orders.Product{{ID: 1, Title: "Camiseta", Status: "active"}}, nil
}

func (s *stubSource) ListCustomers(_ context.Context) ([]orders.Customer, error) {
	return []orders.Customer{{ID: 7, FirstName: "Lucia", LastName: "Navarro"}}, nil
}

type memStore struct {
	overrides map[int64]override.Override
}

func newMemStore() *memStore {
	return &memStore{overrides: make(map[int64]override.Override)}
}

func (f *memStore) Save(_ context.Context, id int64, edited override.EditedAddress, original valueobject.Address) error {
	ov, ok := f.overrides[id]
	if !ok {
		ov = override.Override{OrderID: id, OriginalAddress: original}
	}
	ov.Edited = edited
	ov.UpdatedAt = time.Now()
	f.overrides[id] = ov
	return nil
}

func (f *memStore) Get(_ context.Context, id int64) (*override.Override, error) {
	ov, ok := f.overrides[id]
	if !ok {
		return nil, nil
	}
	return &ov, nil
}

func (f *memStore) Has(_ context.Context, id int64) (bool, error) {
	_, ok := f.overrides[id]
	return ok, nil
}

func (f *memStore) Revert(_ context.Context, id int64) error {
	delete(f.overrides, id)
	return nil
}

func (f *memStore) ListAll(_ context.Context) ([]override.Entry, error) {
	entries := make([]override.Entry, 0, len(f.overrides))
	for id, ov := range f.overrides {
		entries = append(entries, override.Entry{OrderID: id, Override: ov})
	}
	return entries, nil
}

func testOrder(id int64, status orders.FulfillmentStatus) orders.Order {
	return orders.Order{
		ID:                id,
		Name:              fmt.Sprintf("#%d", 1000+id),
		Number:            int(1000 + id),
		CreatedAt:         time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
		FinancialStatus:   orders.FinancialStatusPaid,
		FulfillmentStatus: status,
		TotalPrice:        valueobject.MustMoneyFromString("45.90", "EUR"),
		ShippingAddress:   valueobject.MustNewAddress("Lucia", "Navarro", "Calle Mayor 4", "Madrid", "Madrid", "28013"),
		LineItems:         []orders.LineItem{{Title: "Camiseta", Quantity: 1}},
	}
}

func setupRouter(source orders.DataSource, store override.Store) *gin.Engine {
	engine := gin.New()
	orderSvc := appOrders.NewService(source, store)
	overrideSvc := appOverrides.NewService(store, source)
	labelSvc := appLabels.NewService(source, store)

	router.NewRouter(engine).
		Register(NewOrderHandler(orderSvc)).
		Register(NewOverrideHandler(overrideSvc)).
		Register(NewLabelHandler(labelSvc)).
		Register(NewCatalogHandler(source, orderSvc)).
		Setup()
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestOrderHandler_List(t *testing.T) {
	source := newStubSource(testOrder(1, orders.FulfillmentStatusNone), testOrder(2, orders.FulfillmentStatusFulfilled))
	engine := setupRouter(source, newMemStore())

	w := doJSON(t, engine, http.MethodGet, "/api/v1/orders?status=pending", nil)
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, true, envelope["success"])

	data := envelope["data"].(map[string]interface{})
	rows := data["rows"].([]interface{})
	assert.Len(t, rows, 1)

	counts := data["counts"].(map[string]interface{})
	assert.EqualValues(t, 2, counts["total"])
	assert.EqualValues(t, 1, counts["pending"])
	assert.EqualValues(t, 1, counts["fulfilled"])
}

func TestOrderHandler_List_InvalidStatus(t *testing.T) {
	engine := setupRouter(newStubSource(), newMemStore())

	w := doJSON(t, engine, http.MethodGet, "/api/v1/orders?status=shipped", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_Get(t *testing.T) {
	source := newStubSource(testOrder(1, orders.FulfillmentStatusNone))
	engine := setupRouter(source, newMemStore())

	w := doJSON(t, engine, http.MethodGet, "/api/v1/orders/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	order := data["order"].(map[string]interface{})
	assert.Equal(t, "#1001", order["name"])
	assert.NotNil(t, data["schedule"])
}

func TestOrderHandler_Get_InvalidID(t *testing.T) {
	engine := setupRouter(newStubSource(), newMemStore())

	w := doJSON(t, engine, http.MethodGet, "/api/v1/orders/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_Get_NotFound(t *testing.T) {
	engine := setupRouter(newStubSource(), newMemStore())

	w := doJSON(t, engine, http.MethodGet, "/api/v1/orders/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, false, envelope["success"])
	errInfo := envelope["error"].(map[string]interface{})
	assert.Equal(t, "ERR_NOT_FOUND", errInfo["code"])
}

func TestOrderHandler_Fulfill(t *testing.T) {
	source := newStubSource(testOrder(1, orders.FulfillmentStatusNone), testOrder(2, orders.FulfillmentStatusNone))
	engine := setupRouter(source, newMemStore())

	w := doJSON(t, engine, http.MethodPost, "/api/v1/orders/fulfill", map[string]interface{}{
		"order_ids": []int64{1, 2},
		"tracking":  map[string]interface{}{"number": "CP123", "notify_customer": true},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.ElementsMatch(t, []int64{1, 2}, source.fulfilled)
}

func TestOrderHandler_Fulfill_BatchFailure(t *testing.T) {
	source := newStubSource(testOrder(1, orders.FulfillmentStatusNone), testOrder(2, orders.FulfillmentStatusNone))
	source.fulfillErr[2] = fmt.Errorf("%w: already fulfilled", shared.ErrSourceFailed)
	engine := setupRouter(source, newMemStore())

	w := doJSON(t, engine, http.MethodPost, "/api/v1/orders/fulfill", map[string]interface{}{
		"order_ids": []int64{1, 2},
	})
	require.Equal(t, http.StatusBadGateway, w.Code)

	errInfo := decodeEnvelope(t, w)["error"].(map[string]interface{})
	assert.Equal(t, "ERR_BATCH_FAILED", errInfo["code"])
	assert.Contains(t, errInfo["message"], "already fulfilled")
}

func TestOrderHandler_Fulfill_EmptyBody(t *testing.T) {
	engine := setupRouter(newStubSource(), newMemStore())

	w := doJSON(t, engine, http.MethodPost, "/api/v1/orders/fulfill", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOverrideHandler_RoundTrip(t *testing.T) {
	source := newStubSource(testOrder(1, orders.FulfillmentStatusNone))
	engine := setupRouter(source, newMemStore())

	body := map[string]interface{}{
		"address": map[string]interface{}{
			"first_name": "Lucia",
			"last_name":  "Navarro",
			"address1":   "Calle Nueva 9",
			"city":       "Madrid",
			"zip":        "28014",
		},
		"notes": "dejar en porteria",
	}

	w := doJSON(t, engine, http.MethodPut, "/api/v1/orders/1/address-override", body)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	original := data["original_address"].(map[string]interface{})
	assert.Equal(t, "Calle Mayor 4", original["address1"], "snapshot must be the canonical address")

	w = doJSON(t, engine, http.MethodGet, "/api/v1/orders/1/address-override", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodDelete, "/api/v1/orders/1/address-override", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/orders/1/address-override", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOverrideHandler_PutEmptyAddress(t *testing.T) {
	source := newStubSource(testOrder(1, orders.FulfillmentStatusNone))
	engine := setupRouter(source, newMemStore())

	w := doJSON(t, engine, http.MethodPut, "/api/v1/orders/1/address-override", map[string]interface{}{
		"notes": "sin direccion",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOverrideHandler_List(t *testing.T) {
	source := newStubSource(testOrder(1, orders.FulfillmentStatusNone))
	store := newMemStore()
	engine := setupRouter(source, store)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/address-overrides", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 0, data["count"])

	doJSON(t, engine, http.MethodPut, "/api/v1/orders/1/address-override", map[string]interface{}{
		"address": map[string]interface{}{"address1": "Calle Nueva 9"},
	})

	w = doJSON(t, engine, http.MethodGet, "/api/v1/address-overrides", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["count"])
}

func TestLabelHandler_BuildSheets(t *testing.T) {
	source := newStubSource(testOrder(1, orders.FulfillmentStatusNone), testOrder(2, orders.FulfillmentStatusNone))
	engine := setupRouter(source, newMemStore())

	w := doJSON(t, engine, http.MethodPost, "/api/v1/labels/sheets", map[string]interface{}{
		"order_ids": []int64{1, 2},
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	pages := data["pages"].([]interface{})
	require.Len(t, pages, 1)
	labels := pages[0].(map[string]interface{})["labels"].([]interface{})
	assert.Len(t, labels, 2)

	format := data["format"].(map[string]interface{})
	assert.Equal(t, "A4", format["paper_size"])
	assert.EqualValues(t, 2, format["columns"])
	assert.EqualValues(t, 6, format["rows"])
}

func TestCatalogHandler(t *testing.T) {
	source := newStubSource(testOrder(1, orders.FulfillmentStatusNone))
	engine := setupRouter(source, newMemStore())

	w := doJSON(t, engine, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["count"])

	w = doJSON(t, engine, http.MethodGet, "/api/v1/customers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["total_orders"])
}
