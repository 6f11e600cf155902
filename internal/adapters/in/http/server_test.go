package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fooddelivery/cmd"
	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/core/application/delivery"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newRouter(t *testing.T) *echo.Echo {
	t.Helper()
	root := cmd.NewCompositionRoot(cmd.DefaultConfig(), zaptest.NewLogger(t))

	e := echo.New()
	require.NoError(t, httpin.RegisterHandlers(t.Context(), e, httpin.NewServer(root.Service())))
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func seed(t *testing.T, e *echo.Echo) {
	t.Helper()
	rec := do(t, e, http.MethodPost, "/api/v1/customers",
		`{"name":"Jon Snow","address":"The Wall","phone":"555-0101","email":"jon@wall.org"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	for _, item := range []string{
		`{"description":"Hamburger","price":5.00,"category":"Fastfood","prepTime":10}`,
		`{"description":"Cheeseburger","price":5.50,"category":"Fastfood","prepTime":10}`,
		`{"description":"Fries","price":1.50,"category":"Side","prepTime":16}`,
	} {
		rec = do(t, e, http.MethodPost, "/api/v1/menu/items", item)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
}

func TestAPI_OrderLifecycle(t *testing.T) {
	e := newRouter(t)
	seed(t, e)

	rec := do(t, e, http.MethodPost, "/api/v1/orders", `{"customerId":1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 1, decode[httpin.CreatedID](t, rec).ID)

	for search, qty := range map[string]int{"hamburger": 1, "cheeseburger": 2, "fries": 3} {
		rec = do(t, e, http.MethodPost, "/api/v1/orders/1/items",
			fmt.Sprintf(`{"search":%q,"quantity":%d}`, search, qty))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, qty, decode[httpin.OrderItemQuantity](t, rec).Quantity)
	}

	rec = do(t, e, http.MethodGet, "/api/v1/orders/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	o := decode[httpin.Order](t, rec)
	assert.Equal(t, "NEW", o.Status)
	assert.Equal(t, "20.50", o.Total)
	assert.Equal(t, []string{"Cheeseburger, 2", "Fries, 3", "Hamburger, 1"}, o.Lines)

	steps := []struct {
		path string
		want int
	}{{"confirm", 36}, {"start", 31}, {"deliver", 15}, {"complete", 0}}
	for _, step := range steps {
		rec = do(t, e, http.MethodPost, "/api/v1/orders/1/"+step.path, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, step.want, decode[httpin.Estimate](t, rec).EstimateMinutes, step.path)
	}

	rec = do(t, e, http.MethodPost, "/api/v1/orders/1/complete", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, http.StatusConflict, decode[httpin.Error](t, rec).Code)

	rec = do(t, e, http.MethodGet, "/api/v1/customers/1/total", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "20.50", decode[httpin.CustomerTotal](t, rec).Total)

	rec = do(t, e, http.MethodGet, "/api/v1/customers/ranking", "")
	require.Equal(t, http.StatusOK, rec.Code)
	ranks := decode[[]httpin.CustomerRank](t, rec)
	require.Len(t, ranks, 1)
	assert.Equal(t, "20.50", ranks[0].Total)

	rec = do(t, e, http.MethodGet, "/api/v1/menu/items/popular", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Fries, 3", "Cheeseburger, 2", "Hamburger, 1"}, decode[[]string](t, rec))

	rec = do(t, e, http.MethodGet, "/api/v1/menu/items/ranking", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Cheeseburger, 11.00", "Hamburger, 5.00", "Fries, 4.50"}, decode[[]string](t, rec))
}

func TestAPI_Customers(t *testing.T) {
	e := newRouter(t)
	seed(t, e)

	rec := do(t, e, http.MethodGet, "/api/v1/customers/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Jon Snow, The Wall, 555-0101, jon@wall.org", decode[httpin.Customer](t, rec).Description)

	rec = do(t, e, http.MethodGet, "/api/v1/customers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Jon Snow, The Wall, 555-0101, jon@wall.org"}, decode[[]string](t, rec))

	rec = do(t, e, http.MethodGet, "/api/v1/customers/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, e, http.MethodPost, "/api/v1/customers",
		`{"name":"Ghost","address":"North","phone":"0","email":"jon@wall.org"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAPI_Menu(t *testing.T) {
	e := newRouter(t)
	seed(t, e)

	rec := do(t, e, http.MethodGet, "/api/v1/menu/items?search=BURGER", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"[Fastfood] Cheeseburger: 5.50", "[Fastfood] Hamburger: 5.00"}, decode[[]string](t, rec))

	rec = do(t, e, http.MethodGet, "/api/v1/menu/items?search=fries", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"[Side] Fries: 1.50"}, decode[[]string](t, rec))

	rec = do(t, e, http.MethodGet, "/api/v1/menu/items?search=pizza", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Empty(t, decode[[]string](t, rec))

	rec = do(t, e, http.MethodGet, "/api/v1/menu/items?search=", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, decode[[]string](t, rec), 3)

	rec = do(t, e, http.MethodGet, "/api/v1/menu/items", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, decode[[]string](t, rec), 3)
}

func TestAPI_MenuSurvivesRecover(t *testing.T) {
	e := newRouter(t)
	e.Use(middleware.Recover())
	seed(t, e)

	for _, path := range []string{"/api/v1/menu/items", "/api/v1/menu/items?search=burger"} {
		rec := do(t, e, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, "%s: %s", path, rec.Body.String())
	}
}

func TestAPI_Errors(t *testing.T) {
	e := newRouter(t)
	seed(t, e)
	rec := do(t, e, http.MethodPost, "/api/v1/orders", `{"customerId":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"ambiguous item", http.MethodPost, "/api/v1/orders/1/items", `{"search":"burger","quantity":1}`, http.StatusUnprocessableEntity},
		{"unknown order", http.MethodGet, "/api/v1/orders/7", "", http.StatusNotFound},
		{"unknown order transition", http.MethodPost, "/api/v1/orders/7/confirm", "", http.StatusNotFound},
		{"skipped step", http.MethodPost, "/api/v1/orders/1/deliver", "", http.StatusConflict},
		{"zero quantity", http.MethodPost, "/api/v1/orders/1/items", `{"search":"fries","quantity":0}`, http.StatusBadRequest},
		{"malformed id", http.MethodGet, "/api/v1/orders/abc", "", http.StatusBadRequest},
		{"missing field", http.MethodPost, "/api/v1/menu/items", `{"description":"Tea"}`, http.StatusBadRequest},
		{"negative price", http.MethodPost, "/api/v1/menu/items",
			`{"description":"Tea","price":-1,"category":"Drinks","prepTime":1}`, http.StatusBadRequest},
		{"empty email", http.MethodPost, "/api/v1/customers",
			`{"name":"A","address":"B","phone":"C","email":""}`, http.StatusBadRequest},
		{"broken json", http.MethodPost, "/api/v1/orders", `{"customerId":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
			assert.Equal(t, tt.want, decode[httpin.Error](t, rec).Code)
		})
	}
}

func TestGetSwagger(t *testing.T) {
	swagger, err := httpin.GetSwagger(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "Food delivery back office", swagger.Info.Title)
	assert.NotNil(t, swagger.Paths.Find("/api/v1/orders/{orderId}/confirm"))
}

func TestRequestValidator_KeepsDocumentServers(t *testing.T) {
	swagger, err := httpin.GetSwagger(t.Context())
	require.NoError(t, err)
	require.Len(t, swagger.Servers, 1)
	servers := swagger.Servers

	_, err = httpin.RequestValidator(swagger)

	require.NoError(t, err)
	assert.Equal(t, servers, swagger.Servers)
	assert.Equal(t, "http://localhost:8080", swagger.Servers[0].URL)
}

func TestSwaggerUI(t *testing.T) {
	e := newRouter(t)

	rec := do(t, e, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"openapi": "3.0.3"`)
}

// orderSnapshotService serves GetOrder from a fixed view. Any other method panics.
type orderSnapshotService struct {
	httpin.DeliveryService

	view  delivery.OrderView
	calls int
}

func (s *orderSnapshotService) GetOrder(_ context.Context, orderID int) (delivery.OrderView, error) {
	s.calls++
	view := s.view
	view.ID = orderID
	return view, nil
}

func TestAPI_ShowOrderReadsOneSnapshot(t *testing.T) {
	svc := &orderSnapshotService{view: delivery.OrderView{
		CustomerID: 1,
		Status:     delivery.StatusPreparation,
		Lines:      []string{"Fries, 3", "Hamburger, 1"},
		Total:      decimal.RequireFromString("12.50"),
	}}
	e := echo.New()
	require.NoError(t, httpin.RegisterHandlers(t.Context(), e, httpin.NewServer(svc)))

	rec := do(t, e, http.MethodGet, "/api/v1/orders/7", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, httpin.Order{
		ID:     7,
		Status: "PREPARATION",
		Lines:  []string{"Fries, 3", "Hamburger, 1"},
		Total:  "12.50",
	}, decode[httpin.Order](t, rec))
}
