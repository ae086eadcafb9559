package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pos-labs/product-catalog-service/config"
	"github.com/pos-labs/product-catalog-service/internal/domain"
	"github.com/pos-labs/product-catalog-service/internal/dto"
	"github.com/pos-labs/product-catalog-service/internal/repository"
	"github.com/pos-labs/product-catalog-service/internal/service"
	"github.com/pos-labs/product-catalog-service/pkg/errs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMain(m *testing.M) {
	decimal.MarshalJSONWithoutQuotes = true
	m.Run()
}

// inMemoryGateway substitutes the MongoDB collection behind the repository
// interface, keeping the gateway's acknowledgment semantics: replace and
// delete acknowledge even when no record matches.
type inMemoryGateway struct {
	records map[primitive.ObjectID]domain.Product
}

func newInMemoryGateway() *inMemoryGateway {
	return &inMemoryGateway{records: make(map[primitive.ObjectID]domain.Product)}
}

func (g *inMemoryGateway) GetProducts(ctx context.Context) ([]domain.Product, error) {
	var data []domain.Product
	for _, record := range g.records {
		data = append(data, record)
	}
	return data, nil
}

func (g *inMemoryGateway) GetProductByID(ctx context.Context, id primitive.ObjectID) (domain.Product, error) {
	record, ok := g.records[id]
	if !ok {
		return domain.Product{}, errs.ErrNotFound
	}
	return record, nil
}

func (g *inMemoryGateway) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
	}
	g.records[data.ID] = data
	return data.ID, nil
}

func (g *inMemoryGateway) ReplaceProduct(ctx context.Context, id primitive.ObjectID, data domain.Product) (bool, error) {
	if _, ok := g.records[id]; ok {
		data.ID = id
		g.records[id] = data
	}
	return true, nil
}

func (g *inMemoryGateway) DeleteProduct(ctx context.Context, id primitive.ObjectID) (bool, error) {
	delete(g.records, id)
	return true, nil
}

var _ repository.MongoDBProductRepository = (*inMemoryGateway)(nil)

func newTestServer() (*echo.Echo, *inMemoryGateway) {
	e := echo.New()
	gateway := newInMemoryGateway()
	svc := service.CreateProductService(gateway, config.Config{}, nil)
	CreateProductController(e.Group(""), svc)
	return e, gateway
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetProducts_EmptyList(t *testing.T) {
	e, _ := newTestServer()

	rec := doRequest(e, http.MethodGet, "/products", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestGetProductByID_MalformedID(t *testing.T) {
	testCases := []struct {
		Name string
		ID   string
	}{
		{Name: "too short", ID: "abc123"},
		{Name: "too long", ID: "66f1a2b3c4d5e6f708192a3b00"},
		{Name: "non-hex characters", ID: "zzf1a2b3c4d5e6f708192a3b"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			e, _ := newTestServer()

			rec := doRequest(e, http.MethodGet, "/products/"+tc.ID, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetProductByID_NotFoundHasEmptyBody(t *testing.T) {
	e, _ := newTestServer()

	rec := doRequest(e, http.MethodGet, "/products/ffffffffffffffffffffffff", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUpdateProduct_UnassignedIDStillAcknowledges(t *testing.T) {
	e, _ := newTestServer()

	rec := doRequest(e, http.MethodPut, "/products/ffffffffffffffffffffffff",
		`{"name":"Ghost","price":1.00,"category":"None","description":"no such record"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", strings.TrimSpace(rec.Body.String()))
}

func TestDeleteProduct_UnassignedIDStillAcknowledges(t *testing.T) {
	e, _ := newTestServer()

	rec := doRequest(e, http.MethodDelete, "/products/ffffffffffffffffffffffff", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", strings.TrimSpace(rec.Body.String()))
}

func TestProductLifecycle(t *testing.T) {
	e, _ := newTestServer()

	// create
	rec := doRequest(e, http.MethodPost, "/products",
		`{"name":"Widget","price":9.99,"category":"Tools","description":"A widget"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created dto.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Regexp(t, "^[0-9a-f]{24}$", created.ID)
	assert.Equal(t, "/products/"+created.ID, rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, "Widget", created.Name)
	assert.Equal(t, "9.99", created.Price.String())

	// read it back
	rec = doRequest(e, http.MethodGet, "/products/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched dto.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)

	// full replace with a new price
	rec = doRequest(e, http.MethodPut, "/products/"+created.ID,
		`{"name":"Widget","price":12.50,"category":"Tools","description":"A widget"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", strings.TrimSpace(rec.Body.String()))

	rec = doRequest(e, http.MethodGet, "/products/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, "12.50", fetched.Price.String())

	// appears in the listing
	rec = doRequest(e, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []dto.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)

	// delete
	rec = doRequest(e, http.MethodDelete, "/products/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", strings.TrimSpace(rec.Body.String()))

	// gone
	rec = doRequest(e, http.MethodGet, "/products/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddProduct_ClientSuppliedIDIsIgnored(t *testing.T) {
	e, gateway := newTestServer()

	rec := doRequest(e, http.MethodPost, "/products",
		`{"id":"aaaaaaaaaaaaaaaaaaaaaaaa","name":"Widget","price":9.99,"category":"Tools","description":"A widget"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created dto.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEqual(t, "aaaaaaaaaaaaaaaaaaaaaaaa", created.ID)

	forced, err := primitive.ObjectIDFromHex("aaaaaaaaaaaaaaaaaaaaaaaa")
	require.NoError(t, err)
	_, ok := gateway.records[forced]
	assert.False(t, ok)
}
