package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/minimart/pkg/models"
)

type productListBody struct {
	Products   []models.Product `json:"products"`
	Pagination pagination       `json:"pagination"`
}

func TestListProductsPagination(t *testing.T) {
	data := fixtureData(t)
	data.Products = nil
	for i := 1; i <= 25; i++ {
		data.Products = append(data.Products, models.Product{
			ID: i, Name: fmt.Sprintf("Product %d", i), Description: "d", Price: float64(i), CategoryID: 1,
		})
	}
	s := newTestServer(t, data)

	env := doRequest(t, s, http.MethodGet, "/products?limit=10&page=3", "", nil)
	require.Equal(t, 200, env.StatusCode)

	var body productListBody
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Len(t, body.Products, 5)
	assert.Equal(t, 3, body.Pagination.Page)
	assert.Equal(t, 10, body.Pagination.Limit)
	assert.Equal(t, 25, body.Pagination.Total)
	assert.Equal(t, 3, body.Pagination.Pages)
	assert.Equal(t, 21, body.Products[0].ID)
}

func TestListProductsDefaultsAndPastEnd(t *testing.T) {
	s := newTestServer(t, fixtureData(t))

	env := doRequest(t, s, http.MethodGet, "/products", "", nil)
	var body productListBody
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, 1, body.Pagination.Page)
	assert.Equal(t, 10, body.Pagination.Limit)
	assert.Len(t, body.Products, 3)

	env = doRequest(t, s, http.MethodGet, "/products?page=9", "", nil)
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Empty(t, body.Products)
	assert.Equal(t, 3, body.Pagination.Total)
}

func TestListProductsFilterAndSearch(t *testing.T) {
	s := newTestServer(t, fixtureData(t))

	env := doRequest(t, s, http.MethodGet, "/products?category=2", "", nil)
	var body productListBody
	require.NoError(t, json.Unmarshal(env.Data, &body))
	require.Len(t, body.Products, 1)
	assert.Equal(t, "Yoga Mat", body.Products[0].Name)

	// Case-insensitive over name and description.
	env = doRequest(t, s, http.MethodGet, "/products?search=GRINDER", "", nil)
	require.NoError(t, json.Unmarshal(env.Data, &body))
	require.Len(t, body.Products, 1)
	assert.Equal(t, 2, body.Products[0].ID)

	env = doRequest(t, s, http.MethodGet, "/products?search=non-slip", "", nil)
	require.NoError(t, json.Unmarshal(env.Data, &body))
	require.Len(t, body.Products, 1)
	assert.Equal(t, 3, body.Products[0].ID)

	env = doRequest(t, s, http.MethodGet, "/products?category=abc", "", nil)
	assert.Equal(t, 400, env.StatusCode)
}

func TestGetProduct(t *testing.T) {
	s := newTestServer(t, fixtureData(t))

	env := doRequest(t, s, http.MethodGet, "/products/1", "", nil)
	require.Equal(t, 200, env.StatusCode)
	var p models.Product
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, "Espresso Machine", p.Name)

	env = doRequest(t, s, http.MethodGet, "/products/999", "", nil)
	assert.Equal(t, 404, env.StatusCode)

	env = doRequest(t, s, http.MethodGet, "/products/abc", "", nil)
	assert.Equal(t, 400, env.StatusCode)
}

func TestCreateProduct(t *testing.T) {
	s := newTestServer(t, fixtureData(t))
	token := tokenFor(t, s, 1, "alice@example.com")

	t.Run("requires auth", func(t *testing.T) {
		env := doRequest(t, s, http.MethodPost, "/products", "", map[string]interface{}{
			"name": "X", "description": "d", "price": 1.0, "categoryId": 1,
		})
		assert.Equal(t, 401, env.StatusCode)
	})

	t.Run("validates required fields", func(t *testing.T) {
		env := doRequest(t, s, http.MethodPost, "/products", token, map[string]interface{}{
			"name": "X", "description": "d",
		})
		assert.Equal(t, 400, env.StatusCode)
	})

	t.Run("assigns id and defaults, then round-trips", func(t *testing.T) {
		env := doRequest(t, s, http.MethodPost, "/products", token, map[string]interface{}{
			"name": "French Press", "description": "8-cup press", "price": 34.99, "categoryId": 1,
		})
		require.Equal(t, 201, env.StatusCode)

		var created models.Product
		require.NoError(t, json.Unmarshal(env.Data, &created))
		assert.Equal(t, 4, created.ID)
		assert.Equal(t, "Generic", created.Brand)
		assert.Equal(t, defaultProductImage, created.Image)
		assert.Zero(t, created.Rating)
		assert.NotEmpty(t, created.CreatedAt)

		got := doRequest(t, s, http.MethodGet, fmt.Sprintf("/products/%d", created.ID), "", nil)
		var fetched models.Product
		require.NoError(t, json.Unmarshal(got.Data, &fetched))
		assert.Equal(t, created, fetched)
	})
}

func TestUpdateProductPreservesID(t *testing.T) {
	s := newTestServer(t, fixtureData(t))
	token := tokenFor(t, s, 1, "alice@example.com")

	env := doRequest(t, s, http.MethodPut, "/products/2", token, map[string]interface{}{
		"id": 77, "price": 64.0, "stock": 3,
	})
	require.Equal(t, 200, env.StatusCode)

	var p models.Product
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, 2, p.ID)
	assert.Equal(t, 64.0, p.Price)
	assert.Equal(t, 3, p.Stock)
	assert.Equal(t, "Coffee Grinder", p.Name)

	env = doRequest(t, s, http.MethodPut, "/products/999", token, map[string]interface{}{"price": 1.0})
	assert.Equal(t, 404, env.StatusCode)
}

func TestDeleteProduct(t *testing.T) {
	s := newTestServer(t, fixtureData(t))
	token := tokenFor(t, s, 1, "alice@example.com")

	env := doRequest(t, s, http.MethodDelete, "/products/3", token, nil)
	assert.Equal(t, 200, env.StatusCode)

	env = doRequest(t, s, http.MethodGet, "/products/3", "", nil)
	assert.Equal(t, 404, env.StatusCode)

	env = doRequest(t, s, http.MethodDelete, "/products/3", token, nil)
	assert.Equal(t, 404, env.StatusCode)
}

func TestIDAssignmentIsMaxPlusOne(t *testing.T) {
	s := newTestServer(t, fixtureData(t))
	token := tokenFor(t, s, 1, "alice@example.com")

	// Deleting a middle id leaves a gap that is never refilled.
	doRequest(t, s, http.MethodDelete, "/products/2", token, nil)

	env := doRequest(t, s, http.MethodPost, "/products", token, map[string]interface{}{
		"name": "New", "description": "d", "price": 2.0, "categoryId": 1,
	})
	var p models.Product
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, 4, p.ID)
}
