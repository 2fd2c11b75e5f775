package httphandler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/niksmo/shopping-site/internal/adapter/httphandler"
	"github.com/niksmo/shopping-site/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionHeader = "X-Session-ID"

type client struct {
	t       *testing.T
	handler http.Handler
	session string
}

func newClient(t *testing.T) client {
	t.Helper()
	s := service.New(service.Config{}, nil, nil)
	return client{
		t:       t,
		handler: httphandler.NewHandler(sessionHeader, s),
		session: "alice",
	}
}

func (c client) do(method, target, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	if c.session != "" {
		r.Header.Set(sessionHeader, c.session)
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, r)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func TestCatalogHandler(t *testing.T) {
	t.Run("Products", func(t *testing.T) {
		c := newClient(t)

		w := c.do(http.MethodGet, "/v1/products", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		v := decode[httphandler.Catalog](t, w)
		assert.Len(t, v.Products, 16)
		assert.Equal(t, 16, v.Total)
		assert.Len(t, v.Categories, 6)
		assert.Equal(t, []string{"10000-19999", "20000-29999", "30000+"}, v.PriceRanges)
		assert.Equal(t, "none", v.Filter.Kind)
		assert.Equal(t, "NT$ 35,900", v.Products[0].PriceDisplay)
	})

	t.Run("Category", func(t *testing.T) {
		c := newClient(t)

		w := c.do(http.MethodPut, "/v1/filter/category", `{"category":"手機"}`)
		require.Equal(t, http.StatusOK, w.Code)

		v := decode[httphandler.Catalog](t, w)
		assert.Len(t, v.Products, 4)
		assert.Equal(t, "category", v.Filter.Kind)
		assert.Equal(t, "手機", v.Filter.Category)
	})

	t.Run("PriceRangeThenClear", func(t *testing.T) {
		c := newClient(t)

		w := c.do(http.MethodPut, "/v1/filter/price-range",
			`{"price_range":"30000+"}`)
		require.Equal(t, http.StatusOK, w.Code)
		v := decode[httphandler.Catalog](t, w)
		assert.Equal(t, "price_range", v.Filter.Kind)
		assert.Equal(t, "30000+", v.Filter.PriceRange)
		for _, p := range v.Products {
			assert.GreaterOrEqual(t, p.Price, 30000)
		}

		w = c.do(http.MethodDelete, "/v1/filter", "")
		require.Equal(t, http.StatusOK, w.Code)
		v = decode[httphandler.Catalog](t, w)
		assert.Len(t, v.Products, 16)
		assert.Equal(t, "none", v.Filter.Kind)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		c := newClient(t)
		w := c.do(http.MethodPut, "/v1/filter/category", `{"category":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("WrongMediaType", func(t *testing.T) {
		c := newClient(t)
		r := httptest.NewRequest(http.MethodPut, "/v1/filter/category",
			strings.NewReader(`{"category":"手機"}`))
		r.Header.Set("Content-Type", "text/plain")
		r.Header.Set(sessionHeader, "alice")
		w := httptest.NewRecorder()
		c.handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("MissingSession", func(t *testing.T) {
		c := newClient(t)
		c.session = ""
		w := c.do(http.MethodGet, "/v1/products", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler(t *testing.T) {
	t.Run("AddUpdateRemove", func(t *testing.T) {
		c := newClient(t)

		w := c.do(http.MethodPost, "/v1/cart/items", `{"product_id":1}`)
		require.Equal(t, http.StatusOK, w.Code)
		w = c.do(http.MethodPost, "/v1/cart/items", `{"product_id":2}`)
		require.Equal(t, http.StatusOK, w.Code)

		v := decode[httphandler.Cart](t, w)
		assert.Equal(t, 2, v.ItemCount)
		assert.Equal(t, 60800, v.Total)
		assert.Equal(t, "NT$ 60,800", v.TotalDisplay)

		w = c.do(http.MethodPatch, "/v1/cart/items/2", `{"quantity":3}`)
		require.Equal(t, http.StatusOK, w.Code)
		v = decode[httphandler.Cart](t, w)
		assert.Equal(t, 4, v.ItemCount)

		w = c.do(http.MethodDelete, "/v1/cart/items/1", "")
		require.Equal(t, http.StatusOK, w.Code)
		v = decode[httphandler.Cart](t, w)
		require.Len(t, v.Items, 1)
		assert.Equal(t, 2, v.Items[0].Product.ID)
		assert.Equal(t, 3*24900, v.Items[0].Subtotal)

		w = c.do(http.MethodGet, "/v1/cart", "")
		require.Equal(t, http.StatusOK, w.Code)
		v = decode[httphandler.Cart](t, w)
		assert.Equal(t, 3, v.ItemCount)
	})

	t.Run("MissingQuantity", func(t *testing.T) {
		c := newClient(t)
		w := c.do(http.MethodPost, "/v1/cart/items", `{"product_id":1}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = c.do(http.MethodPatch, "/v1/cart/items/1", `{"qty":3}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = c.do(http.MethodGet, "/v1/cart", "")
		require.Equal(t, http.StatusOK, w.Code)
		v := decode[httphandler.Cart](t, w)
		require.Len(t, v.Items, 1)
		assert.Equal(t, 1, v.Items[0].Quantity)
	})

	t.Run("ZeroQuantityRemoves", func(t *testing.T) {
		c := newClient(t)
		c.do(http.MethodPost, "/v1/cart/items", `{"product_id":1}`)

		w := c.do(http.MethodPatch, "/v1/cart/items/1", `{"quantity":0}`)
		require.Equal(t, http.StatusOK, w.Code)
		v := decode[httphandler.Cart](t, w)
		assert.Empty(t, v.Items)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		c := newClient(t)
		w := c.do(http.MethodPost, "/v1/cart/items", `{"product_id":999}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("InvalidProductID", func(t *testing.T) {
		c := newClient(t)
		w := c.do(http.MethodDelete, "/v1/cart/items/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("SessionsAreIsolated", func(t *testing.T) {
		c := newClient(t)
		w := c.do(http.MethodPost, "/v1/cart/items", `{"product_id":1}`)
		require.Equal(t, http.StatusOK, w.Code)

		c.session = "bob"
		w = c.do(http.MethodGet, "/v1/cart", "")
		require.Equal(t, http.StatusOK, w.Code)
		v := decode[httphandler.Cart](t, w)
		assert.Empty(t, v.Items)
	})
}

func TestOrdersHandler(t *testing.T) {
	t.Run("EmptyCart", func(t *testing.T) {
		c := newClient(t)
		w := c.do(http.MethodPost, "/v1/checkout", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Checkout", func(t *testing.T) {
		c := newClient(t)
		c.do(http.MethodPost, "/v1/cart/items", `{"product_id":1}`)
		c.do(http.MethodPost, "/v1/cart/items", `{"product_id":2}`)

		w := c.do(http.MethodPost, "/v1/checkout", "")
		require.Equal(t, http.StatusCreated, w.Code)
		o := decode[httphandler.Order](t, w)
		assert.NotEmpty(t, o.ID)
		assert.Equal(t, 60800, o.Total)
		assert.Equal(t, "NT$ 60,800", o.TotalDisplay)
		assert.Len(t, o.Items, 2)
		assert.Equal(t, 2, o.ItemCount)
		assert.NotEmpty(t, o.Date)

		w = c.do(http.MethodGet, "/v1/cart", "")
		cart := decode[httphandler.Cart](t, w)
		assert.Empty(t, cart.Items)

		w = c.do(http.MethodGet, "/v1/orders", "")
		require.Equal(t, http.StatusOK, w.Code)
		orders := decode[[]httphandler.Order](t, w)
		require.Len(t, orders, 1)
		assert.Equal(t, o.ID, orders[0].ID)
	})
}
