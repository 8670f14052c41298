package controllers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/cart"
	"go-storefront/catalog"
	"go-storefront/controllers"
	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/routes"
)

type cartResponse struct {
	Lines []struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
	} `json:"lines"`
	Total         string `json:"total"`
	Count         int    `json:"count"`
	DrawerVisible bool   `json:"drawer_visible"`
}

// client drives the router through httptest, carrying the session cookie
// across requests the way a browser would.
type client struct {
	t       *testing.T
	router  *mux.Router
	cookies []*http.Cookie
}

func newClient(t *testing.T, source catalog.Source) *client {
	log := logrus.New()
	log.SetOutput(io.Discard)

	store := cart.NewStore()
	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.SessionMiddleware)
	routes.RegisterRoutes(router,
		controllers.NewCatalogController(source, store),
		controllers.NewCartController(source, store),
		controllers.NewHealthController(source),
	)
	return &client{t: t, router: router}
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	if len(c.cookies) == 0 {
		c.cookies = rec.Result().Cookies()
	}
	return rec
}

func (c *client) cart(rec *httptest.ResponseRecorder) cartResponse {
	var resp cartResponse
	require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func testSource() catalog.Source {
	return catalog.NewStaticSource(catalog.DefaultProducts())
}

func TestEmptyCart(t *testing.T) {
	c := newClient(t, testSource())

	rec := c.do("GET", "/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := c.cart(rec)
	assert.Empty(t, resp.Lines)
	assert.Equal(t, "0.00", resp.Total)
	assert.Equal(t, 0, resp.Count)
	assert.False(t, resp.DrawerVisible)
}

func TestAddViewRemoveFlow(t *testing.T) {
	c := newClient(t, testSource())

	rec := c.do("POST", "/cart", `{"product_id": "1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = c.do("POST", "/cart", `{"product_id": "1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := c.cart(c.do("GET", "/cart", ""))
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "Blue Shirt", resp.Lines[0].Name)
	assert.Equal(t, 2, resp.Lines[0].Quantity)
	assert.Equal(t, "39.98", resp.Total)
	assert.Equal(t, 1, resp.Count)

	resp = c.cart(c.do("POST", "/cart/1/decrease", ""))
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 1, resp.Lines[0].Quantity)
	assert.Equal(t, "19.99", resp.Total)

	resp = c.cart(c.do("DELETE", "/cart/1", ""))
	assert.Empty(t, resp.Lines)
	assert.Equal(t, "0.00", resp.Total)
}

func TestAddUnknownProduct(t *testing.T) {
	c := newClient(t, testSource())

	rec := c.do("POST", "/cart", `{"product_id": "ghost"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.do("POST", "/cart", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDrawerToggle(t *testing.T) {
	c := newClient(t, testSource())

	resp := c.cart(c.do("POST", "/cart/open", ""))
	assert.True(t, resp.DrawerVisible)

	resp = c.cart(c.do("POST", "/cart/close", ""))
	assert.False(t, resp.DrawerVisible)
}

func TestSearchAndSortPersistPerSession(t *testing.T) {
	c := newClient(t, testSource())

	rec := c.do("GET", "/products?search=shirt&sort=price", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var visible []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &visible))
	require.Len(t, visible, 1)
	assert.Equal(t, "Blue Shirt", visible[0].Name)

	// No params: the last submitted search text still applies.
	rec = c.do("GET", "/products", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &visible))
	require.Len(t, visible, 1)
	assert.Equal(t, "Blue Shirt", visible[0].Name)

	// Clearing the search shows the whole catalog, sorted by price.
	rec = c.do("GET", "/products?search=", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &visible))
	require.Len(t, visible, len(catalog.DefaultProducts()))
	for i := 1; i < len(visible); i++ {
		assert.False(t, visible[i].Price.LessThan(visible[i-1].Price))
	}
}

func TestGetProductByID(t *testing.T) {
	c := newClient(t, testSource())

	rec := c.do("GET", "/products/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var p models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Blue Shirt", p.Name)

	rec = c.do("GET", "/products/ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthzReportsCatalogState(t *testing.T) {
	c := newClient(t, testSource())

	rec := c.do("GET", "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "loaded", body["catalog"])
}

func TestSessionCookieIsSet(t *testing.T) {
	c := newClient(t, testSource())

	rec := c.do("GET", "/cart", "")
	require.NotEmpty(t, rec.Result().Cookies())
	assert.Equal(t, "storefront_session", rec.Result().Cookies()[0].Name)
}
