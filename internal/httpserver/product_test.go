package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/ecommerce_backend/internal/models"
)

func TestGetProducts(t *testing.T) {
	env := newTestEnv(t)

	env.DB.Create(&models.Product{Name: "first", Description: "d1", Price: 10, ImageURL: "http://example.com/1.png"})
	env.DB.Create(&models.Product{Name: "second", Description: "d2", Price: 20})

	rec, c := env.doJSONRequest(t, http.MethodGet, "/api/ecommerce/products", nil)
	require.NoError(t, env.P.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	require.Equal(t, "first", resp[0].Name)
	require.Equal(t, float64(10), resp[0].Price)
}

func TestGetProducts_Empty(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(t, http.MethodGet, "/api/ecommerce/products", nil)
	require.NoError(t, env.P.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestRoutes_Health(t *testing.T) {
	env := newTestEnv(t)

	Register(env.E, &Deps{CartHandler: env.C, ProductHandler: env.P})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok": true}`, rec.Body.String())
}

func TestRoutes_CartWiring(t *testing.T) {
	env := newTestEnv(t)

	Register(env.E, &Deps{CartHandler: env.C, ProductHandler: env.P})

	req := httptest.NewRequest(http.MethodPatch, "/api/ecommerce/cart/9/decrease", nil)
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/ecommerce/cart/9", nil)
	rec = httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
