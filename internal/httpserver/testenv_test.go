package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/ecommerce_backend/internal/repo"
	"github.com/Skotchmaster/ecommerce_backend/internal/service"
)

type testEnv struct {
	E  *echo.Echo
	C  *CartHTTP
	P  *CatalogHTTP
	DB *gorm.DB
}

func InitTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	r := &repo.GormRepo{DB: db}
	if err := r.Migrate(); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := InitTestDB(t)
	r := &repo.GormRepo{DB: db}

	return &testEnv{
		E:  echo.New(),
		C:  &CartHTTP{Svc: &service.CartService{Repo: r}},
		P:  &CatalogHTTP{Svc: &service.CatalogService{Repo: r}},
		DB: db,
	}
}

func (env *testEnv) doJSONRequest(t *testing.T, method, target string, body any) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)

	return rec, c
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Message
}
