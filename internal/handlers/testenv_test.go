package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/glebarez/sqlite"

	"foodhub-be/internal/catalog"
	"foodhub-be/internal/models"
	"foodhub-be/internal/remote"
)

type testEnv struct {
	T       *testing.T
	E       *echo.Echo
	DB      *gorm.DB
	Catalog *catalog.Catalog
	Auth    *AuthHandler
	Orders  *OrderHandler
	Profile *ProfileHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	jwtSecret := []byte("test-secret")
	refreshSecret := []byte("test-refresh-secret")
	cat := catalog.New(catalog.Mock())

	return &testEnv{
		T:       t,
		E:       echo.New(),
		DB:      db,
		Catalog: cat,
		Auth: &AuthHandler{
			DB:            db,
			JWTSecret:     jwtSecret,
			RefreshSecret: refreshSecret,
			Backend:       remote.FixedDelay{},
		},
		Orders: &OrderHandler{
			DB:        db,
			Catalog:   cat,
			JWTSecret: jwtSecret,
			Backend:   remote.FixedDelay{},
		},
		Profile: &ProfileHandler{DB: db, JWTSecret: jwtSecret},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body any, userID uint) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	if userID != 0 {
		c.Set("userID", userID)
	}
	return rec, c
}
