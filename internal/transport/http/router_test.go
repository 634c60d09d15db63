package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/glebarez/sqlite"

	"foodhub-be/internal/catalog"
	"foodhub-be/internal/handlers"
	"foodhub-be/internal/handlers/cart"
	"foodhub-be/internal/middleware/auth"
	"foodhub-be/internal/models"
	"foodhub-be/internal/remote"
	"foodhub-be/internal/service/token"
)

var (
	testJWTSecret     = []byte("test-secret")
	testRefreshSecret = []byte("test-refresh-secret")
)

func newTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
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

	cat := catalog.New(catalog.Mock())
	tokens := &token.TokenService{DB: db, JWTSecret: testJWTSecret, RefreshSecret: testRefreshSecret}

	e := echo.New()
	Register(e, &Deps{
		AuthHandler: &handlers.AuthHandler{
			DB: db, JWTSecret: testJWTSecret, RefreshSecret: testRefreshSecret,
			Backend: remote.FixedDelay{},
		},
		ProfileHandler: &handlers.ProfileHandler{DB: db, JWTSecret: testJWTSecret},
		CatalogHandler: &handlers.CatalogHandler{Catalog: cat},
		CartHandler:    &cart.CartHandler{DB: db, Catalog: cat, JWTSecret: testJWTSecret},
		OrderHandler: &handlers.OrderHandler{
			DB: db, Catalog: cat, JWTSecret: testJWTSecret,
			Backend: remote.FixedDelay{},
		},
		DashboardHandler: &handlers.DashboardHandler{DB: db, Catalog: cat},
		Guard:            &auth.Guard{Tokens: tokens},
	})
	return e, db
}

func accessCookie(t *testing.T, userID uint, role models.Role) *http.Cookie {
	t.Helper()
	signed, err := token.SignAccessToken(userID, string(role), testJWTSecret)
	require.NoError(t, err)
	return &http.Cookie{Name: "accessToken", Value: signed, Path: "/"}
}

func do(e *echo.Echo, method, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCheckoutRedirectsSignedOut(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/v1/checkout")
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestProtectedScreensRedirectSignedOut(t *testing.T) {
	e, _ := newTestServer(t)

	for _, path := range []string{"/api/v1/cart", "/api/v1/orders", "/api/v1/profile"} {
		rec := do(e, http.MethodGet, path)
		require.Equal(t, http.StatusFound, rec.Code, path)
		require.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation), path)
	}
}

func TestAdminDashboardRedirectsCustomerHome(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/v1/admin/dashboard", accessCookie(t, 1, models.RoleCustomer))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestAdminDashboardAdmits(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/v1/admin/dashboard", accessCookie(t, 1, models.RoleAdmin))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRestaurantDashboardRoleGate(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/v1/restaurant-dashboard", accessCookie(t, 1, models.RoleRestaurant))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/restaurant-dashboard", accessCookie(t, 1, models.RoleAdmin))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	rec = do(e, http.MethodGet, "/api/v1/restaurant-dashboard")
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestCatalogScreensArePublic(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/restaurants")
	require.Equal(t, http.StatusOK, rec.Code)

	var restaurants []catalog.Restaurant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &restaurants))
	require.Len(t, restaurants, 3)

	rec = do(e, http.MethodGet, "/api/v1/restaurants/1")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/restaurants/999")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartAdmitsSignedIn(t *testing.T) {
	e, db := newTestServer(t)

	db.Create(&models.CartItem{UserID: 7, MenuItemID: "1", Name: "Margherita Pizza", Price: 12.99, Quantity: 1})

	rec := do(e, http.MethodGet, "/api/v1/cart", accessCookie(t, 7, models.RoleCustomer))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ItemCount uint `json:"item_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, uint(1), resp.ItemCount)
}

func TestSearchFallsBackToCatalog(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/v1/search?q=pizza")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Total       int                  `json:"total"`
		Restaurants []catalog.Restaurant `json:"restaurants"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	require.Equal(t, "Pizza Palace", resp.Restaurants[0].Name)
}
