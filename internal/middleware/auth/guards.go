// Package auth holds the route guards for the navigation surface:
// screens that need a signed-in user redirect to /login, role-gated
// dashboards redirect to home on a role mismatch.
package auth

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"foodhub-be/internal/models"
	"foodhub-be/internal/service/token"
)

type Guard struct {
	Tokens *token.TokenService
}

// RequireLogin admits only signed-in users, rotating expired access
// tokens on the way through. Anyone else is redirected to the login
// screen.
func (g *Guard) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := g.resolve(c)
		if err != nil {
			return c.Redirect(http.StatusFound, "/login")
		}
		setUserContext(c, claims)
		return next(c)
	}
}

// RequireRole admits only signed-in users with exactly the given role.
// Signed-out users go to /login, everyone else back home.
func (g *Guard) RequireRole(required models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := g.resolve(c)
			if err != nil {
				return c.Redirect(http.StatusFound, "/login")
			}

			roleStr, _ := claims["role"].(string)
			role, perr := models.ParseRole(roleStr)
			if perr != nil {
				return c.Redirect(http.StatusFound, "/")
			}

			switch role {
			case required:
				setUserContext(c, claims)
				return next(c)
			case models.RoleCustomer, models.RoleRestaurant, models.RoleAdmin:
				return c.Redirect(http.StatusFound, "/")
			default:
				return c.Redirect(http.StatusFound, "/")
			}
		}
	}
}

func (g *Guard) resolve(c echo.Context) (jwt.MapClaims, error) {
	newAccess, newRefresh, claims, err := g.Tokens.CheckCookie(c)
	if err != nil {
		return nil, err
	}
	if newRefresh != "" {
		c.SetCookie(CreateCookie("accessToken", newAccess, "/", time.Now().Add(token.AccessTTL)))
		c.SetCookie(CreateCookie("refreshToken", newRefresh, "/", time.Now().Add(token.RefreshTTL)))
	}
	return claims, nil
}

func setUserContext(c echo.Context, claims jwt.MapClaims) {
	if sub, ok := claims["sub"].(float64); ok {
		c.Set("userID", uint(sub))
	}
	if role, ok := claims["role"].(string); ok {
		c.Set("role", role)
	}
}

func CreateCookie(name, value, path string, exp time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  exp,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}
