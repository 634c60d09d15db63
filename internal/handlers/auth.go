package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"foodhub-be/internal/hash"
	"foodhub-be/internal/middleware/auth"
	"foodhub-be/internal/models"
	"foodhub-be/internal/mykafka"
	"foodhub-be/internal/remote"
	"foodhub-be/internal/service/token"
)

type AuthHandler struct {
	DB            *gorm.DB
	JWTSecret     []byte
	RefreshSecret []byte
	Producer      *mykafka.Producer
	// Backend is the simulated credential check; it always succeeds
	// unless a failure-injecting double is wired in.
	Backend remote.Operation
}

// RoleFromEmail is the mock sign-in heuristic: the email string decides
// the role, no credential is verified.
func RoleFromEmail(email string) models.Role {
	switch {
	case strings.Contains(email, "admin"):
		return models.RoleAdmin
	case strings.Contains(email, "restaurant"):
		return models.RoleRestaurant
	default:
		return models.RoleCustomer
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
		Phone    string `json:"phone"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name, email and password are required")
	}

	role := models.RoleCustomer
	if req.Role != "" {
		parsed, err := models.ParseRole(req.Role)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		role = parsed
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: pwHash,
		Role:         role,
		Phone:        req.Phone,
	}
	// Mock registration always succeeds; re-registering an email just
	// signs that account back in.
	var existing models.User
	err = h.DB.Where("email = ?", req.Email).First(&existing).Error
	switch {
	case err == nil:
		user.ID = existing.ID
		if err := h.DB.Save(&user).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := h.DB.Create(&user).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.issueSession(c, &user); err != nil {
		return err
	}

	Publish(c, h.Producer, "user_events", fmt.Sprint(user.ID), map[string]any{
		"type":   "user_registered",
		"userID": user.ID,
		"email":  user.Email,
		"role":   user.Role,
	})

	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	// Simulated backend round trip. The generic failure path exists for
	// test doubles; the fixed-delay implementation never takes it.
	if err := h.Backend.Do(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "login failed")
	}

	role := RoleFromEmail(req.Email)

	var user models.User
	err := h.DB.Where("email = ?", req.Email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		pwHash, herr := hash.HashPassword(req.Password)
		if herr != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, herr.Error())
		}
		user = models.User{
			Name:         "John Doe",
			Email:        req.Email,
			PasswordHash: pwHash,
			Role:         role,
			Phone:        "+1234567890",
			Address:      "123 Main St, City, State 12345",
		}
		if cerr := h.DB.Create(&user).Error; cerr != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, cerr.Error())
		}
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	default:
		if user.Role != role {
			user.Role = role
			if serr := h.DB.Save(&user).Error; serr != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, serr.Error())
			}
		}
	}

	if err := h.issueSession(c, &user); err != nil {
		return err
	}

	Publish(c, h.Producer, "user_events", fmt.Sprint(user.ID), map[string]any{
		"type":   "user_logged_in",
		"userID": user.ID,
		"email":  user.Email,
	})

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if ck, err := c.Cookie("refreshToken"); err == nil {
		if err := h.DB.Model(&models.RefreshToken{}).
			Where("token = ?", ck.Value).
			Update("revoked", true).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	expired := time.Now().Add(-time.Hour)
	c.SetCookie(auth.CreateCookie("accessToken", "", "/", expired))
	c.SetCookie(auth.CreateCookie("refreshToken", "", "/", expired))
	return c.JSON(http.StatusOK, echo.Map{"message": "signed out"})
}

// issueSession signs the token pair and sets the session cookies, the
// server-side stand-in for the single browser-local user key.
func (h *AuthHandler) issueSession(c echo.Context, user *models.User) error {
	access, err := token.SignAccessToken(user.ID, string(user.Role), h.JWTSecret)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create access token")
	}
	refresh, err := token.SignRefreshToken(user.ID, string(user.Role), h.RefreshSecret)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create refresh token")
	}
	if err := token.SaveRefreshToken(h.DB, refresh, user.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	c.SetCookie(auth.CreateCookie("accessToken", access, "/", time.Now().Add(token.AccessTTL)))
	c.SetCookie(auth.CreateCookie("refreshToken", refresh, "/", time.Now().Add(token.RefreshTTL)))
	return nil
}
