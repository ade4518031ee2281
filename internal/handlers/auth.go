package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ahmedmasry1001/steelsite/internal/config"
	"github.com/ahmedmasry1001/steelsite/internal/models"
	"github.com/ahmedmasry1001/steelsite/internal/store"
)

type AuthHandler struct {
	cfg   *config.Config
	store *store.Store
}

func NewAuthHandler(cfg *config.Config, store *store.Store) *AuthHandler {
	return &AuthHandler{
		cfg:   cfg,
		store: store,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "username and password are required"})
		return
	}

	admin, err := h.store.GetAdminByUsername(req.Username)
	if err != nil {
		// Same response for unknown user and wrong password.
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	expiry := time.Duration(h.cfg.TokenExpiryHours) * time.Hour
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": admin.Username,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(expiry).Unix(),
	})

	tokenString, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to issue token",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		AccessToken: tokenString,
		Username:    admin.Username,
	})
}
