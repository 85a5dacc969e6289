package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/healthlog/backend/internal/service"
	"github.com/pageza/healthlog/backend/internal/types"
	"github.com/pageza/healthlog/backend/internal/validation"
)

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

// Register creates an account and returns a token for it
func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := validation.Bind(c.Request.Body, &req); err != nil {
		badInput(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			message(c, http.StatusConflict, "Email is already registered")
			return
		}
		internalError(c, "register user", err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, user.ID, user.Email)
}

// Login exchanges credentials for a token
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := validation.Bind(c.Request.Body, &req); err != nil {
		badInput(c, err)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			message(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		internalError(c, "log in", err)
		return
	}

	h.respondWithToken(c, http.StatusOK, user.ID, user.Email)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, userID uuid.UUID, email string) {
	token, err := h.authService.GenerateToken(&types.TokenClaims{UserID: userID, Email: email})
	if err != nil {
		internalError(c, "generate token", err)
		return
	}
	c.JSON(status, types.AuthResponse{UserID: userID, Token: token})
}
