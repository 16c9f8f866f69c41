package handlers

import (
	"net/http"

	"projectmart_backend/internal/services"
	"projectmart_backend/internal/validator"
	"projectmart_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	auth services.AuthService
}

func NewAuthHandler(v *validator.Validator, auth services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(v),
		auth:        auth,
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/login", h.Login)
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	token, err := h.auth.Login(c.Request.Context(), h.GetDB(c), req.Username, req.Password)
	if err != nil {
		var appErr *apperrors.AppError
		if apperrors.As(err, &appErr) && appErr.Code == apperrors.CodeInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{
				"isAuthenticated": false,
				"message":         "Invalid username or password",
			})
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isAuthenticated": true,
		"message":         "Login successful",
		"accessToken":     token,
	})
}
