package http

import (
	"errors"
	"net/http"
	"time"

	"devdirectory/internal/core/domain"
	"devdirectory/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authService ports.AuthService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

func NewAuthHandler(
	authService ports.AuthService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
		metrics:     metrics,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type UserInfo struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type AuthData struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

func toUserInfo(user *domain.User) UserInfo {
	return UserInfo{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// @Summary Register a user
// @Description Create an account and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} successResponse{data=AuthData} "Account created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 409 {object} errorResponse "Email already registered"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Info("Failed JSON parse in registration", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	user := &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	token, created, err := h.authService.Register(c.Request.Context(), user)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrEmailExists):
			newErrorResponse(c, http.StatusConflict, "Email already registered")
		case errors.As(err, &validationErr):
			newErrorResponse(c, http.StatusBadRequest, validationErr.Message)
		default:
			h.logger.Error("Failed to register user", map[string]interface{}{
				"error": err.Error(),
				"email": req.Email,
			})
			newErrorResponse(c, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	h.logger.Info("User created successfully", map[string]interface{}{
		"email":   req.Email,
		"user_id": created.ID,
	})

	newSuccessResponse(c, http.StatusCreated, "User created successfully", AuthData{
		Token: token,
		User:  toUserInfo(created),
	})
}

// @Summary Log in
// @Description Exchange email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} successResponse{data=AuthData} "Logged in"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Invalid credentials"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Info("Failed JSON parse in login", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid request")
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Login failed", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	h.logger.Info("User logged in successfully", map[string]interface{}{
		"email":   req.Email,
		"user_id": user.ID,
	})

	newSuccessResponse(c, http.StatusOK, "Logged in successfully", AuthData{
		Token: token,
		User:  toUserInfo(user),
	})
}
