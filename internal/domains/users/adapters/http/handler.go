// Package http exposes the user directory over gin.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/soocrates/minishop/internal/domains/users/domain"
	"github.com/soocrates/minishop/internal/domains/users/ports"
	apierrors "github.com/soocrates/minishop/internal/shared/errors"
)

// Handler serves the user-service HTTP surface.
type Handler struct {
	service ports.Service
}

func NewHandler(service ports.Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the user routes on the router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/users", h.ListUsers)
	r.GET("/users/:userID", h.GetUser)
	r.POST("/register", h.RegisterUser)
	r.POST("/login", h.Login)
	r.GET("/status", h.Status)
}

type userPayload struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Wallet float64 `json:"wallet"`
}

type registerPayload struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

type loginPayload struct {
	Email string `json:"email" binding:"required"`
}

func toPayload(user *domain.User) userPayload {
	return userPayload{ID: user.ID, Name: user.Name, Email: user.Email, Wallet: user.Wallet}
}

// ListUsers handles GET /users.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	list := make([]userPayload, 0, len(users))
	for _, user := range users {
		list = append(list, toPayload(user))
	}
	c.JSON(http.StatusOK, list)
}

// GetUser handles GET /users/:userID.
func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail("user id must be an integer"))
		return
	}
	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			apierrors.Respond(c, apierrors.NewNotFoundProblem("user", id))
			return
		}
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPayload(user))
}

// RegisterUser handles POST /register.
func (h *Handler) RegisterUser(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	user, err := h.service.Register(c.Request.Context(), payload.Name, payload.Email)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyName) || errors.Is(err, domain.ErrInvalidEmail) {
			apierrors.Respond(c, apierrors.ErrValidation.WithDetail(err.Error()))
			return
		}
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPayload(user))
}

// Login handles POST /login. No password is involved; the response echoes
// the resolved identity.
func (h *Handler) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	user, err := h.service.Login(c.Request.Context(), payload.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid email"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "name": user.Name})
}

// Status handles GET /status.
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "user-service", "status": "up"})
}
