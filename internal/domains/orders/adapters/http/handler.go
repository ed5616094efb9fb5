// Package http exposes the order coordinator over gin.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	ordersapp "github.com/soocrates/minishop/internal/domains/orders/application"
	"github.com/soocrates/minishop/internal/domains/orders/domain"
	"github.com/soocrates/minishop/internal/domains/orders/ports"
	apierrors "github.com/soocrates/minishop/internal/shared/errors"
)

// Handler serves the order-service HTTP surface.
type Handler struct {
	service   ports.Service
	responder *apierrors.ChainedResponder
}

// NewHandler wires the coordinator behind the order error mapping.
func NewHandler(service ports.Service) *Handler {
	return &Handler{
		service:   service,
		responder: apierrors.NewChainedResponder("", mapOrderError),
	}
}

// Register mounts the order routes on the router.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/orders", h.PlaceOrder)
	r.GET("/orders", h.ListOrders)
	r.GET("/orders/user/:userID", h.ListOrdersByUser)
	r.GET("/status", h.Status)
}

type orderRequestPayload struct {
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type orderPayload struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	ProductID int64  `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Status    string `json:"status"`
}

func toPayload(order *domain.Order) orderPayload {
	return orderPayload{
		ID:        order.ID,
		UserID:    order.UserID,
		ProductID: order.ProductID,
		Quantity:  order.Quantity,
		Status:    string(order.Status),
	}
}

func toPayloadList(orders []*domain.Order) []orderPayload {
	list := make([]orderPayload, 0, len(orders))
	for _, order := range orders {
		list = append(list, toPayload(order))
	}
	return list
}

// PlaceOrder handles POST /orders.
func (h *Handler) PlaceOrder(c *gin.Context) {
	var payload orderRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.responder.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	req := domain.OrderRequest{
		UserID:    payload.UserID,
		ProductID: payload.ProductID,
		Quantity:  payload.Quantity,
	}
	order, err := h.service.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		h.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPayload(order))
}

// ListOrders handles GET /orders.
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context())
	if err != nil {
		h.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPayloadList(orders))
}

// ListOrdersByUser handles GET /orders/user/:userID.
func (h *Handler) ListOrdersByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		h.responder.Respond(c, apierrors.ErrBadRequest.WithDetail("user id must be an integer"))
		return
	}
	orders, err := h.service.ListOrdersByUser(c.Request.Context(), userID)
	if err != nil {
		h.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPayloadList(orders))
}

// Status handles GET /status.
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "order-service", "status": "up"})
}

// mapOrderError translates coordinator errors into the client-visible
// problem vocabulary: 404 for not-found classes, 400 for validation and
// insufficient stock, 503 for unreachable upstreams, 502 for upstreams
// answering outside their contract.
func mapOrderError(err error) (apierrors.ProblemDetail, bool) {
	var unavailable *ports.UnavailableError
	var upstream *ports.UpstreamError
	switch {
	case errors.Is(err, ordersapp.ErrUserNotFound):
		return apierrors.ErrNotFound.WithDetail("user not found"), true
	case errors.Is(err, ordersapp.ErrProductNotFound):
		return apierrors.ErrNotFound.WithDetail("product not found"), true
	case errors.Is(err, ordersapp.ErrInsufficientStock):
		return apierrors.ErrBadRequest.WithDetail("insufficient stock"), true
	case errors.Is(err, domain.ErrInvalidUserID),
		errors.Is(err, domain.ErrInvalidProductID),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrQuantityTooLarge):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	case errors.As(err, &unavailable):
		return apierrors.NewUpstreamUnavailableProblem(unavailable.Service), true
	case errors.As(err, &upstream):
		return apierrors.NewUpstreamErrorProblem(upstream.Service), true
	default:
		return apierrors.ProblemDetail{}, false
	}
}
