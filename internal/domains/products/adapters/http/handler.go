// Package http exposes the product catalog and stock ledger over gin.
package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/soocrates/minishop/internal/domains/products/domain"
	"github.com/soocrates/minishop/internal/domains/products/ports"
	apierrors "github.com/soocrates/minishop/internal/shared/errors"
)

// Handler serves the product-service HTTP surface.
type Handler struct {
	service ports.Service
}

func NewHandler(service ports.Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the product routes on the router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/products", h.ListProducts)
	r.GET("/products/:productID", h.GetProduct)
	r.POST("/products", h.CreateProduct)
	r.POST("/products/:productID/decrease_stock", h.DecreaseStock)
	r.POST("/products/:productID/increase_stock", h.IncreaseStock)
	r.GET("/status", h.Status)
}

type productPayload struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int64   `json:"stock"`
}

type createProductPayload struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
	Stock int64   `json:"stock"`
}

type stockUpdatePayload struct {
	Quantity int64 `json:"quantity"`
}

type stockResultPayload struct {
	ID       int64 `json:"id"`
	NewStock int64 `json:"new_stock"`
}

func toPayload(product *domain.Product) productPayload {
	return productPayload{ID: product.ID, Name: product.Name, Price: product.Price, Stock: product.Stock}
}

// ListProducts handles GET /products.
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.service.List(c.Request.Context())
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	list := make([]productPayload, 0, len(products))
	for _, product := range products {
		list = append(list, toPayload(product))
	}
	c.JSON(http.StatusOK, list)
}

// GetProduct handles GET /products/:productID.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}
	product, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			apierrors.Respond(c, apierrors.NewNotFoundProblem("product", id))
			return
		}
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPayload(product))
}

// CreateProduct handles POST /products.
func (h *Handler) CreateProduct(c *gin.Context) {
	var payload createProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	product, err := h.service.CreateProduct(c.Request.Context(), payload.Name, payload.Price, payload.Stock)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyName) || errors.Is(err, domain.ErrNegativePrice) || errors.Is(err, domain.ErrNegativeStock) {
			apierrors.Respond(c, apierrors.ErrValidation.WithDetail(err.Error()))
			return
		}
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPayload(product))
}

// DecreaseStock handles POST /products/:productID/decrease_stock. The
// contract the order coordinator depends on: 200 with the new level, 404
// for an unknown product, 400 when stock does not cover the quantity.
func (h *Handler) DecreaseStock(c *gin.Context) {
	h.adjustStock(c, h.service.DecreaseStock)
}

// IncreaseStock handles POST /products/:productID/increase_stock, the
// compensation endpoint.
func (h *Handler) IncreaseStock(c *gin.Context) {
	h.adjustStock(c, h.service.IncreaseStock)
}

func (h *Handler) adjustStock(c *gin.Context, adjust func(ctx context.Context, id, quantity int64) (*domain.Product, error)) {
	id, ok := h.productID(c)
	if !ok {
		return
	}
	var payload stockUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	product, err := adjust(c.Request.Context(), id, payload.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, ports.ErrNotFound):
			apierrors.Respond(c, apierrors.NewNotFoundProblem("product", id))
		case errors.Is(err, domain.ErrInsufficientStock):
			apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail("insufficient stock"))
		case errors.Is(err, domain.ErrInvalidQuantity):
			apierrors.Respond(c, apierrors.ErrValidation.WithDetail(err.Error()))
		default:
			apierrors.RespondError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, stockResultPayload{ID: product.ID, NewStock: product.Stock})
}

// Status handles GET /status.
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "product-service", "status": "up"})
}

func (h *Handler) productID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail("product id must be an integer"))
		return 0, false
	}
	return id, true
}
