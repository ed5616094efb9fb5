package stress

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apierrors "github.com/soocrates/minishop/internal/shared/errors"
)

const (
	defaultSeconds   = 10
	defaultIntensity = 1
)

// Handler serves the stress-service HTTP surface.
type Handler struct {
	burner *Burner
}

func NewHandler(burner *Burner) *Handler {
	return &Handler{burner: burner}
}

// Register mounts the stress routes on the router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/stress", h.TriggerStress)
	r.GET("/status", h.Status)
}

// TriggerStress handles GET /stress?seconds=&intensity=. Workers detach
// from the request: the response returns immediately while they burn in
// the background against the process context.
func (h *Handler) TriggerStress(c *gin.Context) {
	seconds, ok := queryInt(c, "seconds", defaultSeconds)
	if !ok {
		return
	}
	intensity, ok := queryInt(c, "intensity", defaultIntensity)
	if !ok {
		return
	}
	if seconds <= 0 || intensity <= 0 {
		apierrors.Respond(c, apierrors.ErrValidation.WithDetail("seconds and intensity must be positive"))
		return
	}

	// Workers outlive the request on purpose; only process shutdown or the
	// deadline stops them.
	_ = h.burner.Burn(context.WithoutCancel(c.Request.Context()), time.Duration(seconds)*time.Second, intensity)

	c.JSON(http.StatusOK, gin.H{
		"message":          "Load increased!",
		"duration":         fmt.Sprintf("%ds", seconds),
		"cores_attacked":   intensity,
		"active_processes": h.burner.Active(),
	})
}

// Status handles GET /status.
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "cpu-stress", "status": "online"})
}

func queryInt(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(name+" must be an integer"))
		return 0, false
	}
	return value, true
}
