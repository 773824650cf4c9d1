package roi

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"journey-backend/internal/journey"
	"journey-backend/internal/shared/metrics"
	"journey-backend/internal/shared/server/respond"
)

// Handler serves the ROI calculator configuration and estimates.
type Handler struct {
	Store *journey.Store
}

func NewHandler(store *journey.Store) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches ROI routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/roi", h.config)
	rg.POST("/roi/estimate", h.estimate)
}

func (h *Handler) config(c *gin.Context) {
	respond.OK(c, gin.H{
		"assumptions": h.Store.Assumptions(),
		"sliders":     h.Store.Sliders(),
	})
}

func (h *Handler) estimate(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	if req.Tier != "" {
		c.Set("tier", req.Tier)
	}

	est, err := Compute(h.Store, req)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to compute estimate", nil)
		return
	}
	metrics.IncROIEstimate()
	respond.OK(c, est)
}
