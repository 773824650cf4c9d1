package suggestions

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"journey-backend/internal/journey"
	"journey-backend/internal/shared/metrics"
	"journey-backend/internal/shared/server/respond"
)

// Item is a suggestion with its presentation class.
type Item struct {
	Suggestion
	ImpactClass string `json:"impactClass"`
}

// Handler serves suggestion lists.
type Handler struct {
	Store    *journey.Store
	Resolver Resolver
}

func NewHandler(store *journey.Store, resolver Resolver) *Handler {
	if resolver == nil {
		resolver = StaticResolver{}
	}
	return &Handler{Store: store, Resolver: resolver}
}

// RegisterRoutes attaches suggestion routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/chapters/:id/suggestions", h.chapter)
	rg.GET("/suggestions/value", h.value)
}

// chapter resolves suggestions for any id; ids outside the catalog get the
// generic list rather than a 404.
func (h *Handler) chapter(c *gin.Context) {
	id := c.Param("id")
	c.Set("chapterId", id)
	ch, ok := h.Store.GetChapterByID(id)
	if !ok {
		ch = journey.Chapter{ID: id}
	}
	list, err := h.Resolver.ChapterSuggestions(c.Request.Context(), ch)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to load suggestions", nil)
		return
	}
	metrics.IncSuggestionsServed(!hasAuthoredSuggestions(id))
	respond.OK(c, gin.H{
		"chapterId":   id,
		"suggestions": withImpactClass(list),
	})
}

func (h *Handler) value(c *gin.Context) {
	list, err := h.Resolver.ValueOptimizationSuggestions(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to load suggestions", nil)
		return
	}
	metrics.IncSuggestionsServed(false)
	respond.OK(c, gin.H{"suggestions": withImpactClass(list)})
}

func withImpactClass(list []Suggestion) []Item {
	out := make([]Item, 0, len(list))
	for _, s := range list {
		out = append(out, Item{Suggestion: s, ImpactClass: GetImpactColor(s.Impact)})
	}
	return out
}
