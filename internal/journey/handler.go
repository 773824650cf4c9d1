package journey

import (
	"errors"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"journey-backend/internal/shared/metrics"
	"journey-backend/internal/shared/server/respond"
	"journey-backend/internal/shared/storage/object"
)

// Handler serves the catalog read endpoints.
type Handler struct {
	Store  *Store
	Assets object.ObjectStore
}

// NewHandler constructs a Handler. assets may be nil, in which case diagram
// requests return 404.
func NewHandler(store *Store, assets object.ObjectStore) *Handler {
	return &Handler{Store: store, Assets: assets}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/journey", h.journey)
	rg.GET("/chapters", h.chapters)
	rg.GET("/chapters/:id", h.chapter)
	rg.GET("/chapters/:id/diagram", h.diagram)
	rg.GET("/packages", h.packages)
	rg.GET("/packages/:tier", h.pkg)
	rg.GET("/packages/:tier/chapters", h.packageChapters)
}

func (h *Handler) journey(c *gin.Context) {
	etag := `"` + h.Store.Checksum() + `"`
	c.Header("ETag", etag)
	c.Header("Cache-Control", "public, max-age=300")
	if etagMatches(c.GetHeader("If-None-Match"), etag) {
		c.Status(http.StatusNotModified)
		return
	}
	respond.OK(c, h.Store.Config())
}

// etagMatches applies the weak comparison If-None-Match uses: "*" matches any
// representation and W/ prefixes are ignored.
func etagMatches(header, etag string) bool {
	want := strings.TrimPrefix(etag, "W/")
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if candidate != "" && strings.TrimPrefix(candidate, "W/") == want {
			return true
		}
	}
	return false
}

func (h *Handler) chapters(c *gin.Context) {
	respond.OK(c, h.Store.Chapters())
}

func (h *Handler) chapter(c *gin.Context) {
	id := c.Param("id")
	c.Set("chapterId", id)
	ch, ok := h.Store.GetChapterByID(id)
	metrics.IncChapterLookup(ok)
	if !ok {
		respond.NotFound(c, "chapter not found")
		return
	}
	respond.OK(c, ch)
}

func (h *Handler) diagram(c *gin.Context) {
	id := c.Param("id")
	c.Set("chapterId", id)
	ch, ok := h.Store.GetChapterByID(id)
	metrics.IncChapterLookup(ok)
	if !ok {
		respond.NotFound(c, "chapter not found")
		return
	}
	if h.Assets == nil || strings.TrimSpace(ch.Diagram.Src) == "" {
		respond.NotFound(c, "diagram not available")
		return
	}

	key, err := ch.Diagram.AssetKey()
	if err != nil {
		respond.NotFound(c, "diagram not available")
		return
	}
	rc, err := h.Assets.Open(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			respond.NotFound(c, "diagram not available")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to read diagram", nil)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.DataFromReader(http.StatusOK, -1, contentType, rc, nil)
}

func (h *Handler) packages(c *gin.Context) {
	respond.OK(c, h.Store.Packages())
}

func (h *Handler) pkg(c *gin.Context) {
	tier := c.Param("tier")
	c.Set("tier", tier)
	p, ok := h.Store.Package(tier)
	if !ok {
		respond.NotFound(c, "package not found")
		return
	}
	respond.OK(c, p)
}

// packageChapters mirrors GetPackageChapters: an unknown tier is an empty list.
func (h *Handler) packageChapters(c *gin.Context) {
	tier := c.Param("tier")
	c.Set("tier", tier)
	respond.OK(c, gin.H{
		"tier":     tier,
		"chapters": h.Store.GetPackageChapters(tier),
	})
}
