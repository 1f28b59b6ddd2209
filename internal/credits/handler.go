package credits

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"fichahub/internal/sync"
	"fichahub/pkg/models"
)

// Loader re-runs the workbook pipeline on demand.
type Loader interface {
	Load(ctx context.Context) (*models.Dataset, error)
}

type Handler struct {
	Store     *Store
	Loader    Loader
	Hub       *sync.Hub
	AssetBase string
}

func NewHandler(store *Store, loader Loader, hub *sync.Hub, assetBase string) *Handler {
	return &Handler{Store: store, Loader: loader, Hub: hub, AssetBase: assetBase}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.view)            // GET /credits
	rg.GET("/options", h.options) // GET /credits/options
	rg.POST("/reload", h.reload)  // POST /credits/reload
}

func selectionFromQuery(c *gin.Context) models.Selection {
	return models.Selection{
		Year:    strings.TrimSpace(c.Query("year")),
		Segment: strings.TrimSpace(c.Query("segment")),
		Series:  strings.TrimSpace(c.Query("serie")),
		Volume:  parseInt(c.Query("volume"), 0),
	}
}

// view settles whatever cursor the client sent against the data and
// returns the projected sections plus the option lists for the
// cascading selects. An all-empty view is a valid response, not an
// error.
func (h *Handler) view(c *gin.Context) {
	ds := h.Store.Snapshot()
	sel := Reconcile(ds.Rows, selectionFromQuery(c))
	view := Project(ds, sel, h.AssetBase)

	c.JSON(http.StatusOK, gin.H{
		"selection":      sel,
		"options":        OptionsFor(ds.Rows, sel),
		"title":          view.Title,
		"general_groups": view.GeneralGroups,
		"disciplines":    view.Disciplines,
		"sound_music":    view.SoundMusic,
		"empty":          view.Empty,
	})
}

func (h *Handler) options(c *gin.Context) {
	ds := h.Store.Snapshot()
	sel := Reconcile(ds.Rows, selectionFromQuery(c))

	c.JSON(http.StatusOK, gin.H{
		"selection": sel,
		"options":   OptionsFor(ds.Rows, sel),
	})
}

// reload re-fetches the workbook and swaps the dataset. On failure the
// previous dataset stays in place.
func (h *Handler) reload(c *gin.Context) {
	ds, err := h.Loader.Load(c.Request.Context())
	if err != nil {
		log.Printf("[credits] reload failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "reload failed"})
		return
	}

	h.Store.Replace(ds)

	if h.Hub != nil {
		go h.Hub.BroadcastJSON(sync.DatasetEvent{
			Type:     sync.EventDatasetReload,
			Rows:     len(ds.Rows),
			LoadedAt: h.Store.LoadedAt(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"rows":      len(ds.Rows),
		"loaded_at": h.Store.LoadedAt(),
	})
}

func parseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
