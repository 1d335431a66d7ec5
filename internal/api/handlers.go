package api

import (
	"errors"
	"image"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/youruser/awayteam/internal/cards"
	imagepkg "github.com/youruser/awayteam/internal/image"
	"github.com/youruser/awayteam/internal/pipeline"
)

// Handlers serve one loaded catalog.
type Handlers struct {
	p   *pipeline.Pipeline
	cat *pipeline.Catalog
}

func NewHandlers(p *pipeline.Pipeline, cat *pipeline.Catalog) *Handlers {
	return &Handlers{p: p, cat: cat}
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handlers) filterHandler(c *gin.Context) {
	var opt cards.FilterOptions
	if err := c.BindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := cards.Filter(h.cat.AllCards(), opt)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "cards": out})
}

// decksHandler returns the tabletop collection for the catalog.
func (h *Handlers) decksHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.p.Collection(h.cat))
}

func (h *Handlers) cardHandler(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	img, err := h.p.Card(h.cat, c.Param("deck"), index)
	writePNG(c, img, err)
}

func (h *Handlers) sheetHandler(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	img, err := h.p.Sheet(h.cat, c.Param("deck"), index)
	writePNG(c, img, err)
}

func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be a number"})
		return 0, false
	}
	return index, true
}

func writePNG(c *gin.Context, img image.Image, err error) {
	if errors.Is(err, pipeline.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		slog.Error("render failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	b, err := imagepkg.EncodePNG(img)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// qr endpoint returns a PNG of a QR for "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		text = "deck:example"
	}
	sizeStr := c.Query("size")
	size := 400
	if sizeStr != "" {
		if v, err := strconv.Atoi(sizeStr); err == nil {
			size = v
		}
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
