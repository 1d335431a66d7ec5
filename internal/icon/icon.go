// Package icon turns icon files into square raster images of a requested size.
package icon

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:generate mockgen -destination=mock/mock.go -package=iconmock github.com/youruser/awayteam/internal/icon Source

// Source resolves an icon reference to a size×size image with alpha.
type Source interface {
	Icon(name string, size int) (image.Image, error)
}

// Rasterizer reads icons from a directory. SVG files are rasterized, anything else is
// decoded and resampled.
type Rasterizer struct {
	Dir string
}

func NewRasterizer(dir string) *Rasterizer {
	return &Rasterizer{Dir: dir}
}

func (r *Rasterizer) Icon(name string, size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon %s: invalid size %d", name, size)
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.Dir, name)
	}
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return rasterizeSVG(path, size)
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon %s: %w", path, err)
	}
	return imaging.Resize(img, size, size, imaging.Lanczos), nil
}

func rasterizeSVG(path string, size int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon %s: %w", path, err)
	}
	defer f.Close()

	svg, err := oksvg.ReadIconStream(f)
	if err != nil {
		return nil, fmt.Errorf("parse svg %s: %w", path, err)
	}
	svg.SetTarget(0, 0, float64(size), float64(size))

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, dst, dst.Bounds())
	svg.Draw(rasterx.NewDasher(size, size, scanner), 1)
	return dst, nil
}

type cacheKey struct {
	name string
	size int
}

// Cache memoizes another Source. Icons never change during a run, so entries are only
// ever evicted for space.
type Cache struct {
	src   Source
	icons *lru.Cache[cacheKey, image.Image]
}

func NewCache(src Source, capacity int) (*Cache, error) {
	icons, err := lru.New[cacheKey, image.Image](capacity)
	if err != nil {
		return nil, fmt.Errorf("icon cache: %w", err)
	}
	return &Cache{src: src, icons: icons}, nil
}

func (c *Cache) Icon(name string, size int) (image.Image, error) {
	key := cacheKey{name: name, size: size}
	if img, ok := c.icons.Get(key); ok {
		return img, nil
	}
	img, err := c.src.Icon(name, size)
	if err != nil {
		return nil, err
	}
	c.icons.Add(key, img)
	return img, nil
}
