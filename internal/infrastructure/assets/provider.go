// Package assets loads, scales and caches images. Anything that cannot be
// loaded is replaced by a solid placeholder so the game always has something
// to draw.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type imageKey struct {
	path string
	w, h int
}

type framesKey struct {
	path            string
	cols, rows, row int
	w, h            int
}

// Provider hands out images scaled to the requested size.
// It is not safe for concurrent use; the game loop is its only caller.
type Provider struct {
	fsys    fs.FS
	sources map[string]*ebiten.Image
	images  map[imageKey]*ebiten.Image
	frames  map[framesKey][]*ebiten.Image
	failed  map[string]bool
}

// NewProvider creates a provider reading image files from fsys.
func NewProvider(fsys fs.FS) *Provider {
	return &Provider{
		fsys:    fsys,
		sources: make(map[string]*ebiten.Image),
		images:  make(map[imageKey]*ebiten.Image),
		frames:  make(map[framesKey][]*ebiten.Image),
		failed:  make(map[string]bool),
	}
}

// Image returns the image at path scaled to w×h. A missing or broken file
// yields a placeholder in the colour of cat.
func (p *Provider) Image(path string, w, h int, cat Category) *ebiten.Image {
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	key := imageKey{path: path, w: w, h: h}
	if img, ok := p.images[key]; ok {
		return img
	}

	var img *ebiten.Image
	if src, ok := p.source(path); ok {
		img = scale(src, w, h)
	} else {
		img = Placeholder(w, h, cat)
	}
	p.images[key] = img
	return img
}

// Frames slices one row of a sprite sheet with cols×rows cells and scales
// every cell to w×h. A missing sheet yields a single placeholder frame.
func (p *Provider) Frames(path string, cols, rows, row, w, h int, cat Category) []*ebiten.Image {
	key := framesKey{path: path, cols: cols, rows: rows, row: row, w: w, h: h}
	if frames, ok := p.frames[key]; ok {
		return frames
	}

	frames := p.slice(path, cols, rows, row, w, h)
	if len(frames) == 0 {
		frames = []*ebiten.Image{Placeholder(w, h, cat)}
	}
	p.frames[key] = frames
	return frames
}

func (p *Provider) slice(path string, cols, rows, row, w, h int) []*ebiten.Image {
	src, ok := p.source(path)
	if !ok {
		return nil
	}
	if cols <= 0 || rows <= 0 || row < 0 || row >= rows {
		p.fail(path, fmt.Errorf("bad sheet layout %dx%d row %d", cols, rows, row))
		return nil
	}

	b := src.Bounds()
	fw, fh := b.Dx()/cols, b.Dy()/rows
	if fw == 0 || fh == 0 {
		p.fail(path, fmt.Errorf("sheet %dx%d too small for %dx%d cells", b.Dx(), b.Dy(), cols, rows))
		return nil
	}

	frames := make([]*ebiten.Image, 0, cols)
	for c := 0; c < cols; c++ {
		r := image.Rect(b.Min.X+c*fw, b.Min.Y+row*fh, b.Min.X+(c+1)*fw, b.Min.Y+(row+1)*fh)
		cell := src.SubImage(r).(*ebiten.Image)
		frames = append(frames, scale(cell, w, h))
	}
	return frames
}

// source loads and caches the unscaled image at path.
func (p *Provider) source(path string) (*ebiten.Image, bool) {
	if path == "" || p.failed[path] {
		return nil, false
	}
	if src, ok := p.sources[path]; ok {
		return src, true
	}

	src, _, err := ebitenutil.NewImageFromFileSystem(p.fsys, path)
	if err != nil {
		p.fail(path, err)
		return nil, false
	}
	p.sources[path] = src
	return src, true
}

func (p *Provider) fail(path string, err error) {
	if p.failed[path] {
		return
	}
	p.failed[path] = true
	log.Printf("[assets] Using placeholder for %s: %v", path, err)
}

// Failed reports whether path could not be loaded.
func (p *Provider) Failed(path string) bool {
	return p.failed[path]
}

// Len returns the number of cached scaled images.
func (p *Provider) Len() int {
	return len(p.images)
}

func scale(src *ebiten.Image, w, h int) *ebiten.Image {
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return src
	}
	dst := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst
}

// Placeholder returns a w×h image filled with the colour of cat.
func Placeholder(w, h int, cat Category) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(cat.Color())
	return img
}
