package entity

import (
	"math"
	"math/rand"
)

// Platform is a surface the player can land on.
// Variants: *StaticPlatform, *MovingPlatform, *TiledPlatform.
type Platform interface {
	Bounds() Rect
	isPlatform()
}

// StaticPlatform never moves.
type StaticPlatform struct {
	Rect
	Image string
}

func NewStaticPlatform(r Rect, image string) *StaticPlatform {
	return &StaticPlatform{Rect: r, Image: image}
}

func (p *StaticPlatform) Bounds() Rect { return p.Rect }
func (*StaticPlatform) isPlatform()    {}

// TravelBounds limits a moving platform's excursion.
type TravelBounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// MovingPlatform travels at constant velocity and reverses at its travel bounds.
type MovingPlatform struct {
	Rect
	Image    string
	Velocity Vec
	Travel   TravelBounds
}

// NewMovingPlatform creates a platform moving along dir at speed.
func NewMovingPlatform(r Rect, image string, speed float64, dir Vec, travel TravelBounds) *MovingPlatform {
	return &MovingPlatform{
		Rect:     r,
		Image:    image,
		Velocity: Vec{X: dir.X * speed, Y: dir.Y * speed},
		Travel:   travel,
	}
}

// DefaultTravel is the excursion used when a level gives none:
// 300 px to the right of the start, no vertical travel.
func DefaultTravel(r Rect) TravelBounds {
	return TravelBounds{MinX: r.X, MaxX: r.X + 300, MinY: r.Y, MaxY: r.Y}
}

func (p *MovingPlatform) Bounds() Rect { return p.Rect }
func (*MovingPlatform) isPlatform()    {}

// Move translates by velocity, then reverses each component whose travel edge was reached.
func (p *MovingPlatform) Move(_ *rand.Rand, _ Rect) {
	p.Translate(p.Velocity.X, p.Velocity.Y)

	if p.Left() <= p.Travel.MinX || p.Right() >= p.Travel.MaxX {
		p.Velocity.X = -p.Velocity.X
	}
	if p.Top() <= p.Travel.MinY || p.Bottom() >= p.Travel.MaxY {
		p.Velocity.Y = -p.Velocity.Y
	}
}

const (
	TileSolid = 0
	TileTrap  = 1
)

// TiledPlatform is a grid of tiles acting as one landing surface.
// Tiles with value TileTrap kill the player on landing.
type TiledPlatform struct {
	Rect
	Tiles      [][]int
	TileW      float64
	TileH      float64
	TileImages map[int]string
}

// NewTiledPlatform creates a platform whose size is derived from the grid.
func NewTiledPlatform(x, y float64, tiles [][]int, tileW, tileH float64, images map[int]string) *TiledPlatform {
	cols := 0
	if len(tiles) > 0 {
		cols = len(tiles[0])
	}
	return &TiledPlatform{
		Rect:       Rect{X: x, Y: y, W: float64(cols) * tileW, H: float64(len(tiles)) * tileH},
		Tiles:      tiles,
		TileW:      tileW,
		TileH:      tileH,
		TileImages: images,
	}
}

func (p *TiledPlatform) Bounds() Rect { return p.Rect }
func (*TiledPlatform) isPlatform()    {}

// TileAt returns the tile value under map point (px, py).
// ok is false when the point is outside the grid.
func (p *TiledPlatform) TileAt(px, py float64) (value int, ok bool) {
	col := int(math.Floor((px - p.X) / p.TileW))
	row := int(math.Floor((py - p.Y) / p.TileH))
	if row < 0 || row >= len(p.Tiles) {
		return 0, false
	}
	if col < 0 || col >= len(p.Tiles[row]) {
		return 0, false
	}
	return p.Tiles[row][col], true
}

// TrapAt reports whether the tile under (px, py) is a trap.
// Points outside the grid count as solid.
func (p *TiledPlatform) TrapAt(px, py float64) bool {
	v, ok := p.TileAt(px, py)
	return ok && v == TileTrap
}
