package assets

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Category decides the placeholder colour of an image.
type Category int

const (
	CategoryPlatform Category = iota
	CategoryObstacle
	CategoryHealth
	CategoryMana
	CategorySpell
	CategoryBolt
	CategoryGoal
	CategoryBoss
	CategoryPlayer
	CategoryBackground
)

var categoryColors = map[Category]color.RGBA{
	CategoryPlatform:   colornames.Green,
	CategoryObstacle:   colornames.Red,
	CategoryHealth:     colornames.Limegreen,
	CategoryMana:       colornames.Yellow,
	CategorySpell:      colornames.Gold,
	CategoryBolt:       colornames.Orangered,
	CategoryGoal:       colornames.Goldenrod,
	CategoryBoss:       colornames.Purple,
	CategoryPlayer:     colornames.Royalblue,
	CategoryBackground: colornames.Black,
}

// Color returns the placeholder colour for c.
func (c Category) Color() color.RGBA {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return colornames.Magenta
}

// ColorByName looks up an SVG colour name such as "darkslategray".
// Unknown or empty names give fallback.
func ColorByName(name string, fallback color.Color) color.Color {
	if c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return fallback
}
