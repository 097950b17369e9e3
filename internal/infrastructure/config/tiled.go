package config

import (
	"fmt"

	"github.com/lafriks/go-tiled"
)

// TrapProperty is the boolean tileset property that marks a hazard tile.
const TrapProperty = "trap"

// TileGrid is a hazard grid imported from a TMX map.
type TileGrid struct {
	Tiles      [][]int
	TileWidth  float64
	TileHeight float64
}

// LoadTMX reads the first tile layer of a TMX map.
// Tiles whose tileset entry has trap=true become 1, everything else 0.
func (l *Loader) LoadTMX(path string) (*TileGrid, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load tmx %s: %w", path, err)
	}
	if len(levelMap.Layers) == 0 {
		return nil, fmt.Errorf("tmx %s: %w: no tile layers", path, ErrInvalidConfig)
	}

	layer := levelMap.Layers[0]
	grid := &TileGrid{
		Tiles:      make([][]int, levelMap.Height),
		TileWidth:  float64(levelMap.TileWidth),
		TileHeight: float64(levelMap.TileHeight),
	}

	for y := 0; y < levelMap.Height; y++ {
		row := make([]int, levelMap.Width)
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() || tile.Tileset == nil {
				continue
			}
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				if tilesetTile.Properties.GetBool(TrapProperty) {
					row[x] = 1
				}
			}
		}
		grid.Tiles[y] = row
	}

	return grid, nil
}
