package config

// LevelConfig is the root config for one level file (YAML or JSON).
type LevelConfig struct {
	Name            string           `json:"name" yaml:"name"`
	BackgroundColor string           `json:"background_color" yaml:"background_color"`
	BackgroundImage string           `json:"background_image" yaml:"background_image"`
	Caption         string           `json:"challenge_message" yaml:"challenge_message"`
	Spawn           *PointConfig     `json:"spawn" yaml:"spawn"`
	Platforms       []PlatformConfig `json:"platforms" yaml:"platforms"`
	Obstacles       []ObstacleConfig `json:"obstacles" yaml:"obstacles"`
	Pickups         []PickupConfig   `json:"pickups" yaml:"pickups"`
	Goal            *RectConfig      `json:"goal" yaml:"goal"`

	// Source is the file the level was read from, relative to the loader root.
	Source string `json:"-" yaml:"-"`
}

type PointConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// RectConfig is the geometry shared by every level item.
// Pointer fields distinguish "missing" from zero.
type RectConfig struct {
	X     *float64 `json:"x" yaml:"x"`
	Y     *float64 `json:"y" yaml:"y"`
	W     *float64 `json:"w" yaml:"w"`
	H     *float64 `json:"h" yaml:"h"`
	Image string   `json:"image" yaml:"image"`
	Color string   `json:"color" yaml:"color"`
}

const (
	PlatformStatic = "static"
	PlatformMoving = "moving"
	PlatformTiled  = "tiled"
)

type PlatformConfig struct {
	RectConfig `yaml:",inline"`

	Kind   string `json:"kind" yaml:"kind"`
	Moving bool   `json:"moving" yaml:"moving"`

	// moving
	Speed      *float64  `json:"speed" yaml:"speed"`
	Direction  []float64 `json:"direction" yaml:"direction"`   // [dx, dy]
	Boundaries []float64 `json:"boundaries" yaml:"boundaries"` // [minX, maxX, minY, maxY]

	// tiled
	TileWidth  float64        `json:"tile_width" yaml:"tile_width"`
	TileHeight float64        `json:"tile_height" yaml:"tile_height"`
	Tiles      [][]int        `json:"tiles" yaml:"tiles"`
	TileImages map[int]string `json:"tile_images" yaml:"tile_images"`
	TMX        string         `json:"tmx" yaml:"tmx"`
}

// ResolvedKind returns the platform kind, honouring the legacy moving flag.
func (p PlatformConfig) ResolvedKind() string {
	if p.Kind != "" {
		return p.Kind
	}
	if p.Moving {
		return PlatformMoving
	}
	return PlatformStatic
}

const (
	BossSmall = "small"
	BossBig   = "big"
)

type ObstacleConfig struct {
	RectConfig `yaml:",inline"`

	Speed    *float64 `json:"speed" yaml:"speed"`
	Vertical bool     `json:"vertical" yaml:"vertical"`
	Dynamic  bool     `json:"dynamic" yaml:"dynamic"`
	Boss     bool     `json:"boss" yaml:"boss"`
	BossType string   `json:"boss_type" yaml:"boss_type"`
}

const (
	PickupHealth = "health"
	PickupMana   = "mana"
	PickupBullet = "bullet"
)

type PickupConfig struct {
	RectConfig `yaml:",inline"`

	Type  string `json:"type" yaml:"type"`
	Value *int   `json:"value" yaml:"value"`
}
