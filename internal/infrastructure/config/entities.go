package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player   PlayerConfig     `json:"player"`
	Spell    ProjectileConfig `json:"spell"`
	Bolt     ProjectileConfig `json:"bolt"`
	Boss     BossConfig       `json:"boss"`
	Obstacle ObstacleDefaults `json:"obstacle"`
	Pickups  PickupDefaults   `json:"pickups"`
	Images   ImageConfig      `json:"images"`
}

type PlayerConfig struct {
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Sprite SpriteConfig `json:"sprite"`
}

// SpriteConfig describes one animation row of a sprite sheet.
type SpriteConfig struct {
	Sheet      string `json:"sheet"`
	Columns    int    `json:"columns"`
	Rows       int    `json:"rows"`
	Row        int    `json:"row"`
	Frames     int    `json:"frames"`
	FrameTicks int    `json:"frameTicks"`
}

type ProjectileConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Speed  float64 `json:"speed"`
	Damage int     `json:"damage"`
	Image  string  `json:"image"`
}

type BossConfig struct {
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	MaxHealth       int     `json:"maxHealth"`
	MoveTicks       int     `json:"moveTicks"`
	AttackIntervals [3]int  `json:"attackIntervals"`
	Image           string  `json:"image"`
	SmallImage      string  `json:"smallImage"`
}

type ObstacleDefaults struct {
	Speed       float64 `json:"speed"`
	RerollTicks int     `json:"rerollTicks"`
}

type PickupDefaults struct {
	HealthValue int `json:"healthValue"`
	ManaValue   int `json:"manaValue"`
}

// ImageConfig holds fallback images used when a level item names none.
type ImageConfig struct {
	Platform string `json:"platform"`
	Obstacle string `json:"obstacle"`
	Health   string `json:"health"`
	Mana     string `json:"mana"`
	Goal     string `json:"goal"`
}

// DefaultEntities returns the stock entity tuning.
func DefaultEntities() *EntitiesConfig {
	return &EntitiesConfig{
		Player: PlayerConfig{
			Width:  64,
			Height: 64,
			Sprite: SpriteConfig{
				Columns:    23,
				Rows:       1,
				Frames:     23,
				FrameTicks: 6,
			},
		},
		Spell: ProjectileConfig{Width: 50, Height: 50, Speed: 10, Damage: 10},
		Bolt:  ProjectileConfig{Width: 20, Height: 20, Speed: 6, Damage: 10},
		Boss: BossConfig{
			Width:           85,
			Height:          94,
			MaxHealth:       100,
			MoveTicks:       60,
			AttackIntervals: [3]int{120, 90, 60},
		},
		Obstacle: ObstacleDefaults{Speed: 2, RerollTicks: 60},
		Pickups:  PickupDefaults{HealthValue: 20, ManaValue: 1},
	}
}
