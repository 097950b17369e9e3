package config

import "strings"

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display    DisplayConfig    `json:"display"`
	World      WorldConfig      `json:"world"`
	Physics    PhysicsSettings  `json:"physics"`
	Movement   MovementConfig   `json:"movement"`
	Combat     CombatConfig     `json:"combat"`
	Difficulty DifficultyConfig `json:"difficulty"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

// WorldConfig sets the map size and the default spawn point (top-left of the player).
type WorldConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	SpawnX float64 `json:"spawnX"`
	SpawnY float64 `json:"spawnY"`
}

type PhysicsSettings struct {
	Gravity float64 `json:"gravity"` // pixels per tick²
}

type MovementConfig struct {
	Speed     float64 `json:"speed"`
	JumpForce float64 `json:"jumpForce"` // negative is up
}

type CombatConfig struct {
	ContactDamage  int `json:"contactDamage"`
	DamageCooldown int `json:"damageCooldown"` // ticks
	ManaCost       int `json:"manaCost"`
}

// DifficultyConfig maps difficulty names to obstacle speed multipliers.
type DifficultyConfig struct {
	Easy   float64 `json:"easy"`
	Medium float64 `json:"medium"`
	Hard   float64 `json:"hard"`
}

// Multiplier returns the factor for a difficulty name (case-insensitive).
func (d DifficultyConfig) Multiplier(name string) (float64, bool) {
	switch strings.ToLower(name) {
	case "easy":
		return d.Easy, true
	case "medium":
		return d.Medium, true
	case "hard":
		return d.Hard, true
	default:
		return 0, false
	}
}

// DefaultPhysics returns the stock tuning. Loaded files are decoded on top of it.
func DefaultPhysics() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
			Title:        "I Wanna Be The Guy: Tribute",
		},
		World: WorldConfig{
			Width:  1200,
			Height: 800,
			SpawnX: 50,
			SpawnY: 700,
		},
		Physics: PhysicsSettings{Gravity: 0.8},
		Movement: MovementConfig{
			Speed:     5,
			JumpForce: -15,
		},
		Combat: CombatConfig{
			ContactDamage:  20,
			DamageCooldown: 30,
			ManaCost:       10,
		},
		Difficulty: DifficultyConfig{
			Easy:   1,
			Medium: 1.5,
			Hard:   2,
		},
	}
}
