package entity

const (
	MaxHealth = 100
	MaxMana   = 100
)

// Player represents the controllable character.
// Velocity is in pixels per tick.
type Player struct {
	Rect

	VelY         float64
	Speed        float64
	JumpStrength float64 // negative is up
	OnGround     bool
	Facing       int // 1 right, -1 left

	Health         int
	Mana           int
	DamageCooldown int // ticks

	// Animation
	Frame      int
	FrameTimer int
	FrameCount int
	FrameTicks int
}

// NewPlayer creates a player with full health and mana at spawn (top-left).
func NewPlayer(spawn Vec, w, h, speed, jumpStrength float64) *Player {
	return &Player{
		Rect:         Rect{X: spawn.X, Y: spawn.Y, W: w, H: h},
		Speed:        speed,
		JumpStrength: jumpStrength,
		Facing:       1,
		Health:       MaxHealth,
		Mana:         MaxMana,
		FrameCount:   1,
		FrameTicks:   6,
	}
}

// SetAnimation configures the sprite-sheet cycle length and per-frame duration.
func (p *Player) SetAnimation(frames, ticksPerFrame int) {
	if frames < 1 {
		frames = 1
	}
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	p.FrameCount = frames
	p.FrameTicks = ticksPerFrame
	p.Frame %= frames
}

// MoveLeft shifts the player left by its speed and faces left.
func (p *Player) MoveLeft() {
	p.Facing = -1
	p.X -= p.Speed
}

// MoveRight shifts the player right by its speed and faces right.
func (p *Player) MoveRight() {
	p.Facing = 1
	p.X += p.Speed
}

// Jump starts a jump when standing on a platform.
// Returns false when airborne.
func (p *Player) Jump() bool {
	if !p.OnGround {
		return false
	}
	p.VelY = p.JumpStrength
	return true
}

// Heal adds health, capped at MaxHealth.
func (p *Player) Heal(amount int) {
	p.Health = clamp(p.Health+amount, 0, MaxHealth)
}

// Damage removes health, floored at zero.
func (p *Player) Damage(amount int) {
	p.Health = clamp(p.Health-amount, 0, MaxHealth)
}

// RestoreMana adds mana, capped at MaxMana.
func (p *Player) RestoreMana(amount int) {
	p.Mana = clamp(p.Mana+amount, 0, MaxMana)
}

// SpendMana subtracts cost if the player can afford it.
func (p *Player) SpendMana(cost int) bool {
	if p.Mana < cost {
		return false
	}
	p.Mana = clamp(p.Mana-cost, 0, MaxMana)
	return true
}

// IsDead returns true once health reaches zero
func (p *Player) IsDead() bool {
	return p.Health <= 0
}

// Respawn moves the player to spawn and stops vertical motion.
func (p *Player) Respawn(spawn Vec) {
	p.X = spawn.X
	p.Y = spawn.Y
	p.VelY = 0
}

// Reset restores a fresh run: full health and mana, no cooldown, at spawn.
func (p *Player) Reset(spawn Vec) {
	p.Respawn(spawn)
	p.Health = MaxHealth
	p.Mana = MaxMana
	p.DamageCooldown = 0
	p.OnGround = false
	p.Facing = 1
	p.Frame = 0
	p.FrameTimer = 0
}

// Tick decrements the damage cooldown and advances the animation.
func (p *Player) Tick() {
	if p.DamageCooldown > 0 {
		p.DamageCooldown--
	}

	p.FrameTimer++
	if p.FrameTimer >= p.FrameTicks {
		p.FrameTimer = 0
		p.Frame = (p.Frame + 1) % p.FrameCount
	}
}
