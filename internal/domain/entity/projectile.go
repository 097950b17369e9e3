package entity

// Projectile is a spell fired by the player or a bolt fired by a boss.
// It moves in a straight line at constant velocity.
type Projectile struct {
	Rect
	VX, VY  float64
	Owner   Owner
	Damage  int
	Removed bool
}

// NewProjectile creates a projectile at r.
func NewProjectile(r Rect, vx, vy float64, owner Owner, damage int) *Projectile {
	return &Projectile{
		Rect:   r,
		VX:     vx,
		VY:     vy,
		Owner:  owner,
		Damage: damage,
	}
}

// NewSpell creates a player spell of size w×h centred on the player, travelling horizontally.
func NewSpell(p *Player, w, h, speed float64, damage int) *Projectile {
	spell := NewProjectile(Rect{W: w, H: h}, speed*float64(p.Facing), 0, OwnerPlayer, damage)
	spell.SetCenter(p.CenterX(), p.CenterY())
	return spell
}

// Update moves the projectile one tick.
func (p *Projectile) Update() {
	p.Translate(p.VX, p.VY)
}

// Speed returns the velocity magnitude.
func (p *Projectile) Speed() float64 {
	return Vec{X: p.VX, Y: p.VY}.Len()
}
