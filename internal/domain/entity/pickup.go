package entity

// ManaPerValue converts a mana pickup's value into restored mana.
const ManaPerValue = 10

// Pickup restores health or mana once, on contact.
type Pickup struct {
	Rect
	Kind     PickupKind
	Value    int
	Image    string
	Consumed bool
}

func NewPickup(r Rect, kind PickupKind, value int, image string) *Pickup {
	return &Pickup{Rect: r, Kind: kind, Value: value, Image: image}
}

// Apply consumes the pickup and applies its effect to the player.
// A consumed pickup has no further effect.
func (p *Pickup) Apply(player *Player) {
	if p.Consumed {
		return
	}
	p.Consumed = true

	switch p.Kind {
	case PickupHealth:
		player.Heal(p.Value)
	case PickupMana:
		player.RestoreMana(p.Value * ManaPerValue)
	}
}
