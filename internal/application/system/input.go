package system

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/guytribute/internal/domain/entity"
	"github.com/younwookim/guytribute/internal/infrastructure/config"
)

// InputSystem turns keyboard state into intents and intents into player actions.
type InputSystem struct {
	physics  *config.PhysicsConfig
	entities *config.EntitiesConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(physics *config.PhysicsConfig, entities *config.EntitiesConfig) *InputSystem {
	return &InputSystem{physics: physics, entities: entities}
}

// ReadIntents reads the keyboard. Arrows or A/D move, Space or W jumps, F casts.
func (s *InputSystem) ReadIntents() Intents {
	return Intents{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Jump:      inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW),
		Cast:      inpututil.IsKeyJustPressed(ebiten.KeyF),
	}
}

// Apply moves the player horizontally, starts a jump and casts a spell.
// With both directions held both moves apply, leaving the player in place facing right.
func (s *InputSystem) Apply(w *World, in Intents) {
	p := w.Player

	if in.MoveLeft {
		p.MoveLeft()
	}
	if in.MoveRight {
		p.MoveRight()
	}

	if in.Jump {
		p.Jump()
	}

	if in.Cast {
		s.cast(w)
	}
}

func (s *InputSystem) cast(w *World) {
	p := w.Player
	cost := s.physics.Combat.ManaCost
	if !p.SpendMana(cost) {
		log.Printf("Not enough mana (%d/%d)", p.Mana, cost)
		return
	}

	spell := s.entities.Spell
	w.PlayerShots = append(w.PlayerShots, entity.NewSpell(p, spell.Width, spell.Height, spell.Speed, spell.Damage))
}
