package session

import "github.com/younwookim/guytribute/internal/domain/entity"

// HUD is the data the heads-up display shows. Fractions are in [0, 1].
type HUD struct {
	Health     float64
	Mana       float64
	ManaPoints int
	BossHealth float64
	HasBoss    bool
	Caption    string
	Level      int // 1-based
	Levels     int
}

// HUD returns a snapshot of the current run.
func (s *Session) HUD() HUD {
	p := s.world.Player
	h := HUD{
		Health:     float64(p.Health) / entity.MaxHealth,
		Mana:       float64(p.Mana) / entity.MaxMana,
		ManaPoints: p.Mana,
		Level:      min(s.index+1, len(s.cfg.Levels)),
		Levels:     len(s.cfg.Levels),
	}
	if lvl := s.world.Level; lvl != nil {
		h.Caption = lvl.Caption
		if boss := lvl.LivingBoss(); boss != nil {
			h.HasBoss = true
			h.BossHealth = boss.HealthFraction()
		}
	}
	return h
}
