package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickup_Apply(t *testing.T) {
	tests := []struct {
		name       string
		kind       PickupKind
		value      int
		health     int
		mana       int
		wantHealth int
		wantMana   int
	}{
		{"health pickup", PickupHealth, 20, 50, 50, 70, 50},
		{"health clamps", PickupHealth, 20, 90, 50, 100, 50},
		{"mana pickup", PickupMana, 1, 50, 50, 50, 60},
		{"mana clamps", PickupMana, 3, 50, 95, 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer()
			p.Health, p.Mana = tt.health, tt.mana

			pickup := NewPickup(Rect{W: 30, H: 30}, tt.kind, tt.value, "")
			pickup.Apply(p)
			assert.Equal(t, tt.wantHealth, p.Health)
			assert.Equal(t, tt.wantMana, p.Mana)
			assert.True(t, pickup.Consumed)

			pickup.Apply(p)
			assert.Equal(t, tt.wantHealth, p.Health, "consumed pickup has no effect")
			assert.Equal(t, tt.wantMana, p.Mana)
		})
	}
}

func TestProjectile_Spell(t *testing.T) {
	p := newTestPlayer()
	p.Facing = -1

	spell := NewSpell(p, 50, 50, 10, 10)

	assert.Equal(t, OwnerPlayer, spell.Owner)
	assert.Equal(t, -10.0, spell.VX)
	assert.Equal(t, 0.0, spell.VY)
	assert.Equal(t, p.CenterX(), spell.CenterX())
	assert.Equal(t, p.CenterY(), spell.CenterY())

	spell.Update()
	assert.Equal(t, p.CenterX()-10, spell.CenterX())
}

func TestLevel_Update(t *testing.T) {
	boss := newTestBoss()
	boss.AttackTimer = 119
	patroller := NewPatroller(Rect{X: 100, Y: 100, W: 40, H: 40}, 2, false, false, "")
	moving := NewMovingPlatform(Rect{X: 300, Y: 500, W: 100, H: 20}, "", 2, Vec{X: 1}, TravelBounds{MinX: 0, MaxX: 1000, MinY: 0, MaxY: 1000})

	lvl := &Level{
		Platforms: []Platform{NewStaticPlatform(Rect{X: 0, Y: 750, W: 1200, H: 50}, ""), moving},
		Obstacles: []Obstacle{patroller, boss},
	}

	fired := lvl.Update(testRNG(), mapBounds)

	assert.Len(t, fired, 1)
	assert.Equal(t, 102.0, patroller.X)
	assert.Equal(t, 302.0, moving.X)
}

func TestLevel_UpdateSkipsRemoved(t *testing.T) {
	patroller := NewPatroller(Rect{X: 100, Y: 100, W: 40, H: 40}, 2, false, false, "")
	patroller.Remove()
	lvl := &Level{Obstacles: []Obstacle{patroller}}

	lvl.Update(testRNG(), mapBounds)

	assert.Equal(t, 100.0, patroller.X)
}

func TestLevel_LivingBoss(t *testing.T) {
	small := NewSmallBoss(Rect{W: 85, H: 94}, 2, false, false, "")
	lvl := &Level{Obstacles: []Obstacle{small}}

	assert.False(t, lvl.HasLivingBoss(), "small bosses do not gate the goal")

	boss := newTestBoss()
	lvl.Obstacles = append(lvl.Obstacles, boss)
	require.True(t, lvl.HasLivingBoss())
	assert.Same(t, boss, lvl.LivingBoss())

	boss.TakeHit(100)
	assert.False(t, lvl.HasLivingBoss())
}

func TestLevel_Prune(t *testing.T) {
	a := NewPatroller(Rect{W: 10, H: 10}, 1, false, false, "")
	b := NewPatroller(Rect{W: 10, H: 10}, 1, false, false, "")
	b.Remove()
	p1 := NewPickup(Rect{W: 10, H: 10}, PickupHealth, 20, "")
	p2 := NewPickup(Rect{W: 10, H: 10}, PickupMana, 1, "")
	p2.Consumed = true

	lvl := &Level{Obstacles: []Obstacle{a, b}, Pickups: []*Pickup{p1, p2}}
	lvl.Prune()

	require.Len(t, lvl.Obstacles, 1)
	assert.Same(t, a, lvl.Obstacles[0])
	require.Len(t, lvl.Pickups, 1)
	assert.Same(t, p1, lvl.Pickups[0])
}
