package system

import (
	"github.com/solarlune/resolv"
	"github.com/younwookim/guytribute/internal/domain/entity"
)

const (
	tagObstacle = "obstacle"
	tagPickup   = "pickup"
	tagProbe    = "probe"

	broadphaseCell = 32

	// Query rects are grown by this margin so sub-pixel overlaps still share a cell.
	probeMargin = 1
)

// Broadphase indexes the current level's obstacles and pickups in a resolv.Space.
// Queries return candidates; callers confirm with Rect.Overlaps.
type Broadphase struct {
	space   *resolv.Space
	probe   *resolv.Object
	objects map[any]*resolv.Object
}

// NewBroadphase creates an empty index covering bounds.
func NewBroadphase(bounds entity.Rect) *Broadphase {
	cols := int(bounds.W)/broadphaseCell + 1
	rows := int(bounds.H)/broadphaseCell + 1
	space := resolv.NewSpace(cols*broadphaseCell, rows*broadphaseCell, broadphaseCell, broadphaseCell)

	probe := resolv.NewObject(0, 0, 1, 1, tagProbe)
	space.Add(probe)

	return &Broadphase{
		space:   space,
		probe:   probe,
		objects: make(map[any]*resolv.Object),
	}
}

// Rebuild drops everything and indexes lvl's obstacles and pickups.
func (b *Broadphase) Rebuild(lvl *entity.Level) {
	for _, obj := range b.objects {
		b.space.Remove(obj)
	}
	b.objects = make(map[any]*resolv.Object)
	if lvl == nil {
		return
	}

	for _, o := range lvl.Obstacles {
		b.add(o, o.Bounds(), tagObstacle)
	}
	for _, p := range lvl.Pickups {
		b.add(p, p.Rect, tagPickup)
	}
}

func (b *Broadphase) add(key any, r entity.Rect, tag string) {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tag)
	obj.Data = key
	b.space.Add(obj)
	b.objects[key] = obj
}

// Sync moves indexed obstacles to their current position and forgets
// removed obstacles and consumed pickups.
func (b *Broadphase) Sync(lvl *entity.Level) {
	for _, o := range lvl.Obstacles {
		obj, ok := b.objects[o]
		if !ok {
			continue
		}
		if o.Removed() {
			b.forget(o)
			continue
		}
		r := o.Bounds()
		if obj.X != r.X || obj.Y != r.Y {
			obj.X, obj.Y = r.X, r.Y
			obj.Update()
		}
	}
	for _, p := range lvl.Pickups {
		if p.Consumed {
			b.forget(p)
		}
	}
}

func (b *Broadphase) forget(key any) {
	if obj, ok := b.objects[key]; ok {
		b.space.Remove(obj)
		delete(b.objects, key)
	}
}

// Len returns the number of indexed entities.
func (b *Broadphase) Len() int {
	return len(b.objects)
}

func (b *Broadphase) query(r entity.Rect, tag string) map[any]struct{} {
	b.probe.X = r.X - probeMargin
	b.probe.Y = r.Y - probeMargin
	b.probe.W = r.W + 2*probeMargin
	b.probe.H = r.H + 2*probeMargin
	b.probe.Update()

	found := make(map[any]struct{})
	if check := b.probe.Check(0, 0, tag); check != nil {
		for _, obj := range check.ObjectsByTags(tag) {
			found[obj.Data] = struct{}{}
		}
	}
	return found
}

// ObstaclesNear returns the obstacles of lvl whose cells intersect r, in level order.
func (b *Broadphase) ObstaclesNear(lvl *entity.Level, r entity.Rect) []entity.Obstacle {
	found := b.query(r, tagObstacle)
	if len(found) == 0 {
		return nil
	}
	near := make([]entity.Obstacle, 0, len(found))
	for _, o := range lvl.Obstacles {
		if _, ok := found[o]; ok {
			near = append(near, o)
		}
	}
	return near
}

// PickupsNear returns the pickups of lvl whose cells intersect r, in level order.
func (b *Broadphase) PickupsNear(lvl *entity.Level, r entity.Rect) []*entity.Pickup {
	found := b.query(r, tagPickup)
	if len(found) == 0 {
		return nil
	}
	near := make([]*entity.Pickup, 0, len(found))
	for _, p := range lvl.Pickups {
		if _, ok := found[p]; ok {
			near = append(near, p)
		}
	}
	return near
}
