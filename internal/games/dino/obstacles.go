package dino

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// KindType distinguishes the two obstacle families.
type KindType int

const (
	KindCactus KindType = iota
	KindBird
)

// ObstacleKind is Cactus(variant) or Bird. Variant is 1-based and only
// meaningful for cacti.
type ObstacleKind struct {
	Type    KindType
	Variant int
}

// Cactus returns the cactus kind with the given variant.
func Cactus(variant int) ObstacleKind {
	return ObstacleKind{Type: KindCactus, Variant: variant}
}

// Bird returns the bird kind.
func Bird() ObstacleKind {
	return ObstacleKind{Type: KindBird}
}

// IsBird reports whether the kind is a bird.
func (k ObstacleKind) IsBird() bool {
	return k.Type == KindBird
}

// String returns "cactus-N" or "bird".
func (k ObstacleKind) String() string {
	if k.IsBird() {
		return "bird"
	}
	return fmt.Sprintf("cactus-%d", k.Variant)
}

// Obstacle is a single spawned hazard. X is the left edge; Lane is the
// y-coordinate its bottom edge rests on.
type Obstacle struct {
	ID    int
	Kind  ObstacleKind
	X     float64
	Lane  float64
	W, H  float64
	Alive bool
}

// Box returns the obstacle's bounding box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Lane-o.H, o.W, o.H)
}

// ObstacleSet is the live obstacle collection. Order is irrelevant.
// Insertions come only from the spawner; removals from the scroller cull
// and from Clear on restart.
type ObstacleSet struct {
	items []*Obstacle
}

// Len returns the number of live obstacles.
func (s *ObstacleSet) Len() int {
	return len(s.items)
}

// Each calls fn for every live obstacle.
func (s *ObstacleSet) Each(fn func(o *Obstacle)) {
	for _, o := range s.items {
		fn(o)
	}
}

// Snapshot returns copies of the live obstacles.
func (s *ObstacleSet) Snapshot() []Obstacle {
	out := make([]Obstacle, 0, len(s.items))
	for _, o := range s.items {
		out = append(out, *o)
	}
	return out
}

func (s *ObstacleSet) insert(o *Obstacle) {
	s.items = append(s.items, o)
}

// Cull removes obstacles whose right edge is left of x = 0 and returns their IDs.
func (s *ObstacleSet) Cull() []int {
	var culled []int
	kept := s.items[:0]
	for _, o := range s.items {
		if o.Box().Right() < 0 {
			o.Alive = false
			culled = append(culled, o.ID)
			continue
		}
		kept = append(kept, o)
	}
	// Drop dangling pointers past the new length
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept
	return culled
}

// Clear removes every obstacle.
func (s *ObstacleSet) Clear() {
	for _, o := range s.items {
		o.Alive = false
	}
	s.items = s.items[:0]
}

// Rand is the random source used by the spawner.
// *math/rand.Rand satisfies it; tests may script their own.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// ObstacleSpawner creates obstacles on a delta-accumulated timer.
type ObstacleSpawner struct {
	cfg         config.SpawnConfig
	worldW      float64
	worldH      float64
	rng         Rand
	set         *ObstacleSet
	accumulator float64
	nextID      int
}

// NewObstacleSpawner creates a spawner inserting into set.
func NewObstacleSpawner(cfg config.RunnerConfig, rng Rand, set *ObstacleSet) *ObstacleSpawner {
	return &ObstacleSpawner{
		cfg:    cfg.Spawn,
		worldW: cfg.World.Width,
		worldH: cfg.World.Height,
		rng:    rng,
		set:    set,
	}
}

// Accumulator returns the time accumulated towards the next spawn.
func (sp *ObstacleSpawner) Accumulator() float64 {
	return sp.accumulator
}

// ResetTimer discards any accumulated spawn time.
func (sp *ObstacleSpawner) ResetTimer() {
	sp.accumulator = 0
}

// Update accumulates deltaMs and spawns at most one obstacle when the
// interval is reached. Time beyond the threshold is discarded.
func (sp *ObstacleSpawner) Update(deltaMs float64) (*Obstacle, bool) {
	sp.accumulator += deltaMs
	if sp.accumulator < float64(sp.cfg.IntervalMs) {
		return nil, false
	}
	sp.accumulator = 0
	return sp.Spawn(), true
}

// Spawn inserts one obstacle with a weighted random kind, lane and gap.
func (sp *ObstacleSpawner) Spawn() *Obstacle {
	kind := sp.chooseKind()

	var size config.Size
	lane := sp.worldH
	if kind.IsBird() {
		size = sp.cfg.BirdSize
		lanes := sp.cfg.BirdLaneOffsets
		lane = sp.worldH - lanes[sp.rng.Intn(len(lanes))]
	} else {
		sizes := sp.cfg.CactusSizes
		size = sizes[(kind.Variant-1)%len(sizes)]
	}

	gap := sp.cfg.MinGapFactor + sp.rng.Float64()*(sp.cfg.MaxGapFactor-sp.cfg.MinGapFactor)

	sp.nextID++
	o := &Obstacle{
		ID:    sp.nextID,
		Kind:  kind,
		X:     sp.worldW + gap*sp.worldW,
		Lane:  lane,
		W:     size.W,
		H:     size.H,
		Alive: true,
	}
	sp.set.insert(o)
	return o
}

// chooseKind draws uniformly from 1..cactusWeight+birdWeight.
// Draws above cactusWeight are birds; the rest name the cactus variant.
func (sp *ObstacleSpawner) chooseKind() ObstacleKind {
	choice := 1 + sp.rng.Intn(sp.cfg.CactusWeight+sp.cfg.BirdWeight)
	if choice > sp.cfg.CactusWeight {
		return Bird()
	}
	return Cactus(choice)
}
