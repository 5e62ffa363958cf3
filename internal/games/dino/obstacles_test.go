package dino

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// scriptedRand replays fixed draws.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		panic("scripted draw out of range")
	}
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func TestChooseKindMapping(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.CactusWeight = 6
	cfg.Spawn.BirdWeight = 1

	tests := []struct {
		draw int
		want ObstacleKind
	}{
		{0, Cactus(1)},
		{2, Cactus(3)},
		{5, Cactus(6)},
		{6, Bird()},
	}

	for _, tc := range tests {
		t.Run(tc.want.String(), func(t *testing.T) {
			rng := &scriptedRand{ints: []int{tc.draw, 0}}
			sp := NewObstacleSpawner(cfg, rng, &ObstacleSet{})
			if got := sp.Spawn().Kind; got != tc.want {
				t.Errorf("draw %d: kind = %v, expected %v", tc.draw, got, tc.want)
			}
		})
	}
}

func TestSpawnWeightsConverge(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.CactusWeight = 7
	cfg.Spawn.BirdWeight = 2

	set := &ObstacleSet{}
	sp := NewObstacleSpawner(cfg, rand.New(rand.NewSource(42)), set)

	const draws = 90000
	birds := 0
	variants := make(map[int]int)
	for i := 0; i < draws; i++ {
		o := sp.Spawn()
		if o.Kind.IsBird() {
			birds++
		} else {
			variants[o.Kind.Variant]++
		}
		set.Clear()
	}

	ratio := float64(birds) / draws
	if math.Abs(ratio-2.0/9.0) > 0.01 {
		t.Errorf("bird ratio = %.4f, expected about %.4f", ratio, 2.0/9.0)
	}
	if len(variants) != 7 {
		t.Errorf("saw %d cactus variants, expected 7", len(variants))
	}
	for v := range variants {
		if v < 1 || v > 7 {
			t.Errorf("cactus variant %d out of range 1..7", v)
		}
	}
}

func TestSpawnPlacement(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	w, h := cfg.World.Width, cfg.World.Height

	set := &ObstacleSet{}
	sp := NewObstacleSpawner(cfg, rand.New(rand.NewSource(9)), set)

	lanes := make(map[float64]bool)
	for i := 0; i < 2000; i++ {
		o := sp.Spawn()
		minX := w + cfg.Spawn.MinGapFactor*w
		maxX := w + cfg.Spawn.MaxGapFactor*w
		if o.X < minX || o.X > maxX {
			t.Fatalf("obstacle x = %v outside [%v, %v]", o.X, minX, maxX)
		}
		if o.Kind.IsBird() {
			lanes[o.Lane] = true
			if o.W != cfg.Spawn.BirdSize.W || o.H != cfg.Spawn.BirdSize.H {
				t.Errorf("bird size = %vx%v", o.W, o.H)
			}
		} else if o.Lane != h {
			t.Errorf("cactus lane = %v, expected floor %v", o.Lane, h)
		}
	}

	for _, off := range cfg.Spawn.BirdLaneOffsets {
		if !lanes[h-off] {
			t.Errorf("bird lane %v never used", h-off)
		}
	}
	if len(lanes) != len(cfg.Spawn.BirdLaneOffsets) {
		t.Errorf("birds used %d lanes, expected %d", len(lanes), len(cfg.Spawn.BirdLaneOffsets))
	}
}

func TestSpawnIDsAreUnique(t *testing.T) {
	set := &ObstacleSet{}
	sp := NewObstacleSpawner(config.DefaultRunnerConfig(), rand.New(rand.NewSource(1)), set)

	seen := make(map[int]bool)
	for i := 0; i < 50; i++ {
		o := sp.Spawn()
		if seen[o.ID] {
			t.Fatalf("duplicate obstacle id %d", o.ID)
		}
		seen[o.ID] = true
	}
	if set.Len() != 50 {
		t.Errorf("set holds %d obstacles, expected 50", set.Len())
	}
}

func TestSpawnerTimer(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.IntervalMs = 1000
	sp := NewObstacleSpawner(cfg, rand.New(rand.NewSource(1)), &ObstacleSet{})

	if _, ok := sp.Update(999); ok {
		t.Error("spawned before the interval elapsed")
	}
	if _, ok := sp.Update(1); !ok {
		t.Error("expected a spawn at exactly the interval")
	}
	if sp.Accumulator() != 0 {
		t.Errorf("accumulator = %v after spawn, expected 0", sp.Accumulator())
	}

	// Excess is discarded
	if _, ok := sp.Update(2500); !ok {
		t.Error("expected a spawn")
	}
	if _, ok := sp.Update(1); ok {
		t.Error("excess time must not carry over into another spawn")
	}

	sp.ResetTimer()
	if sp.Accumulator() != 0 {
		t.Error("ResetTimer should zero the accumulator")
	}
}

func TestCullBoundary(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		culled bool
	}{
		{"on screen", 10, false},
		{"right edge at zero", -50, false},
		{"right edge just past zero", -50.01, true},
		{"far off screen", -500, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := &Obstacle{ID: 1, Kind: Cactus(1), X: tc.x, Lane: 340, W: 50, H: 70, Alive: true}
			set := &ObstacleSet{}
			set.insert(o)

			ids := set.Cull()
			if got := len(ids) == 1; got != tc.culled {
				t.Errorf("culled = %v, expected %v", got, tc.culled)
			}
			if tc.culled && (o.Alive || set.Len() != 0) {
				t.Error("culled obstacle should be dead and removed")
			}
		})
	}
}

func TestObstacleBoxRestsOnLane(t *testing.T) {
	o := Obstacle{X: 100, Lane: 320, W: 92, H: 77}
	b := o.Box()
	if b.Bottom() != 320 || b.Top() != 243 || b.Left() != 100 || b.Right() != 192 {
		t.Errorf("box = %+v", b)
	}
}

func TestSpawnWithLargestWeights(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.CactusWeight = config.MaxSpawnWeight - 1
	cfg.Spawn.BirdWeight = 1
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	set := &ObstacleSet{}
	sp := NewObstacleSpawner(cfg, rand.New(rand.NewSource(3)), set)
	for i := 0; i < 100; i++ {
		o := sp.Spawn()
		if math.IsNaN(o.X) || math.IsInf(o.X, 0) {
			t.Fatalf("spawn %d: x = %v", i, o.X)
		}
	}
	if set.Len() != 100 {
		t.Errorf("set holds %d obstacles, expected 100", set.Len())
	}
}
