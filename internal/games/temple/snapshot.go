package temple

import "github.com/vovakirdan/temple-run/internal/core"

// ObstacleView is the drawable part of an obstacle.
type ObstacleView struct {
	Rect core.Rect
	Kind ObstacleKind
}

// FruitView is the drawable part of a fruit.
type FruitView struct {
	Rect core.Rect
	Bob  float64
}

// Snapshot captures everything a renderer needs, and doubles as the
// comparison value for determinism tests.
type Snapshot struct {
	Phase  Phase
	Paused bool
	Tick   uint64

	Score     int
	Speed     float64
	Level     int
	PeakLevel int

	Player       core.Rect
	Health       int
	MaxHealth    int
	Invulnerable bool
	Flashing     bool
	JumpCount    int

	GroundY   float64
	Platforms []core.Rect
	Obstacles []ObstacleView
	Fruits    []FruitView
	Enemies   []core.Rect
}

// Snapshot returns the current render/determinism view of the game.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{Phase: g.phase}
	}
	w := g.world
	p := w.player

	s := Snapshot{
		Phase:        g.phase,
		Paused:       g.paused,
		Tick:         w.tick,
		Score:        w.score,
		Speed:        w.speed.Speed(),
		Level:        w.speed.Level(),
		PeakLevel:    w.peakLevel,
		Player:       p.Rect(),
		Health:       p.Health,
		MaxHealth:    p.MaxHealth,
		Invulnerable: p.Invulnerable,
		Flashing:     p.Flashing(),
		JumpCount:    p.JumpCount,
		GroundY:      w.groundY,
		Platforms:    make([]core.Rect, 0, len(w.platforms)),
		Obstacles:    make([]ObstacleView, 0, len(w.obstacles)),
		Fruits:       make([]FruitView, 0, len(w.fruits)),
		Enemies:      make([]core.Rect, 0, len(w.enemies)),
	}

	for _, pl := range w.platforms {
		s.Platforms = append(s.Platforms, pl.Rect())
	}
	for _, o := range w.obstacles {
		s.Obstacles = append(s.Obstacles, ObstacleView{Rect: o.Rect(), Kind: o.Kind})
	}
	for _, f := range w.fruits {
		s.Fruits = append(s.Fruits, FruitView{Rect: f.Rect(), Bob: f.Bob})
	}
	for _, e := range w.enemies {
		s.Enemies = append(s.Enemies, e.Rect())
	}
	return s
}
