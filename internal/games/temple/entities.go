package temple

import "github.com/vovakirdan/temple-run/internal/core"

// ObstacleKind tags the two ground hazards.
type ObstacleKind int

const (
	ObstacleSpike ObstacleKind = iota
	ObstacleFire
)

// String returns the hazard name.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleSpike:
		return "spike"
	case ObstacleFire:
		return "fire"
	default:
		return "unknown"
	}
}

// Platform is a floating ledge. Platforms are recycled, never destroyed.
type Platform struct {
	X, Y float64
	W, H float64
}

// Rect returns the collision rectangle for this platform.
func (p Platform) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Obstacle is a ground hazard that damages the player on contact.
type Obstacle struct {
	X, Y float64
	W, H float64
	Kind ObstacleKind
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Update scrolls the obstacle and reports whether any part is still on screen.
func (o *Obstacle) Update(speed float64) bool {
	o.X -= speed
	return o.X > -o.W
}

// Fruit is a collectible worth points.
type Fruit struct {
	X, Y      float64
	W, H      float64
	Bob       float64 // Bobbing phase, drawing only
	Collected bool
}

// Rect returns the collision rectangle for this fruit.
func (f Fruit) Rect() core.Rect {
	return core.NewRect(f.X, f.Y, f.W, f.H)
}

// Update scrolls the fruit and reports whether any part is still on screen.
func (f *Fruit) Update(speed, bobStep float64) bool {
	f.X -= speed
	f.Bob += bobStep
	return f.X > -f.W
}

// Enemy is a flyer that moves faster than the scroll speed.
type Enemy struct {
	X, Y  float64
	W, H  float64
	Speed float64 // Own speed added to the scroll speed
}

// Rect returns the collision rectangle for this enemy.
func (e Enemy) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Update moves the enemy and reports whether any part is still on screen.
func (e *Enemy) Update(speed float64) bool {
	e.X -= speed + e.Speed
	return e.X > -e.W
}
