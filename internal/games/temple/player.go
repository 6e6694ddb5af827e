package temple

import (
	"github.com/vovakirdan/temple-run/internal/config"
	"github.com/vovakirdan/temple-run/internal/core"
)

// Player is the runner controlled by the user.
type Player struct {
	X, Y   float64 // Top-left corner in world units
	VX, VY float64 // Velocity in world units per tick
	W, H   float64

	Health    int
	MaxHealth int
	JumpCount int
	MaxJumps  int
	OnGround  bool

	Invulnerable      bool
	InvulnerableTimer int // Ticks left in the damage cooldown

	cfg         config.PlayerConfig
	invulnTicks int
}

// NewPlayer creates a player standing on the ground at full health.
func NewPlayer(cfg config.PlayerConfig, invulnTicks int, groundY float64) *Player {
	return &Player{
		X:           cfg.X,
		Y:           groundY - cfg.Height,
		W:           cfg.Width,
		H:           cfg.Height,
		Health:      cfg.MaxHealth,
		MaxHealth:   cfg.MaxHealth,
		MaxJumps:    cfg.MaxJumps,
		OnGround:    true,
		cfg:         cfg,
		invulnTicks: invulnTicks,
	}
}

// Rect returns the player's collision rectangle.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Jump launches the player upward. Jumping does not require ground contact;
// it is allowed while fewer than MaxJumps jumps have been used since landing.
func (p *Player) Jump() bool {
	if p.JumpCount >= p.MaxJumps {
		return false
	}
	p.VY = p.cfg.JumpImpulse
	p.JumpCount++
	p.OnGround = false
	return true
}

// Update advances the player one tick. dir is -1, 0 or +1.
func (p *Player) Update(dir int, platforms []Platform, worldW, groundY float64) {
	// Horizontal velocity changes instantly, there is no acceleration.
	p.VX = float64(dir) * p.cfg.MoveSpeed

	// No terminal velocity.
	p.VY += p.cfg.Gravity

	p.X += p.VX
	p.Y += p.VY

	p.X = core.ClampF(p.X, 0, worldW-p.W)

	if p.Y >= groundY-p.H {
		p.land(groundY)
	} else {
		p.OnGround = false
	}

	for _, pl := range platforms {
		if p.VY > 0 && p.Rect().Intersects(pl.Rect()) {
			p.land(pl.Y)
		}
	}

	if p.Invulnerable {
		p.InvulnerableTimer--
		if p.InvulnerableTimer <= 0 {
			p.InvulnerableTimer = 0
			p.Invulnerable = false
		}
	}
}

// land puts the player's feet on surfaceY and restores both jumps.
func (p *Player) land(surfaceY float64) {
	p.Y = surfaceY - p.H
	p.VY = 0
	p.OnGround = true
	p.JumpCount = 0
}

// TakeDamage removes one health point unless the player is invulnerable,
// then starts the cooldown. It reports whether damage was applied.
func (p *Player) TakeDamage() bool {
	if p.Invulnerable {
		return false
	}
	p.Health--
	if p.Health < 0 {
		p.Health = 0
	}
	p.Invulnerable = true
	p.InvulnerableTimer = p.invulnTicks
	return true
}

// Dead reports whether the player has no health left.
func (p *Player) Dead() bool {
	return p.Health <= 0
}

// Flashing reports whether the sprite is in the dim half of its blink cycle.
func (p *Player) Flashing() bool {
	return p.Invulnerable && (p.InvulnerableTimer/5)%2 == 1
}
