package temple

import (
	"math"

	"github.com/vovakirdan/temple-run/internal/config"
)

// SpeedController owns the scroll speed ramp and the difficulty level.
//
// Speed grows two ways: a small drift every tick and a fixed step every step
// interval. The level is derived from the stepped component only, so it moves
// in whole steps. The total is clamped to the cap after both increments.
type SpeedController struct {
	cfg       config.SpeedConfig
	stepTicks int

	stepped float64 // Start plus all step increments, capped
	drift   float64 // Accumulated per-tick drift
	level   int
	timer   int // Ticks since the last step
}

// NewSpeedController creates a controller already reset to the start speed.
func NewSpeedController(cfg config.SpeedConfig, timing config.TimingConfig) *SpeedController {
	s := &SpeedController{
		cfg:       cfg,
		stepTicks: timing.Ticks(cfg.StepSeconds),
	}
	s.Reset()
	return s
}

// Reset returns to the start speed with no drift.
func (s *SpeedController) Reset() {
	s.stepped = math.Min(s.cfg.Start, s.cfg.Cap)
	s.drift = 0
	s.timer = 0
	s.level = s.levelFor(s.stepped)
}

// Advance runs one tick of the ramp. It reports whether the level changed.
func (s *SpeedController) Advance() bool {
	if !s.cfg.Progression {
		return false
	}

	before := s.level

	s.timer++
	if s.stepTicks > 0 && s.timer >= s.stepTicks {
		s.timer = 0
		s.stepped += s.cfg.StepAmount
		if s.stepped > s.cfg.Cap {
			s.stepped = s.cfg.Cap
		}
		s.level = s.levelFor(s.stepped)
	}

	// Drift never needs to exceed the headroom below the cap.
	s.drift = math.Min(s.drift+s.cfg.Drift, s.cfg.Cap-s.stepped)

	return s.level != before
}

// Speed returns the current scroll speed, never above the cap.
func (s *SpeedController) Speed() float64 {
	return math.Min(s.stepped+s.drift, s.cfg.Cap)
}

// Stepped returns the speed without drift.
func (s *SpeedController) Stepped() float64 {
	return s.stepped
}

// Level returns the current difficulty level.
func (s *SpeedController) Level() int {
	return s.level
}

func (s *SpeedController) levelFor(speed float64) int {
	level := int(math.Floor(speed / s.cfg.LevelDiv))
	if level > s.cfg.MaxLevel {
		level = s.cfg.MaxLevel
	}
	if level < 0 {
		level = 0
	}
	return level
}
