package pagecontrol

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/rileyhilliard/pagedots/internal/strip"
)

const (
	// framesPerSecond is the animation frame rate while anything is moving.
	framesPerSecond = 30
	frameInterval   = time.Second / framesPerSecond

	// settleFactor scales a critically damped spring so it is within about
	// 1% of its target after one phase duration.
	settleFactor = 7.0
	// minSpringSeconds keeps zero-length phases from producing an infinite
	// angular frequency.
	minSpringSeconds = 0.01

	motionEpsilon = 0.01
)

// motion eases each indicator's expansion toward a target with a spring.
// Positions live in the strip; motion keeps the targets and velocities.
type motion struct {
	spring harmonica.Spring
	target []float64
	vel    []float64
}

func (mo *motion) reset(n int) {
	mo.target = make([]float64, n)
	mo.vel = make([]float64, n)
}

// tune fits the spring to a phase of duration d.
func (mo *motion) tune(d time.Duration) {
	secs := math.Max(d.Seconds(), minSpringSeconds)
	mo.spring = harmonica.NewSpring(harmonica.FPS(framesPerSecond), settleFactor/secs, 1.0)
}

func (mo *motion) collapseAll() {
	for i := range mo.target {
		mo.target[i] = 0
	}
}

func (mo *motion) setTarget(i int, amount float64) {
	if i >= 0 && i < len(mo.target) {
		mo.target[i] = amount
	}
}

// step advances every indicator by one frame and reports whether any moved.
func (mo *motion) step(s *strip.Strip) bool {
	moving := false
	for i := range mo.target {
		pos := s.Expansion(i)
		if math.Abs(pos-mo.target[i]) < motionEpsilon && math.Abs(mo.vel[i]) < motionEpsilon {
			s.SetExpansion(i, mo.target[i])
			mo.vel[i] = 0
			continue
		}
		pos, mo.vel[i] = mo.spring.Update(pos, mo.vel[i], mo.target[i])
		s.SetExpansion(i, pos)
		moving = true
	}
	return moving
}

// snap puts every indicator exactly on its target.
func (mo *motion) snap(s *strip.Strip) {
	for i := range mo.target {
		s.SetExpansion(i, mo.target[i])
		mo.vel[i] = 0
	}
}
