package components

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	// Spring physics parameters, roughly a stiffness of 300 with a damping of 30
	slideAngularFrequency = 17.3
	slideDampingRatio     = 0.87

	// Offset and velocity below which the card counts as settled
	slideRestThreshold = 0.5
)

// Direction of a card transition
type Direction int

const (
	// Backward enters from the left
	Backward Direction = -1
	// Forward enters from the right
	Forward Direction = 1
)

// Slide moves the advice card horizontally into place using spring physics
type Slide struct {
	spring   harmonica.Spring
	distance float64
	position float64
	velocity float64
	active   bool
}

// NewSlide creates a slide animator that starts a transition distance columns away
func NewSlide(distance int) *Slide {
	return &Slide{
		spring:   harmonica.NewSpring(harmonica.FPS(AnimationFPS), slideAngularFrequency, slideDampingRatio),
		distance: float64(distance),
	}
}

// Start places the card off-center on the side given by direction and activates the spring
func (s *Slide) Start(direction Direction) {
	if s.distance <= 0 {
		return
	}

	s.position = float64(direction) * s.distance
	s.velocity = 0
	s.active = true
}

// Stop snaps the card to its rest position
func (s *Slide) Stop() {
	s.position = 0
	s.velocity = 0
	s.active = false
}

// Update advances the spring one frame towards the rest position
func (s *Slide) Update() {
	if !s.active {
		return
	}

	s.position, s.velocity = s.spring.Update(s.position, s.velocity, 0)

	if math.Abs(s.position) < slideRestThreshold && math.Abs(s.velocity) < slideRestThreshold {
		s.Stop()
	}
}

// Offset returns the current horizontal displacement in whole columns
func (s *Slide) Offset() int {
	return int(math.Round(s.position))
}

// IsActive reports whether a transition is running
func (s *Slide) IsActive() bool {
	return s.active
}
