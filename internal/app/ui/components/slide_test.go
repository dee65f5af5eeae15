package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewSlide(t *testing.T) {
	s := NewSlide(20)

	assert.NotNil(t, s)
	assert.False(t, s.IsActive())
	assert.Equal(t, 0, s.Offset())
}

func Test_Slide_Start(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
		expected  int
	}{
		{name: "Forward enters from the right", direction: Forward, expected: 20},
		{name: "Backward enters from the left", direction: Backward, expected: -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlide(20)
			s.Start(tt.direction)

			assert.True(t, s.IsActive())
			assert.Equal(t, tt.expected, s.Offset())
		})
	}
}

func Test_Slide_Start_ZeroDistance(t *testing.T) {
	s := NewSlide(0)
	s.Start(Forward)

	assert.False(t, s.IsActive())
	assert.Equal(t, 0, s.Offset())
}

func Test_Slide_Update_Settles(t *testing.T) {
	s := NewSlide(20)
	s.Start(Forward)

	for i := 0; i < AnimationFPS*3 && s.IsActive(); i++ {
		s.Update()
	}

	assert.False(t, s.IsActive())
	assert.Equal(t, 0, s.Offset())
}

func Test_Slide_Update_MovesTowardsRest(t *testing.T) {
	s := NewSlide(20)
	s.Start(Backward)

	s.Update()

	assert.Greater(t, s.Offset(), -20)
}

func Test_Slide_Update_WhenInactive(t *testing.T) {
	s := NewSlide(20)
	s.Update()

	assert.False(t, s.IsActive())
	assert.Equal(t, 0, s.Offset())
}

func Test_Slide_Stop(t *testing.T) {
	s := NewSlide(20)
	s.Start(Forward)
	s.Stop()

	assert.False(t, s.IsActive())
	assert.Equal(t, 0, s.Offset())
}
