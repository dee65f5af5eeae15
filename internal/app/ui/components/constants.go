package components

import "time"

// Animation timing constants
const (
	// AnimationFPS is the frame rate used while a slide transition runs
	AnimationFPS = 60

	// AnimationTickInterval is the delay between animation frames
	AnimationTickInterval = time.Second / AnimationFPS
)

// Layout constants
const (
	CardMinWidth     = 40
	CardMaxWidth     = 72
	CardTextHeight   = 5
	CardChromeWidth  = 6
	SearchInputLimit = 120
)
