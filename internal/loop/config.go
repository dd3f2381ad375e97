package loop

import "time"

// Host configuration constants for the terminal frame loop.

// Frame pacing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Render area. Larger terminals draw a centered, bordered area of this size.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 50
)

// Inactivity limits for remote sessions. Local play sets none.
const (
	InactivityWarnUser       = 90 * time.Second
	InactivityDisconnectUser = 120 * time.Second
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show the shutdown notice before disconnecting
)
