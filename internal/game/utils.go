package game

import (
	"fmt"
	"time"
)

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// toUnit converts an 8-bit channel to the [0,1] range ebiten vertices use.
func toUnit(c uint8) float32 {
	return float32(c) / 255
}
