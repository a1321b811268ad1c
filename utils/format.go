package utils

import (
	"fmt"
	"time"
)

// MessageType is a custom type used as a placeholder for various message types.
type MessageType int

// The message types used across the CLI application.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// Colors used across the CLI application.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

var messageColors = map[MessageType]string{
	DefaultMessage: DefaultColor,
	SuccessMessage: SuccessColor,
	ErrorMessage:   ErrorColor,
	StatusMessage:  StatusColor,
}

// DecorateText wraps s in the terminal color of the message type.
// Unknown message types are returned unchanged.
func DecorateText(s string, msgType MessageType) string {
	col, ok := messageColors[msgType]
	if !ok {
		return s
	}
	return col + s + DefaultColor
}

// FormatTime formats a duration as a human readable value, e.g. "1h 2m 3.50s".
// Larger units are omitted while they are zero.
func FormatTime(d time.Duration) string {
	const day = 24 * time.Hour

	secs := float64(d%time.Minute) / float64(time.Second)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", secs)
	case d < time.Hour:
		return fmt.Sprintf("%dm %.2fs", d/time.Minute, secs)
	case d < day:
		return fmt.Sprintf("%dh %dm %.2fs", d/time.Hour, (d%time.Hour)/time.Minute, secs)
	}
	return fmt.Sprintf("%dd %dh %dm %.2fs", d/day, (d%day)/time.Hour, (d%time.Hour)/time.Minute, secs)
}
