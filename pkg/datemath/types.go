package datemath

import (
	"errors"
	"time"
)

// ErrUnrecognized is returned by Parser.Parse for phrases it does not understand.
var ErrUnrecognized = errors.New("datemath: unrecognized date phrase")

// Kind tells which signal produced a Resolution.
type Kind string

const (
	KindExplicit Kind = "explicit"
	KindRelative Kind = "relative"
	KindWeekday  Kind = "weekday"
)

// Resolution is the absolute due date found on a line of text.
type Resolution struct {
	At    time.Time
	Kind  Kind
	Match string // the text that produced At

	// HasTime and Clock ("15:04") describe a time-of-day seen on the line.
	// It is evidence only and never changes At.
	HasTime bool
	Clock   string
}
