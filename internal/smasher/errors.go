package smasher

import "errors"

var (
	// ErrLevelLocked is returned when starting a level the player has not unlocked.
	ErrLevelLocked = errors.New("smasher: level is locked")

	// ErrUnknownLevel is returned for level numbers with no layout.
	ErrUnknownLevel = errors.New("smasher: unknown level")

	// ErrNotFinished is returned when advancing before the level is won.
	ErrNotFinished = errors.New("smasher: level not won yet")
)
