package race

import "errors"

var (
	// ErrRaceNotFound is returned when the race does not exist.
	ErrRaceNotFound = errors.New("race not found")
	// ErrRaceFinished is returned when simulating an already-closed race.
	ErrRaceFinished = errors.New("race already finished")
	// ErrOpponentNotFound is returned when the named opponent team cannot
	// field a grid entry.
	ErrOpponentNotFound = errors.New("opponent not found")
)
