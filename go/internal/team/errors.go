package team

import "errors"

var (
	// ErrTeamExists is returned when the user already owns a team.
	ErrTeamExists = errors.New("user already has a team")
	// ErrTeamNotFound is returned when the user owns no team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrTooManyActive is returned when more than two drivers are selected.
	ErrTooManyActive = errors.New("at most 2 drivers can be active")
	// ErrInvalidSelection is returned when a selected driver does not belong
	// to the team.
	ErrInvalidSelection = errors.New("invalid driver selection")
	// ErrNoActivePilot is returned when a team has no active driver to race.
	ErrNoActivePilot = errors.New("team has no active driver")
)
