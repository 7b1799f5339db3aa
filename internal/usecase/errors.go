package usecase

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrDuplicateIdentifier = errors.New("identifier already in use")
	ErrTeamNotFound        = errors.New("team not found")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrNoCaptainSet        = errors.New("team captain not set")
	ErrNoSuchElement       = errors.New("no such element")
)

// ErrorKind names the registry error kind carried by err, or "error" when err
// is not one of them.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDuplicateIdentifier):
		return "duplicate_identifier"
	case errors.Is(err, ErrTeamNotFound):
		return "team_not_found"
	case errors.Is(err, ErrPlayerNotFound):
		return "player_not_found"
	case errors.Is(err, ErrNoCaptainSet):
		return "no_captain_set"
	case errors.Is(err, ErrNoSuchElement):
		return "no_such_element"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}

// invalidInput keeps both ErrInvalidInput and the domain cause in the chain.
func invalidInput(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}
