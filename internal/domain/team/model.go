package team

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// ErrInvalid is wrapped by every team validation failure.
var ErrInvalid = errors.New("invalid team")

// Team is a club registered with its founding date and uniform colors.
type Team struct {
	ID             int64
	Name           string
	FoundedOn      time.Time
	PrimaryColor   string
	SecondaryColor string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return errors.Wrap(ErrInvalid, "team id must be greater than zero")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.Wrap(ErrInvalid, "team name is required")
	}
	if t.FoundedOn.IsZero() {
		return errors.Wrap(ErrInvalid, "team founding date is required")
	}
	if strings.TrimSpace(t.PrimaryColor) == "" {
		return errors.Wrap(ErrInvalid, "team primary color is required")
	}
	if strings.TrimSpace(t.SecondaryColor) == "" {
		return errors.Wrap(ErrInvalid, "team secondary color is required")
	}

	return nil
}

// AwayColor picks the uniform the team wears away from home: the primary
// color unless it clashes with the home side's primary.
func (t Team) AwayColor(home Team) string {
	if t.PrimaryColor == home.PrimaryColor {
		return t.SecondaryColor
	}
	return t.PrimaryColor
}

// Date truncates a timestamp to its calendar day in UTC.
func Date(v time.Time) time.Time {
	if v.IsZero() {
		return v
	}
	y, m, d := v.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
