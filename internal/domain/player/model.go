package player

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// ErrInvalid is wrapped by every player validation failure.
var ErrInvalid = errors.New("invalid player")

// Player is an athlete registered to exactly one team.
type Player struct {
	ID         int64
	TeamID     int64
	Name       string
	BirthDate  time.Time
	SkillLevel int
	Salary     decimal.Decimal
	IsCaptain  bool
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return errors.Wrap(ErrInvalid, "player id must be greater than zero")
	}
	if p.TeamID <= 0 {
		return errors.Wrap(ErrInvalid, "player team id must be greater than zero")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errors.Wrap(ErrInvalid, "player name is required")
	}
	if p.BirthDate.IsZero() {
		return errors.Wrap(ErrInvalid, "player birth date is required")
	}
	if p.SkillLevel < 0 {
		return errors.Wrapf(ErrInvalid, "player skill level must be >= 0, got %d", p.SkillLevel)
	}
	if p.Salary.IsNegative() {
		return errors.Wrapf(ErrInvalid, "player salary must be >= 0, got %s", p.Salary)
	}

	return nil
}
