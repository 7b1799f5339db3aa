package memory

import (
	"time"

	"github.com/riskibarqy/team-registry/internal/domain/player"
	"github.com/riskibarqy/team-registry/internal/domain/team"
	"github.com/shopspring/decimal"
)

const (
	TeamIDReds  int64 = 1
	TeamIDBlues int64 = 2
)

func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID:             TeamIDReds,
			Name:           "Reds",
			FoundedOn:      day(1892, time.June, 3),
			PrimaryColor:   "red",
			SecondaryColor: "white",
		},
		{
			ID:             TeamIDBlues,
			Name:           "Blues",
			FoundedOn:      day(1878, time.March, 1),
			PrimaryColor:   "blue",
			SecondaryColor: "white",
		},
	}
}

// SeedPlayers pairs with SeedTeams; player 11 starts as the Reds captain.
func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 10, TeamID: TeamIDReds, Name: "Alan Rowe", BirthDate: day(1994, time.April, 12), SkillLevel: 5, Salary: decimal.RequireFromString("100")},
		{ID: 11, TeamID: TeamIDReds, Name: "Bruno Costa", BirthDate: day(1997, time.September, 30), SkillLevel: 9, Salary: decimal.RequireFromString("50"), IsCaptain: true},
		{ID: 20, TeamID: TeamIDBlues, Name: "Carl Nyberg", BirthDate: day(1991, time.January, 8), SkillLevel: 7, Salary: decimal.RequireFromString("200")},
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
