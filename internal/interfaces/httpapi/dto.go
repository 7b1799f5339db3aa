package httpapi

import (
	"fmt"
	"time"

	"github.com/riskibarqy/team-registry/internal/domain/player"
	"github.com/riskibarqy/team-registry/internal/domain/team"
	"github.com/riskibarqy/team-registry/internal/usecase"
	"github.com/shopspring/decimal"
)

const dateLayout = time.DateOnly

type insertTeamRequest struct {
	ID             int64  `json:"id" validate:"required,gt=0"`
	Name           string `json:"name" validate:"required,max=100"`
	FoundedOn      string `json:"foundedOn" validate:"required,datetime=2006-01-02"`
	PrimaryColor   string `json:"primaryColor" validate:"required,max=50"`
	SecondaryColor string `json:"secondaryColor" validate:"required,max=50"`
}

type insertPlayerRequest struct {
	ID         int64  `json:"id" validate:"required,gt=0"`
	TeamID     int64  `json:"teamId" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required,max=100"`
	BirthDate  string `json:"birthDate" validate:"required,datetime=2006-01-02"`
	SkillLevel *int   `json:"skillLevel" validate:"required,gte=0"`
	Salary     string `json:"salary" validate:"required,numeric"`
}

type importRosterRequest struct {
	Teams   []insertTeamRequest   `json:"teams" validate:"dive"`
	Players []insertPlayerRequest `json:"players" validate:"dive"`
}

type teamDTO struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	FoundedOn      string `json:"foundedOn"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}

type playerDTO struct {
	ID         int64  `json:"id"`
	TeamID     int64  `json:"teamId"`
	Name       string `json:"name"`
	BirthDate  string `json:"birthDate"`
	SkillLevel int    `json:"skillLevel"`
	Salary     string `json:"salary"`
	IsCaptain  bool   `json:"isCaptain"`
}

type teamSummaryDTO struct {
	Team                teamDTO `json:"team"`
	PlayerIDs           []int64 `json:"playerIds"`
	CaptainID           *int64  `json:"captainId,omitempty"`
	BestPlayerID        *int64  `json:"bestPlayerId,omitempty"`
	OldestPlayerID      *int64  `json:"oldestPlayerId,omitempty"`
	HighestPaidPlayerID *int64  `json:"highestPaidPlayerId,omitempty"`
}

type playerRefDTO struct {
	PlayerID int64 `json:"playerId"`
}

type nameDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type salaryDTO struct {
	PlayerID int64  `json:"playerId"`
	Salary   string `json:"salary"`
}

type awayUniformDTO struct {
	HomeTeamID int64  `json:"homeTeamId"`
	AwayTeamID int64  `json:"awayTeamId"`
	Color      string `json:"color"`
}

type importResultDTO struct {
	TeamsInserted   int `json:"teamsInserted"`
	PlayersInserted int `json:"playersInserted"`
}

func (req insertTeamRequest) toInput() (usecase.InsertTeamInput, error) {
	foundedOn, err := parseDate("foundedOn", req.FoundedOn)
	if err != nil {
		return usecase.InsertTeamInput{}, err
	}

	return usecase.InsertTeamInput{
		ID:             req.ID,
		Name:           req.Name,
		FoundedOn:      foundedOn,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
	}, nil
}

func (req insertPlayerRequest) toInput() (usecase.InsertPlayerInput, error) {
	birthDate, err := parseDate("birthDate", req.BirthDate)
	if err != nil {
		return usecase.InsertPlayerInput{}, err
	}
	salary, err := decimal.NewFromString(req.Salary)
	if err != nil {
		return usecase.InsertPlayerInput{}, fmt.Errorf("%w: salary %q: %v", usecase.ErrInvalidInput, req.Salary, err)
	}
	skill := 0
	if req.SkillLevel != nil {
		skill = *req.SkillLevel
	}

	return usecase.InsertPlayerInput{
		ID:         req.ID,
		TeamID:     req.TeamID,
		Name:       req.Name,
		BirthDate:  birthDate,
		SkillLevel: skill,
		Salary:     salary,
	}, nil
}

func (req importRosterRequest) toRoster() (usecase.Roster, error) {
	out := usecase.Roster{
		Teams:   make([]usecase.InsertTeamInput, 0, len(req.Teams)),
		Players: make([]usecase.InsertPlayerInput, 0, len(req.Players)),
	}
	for i, item := range req.Teams {
		input, err := item.toInput()
		if err != nil {
			return usecase.Roster{}, fmt.Errorf("teams[%d]: %w", i, err)
		}
		out.Teams = append(out.Teams, input)
	}
	for i, item := range req.Players {
		input, err := item.toInput()
		if err != nil {
			return usecase.Roster{}, fmt.Errorf("players[%d]: %w", i, err)
		}
		out.Players = append(out.Players, input)
	}
	return out, nil
}

func parseDate(field, raw string) (time.Time, error) {
	v, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD, got %q", usecase.ErrInvalidInput, field, raw)
	}
	return v, nil
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:             v.ID,
		Name:           v.Name,
		FoundedOn:      v.FoundedOn.Format(dateLayout),
		PrimaryColor:   v.PrimaryColor,
		SecondaryColor: v.SecondaryColor,
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:         v.ID,
		TeamID:     v.TeamID,
		Name:       v.Name,
		BirthDate:  v.BirthDate.Format(dateLayout),
		SkillLevel: v.SkillLevel,
		Salary:     v.Salary.String(),
		IsCaptain:  v.IsCaptain,
	}
}

func teamSummaryToDTO(v usecase.TeamSummary) teamSummaryDTO {
	playerIDs := v.PlayerIDs
	if playerIDs == nil {
		playerIDs = []int64{}
	}

	return teamSummaryDTO{
		Team:                teamToDTO(v.Team),
		PlayerIDs:           playerIDs,
		CaptainID:           v.CaptainID,
		BestPlayerID:        v.BestPlayerID,
		OldestPlayerID:      v.OldestPlayerID,
		HighestPaidPlayerID: v.HighestPaidPlayer,
	}
}

func idsOrEmpty(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
