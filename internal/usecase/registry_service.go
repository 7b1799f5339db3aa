package usecase

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/team-registry/internal/domain/player"
	"github.com/riskibarqy/team-registry/internal/domain/team"
	"github.com/riskibarqy/team-registry/internal/platform/logging"
	"github.com/shopspring/decimal"
)

// MutationRecorder observes registry writes. A nil recorder is allowed.
type MutationRecorder interface {
	RecordMutation(operation string, err error)
}

type InsertTeamInput struct {
	ID             int64
	Name           string
	FoundedOn      time.Time
	PrimaryColor   string
	SecondaryColor string
}

type InsertPlayerInput struct {
	ID         int64
	TeamID     int64
	Name       string
	BirthDate  time.Time
	SkillLevel int
	Salary     decimal.Decimal
}

// TeamSummary is a read model over one team's roster. Pointer fields are nil
// when the team has no captain or no players.
type TeamSummary struct {
	Team              team.Team
	PlayerIDs         []int64
	CaptainID         *int64
	BestPlayerID      *int64
	OldestPlayerID    *int64
	HighestPaidPlayer *int64
}

// RegistryService owns the team and player collections. Every public method
// holds one exclusive lock for its whole duration.
type RegistryService struct {
	mu         sync.Mutex
	teamRepo   team.Repository
	playerRepo player.Repository
	recorder   MutationRecorder
	logger     *logging.Logger
}

func NewRegistryService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	recorder MutationRecorder,
	logger *logging.Logger,
) *RegistryService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RegistryService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		recorder:   recorder,
		logger:     logger,
	}
}

// InsertTeam stores the team exactly as given. Only an existing id is rejected.
func (s *RegistryService) InsertTeam(ctx context.Context, input InsertTeamInput) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistryService.InsertTeam")
	defer span.End()
	defer func() { s.record("insert_team", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists, err := s.teamRepo.GetByID(ctx, input.ID)
	if err != nil {
		return errors.Wrap(err, "get team by id")
	}
	if exists {
		return errors.Wrapf(ErrDuplicateIdentifier, "team=%d", input.ID)
	}

	item := team.Team{
		ID:             input.ID,
		Name:           input.Name,
		FoundedOn:      team.Date(input.FoundedOn),
		PrimaryColor:   input.PrimaryColor,
		SecondaryColor: input.SecondaryColor,
	}

	if err := s.teamRepo.Insert(ctx, item); err != nil {
		return errors.Wrap(err, "insert team")
	}

	s.logger.DebugContext(ctx, "team inserted", "team_id", item.ID, "name", item.Name)
	return nil
}

func (s *RegistryService) InsertPlayer(ctx context.Context, input InsertPlayerInput) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistryService.InsertPlayer")
	defer span.End()
	defer func() { s.record("insert_player", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists, err := s.playerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return errors.Wrap(err, "get player by id")
	}
	if exists {
		return errors.Wrapf(ErrDuplicateIdentifier, "player=%d", input.ID)
	}
	if _, err := s.requireTeam(ctx, input.TeamID); err != nil {
		return err
	}

	item := player.Player{
		ID:         input.ID,
		TeamID:     input.TeamID,
		Name:       input.Name,
		BirthDate:  team.Date(input.BirthDate),
		SkillLevel: input.SkillLevel,
		Salary:     input.Salary,
		IsCaptain:  false,
	}

	if err := s.playerRepo.Insert(ctx, item); err != nil {
		return errors.Wrap(err, "insert player")
	}

	s.logger.DebugContext(ctx, "player inserted", "player_id", item.ID, "team_id", item.TeamID)
	return nil
}

// SetCaptain makes playerID the only captain of its team. Other teams are untouched.
func (s *RegistryService) SetCaptain(ctx context.Context, playerID int64) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistryService.SetCaptain")
	defer span.End()
	defer func() { s.record("set_captain", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.requirePlayer(ctx, playerID)
	if err != nil {
		return err
	}

	if err := s.playerRepo.SetCaptainFlags(ctx, item.TeamID, item.ID); err != nil {
		return errors.Wrap(err, "set captain flags")
	}

	s.logger.DebugContext(ctx, "captain set", "player_id", item.ID, "team_id", item.TeamID)
	return nil
}

func (s *RegistryService) GetTeamCaptain(ctx context.Context, teamID int64) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistryService.GetTeamCaptain")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	roster, err := s.teamRoster(ctx, teamID)
	if err != nil {
		return 0, err
	}

	captainID, ok := captainOf(roster)
	if !ok {
		return 0, errors.Wrapf(ErrNoCaptainSet, "team=%d", teamID)
	}

	return captainID, nil
}

func (s *RegistryService) GetPlayerName(ctx context.Context, playerID int64) (string, error) {
	item, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return "", err
	}
	return item.Name, nil
}

func (s *RegistryService) GetTeamName(ctx context.Context, teamID int64) (string, error) {
	item, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return "", err
	}
	return item.Name, nil
}

func (s *RegistryService) GetPlayerSalary(ctx context.Context, playerID int64) (decimal.Decimal, error) {
	item, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return item.Salary, nil
}

func (s *RegistryService) GetTeam(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistryService.GetTeam")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.requireTeam(ctx, teamID)
}

func (s *RegistryService) GetPlayer(ctx context.Context, playerID int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistryService.GetPlayer")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.requirePlayer(ctx, playerID)
}

// ListTeamPlayers returns the team's player ids in ascending order.
func (s *RegistryService) ListTeamPlayers(ctx context.Context, teamID int64) ([]int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistryService.ListTeamPlayers")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	roster, err := s.teamRoster(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return sortedIDs(roster), nil
}

// BestPlayerOnTeam returns the highest skill level on the team; the lowest id wins ties.
func (s *RegistryService) BestPlayerOnTeam(ctx context.Context, teamID int64) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistryService.BestPlayerOnTeam")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	roster, err := s.teamRoster(ctx, teamID)
	if err != nil {
		return 0, err
	}

	id, ok := bestBySkill(roster)
	if !ok {
		return 0, errors.Wrapf(ErrNoSuchElement, "team=%d has no players", teamID)
	}
	return id, nil
}

// OldestPlayerOnTeam returns the earliest birth date on the team; among equal
// dates the first inserted player wins.
func (s *RegistryService) OldestPlayerOnTeam(ctx context.Context, teamID int64) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistryService.OldestPlayerOnTeam")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	roster, err := s.teamRoster(ctx, teamID)
	if err != nil {
		return 0, err
	}

	id, ok := oldest(roster)
	if !ok {
		return 0, errors.Wrapf(ErrNoSuchElement, "team=%d has no players", teamID)
	}
	return id, nil
}

// HighestPaidPlayerOnTeam returns the largest salary on the team; the lowest id wins ties.
func (s *RegistryService) HighestPaidPlayerOnTeam(ctx context.Context, teamID int64) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistryService.HighestPaidPlayerOnTeam")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	roster, err := s.teamRoster(ctx, teamID)
	if err != nil {
		return 0, err
	}

	id, ok := highestPaid(roster)
	if !ok {
		return 0, errors.Wrapf(ErrNoSuchElement, "team=%d has no players", teamID)
	}
	return id, nil
}

func (s *RegistryService) ListAllTeams(ctx context.Context) ([]int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistryService.ListAllTeams")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list teams")
	}

	out := make([]int64, 0, len(teams))
	for _, t := range teams {
		out = append(out, t.ID)
	}
	slices.Sort(out)

	return out, nil
}

// TopPlayers picks up to n players by descending skill level and returns their
// ids in ascending order. Equal skill levels at the cut keep insertion order,
// as produced by a stable sort over the stored sequence.
func (s *RegistryService) TopPlayers(ctx context.Context, n int) ([]int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistryService.TopPlayers")
	defer span.End()

	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "top player count must be >= 0, got %d", n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list players")
	}

	slices.SortStableFunc(players, func(a, b player.Player) int {
		return cmp.Compare(b.SkillLevel, a.SkillLevel)
	})
	if n < len(players) {
		players = players[:n]
	}

	return sortedIDs(players), nil
}

// AwayUniformColor returns the color the away side wears against the home side.
func (s *RegistryService) AwayUniformColor(ctx context.Context, homeTeamID, awayTeamID int64) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistryService.AwayUniformColor")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	home, err := s.requireTeam(ctx, homeTeamID)
	if err != nil {
		return "", err
	}
	away, err := s.requireTeam(ctx, awayTeamID)
	if err != nil {
		return "", err
	}

	return away.AwayColor(home), nil
}

func (s *RegistryService) CountPlayers(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistryService.CountPlayers")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "list players")
	}
	return len(players), nil
}

// TeamSummary collects the roster queries for one team under a single lock.
func (s *RegistryService) TeamSummary(ctx context.Context, teamID int64) (TeamSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistryService.TeamSummary")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.requireTeam(ctx, teamID)
	if err != nil {
		return TeamSummary{}, err
	}
	roster, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return TeamSummary{}, errors.Wrap(err, "list players by team")
	}

	out := TeamSummary{
		Team:      item,
		PlayerIDs: sortedIDs(roster),
	}
	if id, ok := captainOf(roster); ok {
		out.CaptainID = &id
	}
	if id, ok := bestBySkill(roster); ok {
		out.BestPlayerID = &id
	}
	if id, ok := oldest(roster); ok {
		out.OldestPlayerID = &id
	}
	if id, ok := highestPaid(roster); ok {
		out.HighestPaidPlayer = &id
	}

	return out, nil
}

func (s *RegistryService) requireTeam(ctx context.Context, teamID int64) (team.Team, error) {
	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, errors.Wrap(err, "get team by id")
	}
	if !exists {
		return team.Team{}, errors.Wrapf(ErrTeamNotFound, "team=%d", teamID)
	}
	return item, nil
}

func (s *RegistryService) requirePlayer(ctx context.Context, playerID int64) (player.Player, error) {
	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, errors.Wrap(err, "get player by id")
	}
	if !exists {
		return player.Player{}, errors.Wrapf(ErrPlayerNotFound, "player=%d", playerID)
	}
	return item, nil
}

func (s *RegistryService) teamRoster(ctx context.Context, teamID int64) ([]player.Player, error) {
	if _, err := s.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}

	roster, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, errors.Wrap(err, "list players by team")
	}
	return roster, nil
}

func (s *RegistryService) record(operation string, err error) {
	if s.recorder == nil {
		return
	}
	s.recorder.RecordMutation(operation, err)
}

func captainOf(roster []player.Player) (int64, bool) {
	for _, p := range roster {
		if p.IsCaptain {
			return p.ID, true
		}
	}
	return 0, false
}

func sortedIDs(players []player.Player) []int64 {
	out := make([]int64, 0, len(players))
	for _, p := range players {
		out = append(out, p.ID)
	}
	slices.Sort(out)
	return out
}

func byID(roster []player.Player) []player.Player {
	out := slices.Clone(roster)
	slices.SortFunc(out, func(a, b player.Player) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// bestBySkill keeps the first maximum over the id-ordered roster.
func bestBySkill(roster []player.Player) (int64, bool) {
	ordered := byID(roster)
	if len(ordered) == 0 {
		return 0, false
	}
	best := ordered[0]
	for _, p := range ordered[1:] {
		if p.SkillLevel > best.SkillLevel {
			best = p
		}
	}
	return best.ID, true
}

func highestPaid(roster []player.Player) (int64, bool) {
	ordered := byID(roster)
	if len(ordered) == 0 {
		return 0, false
	}
	top := ordered[0]
	for _, p := range ordered[1:] {
		if p.Salary.Cmp(top.Salary) > 0 {
			top = p
		}
	}
	return top.ID, true
}

// oldest walks the roster in insertion order and keeps the first minimum.
func oldest(roster []player.Player) (int64, bool) {
	if len(roster) == 0 {
		return 0, false
	}
	first := roster[0]
	for _, p := range roster[1:] {
		if p.BirthDate.Before(first.BirthDate) {
			first = p
		}
	}
	return first.ID, true
}
