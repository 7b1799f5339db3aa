package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/team-registry/internal/domain/player"
	"github.com/riskibarqy/team-registry/internal/domain/team"
	"github.com/riskibarqy/team-registry/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const defaultImportWorkers = 4

// Roster is a batch of teams and players inserted in the given order.
type Roster struct {
	Teams   []InsertTeamInput
	Players []InsertPlayerInput
}

type ImportResult struct {
	TeamsInserted   int
	PlayersInserted int
}

type ImportService struct {
	registry *RegistryService
	workers  int
	logger   *logging.Logger
}

func NewImportService(registry *RegistryService, workers int, logger *logging.Logger) *ImportService {
	if workers < 1 {
		workers = defaultImportWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &ImportService{
		registry: registry,
		workers:  workers,
		logger:   logger,
	}
}

// Import checks the whole batch first and rejects it without side effects
// when any entry is malformed. The checks are stricter than single inserts:
// ids must be positive, text fields non-blank, dates set and amounts non-negative. Inserts then run in order; the first registry
// failure stops the import and earlier inserts stay in place.
func (s *ImportService) Import(ctx context.Context, roster Roster) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.Import")
	defer span.End()

	if len(roster.Teams) == 0 && len(roster.Players) == 0 {
		return ImportResult{}, errors.Wrap(ErrInvalidInput, "roster is empty")
	}

	if err := s.validate(ctx, roster); err != nil {
		return ImportResult{}, err
	}

	var result ImportResult
	for _, item := range roster.Teams {
		if err := s.registry.InsertTeam(ctx, item); err != nil {
			s.logger.WarnContext(ctx, "roster import stopped", "team_id", item.ID, "error", err)
			return result, errors.Wrapf(err, "import team=%d", item.ID)
		}
		result.TeamsInserted++
	}
	for _, item := range roster.Players {
		if err := s.registry.InsertPlayer(ctx, item); err != nil {
			s.logger.WarnContext(ctx, "roster import stopped", "player_id", item.ID, "error", err)
			return result, errors.Wrapf(err, "import player=%d", item.ID)
		}
		result.PlayersInserted++
	}

	s.logger.InfoContext(ctx, "roster imported",
		"teams", result.TeamsInserted,
		"players", result.PlayersInserted,
	)
	return result, nil
}

func (s *ImportService) validate(ctx context.Context, roster Roster) error {
	p := pool.New().WithContext(ctx).WithMaxGoroutines(s.workers)

	for i, item := range roster.Teams {
		p.Go(func(context.Context) error {
			candidate := team.Team{
				ID:             item.ID,
				Name:           item.Name,
				FoundedOn:      item.FoundedOn,
				PrimaryColor:   item.PrimaryColor,
				SecondaryColor: item.SecondaryColor,
			}
			if err := candidate.Validate(); err != nil {
				return errors.Wrapf(err, "teams[%d]", i)
			}
			return nil
		})
	}
	for i, item := range roster.Players {
		p.Go(func(context.Context) error {
			candidate := player.Player{
				ID:         item.ID,
				TeamID:     item.TeamID,
				Name:       item.Name,
				BirthDate:  item.BirthDate,
				SkillLevel: item.SkillLevel,
				Salary:     item.Salary,
			}
			if err := candidate.Validate(); err != nil {
				return errors.Wrapf(err, "players[%d]", i)
			}
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return invalidInput(err)
	}
	return nil
}
