package usecase

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/team-registry/internal/platform/logging"
)

const defaultReportWorkers = 4

type ReportService struct {
	registry *RegistryService
	workers  int
	logger   *logging.Logger
}

func NewReportService(registry *RegistryService, workers int, logger *logging.Logger) *ReportService {
	if workers < 1 {
		workers = defaultReportWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &ReportService{
		registry: registry,
		workers:  workers,
		logger:   logger,
	}
}

func (s *ReportService) TeamSummary(ctx context.Context, teamID int64) (TeamSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.TeamSummary")
	defer span.End()

	return s.registry.TeamSummary(ctx, teamID)
}

// ListTeamSummaries builds one summary per team, ordered by ascending team id.
func (s *ReportService) ListTeamSummaries(ctx context.Context) ([]TeamSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.ListTeamSummaries")
	defer span.End()

	teamIDs, err := s.registry.ListAllTeams(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list teams")
	}
	if len(teamIDs) == 0 {
		return []TeamSummary{}, nil
	}

	pool, err := ants.NewPool(min(s.workers, len(teamIDs)))
	if err != nil {
		return nil, errors.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	out := make([]TeamSummary, len(teamIDs))
	errs := make([]error, len(teamIDs))

	var workers sync.WaitGroup
	for i, teamID := range teamIDs {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			out[i], errs[i] = s.registry.TeamSummary(ctx, teamID)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, errors.Wrap(err, "submit summary task to worker pool")
		}
	}
	workers.Wait()

	for i, err := range errs {
		if err != nil {
			s.logger.WarnContext(ctx, "team summary failed", "team_id", teamIDs[i], "error", err)
			return nil, errors.Wrapf(err, "summarize team=%d", teamIDs[i])
		}
	}

	return out, nil
}
