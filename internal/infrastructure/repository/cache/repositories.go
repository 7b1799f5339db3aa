package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/team-registry/internal/domain/team"
	basecache "github.com/riskibarqy/team-registry/internal/platform/cache"
)

const (
	teamListKey    = "team:list"
	teamByIDPrefix = "team:id:"
)

// TeamRepository is a read-through cache over a team repository. Teams are
// immutable once stored, so only inserts invalidate entries.
type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) Insert(ctx context.Context, item team.Team) error {
	if err := r.next.Insert(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, teamListKey, teamKey(item.ID))
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, teamKey(teamID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, teamListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

func teamKey(teamID int64) string {
	return teamByIDPrefix + strconv.FormatInt(teamID, 10)
}
