package memory

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/team-registry/internal/domain/team"
)

// ErrDuplicateKey is returned when an item with the same id is already stored.
var ErrDuplicateKey = errors.New("duplicate key")

type TeamRepository struct {
	mu     sync.RWMutex
	items  map[int64]team.Team
	orders []int64
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	items := make(map[int64]team.Team, len(teams))
	orders := make([]int64, 0, len(teams))

	for _, t := range teams {
		if _, exists := items[t.ID]; exists {
			continue
		}
		items[t.ID] = t
		orders = append(orders, t.ID)
	}

	return &TeamRepository{
		items:  items,
		orders: orders,
	}
}

func (r *TeamRepository) Insert(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return errors.Wrapf(ErrDuplicateKey, "team=%d", item.ID)
	}
	r.items[item.ID] = item
	r.orders = append(r.orders, item.ID)

	return nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[teamID]
	return item, ok, nil
}

// List returns teams in insertion order.
func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}
