package memory

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/team-registry/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
	index   map[int64]int
	byTeam  map[int64][]int
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{
		players: make([]player.Player, 0, len(players)),
		index:   make(map[int64]int, len(players)),
		byTeam:  make(map[int64][]int),
	}
	for _, p := range players {
		if _, exists := r.index[p.ID]; exists {
			continue
		}
		r.appendLocked(p)
	}

	return r
}

func (r *PlayerRepository) Insert(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[item.ID]; exists {
		return errors.Wrapf(ErrDuplicateKey, "player=%d", item.ID)
	}
	r.appendLocked(item)

	return nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[playerID]
	if !ok {
		return player.Player{}, false, nil
	}

	return r.players[pos], true, nil
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	out = append(out, r.players...)

	return out, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID int64) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	positions := r.byTeam[teamID]
	out := make([]player.Player, 0, len(positions))
	for _, pos := range positions {
		out = append(out, r.players[pos])
	}

	return out, nil
}

// SetCaptainFlags marks captainID as the only captain among teamID's players.
func (r *PlayerRepository) SetCaptainFlags(_ context.Context, teamID, captainID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[captainID]
	if !ok || r.players[pos].TeamID != teamID {
		return errors.Newf("player=%d is not stored on team=%d", captainID, teamID)
	}

	for _, p := range r.byTeam[teamID] {
		r.players[p].IsCaptain = r.players[p].ID == captainID
	}

	return nil
}

func (r *PlayerRepository) appendLocked(item player.Player) {
	pos := len(r.players)
	r.players = append(r.players, item)
	r.index[item.ID] = pos
	r.byTeam[item.TeamID] = append(r.byTeam[item.TeamID], pos)
}
