package player

import "context"

// Repository describes player storage needs from use cases.
// List and ListByTeam return players in insertion order.
type Repository interface {
	Insert(ctx context.Context, item Player) error
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	List(ctx context.Context) ([]Player, error)
	ListByTeam(ctx context.Context, teamID int64) ([]Player, error)
	SetCaptainFlags(ctx context.Context, teamID, captainID int64) error
}
