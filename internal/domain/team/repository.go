package team

import "context"

// Repository describes team storage needs from use cases.
type Repository interface {
	Insert(ctx context.Context, item Team) error
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	List(ctx context.Context) ([]Team, error)
}
