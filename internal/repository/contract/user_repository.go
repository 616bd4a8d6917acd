package contract

import (
	"context"

	"notes-backend/internal/entity"
)

// UserRepository is a user store keyed by unique name. Save is an upsert:
// the store does not enforce prior existence. FindByName returns (nil, nil)
// when absent.
type UserRepository interface {
	Save(ctx context.Context, user *entity.User) error
	FindByName(ctx context.Context, name string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	DeleteByName(ctx context.Context, name string) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}
