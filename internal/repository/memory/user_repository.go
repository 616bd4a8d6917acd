package memory

import (
	"context"

	"notes-backend/internal/entity"
	"notes-backend/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

var _ contract.UserRepository = (*UserRepository)(nil)

// UserRepository keeps user records in an in-process go-cache keyed by name.
// Records never expire; they only leave the store through DeleteByName.
type UserRepository struct {
	cache *cache.Cache
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *UserRepository) Save(ctx context.Context, user *entity.User) error {
	u := *user
	r.cache.Set(user.Name, &u, cache.NoExpiration)
	return nil
}

func (r *UserRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	if x, found := r.cache.Get(name); found {
		u := *x.(*entity.User)
		return &u, nil
	}
	return nil, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	items := r.cache.Items()
	users := make([]*entity.User, 0, len(items))
	for _, item := range items {
		u := *item.Object.(*entity.User)
		users = append(users, &u)
	}
	return users, nil
}

func (r *UserRepository) DeleteByName(ctx context.Context, name string) error {
	r.cache.Delete(name)
	return nil
}

func (r *UserRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	_, found := r.cache.Get(name)
	return found, nil
}
