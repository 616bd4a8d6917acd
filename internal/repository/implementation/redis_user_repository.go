package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"notes-backend/internal/entity"
	"notes-backend/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const userKeyPrefix = "user:"

var _ contract.UserRepository = (*RedisUserRepository)(nil)

// RedisUserRepository stores user records as JSON under "user:<name>". It is
// the shared-backing alternative to the in-process store; which one is used
// is decided at bootstrap from config.
type RedisUserRepository struct {
	rdb *redis.Client
}

func NewRedisUserRepository(rdb *redis.Client) *RedisUserRepository {
	return &RedisUserRepository{rdb: rdb}
}

func (r *RedisUserRepository) Save(ctx context.Context, user *entity.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, userKeyPrefix+user.Name, data, 0).Err()
}

func (r *RedisUserRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	data, err := r.rdb.Get(ctx, userKeyPrefix+name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var user entity.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("corrupt user record for %q: %w", name, err)
	}
	return &user, nil
}

func (r *RedisUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	iter := r.rdb.Scan(ctx, 0, userKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := r.rdb.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue // deleted between scan and get
			}
			return nil, err
		}
		var user entity.User
		if err := json.Unmarshal(data, &user); err != nil {
			return nil, fmt.Errorf("corrupt user record at %q: %w", iter.Val(), err)
		}
		users = append(users, &user)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *RedisUserRepository) DeleteByName(ctx context.Context, name string) error {
	return r.rdb.Del(ctx, userKeyPrefix+name).Err()
}

func (r *RedisUserRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	n, err := r.rdb.Exists(ctx, userKeyPrefix+name).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
