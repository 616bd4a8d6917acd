package service

import (
	"context"
	"encoding/json"

	"notes-backend/internal/dto"
	"notes-backend/internal/entity"
	"notes-backend/internal/pkg/hasher"
	"notes-backend/internal/pkg/logger"
	"notes-backend/internal/repository/contract"
	"notes-backend/pkg/events"
	pktNats "notes-backend/pkg/nats"
)

type IUserService interface {
	Create(ctx context.Context, payload *dto.UserPayload) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, name string, payload *dto.UserPayload) (*entity.User, error)
	Delete(ctx context.Context, name string) (bool, error)
}

type userService struct {
	userRepository   contract.UserRepository
	passwordHasher   hasher.IPasswordHasher
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewUserService(
	userRepository contract.UserRepository,
	passwordHasher hasher.IPasswordHasher,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IUserService {
	return &userService{
		userRepository:   userRepository,
		passwordHasher:   passwordHasher,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (s *userService) Create(ctx context.Context, payload *dto.UserPayload) (*entity.User, error) {
	hash, err := s.passwordHasher.Hash(payload.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:         payload.Name,
		PasswordHash: hash,
		Role:         entity.UserRole(payload.Role),
		Active:       payload.Active != nil && *payload.Active,
	}

	if err := s.userRepository.Save(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("UserService", "User created", map[string]interface{}{"name": user.Name})

	s.publishEvent(ctx, events.New(events.TypeUserCreated, map[string]interface{}{
		"name": user.Name,
		"role": string(user.Role),
	}))

	return user, nil
}

// GetByName returns (nil, nil) when absent; absence is a boundary concern,
// not a service error.
func (s *userService) GetByName(ctx context.Context, name string) (*entity.User, error) {
	user, err := s.userRepository.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.logger.Warn("UserService", "User not found", map[string]interface{}{"name": name})
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := s.userRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("UserService", "Fetched all users", map[string]interface{}{"count": len(users)})
	return users, nil
}

// Update writes a full replacement record under name, re-hashing the
// password. The store does not require prior existence, so an update against
// a missing name creates the record. Notes behave differently on purpose;
// callers needing a strict not-found must pre-check.
func (s *userService) Update(ctx context.Context, name string, payload *dto.UserPayload) (*entity.User, error) {
	hash, err := s.passwordHasher.Hash(payload.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:         name,
		PasswordHash: hash,
		Role:         entity.UserRole(payload.Role),
		Active:       payload.Active != nil && *payload.Active,
	}

	if err := s.userRepository.Save(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("UserService", "User updated", map[string]interface{}{"name": name})

	return user, nil
}

// Delete reports whether a record existed and was removed.
func (s *userService) Delete(ctx context.Context, name string) (bool, error) {
	exists, err := s.userRepository.ExistsByName(ctx, name)
	if err != nil {
		return false, err
	}
	if !exists {
		s.logger.Warn("UserService", "User not found for deletion", map[string]interface{}{"name": name})
		return false, nil
	}

	if err := s.userRepository.DeleteByName(ctx, name); err != nil {
		return false, err
	}
	s.logger.Info("UserService", "User deleted", map[string]interface{}{"name": name})

	s.publishEvent(ctx, events.New(events.TypeUserDeleted, map[string]interface{}{
		"name": name,
	}))

	return true, nil
}

func (s *userService) publishEvent(ctx context.Context, evt events.BaseEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		s.logger.Error("UserService", "Failed to marshal event", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("UserService", "Failed to publish event", map[string]interface{}{
			"type":  evt.Type,
			"error": err.Error(),
		})
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("UserService", "Failed to publish event to NATS", map[string]interface{}{
				"type":  evt.Type,
				"error": err.Error(),
			})
		}
	}
}
