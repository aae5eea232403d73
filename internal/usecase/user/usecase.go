package user

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domain "user-management-service/internal/domain/user"
	pkgerrors "user-management-service/pkg/errors"
)

// NotFoundMessage is the message carried by every user not-found error.
const NotFoundMessage = "User not found"

// Repository defines the storage primitives the service relies on.
// Each service operation calls exactly one of them.
type Repository interface {
	List(ctx context.Context) ([]domain.User, error)                              // All users in storage order
	GetByID(ctx context.Context, id int64) (*domain.User, error)                  // One user or domain.ErrNotFound
	Create(ctx context.Context, u *domain.User) (*domain.User, error)             // Insert, storage assigns the id
	Update(ctx context.Context, id int64, c domain.Changes) (*domain.User, error) // Write the set fields by id
	Delete(ctx context.Context, id int64) (*domain.User, error)                   // Remove by id, returns removed row
}

// Service implements the user management operations on top of a Repository.
type Service struct {
	repo Repository
	log  *zap.Logger
}

var _ Usecase = (*Service)(nil)

// New creates a new Service with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log}
}

// ListUsers returns every stored user.
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	domainUsers, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list users", zap.Error(err))
		return nil, s.mapError(err)
	}

	users := make([]User, len(domainUsers))
	for i := range domainUsers {
		users[i] = toDTO(&domainUsers[i])
	}
	return users, nil
}

// GetUser retrieves a user by ID.
func (s *Service) GetUser(ctx context.Context, in GetUserRequest) (*User, error) {
	u, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		s.log.Warn("failed to get user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, s.mapError(err)
	}

	out := toDTO(u)
	return &out, nil
}

// CreateUser stores a new user. The id is always assigned by storage.
func (s *Service) CreateUser(ctx context.Context, in CreateUserRequest) (*User, error) {
	s.log.Info("creating user", zap.String("name", in.Name), zap.String("email", in.Email))

	u, err := s.repo.Create(ctx, &domain.User{
		Name:  in.Name,
		Email: in.Email,
	})
	if err != nil {
		s.log.Error("failed to create user", zap.Error(err))
		return nil, s.mapError(err)
	}

	out := toDTO(u)
	return &out, nil
}

// UpdateUser writes the fields present in the request and keeps the others.
// A missing id is reported as not found rather than as a storage failure.
func (s *Service) UpdateUser(ctx context.Context, in UpdateUserRequest) (*User, error) {
	s.log.Info("updating user", zap.Int64("id", in.ID), zap.Stringp("name", in.Name), zap.Stringp("email", in.Email))

	u, err := s.repo.Update(ctx, in.ID, domain.Changes{
		Name:  in.Name,
		Email: in.Email,
	})
	if err != nil {
		s.log.Warn("failed to update user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, s.mapError(err)
	}

	out := toDTO(u)
	return &out, nil
}

// DeleteUser removes a user and returns the removed record.
func (s *Service) DeleteUser(ctx context.Context, in DeleteUserRequest) (*User, error) {
	s.log.Info("deleting user", zap.Int64("id", in.ID))

	u, err := s.repo.Delete(ctx, in.ID)
	if err != nil {
		s.log.Warn("failed to delete user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, s.mapError(err)
	}

	out := toDTO(u)
	return &out, nil
}

// mapError converts repository errors into the application error taxonomy.
func (s *Service) mapError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return pkgerrors.NewNotFoundError("user", NotFoundMessage)
	}
	return pkgerrors.NewInternalError("storage failure", err)
}

func toDTO(u *domain.User) User {
	return User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
