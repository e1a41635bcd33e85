package service

import (
	"context"

	"tech-discovery/internal/model"
	"tech-discovery/internal/repository"
	apperrors "tech-discovery/pkg/errors"
)

// UserService handles registration, roles and subscriptions
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates the user on first call. Registering an email that
// already exists is a no-op success, not an error.
func (s *UserService) Register(ctx context.Context, req *model.RegisterUserRequest) (*model.RegisterResult, error) {
	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return &model.RegisterResult{Message: "user already exists", InsertedID: nil}, nil
	}
	if err != apperrors.ErrUserNotFound {
		return nil, err
	}

	user := &model.User{
		Name:       req.Name,
		Email:      req.Email,
		Image:      req.Image,
		Role:       model.RoleMember,
		Subscribed: false,
	}

	id, err := s.userRepo.Insert(ctx, user)
	if err != nil {
		// Lost a race with a concurrent registration for the same
		// email; the unique index makes this the duplicate case too.
		if err == apperrors.ErrUserExists {
			return &model.RegisterResult{Message: "user already exists", InsertedID: nil}, nil
		}
		return nil, err
	}

	return &model.RegisterResult{InsertedID: &id}, nil
}

// Profile retrieves the full user document by email
func (s *UserService) Profile(ctx context.Context, email string) (*model.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}

// IsAdmin reports whether the user with the given email is an admin
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.hasRole(ctx, email, model.RoleAdmin)
}

// IsModerator reports whether the user with the given email is a
// moderator
func (s *UserService) IsModerator(ctx context.Context, email string) (bool, error) {
	return s.hasRole(ctx, email, model.RoleModerator)
}

func (s *UserService) hasRole(ctx context.Context, email string, role model.Role) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user.EffectiveRole() == role, nil
}

// UpdateRole changes the role of the user with the given id
func (s *UserService) UpdateRole(ctx context.Context, id string, role model.Role) error {
	if !model.ValidRole(role) {
		return apperrors.ErrInvalidRole
	}
	return s.userRepo.UpdateRole(ctx, id, role)
}

// Subscribe marks the user as subscribed. The flag is monotonic; there
// is no unsubscribe operation.
func (s *UserService) Subscribe(ctx context.Context, email string) error {
	return s.userRepo.SetSubscribed(ctx, email)
}
