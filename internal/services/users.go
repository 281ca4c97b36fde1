package services

import (
	"context"
	"errors"
	"slices"

	"github.com/sbilibin2017/gw-recipe-atlas/internal/logger"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrLastAdmin    = errors.New("cannot remove the last administrator")
	ErrInvalidRole  = errors.New("role must be user or admin")
)

// UserService manages accounts on behalf of administrators.
type UserService struct {
	users  UserStore
	events EventPublisher
	opts   options
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore, events EventPublisher, opts ...Option) *UserService {
	return &UserService{
		users:  users,
		events: events,
		opts:   newOptions(opts),
	}
}

// List returns every user without password hashes.
func (s *UserService) List(ctx context.Context, session models.AuthState) ([]models.User, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}

	users, err := s.users.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// Add creates a user with the given role.
func (s *UserService) Add(ctx context.Context, session models.AuthState, username, password, role string) (models.User, error) {
	if err := requireAdmin(session); err != nil {
		return models.User{}, err
	}
	if !validRole(role) {
		return models.User{}, ErrInvalidRole
	}
	if len(password) < MinPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	hashed, err := hashPassword(password, s.opts.bcryptCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:       newID(s.opts.now()),
		Username: username,
		Password: hashed,
		Role:     role,
	}
	if err := s.users.Mutate(ctx, func(users []models.User) ([]models.User, error) {
		if usernameTaken(users, username, "") {
			return nil, ErrUserAlreadyExists
		}
		return append(users, user), nil
	}); err != nil {
		logger.Log.Errorw("failed to add user", "username", username, "error", err)
		return models.User{}, err
	}

	logger.Log.Infow("user added", "user_id", user.ID, "role", role, "by", session.UserID())
	publish(ctx, s.events, s.opts, models.EventUserRegistered, user.ID, session.UserID(), map[string]string{"username": username, "role": role})
	return withoutPassword(user), nil
}

// Edit changes username, role and, when password is not empty, the password.
// The last administrator cannot be demoted.
func (s *UserService) Edit(ctx context.Context, session models.AuthState, id, username, password, role string) (models.User, error) {
	if err := requireAdmin(session); err != nil {
		return models.User{}, err
	}
	if !validRole(role) {
		return models.User{}, ErrInvalidRole
	}

	var hashed string
	if password != "" {
		if len(password) < MinPasswordLength {
			return models.User{}, ErrPasswordTooShort
		}
		var err error
		if hashed, err = hashPassword(password, s.opts.bcryptCost); err != nil {
			return models.User{}, err
		}
	}

	var updated models.User
	err := s.users.Mutate(ctx, func(users []models.User) ([]models.User, error) {
		idx := slices.IndexFunc(users, func(u models.User) bool { return u.ID == id })
		if idx < 0 {
			return nil, ErrUserNotFound
		}
		if usernameTaken(users, username, id) {
			return nil, ErrUserAlreadyExists
		}
		if users[idx].IsAdmin() && role != models.RoleAdmin && countAdmins(users) == 1 {
			return nil, ErrLastAdmin
		}

		users[idx].Username = username
		users[idx].Role = role
		if hashed != "" {
			users[idx].Password = hashed
		}
		updated = users[idx]
		return users, nil
	})
	if err != nil {
		logger.Log.Errorw("failed to update user", "user_id", id, "error", err)
		return models.User{}, err
	}

	logger.Log.Infow("user updated", "user_id", id, "role", role, "by", session.UserID())
	return withoutPassword(updated), nil
}

// Delete removes a user. The only remaining administrator cannot be deleted.
func (s *UserService) Delete(ctx context.Context, session models.AuthState, id string) error {
	if err := requireAdmin(session); err != nil {
		return err
	}

	err := s.users.Mutate(ctx, func(users []models.User) ([]models.User, error) {
		idx := slices.IndexFunc(users, func(u models.User) bool { return u.ID == id })
		if idx < 0 {
			return nil, ErrUserNotFound
		}
		if users[idx].IsAdmin() && countAdmins(users) == 1 {
			return nil, ErrLastAdmin
		}
		return slices.Delete(users, idx, idx+1), nil
	})
	if err != nil {
		if errors.Is(err, ErrLastAdmin) {
			logger.Log.Warnw("refusing to delete last admin", "user_id", id)
		} else {
			logger.Log.Errorw("failed to delete user", "user_id", id, "error", err)
		}
		return err
	}

	logger.Log.Infow("user deleted", "user_id", id, "by", session.UserID())
	publish(ctx, s.events, s.opts, models.EventUserDeleted, id, session.UserID(), nil)
	return nil
}

func validRole(role string) bool {
	return role == models.RoleUser || role == models.RoleAdmin
}

func countAdmins(users []models.User) int {
	n := 0
	for _, u := range users {
		if u.IsAdmin() {
			n++
		}
	}
	return n
}
