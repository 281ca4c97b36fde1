package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-recipe-atlas/internal/logger"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("admin role required")
)

// UserStore defines the users collection operations used by the services.
// Mutate runs fn inside one locked read-modify-write cycle; rules that depend
// on the other users are checked in fn.
type UserStore interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Mutate(ctx context.Context, fn func(users []models.User) ([]models.User, error)) error
}

// AuthStateStore persists the last authentication state.
type AuthStateStore interface {
	Get(ctx context.Context) (models.AuthState, error)
	Set(ctx context.Context, state models.AuthState) error
}

// TokenGenerator issues session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID, role string) (string, error)
}

// AuthService handles registration, login and logout.
type AuthService struct {
	users  UserStore
	state  AuthStateStore
	tokens TokenGenerator
	events EventPublisher
	opts   options
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserStore, state AuthStateStore, tokens TokenGenerator, events EventPublisher, opts ...Option) *AuthService {
	return &AuthService{
		users:  users,
		state:  state,
		tokens: tokens,
		events: events,
		opts:   newOptions(opts),
	}
}

// Login authenticates a user, persists the new state and returns it with a session token.
// The account must match both username and password. On failure the stored state is left untouched.
func (svc *AuthService) Login(ctx context.Context, username, password string) (models.AuthState, string, error) {
	users, err := svc.users.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get users", "err", err)
		return models.LoggedOut(), "", err
	}

	for _, user := range users {
		if user.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil {
			return svc.establish(ctx, user)
		}
	}

	logger.Log.Infow("invalid credentials", "username", username)
	return models.LoggedOut(), "", ErrInvalidCredentials
}

// Register creates a user with the "user" role and logs it in.
// A taken username is reported before any password rule.
func (svc *AuthService) Register(ctx context.Context, username, password string) (models.AuthState, string, error) {
	existing, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return models.LoggedOut(), "", err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "username", username)
		return models.LoggedOut(), "", ErrUserAlreadyExists
	}

	if len(password) < MinPasswordLength {
		return models.LoggedOut(), "", ErrPasswordTooShort
	}

	hashed, err := hashPassword(password, svc.opts.bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return models.LoggedOut(), "", err
	}

	user := models.User{
		ID:       newID(svc.opts.now()),
		Username: username,
		Password: hashed,
		Role:     models.RoleUser,
	}
	if err := svc.users.Mutate(ctx, func(users []models.User) ([]models.User, error) {
		if usernameTaken(users, username, "") {
			return nil, ErrUserAlreadyExists
		}
		return append(users, user), nil
	}); err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			logger.Log.Infow("user already exists", "username", username)
		} else {
			logger.Log.Errorw("failed to save user", "err", err)
		}
		return models.LoggedOut(), "", err
	}

	publish(ctx, svc.events, svc.opts, models.EventUserRegistered, user.ID, user.ID, map[string]string{"username": user.Username})

	return svc.establish(ctx, user)
}

// Logout persists the logged out state.
func (svc *AuthService) Logout(ctx context.Context) error {
	if err := svc.state.Set(ctx, models.LoggedOut()); err != nil {
		logger.Log.Errorw("failed to persist logout", "err", err)
		return err
	}
	return nil
}

// CurrentState returns the persisted authentication state.
func (svc *AuthService) CurrentState(ctx context.Context) (models.AuthState, error) {
	return svc.state.Get(ctx)
}

// SessionFor builds the session of the user a token was issued to.
// Unknown users, for example deleted ones, get the logged out state.
func (svc *AuthService) SessionFor(ctx context.Context, userID string) (models.AuthState, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		return models.LoggedOut(), err
	}
	if user == nil {
		return models.LoggedOut(), nil
	}
	return models.LoggedIn(withoutPassword(*user)), nil
}

func (svc *AuthService) establish(ctx context.Context, user models.User) (models.AuthState, string, error) {
	token, err := svc.tokens.Generate(ctx, user.ID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return models.LoggedOut(), "", err
	}

	state := models.LoggedIn(withoutPassword(user))
	if err := svc.state.Set(ctx, state); err != nil {
		logger.Log.Errorw("failed to persist auth state", "err", err)
		return models.LoggedOut(), "", err
	}

	logger.Log.Infow("user authenticated", "user_id", user.ID, "role", user.Role)
	return state, token, nil
}

// usernameTaken reports whether a user other than exceptID has username.
func usernameTaken(users []models.User, username, exceptID string) bool {
	for _, u := range users {
		if u.Username == username && u.ID != exceptID {
			return true
		}
	}
	return false
}

func withoutPassword(u models.User) models.User {
	u.Password = ""
	return u
}

func requireUser(session models.AuthState) error {
	if !session.IsUser() {
		return ErrUnauthenticated
	}
	return nil
}

func requireAdmin(session models.AuthState) error {
	if !session.IsUser() {
		return ErrUnauthenticated
	}
	if !session.IsAdmin() {
		return ErrForbidden
	}
	return nil
}
