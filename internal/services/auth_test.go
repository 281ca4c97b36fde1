package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/repositories"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserStore(ctrl)
	mockState := services.NewMockAuthStateStore(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)
	mockEvents := services.NewMockEventPublisher(ctrl)

	svc := services.NewAuthService(mockUsers, mockState, mockTokens, mockEvents, services.WithBcryptCost(bcrypt.MinCost))

	tests := []struct {
		name         string
		username     string
		password     string
		existingUser *models.User
		stored       []models.User
		readerErr    error
		writerErr    error
		wantWrite    bool
		wantErr      error
	}{
		{
			name:      "successful registration",
			username:  "alice",
			password:  "pass123",
			stored:    []models.User{{ID: "1", Username: "admin"}},
			wantWrite: true,
		},
		{
			name:     "password too short",
			username: "bob",
			password: "12345",
			wantErr:  services.ErrPasswordTooShort,
		},
		{
			name:         "user already exists",
			username:     "admin",
			password:     "pass123",
			existingUser: &models.User{ID: "1", Username: "admin"},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:         "existing username wins over short password",
			username:     "admin",
			password:     "123",
			existingUser: &models.User{ID: "1", Username: "admin"},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "username taken before the write",
			username:  "alice",
			password:  "pass123",
			stored:    []models.User{{ID: "7", Username: "alice"}},
			wantWrite: true,
			wantErr:   services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "carol",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantWrite: true,
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.existingUser, tt.readerErr)

			if tt.wantWrite {
				mockUsers.EXPECT().
					Mutate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fn func([]models.User) ([]models.User, error)) error {
						if tt.writerErr != nil {
							return tt.writerErr
						}
						users, err := fn(tt.stored)
						if err != nil {
							return err
						}
						require.Len(t, users, len(tt.stored)+1)
						u := users[len(users)-1]
						assert.Equal(t, tt.username, u.Username)
						assert.Equal(t, models.RoleUser, u.Role)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(tt.password)))
						return nil
					})
			}

			if tt.wantErr == nil {
				mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, e models.CatalogEvent) {
						assert.Equal(t, models.EventUserRegistered, e.Type)
					})
				mockTokens.EXPECT().Generate(gomock.Any(), gomock.Any(), models.RoleUser).Return("token123", nil)
				mockState.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)
			}

			state, token, err := svc.Register(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.False(t, state.IsAuthenticated)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "token123", token)
				assert.True(t, state.IsUser())
				assert.False(t, state.IsAdmin())
				assert.Equal(t, tt.username, state.User.Username)
				assert.Empty(t, state.User.Password)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserStore(ctrl)
	mockState := services.NewMockAuthStateStore(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockUsers, mockState, mockTokens, nil)

	password := "secret1"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	otherHash, _ := bcrypt.GenerateFromPassword([]byte("other-pass"), bcrypt.MinCost)
	user := models.User{ID: "42", Username: "alice", Password: string(hashed), Role: models.RoleAdmin}
	namesake := models.User{ID: "41", Username: "alice", Password: string(otherHash), Role: models.RoleUser}

	tests := []struct {
		name      string
		users     []models.User
		readerErr error
		jwtErr    error
		stateErr  error
		loginPass string
		wantErr   error
	}{
		{
			name:      "successful login",
			users:     []models.User{user},
			loginPass: password,
		},
		{
			name:      "matches username and password together",
			users:     []models.User{namesake, user},
			loginPass: password,
		},
		{
			name:      "unknown user",
			users:     []models.User{{ID: "1", Username: "admin"}},
			loginPass: password,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "wrong password",
			users:     []models.User{user},
			loginPass: "wrong",
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			readerErr: errors.New("db error"),
			loginPass: password,
			wantErr:   errors.New("db error"),
		},
		{
			name:      "jwt error",
			users:     []models.User{user},
			jwtErr:    errors.New("jwt error"),
			loginPass: password,
			wantErr:   errors.New("jwt error"),
		},
		{
			name:      "state error",
			users:     []models.User{user},
			stateErr:  errors.New("store error"),
			loginPass: password,
			wantErr:   errors.New("store error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers.EXPECT().GetAll(gomock.Any()).Return(tt.users, tt.readerErr)

			passwordOK := len(tt.users) > 0 && tt.users[len(tt.users)-1].ID == "42" && tt.loginPass == password
			if passwordOK {
				mockTokens.EXPECT().Generate(gomock.Any(), "42", models.RoleAdmin).Return("token", tt.jwtErr)
			}
			if passwordOK && tt.jwtErr == nil {
				mockState.EXPECT().
					Set(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s models.AuthState) error {
						assert.True(t, s.IsAdmin())
						assert.Empty(t, s.User.Password)
						return tt.stateErr
					})
			}

			state, token, err := svc.Login(context.Background(), "alice", tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Equal(t, models.LoggedOut(), state)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "token", token)
				assert.Equal(t, "42", state.UserID())
			}
		})
	}
}

func TestAuthService_ConcurrentRegistrationsSameUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokens := services.NewMockTokenGenerator(ctrl)
	mockTokens.EXPECT().Generate(gomock.Any(), gomock.Any(), models.RoleUser).Return("token", nil).AnyTimes()

	store := slowStore{KeyValueStore: repositories.NewMemoryKeyValueRepository(), delay: 20 * time.Millisecond}
	users := repositories.NewUserRepository(store, repositories.DefaultKeyPrefix)
	auth := repositories.NewAuthRepository(store, repositories.DefaultKeyPrefix)
	clock := &testClock{now: time.UnixMilli(1700000000000)}
	svc := services.NewAuthService(users, auth, mockTokens, nil, services.WithClock(clock.Now), services.WithBcryptCost(bcrypt.MinCost))
	ctx := context.Background()

	errs := runConcurrently(4, func(int) error {
		_, _, err := svc.Register(ctx, "fatima", "harira42")
		return err
	})

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
	}
	assert.Equal(t, 1, succeeded)

	all, err := users.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAuthService_SeededAccounts(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokens := services.NewMockTokenGenerator(ctrl)
	mockTokens.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("token", nil).AnyTimes()

	svc := services.NewAuthService(f.users, f.auth, mockTokens, nil, f.opts()...)
	ctx := context.Background()

	state, _, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.True(t, state.IsAdmin())

	persisted, err := svc.CurrentState(ctx)
	require.NoError(t, err)
	assert.Equal(t, state, persisted)

	// A failed login leaves the stored state untouched.
	_, _, err = svc.Login(ctx, "user", "wrong-password")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	persisted, err = svc.CurrentState(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", persisted.UserID())

	state, _, err = svc.Login(ctx, "user", "user123")
	require.NoError(t, err)
	assert.True(t, state.IsUser())
	assert.False(t, state.IsAdmin())

	require.NoError(t, svc.Logout(ctx))
	persisted, err = svc.CurrentState(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.LoggedOut(), persisted)
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokens := services.NewMockTokenGenerator(ctrl)
	mockTokens.EXPECT().Generate(gomock.Any(), gomock.Any(), models.RoleUser).Return("token", nil).Times(2)

	svc := services.NewAuthService(f.users, f.auth, mockTokens, nil, f.opts()...)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "user", "another1")
	assert.ErrorIs(t, err, services.ErrUserAlreadyExists)

	state, _, err := svc.Register(ctx, "fatima", "harira42")
	require.NoError(t, err)
	assert.True(t, state.IsUser())

	stored, err := f.users.GetByUsername(ctx, "fatima")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "harira42", stored.Password)

	_, _, err = svc.Login(ctx, "fatima", "harira42")
	require.NoError(t, err)
}

func TestAuthService_SessionFor(t *testing.T) {
	f := newFixture(t)
	svc := services.NewAuthService(f.users, f.auth, nil, nil)
	ctx := context.Background()

	session, err := svc.SessionFor(ctx, "1")
	require.NoError(t, err)
	assert.True(t, session.IsAdmin())
	assert.Empty(t, session.User.Password)

	session, err = svc.SessionFor(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.False(t, session.IsUser())
}
