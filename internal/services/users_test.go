package services_test

import (
	"context"
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

func TestUserService_List(t *testing.T) {
	f := newFixture(t)
	svc := services.NewUserService(f.users, nil, f.opts()...)
	ctx := context.Background()

	users, err := svc.List(ctx, adminSession)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.Password)
	}

	_, err = svc.List(ctx, userSession)
	assert.ErrorIs(t, err, services.ErrForbidden)
	_, err = svc.List(ctx, anonymous)
	assert.ErrorIs(t, err, services.ErrUnauthenticated)
}

func TestUserService_Add(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvents := services.NewMockEventPublisher(ctrl)
	mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(1)

	svc := services.NewUserService(f.users, mockEvents, f.opts()...)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		role     string
		wantErr  error
	}{
		{name: "duplicate", username: "user", password: "secret1", role: models.RoleUser, wantErr: services.ErrUserAlreadyExists},
		{name: "short password", username: "nadia", password: "abc", role: models.RoleUser, wantErr: services.ErrPasswordTooShort},
		{name: "bad role", username: "nadia", password: "secret1", role: "root", wantErr: services.ErrInvalidRole},
		{name: "ok", username: "nadia", password: "secret1", role: models.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Add(ctx, adminSession, tt.username, tt.password, tt.role)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, user.Password)

			stored, err := f.users.GetByUsername(ctx, tt.username)
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.Equal(t, tt.role, stored.Role)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(tt.password)))
		})
	}
}

func TestUserService_Edit(t *testing.T) {
	f := newFixture(t)
	svc := services.NewUserService(f.users, nil, f.opts()...)
	ctx := context.Background()

	before, err := f.users.GetByID(ctx, "2")
	require.NoError(t, err)

	_, err = svc.Edit(ctx, adminSession, "2", "admin", "", models.RoleUser)
	assert.ErrorIs(t, err, services.ErrUserAlreadyExists)

	_, err = svc.Edit(ctx, adminSession, "2", "user", "123", models.RoleUser)
	assert.ErrorIs(t, err, services.ErrPasswordTooShort)

	_, err = svc.Edit(ctx, adminSession, "404", "ghost", "", models.RoleUser)
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	_, err = svc.Edit(ctx, adminSession, "1", "admin", "", models.RoleUser)
	assert.ErrorIs(t, err, services.ErrLastAdmin)

	// empty password keeps the stored hash
	edited, err := svc.Edit(ctx, adminSession, "2", "youssef", "", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "youssef", edited.Username)
	assert.Empty(t, edited.Password)

	stored, err := f.users.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, before.Password, stored.Password)
	assert.Equal(t, models.RoleAdmin, stored.Role)

	// with two admins the first one can be demoted
	_, err = svc.Edit(ctx, adminSession, "1", "admin", "newpass1", models.RoleUser)
	require.NoError(t, err)
	stored, err = f.users.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newpass1")))
}

func TestUserService_Delete(t *testing.T) {
	f := newFixture(t)
	svc := services.NewUserService(f.users, nil, f.opts()...)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, adminSession, "1"), services.ErrLastAdmin)
	assert.ErrorIs(t, svc.Delete(ctx, adminSession, "404"), services.ErrUserNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, userSession, "2"), services.ErrForbidden)

	require.NoError(t, svc.Delete(ctx, adminSession, "2"))

	users, err := f.users.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "1", users[0].ID)
}

func newSlowUsers(t *testing.T, users ...models.User) *repositories.UserRepository {
	t.Helper()
	store := slowStore{KeyValueStore: repositories.NewMemoryKeyValueRepository(), delay: 20 * time.Millisecond}
	repo := repositories.NewUserRepository(store, repositories.DefaultKeyPrefix)
	require.NoError(t, repo.SetAll(context.Background(), users))
	return repo
}

func TestUserService_ConcurrentDeletesKeepOneAdmin(t *testing.T) {
	users := newSlowUsers(t,
		models.User{ID: "a", Username: "amina", Role: models.RoleAdmin},
		models.User{ID: "b", Username: "brahim", Role: models.RoleAdmin},
	)
	svc := services.NewUserService(users, nil, services.WithBcryptCost(bcrypt.MinCost))
	ctx := context.Background()

	ids := []string{"a", "b"}
	errs := runConcurrently(len(ids), func(i int) error {
		return svc.Delete(ctx, adminSession, ids[i])
	})

	failed := 0
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, services.ErrLastAdmin)
			failed++
		}
	}
	assert.Equal(t, 1, failed)

	remaining, err := users.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.True(t, remaining[0].IsAdmin())
}

func TestUserService_ConcurrentDemotionsKeepOneAdmin(t *testing.T) {
	users := newSlowUsers(t,
		models.User{ID: "a", Username: "amina", Role: models.RoleAdmin},
		models.User{ID: "b", Username: "brahim", Role: models.RoleAdmin},
	)
	svc := services.NewUserService(users, nil, services.WithBcryptCost(bcrypt.MinCost))
	ctx := context.Background()

	ids := []string{"a", "b"}
	names := []string{"amina", "brahim"}
	errs := runConcurrently(len(ids), func(i int) error {
		_, err := svc.Edit(ctx, adminSession, ids[i], names[i], "", models.RoleUser)
		return err
	})

	failed := 0
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, services.ErrLastAdmin)
			failed++
		}
	}
	assert.Equal(t, 1, failed)

	all, err := users.GetAll(ctx)
	require.NoError(t, err)
	admins := 0
	for _, u := range all {
		if u.IsAdmin() {
			admins++
		}
	}
	assert.Equal(t, 1, admins)
}

func TestUserService_ConcurrentAddsSameUsername(t *testing.T) {
	users := newSlowUsers(t, models.User{ID: "a", Username: "amina", Role: models.RoleAdmin})
	clock := &testClock{now: time.UnixMilli(1700000000000)}
	svc := services.NewUserService(users, nil, services.WithClock(clock.Now), services.WithBcryptCost(bcrypt.MinCost))
	ctx := context.Background()

	errs := runConcurrently(4, func(int) error {
		_, err := svc.Add(ctx, adminSession, "nadia", "secret1", models.RoleUser)
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
	assert.Len(t, all, 2)
}
