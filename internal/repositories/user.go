package repositories

import (
	"context"

	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
)

// UserRepository gives access to the users collection.
type UserRepository struct {
	*collection[models.User]
}

func NewUserRepository(store KeyValueStore, prefix string) *UserRepository {
	return &UserRepository{
		collection: newCollection(store, prefix, UsersCollection, func(u models.User) string { return u.ID }),
	}
}

// GetByUsername returns the user with an exactly matching username or nil.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Mutate runs fn over every user inside one locked read-modify-write cycle
// and stores what it returns. An error from fn aborts the write.
func (r *UserRepository) Mutate(ctx context.Context, fn func(users []models.User) ([]models.User, error)) error {
	return r.mutate(ctx, fn)
}
