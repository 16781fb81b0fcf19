package jsonfile

import (
	"context"
	"strings"
	"time"

	"devdirectory/internal/core/domain"

	"github.com/google/uuid"
)

const usersFile = "users.json"

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var users []domain.User
	if err := r.store.read(usersFile, &users); err != nil {
		return nil, err
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, user.Email) {
			return nil, domain.ErrEmailExists
		}
	}

	now := time.Now()
	created := *user
	created.ID = uuid.New()
	created.CreatedAt = now
	created.UpdatedAt = now

	users = append(users, created)
	if err := r.store.write(usersFile, users); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var users []domain.User
	if err := r.store.read(usersFile, &users); err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			user := users[i]
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var users []domain.User
	if err := r.store.read(usersFile, &users); err != nil {
		return nil, err
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			user := users[i]
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
