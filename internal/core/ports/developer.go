package ports

import (
	"context"

	"devdirectory/internal/core/domain"

	"github.com/google/uuid"
)

type DeveloperRepository interface {
	CreateDeveloper(ctx context.Context, dev *domain.Developer) (*domain.Developer, error)
	GetDeveloperByID(ctx context.Context, id uuid.UUID) (*domain.Developer, error)
	// ListDevelopers returns one page of matches plus the total match
	// count independent of pagination. The query must be normalized.
	ListDevelopers(ctx context.Context, q domain.ListQuery) ([]domain.Developer, int, error)
	UpdateDeveloper(ctx context.Context, dev *domain.Developer) (*domain.Developer, error)
	DeleteDeveloper(ctx context.Context, id uuid.UUID) error
}

type DeveloperService interface {
	CreateDeveloper(ctx context.Context, dev *domain.Developer) (*domain.Developer, error)
	GetDeveloper(ctx context.Context, id string) (*domain.Developer, error)
	ListDevelopers(ctx context.Context, q domain.ListQuery) (*domain.DeveloperPage, error)
	UpdateDeveloper(ctx context.Context, id string, dev *domain.Developer) (*domain.Developer, error)
	DeleteDeveloper(ctx context.Context, id string) error
}
