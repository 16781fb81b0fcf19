package jsonfile

import (
	"context"
	"sort"
	"strings"
	"time"

	"devdirectory/internal/core/domain"

	"github.com/google/uuid"
)

const developersFile = "developers.json"

type DeveloperRepository struct {
	store *Store
}

func NewDeveloperRepository(store *Store) *DeveloperRepository {
	return &DeveloperRepository{store: store}
}

func (r *DeveloperRepository) CreateDeveloper(ctx context.Context, dev *domain.Developer) (*domain.Developer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var developers []domain.Developer
	if err := r.store.read(developersFile, &developers); err != nil {
		return nil, err
	}

	now := time.Now()
	created := *dev
	created.ID = uuid.New()
	created.CreatedAt = now
	created.UpdatedAt = now

	developers = append(developers, created)
	if err := r.store.write(developersFile, developers); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *DeveloperRepository) GetDeveloperByID(ctx context.Context, id uuid.UUID) (*domain.Developer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var developers []domain.Developer
	if err := r.store.read(developersFile, &developers); err != nil {
		return nil, err
	}

	for i := range developers {
		if developers[i].ID == id {
			dev := developers[i]
			return &dev, nil
		}
	}
	return nil, domain.ErrDeveloperNotFound
}

func (r *DeveloperRepository) ListDevelopers(ctx context.Context, q domain.ListQuery) ([]domain.Developer, int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var developers []domain.Developer
	if err := r.store.read(developersFile, &developers); err != nil {
		return nil, 0, err
	}

	matched := developers[:0:0]
	for _, dev := range developers {
		if matches(dev, q) {
			matched = append(matched, dev)
		}
	}
	total := len(matched)

	sortDevelopers(matched, q.Sort)

	offset := q.Offset()
	if offset >= total {
		return []domain.Developer{}, total, nil
	}
	end := offset + q.Limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (r *DeveloperRepository) UpdateDeveloper(ctx context.Context, dev *domain.Developer) (*domain.Developer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var developers []domain.Developer
	if err := r.store.read(developersFile, &developers); err != nil {
		return nil, err
	}

	for i := range developers {
		if developers[i].ID != dev.ID {
			continue
		}

		updated := *dev
		updated.CreatedBy = developers[i].CreatedBy
		updated.CreatedAt = developers[i].CreatedAt
		updated.UpdatedAt = time.Now()

		developers[i] = updated
		if err := r.store.write(developersFile, developers); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, domain.ErrDeveloperNotFound
}

func (r *DeveloperRepository) DeleteDeveloper(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var developers []domain.Developer
	if err := r.store.read(developersFile, &developers); err != nil {
		return err
	}

	for i := range developers {
		if developers[i].ID == id {
			developers = append(developers[:i], developers[i+1:]...)
			return r.store.write(developersFile, developers)
		}
	}
	return domain.ErrDeveloperNotFound
}

// matches applies the role filter and the case-insensitive substring
// search across name, tech stack entries and about.
func matches(dev domain.Developer, q domain.ListQuery) bool {
	if q.Role != "" && string(dev.Role) != q.Role {
		return false
	}
	if q.Search == "" {
		return true
	}

	needle := strings.ToLower(q.Search)
	if strings.Contains(strings.ToLower(dev.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(dev.About), needle) {
		return true
	}
	for _, tech := range dev.TechStack {
		if strings.Contains(strings.ToLower(tech), needle) {
			return true
		}
	}
	return false
}

func sortDevelopers(developers []domain.Developer, key string) {
	sort.SliceStable(developers, func(i, j int) bool {
		a, b := developers[i], developers[j]
		switch key {
		case domain.SortExpAsc:
			return a.Experience < b.Experience
		case domain.SortExpDesc:
			return a.Experience > b.Experience
		case domain.SortNameAsc:
			return a.Name < b.Name
		case domain.SortNameDesc:
			return a.Name > b.Name
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}
