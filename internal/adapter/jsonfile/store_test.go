package jsonfile

import (
	"context"
	"fmt"
	"testing"

	"devdirectory/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *DeveloperRepository {
	t.Helper()
	return NewDeveloperRepository(NewStore(t.TempDir()))
}

func seedDeveloper(t *testing.T, repo *DeveloperRepository, name string, role domain.Role, exp float64, stack ...string) *domain.Developer {
	t.Helper()
	created, err := repo.CreateDeveloper(context.Background(), &domain.Developer{
		Name:       name,
		Role:       role,
		TechStack:  stack,
		Experience: exp,
		CreatedBy:  uuid.New(),
	})
	require.NoError(t, err)
	return created
}

func TestCreateAndGetDeveloper(t *testing.T) {
	repo := newTestRepo(t)

	created := seedDeveloper(t, repo, "Jane", domain.RoleBackend, 4, "Go", "Postgres")
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	got, err := repo.GetDeveloperByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.TechStack, got.TechStack)
	assert.Equal(t, created.CreatedBy, got.CreatedBy)
}

func TestGetDeveloper_Unknown(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetDeveloperByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrDeveloperNotFound)
}

func TestUpdateDeveloper_PreservesCreatedFields(t *testing.T) {
	repo := newTestRepo(t)
	created := seedDeveloper(t, repo, "Jane", domain.RoleBackend, 4, "Go")

	updated, err := repo.UpdateDeveloper(context.Background(), &domain.Developer{
		ID:         created.ID,
		Name:       "Jane Doe",
		Role:       domain.RoleDevOps,
		TechStack:  domain.TechStack{"Terraform"},
		Experience: 5,
		CreatedBy:  uuid.New(), // must be ignored
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedBy, updated.CreatedBy)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, domain.RoleDevOps, updated.Role)
}

func TestUpdateDeveloper_Unknown(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.UpdateDeveloper(context.Background(), &domain.Developer{ID: uuid.New(), Name: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrDeveloperNotFound)
}

func TestDeleteDeveloper(t *testing.T) {
	repo := newTestRepo(t)
	created := seedDeveloper(t, repo, "Jane", domain.RoleBackend, 4, "Go")

	require.NoError(t, repo.DeleteDeveloper(context.Background(), created.ID))

	_, err := repo.GetDeveloperByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrDeveloperNotFound)

	assert.ErrorIs(t, repo.DeleteDeveloper(context.Background(), created.ID), domain.ErrDeveloperNotFound)
}

func TestListDevelopers_RoleFilter(t *testing.T) {
	repo := newTestRepo(t)
	seedDeveloper(t, repo, "A", domain.RoleBackend, 1, "Go")
	seedDeveloper(t, repo, "B", domain.RoleFrontend, 2, "React")
	seedDeveloper(t, repo, "C", domain.RoleBackend, 3, "Rust")

	devs, total, err := repo.ListDevelopers(context.Background(), domain.ListQuery{Role: "Backend"}.Normalized())
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, dev := range devs {
		assert.Equal(t, domain.RoleBackend, dev.Role)
	}

	// "All" disables the filter.
	_, total, err = repo.ListDevelopers(context.Background(), domain.ListQuery{Role: "All"}.Normalized())
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestListDevelopers_SearchIsCaseInsensitive(t *testing.T) {
	repo := newTestRepo(t)
	seedDeveloper(t, repo, "Al", domain.RoleFrontend, 3, "React", "CSS")
	seedDeveloper(t, repo, "Bo", domain.RoleBackend, 5, "Go")
	bio, err := repo.CreateDeveloper(context.Background(), &domain.Developer{
		Name: "Cy", Role: domain.RoleMobile, TechStack: domain.TechStack{"Swift"},
		About: "Used to write reactive UIs", CreatedBy: uuid.New(),
	})
	require.NoError(t, err)

	devs, total, err := repo.ListDevelopers(context.Background(), domain.ListQuery{Search: "react"}.Normalized())
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	names := []string{devs[0].Name, devs[1].Name}
	assert.Contains(t, names, "Al")
	assert.Contains(t, names, bio.Name)
}

func TestListDevelopers_Pagination(t *testing.T) {
	repo := newTestRepo(t)
	for i := 0; i < 25; i++ {
		seedDeveloper(t, repo, fmt.Sprintf("Dev %02d", i), domain.RoleBackend, float64(i%10), "Go")
	}

	q := domain.ListQuery{Page: 2, Limit: 10}.Normalized()
	devs, total, err := repo.ListDevelopers(context.Background(), q)
	require.NoError(t, err)
	assert.Len(t, devs, 10)
	assert.Equal(t, 25, total)

	page := domain.NewDeveloperPage(devs, total, q)
	assert.Equal(t, 3, page.Pages)

	// Page past the end is empty but keeps the total.
	devs, total, err = repo.ListDevelopers(context.Background(), domain.ListQuery{Page: 9, Limit: 10}.Normalized())
	require.NoError(t, err)
	assert.Empty(t, devs)
	assert.Equal(t, 25, total)
}

func TestListDevelopers_SortByExperienceDesc(t *testing.T) {
	repo := newTestRepo(t)
	for _, exp := range []float64{3, 12, 0, 7, 5} {
		seedDeveloper(t, repo, "Dev", domain.RoleBackend, exp, "Go")
	}

	devs, _, err := repo.ListDevelopers(context.Background(), domain.ListQuery{Sort: domain.SortExpDesc}.Normalized())
	require.NoError(t, err)
	for i := 1; i < len(devs); i++ {
		assert.GreaterOrEqual(t, devs[i-1].Experience, devs[i].Experience)
	}
}

func TestListDevelopers_SortByNameAsc(t *testing.T) {
	repo := newTestRepo(t)
	for _, name := range []string{"Mallory", "Alice", "Zed", "Bob"} {
		seedDeveloper(t, repo, name, domain.RoleBackend, 1, "Go")
	}

	devs, _, err := repo.ListDevelopers(context.Background(), domain.ListQuery{Sort: domain.SortNameAsc}.Normalized())
	require.NoError(t, err)
	assert.Equal(t, "Alice", devs[0].Name)
	assert.Equal(t, "Zed", devs[len(devs)-1].Name)
}

func TestListDevelopers_NewestFirstByDefault(t *testing.T) {
	repo := newTestRepo(t)
	seedDeveloper(t, repo, "First", domain.RoleBackend, 1, "Go")
	seedDeveloper(t, repo, "Second", domain.RoleBackend, 2, "Go")

	devs, _, err := repo.ListDevelopers(context.Background(), domain.ListQuery{}.Normalized())
	require.NoError(t, err)
	require.Len(t, devs, 2)
	assert.False(t, devs[0].CreatedAt.Before(devs[1].CreatedAt))
}

func TestUserRepository_CRUDAndDuplicateEmail(t *testing.T) {
	store := NewStore(t.TempDir())
	repo := NewUserRepository(store)

	created, err := repo.CreateUser(context.Background(), &domain.User{
		Name: "Jane", Email: "jane@example.com", Password: "hash",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	byID, err := repo.GetUserByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, byID.Email)

	byEmail, err := repo.GetUserByEmail(context.Background(), "JANE@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = repo.CreateUser(context.Background(), &domain.User{
		Name: "Other", Email: "jane@example.com", Password: "hash",
	})
	assert.ErrorIs(t, err, domain.ErrEmailExists)

	_, err = repo.GetUserByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestStore_MissingFileReadsAsEmpty(t *testing.T) {
	repo := newTestRepo(t)

	devs, total, err := repo.ListDevelopers(context.Background(), domain.ListQuery{}.Normalized())
	require.NoError(t, err)
	assert.Empty(t, devs)
	assert.Equal(t, 0, total)
}
