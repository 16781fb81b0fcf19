package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"devdirectory/internal/adapter/cache"
	"devdirectory/internal/adapter/jsonfile"
	"devdirectory/internal/adapter/logger"
	"devdirectory/internal/config"
	"devdirectory/internal/core/ports"
	"devdirectory/internal/core/services"
	"devdirectory/pkg/client"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() ports.LoggerPort {
	return logger.NewLoggerAdapter("local")
}

// newTestServer wires the whole service against the flat-file driver in a
// temp dir, so the suite needs no external infrastructure.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := testLogger()
	store := jsonfile.NewStore(t.TempDir())
	developerRepo := jsonfile.NewDeveloperRepository(store)
	userRepo := jsonfile.NewUserRepository(store)
	cacheAdapter := cache.NewMemoryCache()
	validate := validator.New()
	metrics := noopMetrics{}

	tokenService := NewJWTTokenService("test-secret", "1h", log)
	authService := services.NewAuthService(userRepo, tokenService, log, validate, cacheAdapter)
	authHandler := NewAuthHandler(authService, log, metrics)
	developerService := services.NewDeveloperService(developerRepo, log, validate, cacheAdapter)
	developerHandler := NewDeveloperHandler(developerService, log, metrics)

	router, err := NewRouter(
		&config.HTTP{Env: "test", AllowedOrigins: "*"},
		tokenService,
		userRepo,
		developerHandler,
		authHandler,
	)
	require.NoError(t, err)

	server := httptest.NewServer(router.Engine)
	t.Cleanup(server.Close)
	return server
}

func registerTestUser(t *testing.T, api *client.Client) client.Session {
	t.Helper()
	session, user, err := api.Register(context.Background(), "Jane Doe", "jane@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	require.Equal(t, "jane@example.com", user.Email)
	return session
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Contains(t, body, "uptime")
	assert.Contains(t, body, "timestamp")
}

func TestUnmatchedRoute(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/nope")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "Route not found", body.Message)
}

func TestDevelopersRequireAuth(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/developers")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterLoginAndDuplicateEmail(t *testing.T) {
	server := newTestServer(t)
	api := client.New(server.URL)
	ctx := context.Background()

	registerTestUser(t, api)

	session, _, err := api.Login(ctx, "jane@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	_, _, err = api.Login(ctx, "jane@example.com", "wrong-password")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	_, _, err = api.Register(ctx, "Other", "jane@example.com", "password123")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
}

func TestDeveloperCRUDOverHTTP(t *testing.T) {
	server := newTestServer(t)
	api := client.New(server.URL)
	ctx := context.Background()
	session := registerTestUser(t, api)

	created, err := api.AddDeveloper(ctx, session, client.DeveloperSubmission{
		Name:       "Al",
		Role:       "Frontend",
		TechStack:  []string{"React", " CSS "},
		Experience: 3,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []string{"React", "CSS"}, created.TechStack)
	assert.NotEmpty(t, created.CreatedBy)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := api.GetDeveloper(ctx, session, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.TechStack, got.TechStack)

	updated, err := api.UpdateDeveloper(ctx, session, created.ID, client.DeveloperSubmission{
		Name:       "Alice",
		Role:       "Backend",
		TechStack:  []string{"Go"},
		Experience: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedBy, updated.CreatedBy)
	assert.Equal(t, "Alice", updated.Name)

	require.NoError(t, api.DeleteDeveloper(ctx, session, created.ID))

	_, err = api.GetDeveloper(ctx, session, created.ID)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Developer not found", apiErr.Message)

	// Malformed ids read the same as unknown ones.
	_, err = api.GetDeveloper(ctx, session, "not-a-uuid")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestCreateDeveloperValidationOverHTTP(t *testing.T) {
	server := newTestServer(t)
	api := client.New(server.URL)
	ctx := context.Background()
	session := registerTestUser(t, api)

	_, err := api.AddDeveloper(ctx, session, client.DeveloperSubmission{
		Name:       "Al",
		Role:       "Frontend",
		TechStack:  []string{"React"},
		Experience: -1,
	})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "Experience")
}

func TestListFilterSortAndPaginateOverHTTP(t *testing.T) {
	server := newTestServer(t)
	api := client.New(server.URL)
	ctx := context.Background()
	session := registerTestUser(t, api)

	roles := []string{"Frontend", "Backend", "Full-Stack", "DevOps", "Mobile"}
	for i := 0; i < 25; i++ {
		stack := []string{"Go"}
		if i == 7 {
			stack = []string{"React", "CSS"}
		}
		_, err := api.AddDeveloper(ctx, session, client.DeveloperSubmission{
			Name:       fmt.Sprintf("Dev %02d", i),
			Role:       roles[i%len(roles)],
			TechStack:  stack,
			Experience: float64(i % 10),
		})
		require.NoError(t, err)
	}

	// Pagination: 25 matches, page 2 of 10 holds exactly 10.
	page, err := api.ListDevelopers(ctx, session, client.ListOptions{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 10, page.Count)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.Pages)

	// Role filter.
	page, err = api.ListDevelopers(ctx, session, client.ListOptions{Role: "Backend", Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	for _, dev := range page.Developers {
		assert.Equal(t, "Backend", dev.Role)
	}

	// "All" disables the role filter.
	page, err = api.ListDevelopers(ctx, session, client.ListOptions{Role: "All", Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, 25, page.Total)

	// Case-insensitive search over the tech stack.
	page, err = api.ListDevelopers(ctx, session, client.ListOptions{Search: "react"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "Dev 07", page.Developers[0].Name)

	// exp_desc is non-increasing across the page.
	page, err = api.ListDevelopers(ctx, session, client.ListOptions{Sort: "exp_desc", Limit: 100})
	require.NoError(t, err)
	for i := 1; i < len(page.Developers); i++ {
		assert.GreaterOrEqual(t, page.Developers[i-1].Experience, page.Developers[i].Experience)
	}
}
