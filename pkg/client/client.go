// Package client is a typed consumer of the Developer Directory API.
// There is no ambient credential storage: every authenticated call takes
// an explicit Session, so a 401 invalidates nothing behind the caller's
// back.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Session is the credential for one authenticated caller.
type Session struct {
	Token string
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Developer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	TechStack   []string  `json:"techStack"`
	Experience  float64   `json:"experience"`
	About       string    `json:"about"`
	PhotoURL    string    `json:"photoUrl"`
	JoiningDate time.Time `json:"joiningDate"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DeveloperSubmission is the create/update payload. TechStack may also be
// sent as one comma-separated string; the server splits it either way, so
// the client always sends the list form.
type DeveloperSubmission struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	TechStack   []string `json:"techStack"`
	Experience  float64  `json:"experience"`
	About       string   `json:"about,omitempty"`
	PhotoURL    string   `json:"photoUrl,omitempty"`
	JoiningDate string   `json:"joiningDate,omitempty"`
}

// ListOptions mirrors the server's filter/search/sort/pagination query.
type ListOptions struct {
	Role   string
	Search string
	Sort   string
	Page   int
	Limit  int
}

// DeveloperPage is one page of list results.
type DeveloperPage struct {
	Count      int
	Total      int
	Page       int
	Pages      int
	Developers []Developer
}

// APIError is any non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Total   int             `json:"total"`
	Page    int             `json:"page"`
	Pages   int             `json:"pages"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, session *Session, method, path string, body interface{}) (*envelope, error) {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if session != nil {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	return &env, nil
}

type authData struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (c *Client) Register(ctx context.Context, name, email, password string) (Session, User, error) {
	env, err := c.do(ctx, nil, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return Session{}, User{}, err
	}

	var data authData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return Session{}, User{}, err
	}
	return Session{Token: data.Token}, data.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (Session, User, error) {
	env, err := c.do(ctx, nil, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return Session{}, User{}, err
	}

	var data authData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return Session{}, User{}, err
	}
	return Session{Token: data.Token}, data.User, nil
}

func (c *Client) ListDevelopers(ctx context.Context, session Session, opts ListOptions) (*DeveloperPage, error) {
	params := url.Values{}
	if opts.Role != "" {
		params.Set("role", opts.Role)
	}
	if opts.Search != "" {
		params.Set("search", opts.Search)
	}
	if opts.Sort != "" {
		params.Set("sort", opts.Sort)
	}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}

	path := "/api/developers"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	env, err := c.do(ctx, &session, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var developers []Developer
	if err := json.Unmarshal(env.Data, &developers); err != nil {
		return nil, err
	}
	return &DeveloperPage{
		Count:      env.Count,
		Total:      env.Total,
		Page:       env.Page,
		Pages:      env.Pages,
		Developers: developers,
	}, nil
}

func (c *Client) GetDeveloper(ctx context.Context, session Session, id string) (*Developer, error) {
	env, err := c.do(ctx, &session, http.MethodGet, "/api/developers/"+id, nil)
	if err != nil {
		return nil, err
	}

	var dev Developer
	if err := json.Unmarshal(env.Data, &dev); err != nil {
		return nil, err
	}
	return &dev, nil
}

func (c *Client) AddDeveloper(ctx context.Context, session Session, sub DeveloperSubmission) (*Developer, error) {
	env, err := c.do(ctx, &session, http.MethodPost, "/api/developers", sub)
	if err != nil {
		return nil, err
	}

	var dev Developer
	if err := json.Unmarshal(env.Data, &dev); err != nil {
		return nil, err
	}
	return &dev, nil
}

func (c *Client) UpdateDeveloper(ctx context.Context, session Session, id string, sub DeveloperSubmission) (*Developer, error) {
	env, err := c.do(ctx, &session, http.MethodPut, "/api/developers/"+id, sub)
	if err != nil {
		return nil, err
	}

	var dev Developer
	if err := json.Unmarshal(env.Data, &dev); err != nil {
		return nil, err
	}
	return &dev, nil
}

func (c *Client) DeleteDeveloper(ctx context.Context, session Session, id string) error {
	_, err := c.do(ctx, &session, http.MethodDelete, "/api/developers/"+id, nil)
	return err
}
