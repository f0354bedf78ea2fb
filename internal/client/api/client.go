// Package api is a thin typed client over the Viremo REST surface. It holds
// the bearer token in memory for the lifetime of the process; there is no
// token persistence across runs.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/viremo/viremo-be/internal/models"
)

// Client calls the Viremo server. One request is in flight per operation;
// navigating away simply abandons the pending response via context.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New creates a client for the server at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

// ClearToken drops the in-memory token.
func (c *Client) ClearToken() { c.token = "" }

// HasToken reports whether a token is currently installed.
func (c *Client) HasToken() bool { return c.token != "" }

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: %s (%d)", method, path, strings.TrimSpace(string(msg)), resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, email, password string) error {
	payload := map[string]string{"email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/v1/auth/register", payload, nil)
}

// Login authenticates and installs the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (models.User, error) {
	payload := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", payload, &resp); err != nil {
		return models.User{}, err
	}
	c.token = resp.Token
	return resp.User, nil
}

// Logout tells the server to expire the cookie session and drops the token.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil)
	c.token = ""
	return err
}

// Me returns the currently authenticated user.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodGet, "/api/v1/users/me", nil, &user)
	return user, err
}

// Tasks lists the user's tasks, newest first.
func (c *Client) Tasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	err := c.do(ctx, http.MethodGet, "/api/v1/tasks", nil, &tasks)
	return tasks, err
}

// CreateTask adds a task.
func (c *Client) CreateTask(ctx context.Context, title, description string) error {
	payload := map[string]string{"title": title, "description": description}
	return c.do(ctx, http.MethodPost, "/api/v1/tasks", payload, nil)
}

// UpdateTask rewrites a task's fields.
func (c *Client) UpdateTask(ctx context.Context, id, title, description string) error {
	payload := map[string]string{"title": title, "description": description}
	return c.do(ctx, http.MethodPut, "/api/v1/tasks/"+id, payload, nil)
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/tasks/"+id, nil, nil)
}

// Activity returns the weekly sign-in chart and motivation message.
func (c *Client) Activity(ctx context.Context) (models.WeeklyActivity, error) {
	var activity models.WeeklyActivity
	err := c.do(ctx, http.MethodGet, "/api/v1/activity", nil, &activity)
	return activity, err
}

// Recommendation returns the decorative placeholder card.
func (c *Client) Recommendation(ctx context.Context) (models.Recommendation, error) {
	var rec models.Recommendation
	err := c.do(ctx, http.MethodGet, "/api/v1/recommendation", nil, &rec)
	return rec, err
}

// UploadAvatar sends the file at path as the user's avatar and returns the
// public URL the server stored.
func (c *Client) UploadAvatar(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("avatar", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/users/me/avatar", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("avatar upload: %s (%d)", strings.TrimSpace(string(msg)), resp.StatusCode)
	}

	var out struct {
		AvatarURL string `json:"avatarUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.AvatarURL, nil
}

// DeleteAvatar removes the user's avatar.
func (c *Client) DeleteAvatar(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/users/me/avatar", nil, nil)
}
