// Package adminclient is a typed client for the admin REST API. It keeps
// one in-memory collection per resource, scopes edits to a single draft
// record at a time, and reconciles every mutation against the server
// response rather than trusting local state.
package adminclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"
)

// TokenSource provides the bearer token attached to authenticated
// requests. An empty token sends the request unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed TokenSource, mostly useful in tests.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// TokenStore is the single source of truth for the admin credential.
// Every component that needs the token reads it from here, and logout
// is one Clear call.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

func (s *TokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *TokenStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *TokenStore) Clear() {
	s.SetToken("")
}

func (s *TokenStore) Authenticated() bool {
	return s.Token() != ""
}

type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// do issues one request and returns the response body. Failures come
// back as *Error so callers can branch on the kind.
func (c *Client) do(method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, networkError(err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(err)
	}

	if resp.StatusCode >= 400 {
		return nil, classifyStatus(resp.StatusCode, respBody)
	}

	return respBody, nil
}

func (c *Client) doJSON(method, path string, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, networkError(err)
	}
	return c.do(method, path, bytes.NewReader(data), "application/json")
}

// Login exchanges credentials for a bearer token and stores it in the
// given TokenStore.
func (c *Client) Login(store *TokenStore, username, password string) error {
	body, err := c.doJSON(http.MethodPost, "/api/admin/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return err
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return networkError(fmt.Errorf("failed to decode login response: %w", err))
	}
	if result.AccessToken == "" {
		return &Error{Kind: ErrorUnauthorized, Message: "login response carried no token"}
	}

	store.SetToken(result.AccessToken)
	return nil
}

// List fetches every record of a resource.
func List[T any](c *Client, r Resource[T]) ([]T, error) {
	body, err := c.do(http.MethodGet, r.path(), nil, "")
	if err != nil {
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, networkError(fmt.Errorf("failed to decode %s list: %w", r.Name, err))
	}

	return records, nil
}

// Get fetches one record by id.
func Get[T any](c *Client, r Resource[T], id int64) (T, error) {
	var record T

	body, err := c.do(http.MethodGet, fmt.Sprintf("%s/%d", r.path(), id), nil, "")
	if err != nil {
		return record, err
	}

	if err := json.Unmarshal(body, &record); err != nil {
		return record, networkError(fmt.Errorf("failed to decode %s record: %w", r.Name, err))
	}

	return record, nil
}

// Create posts a new record and returns the server-assigned id.
func Create[T any](c *Client, r Resource[T], record T) (int64, error) {
	body, err := c.doJSON(http.MethodPost, r.path(), record)
	if err != nil {
		return 0, err
	}
	return decodeCreatedID(body)
}

// Update replaces the record with the given id.
func Update[T any](c *Client, r Resource[T], id int64, record T) error {
	_, err := c.doJSON(http.MethodPut, fmt.Sprintf("%s/%d", r.path(), id), record)
	return err
}

// Remove deletes the record with the given id.
func Remove[T any](c *Client, r Resource[T], id int64) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("%s/%d", r.path(), id), nil, "")
	return err
}

// decodeCreatedID normalizes create responses: some endpoints answer
// {"id": n}, the project endpoint answers {"project_id": n}.
func decodeCreatedID(body []byte) (int64, error) {
	var result struct {
		ID        int64 `json:"id"`
		ProjectID int64 `json:"project_id"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, networkError(fmt.Errorf("failed to decode create response: %w", err))
	}

	if result.ID != 0 {
		return result.ID, nil
	}
	if result.ProjectID != 0 {
		return result.ProjectID, nil
	}
	return 0, networkError(fmt.Errorf("create response carried no id: %s", string(body)))
}

func (c *Client) listProjectImages(projectID int64) ([]Image, error) {
	body, err := c.do(http.MethodGet, fmt.Sprintf("/api/admin/projects/%d/images", projectID), nil, "")
	if err != nil {
		return nil, err
	}
	return decodeImageList(body)
}

func (c *Client) uploadProjectImages(projectID int64, files []File) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, file := range files {
		part, err := writer.CreateFormFile("files", file.Name)
		if err != nil {
			return networkError(err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return networkError(err)
		}
	}

	if err := writer.Close(); err != nil {
		return networkError(err)
	}

	_, err := c.do(http.MethodPost, fmt.Sprintf("/api/admin/projects/%d/images", projectID),
		&buf, writer.FormDataContentType())
	return err
}

func (c *Client) setMainProjectImage(projectID, imageID int64) error {
	_, err := c.do(http.MethodPut,
		fmt.Sprintf("/api/admin/projects/%d/images/%d/main", projectID, imageID), nil, "")
	return err
}

func (c *Client) deleteProjectImage(projectID, imageID int64) error {
	_, err := c.do(http.MethodDelete,
		fmt.Sprintf("/api/admin/projects/%d/images/%d", projectID, imageID), nil, "")
	return err
}

// decodeImageList normalizes the shapes image endpoints answer with: a
// bare array, {"images": [...]}, or {"files": [...]}.
func decodeImageList(body []byte) ([]Image, error) {
	var bare []Image
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	var wrapped struct {
		Images []Image `json:"images"`
		Files  []Image `json:"files"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, networkError(fmt.Errorf("failed to decode image list: %w", err))
	}

	if wrapped.Images != nil {
		return wrapped.Images, nil
	}
	return wrapped.Files, nil
}
