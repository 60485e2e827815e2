package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/socli/internal/client/models"
	"github.com/dmitrijs2005/socli/internal/common"
)

// feedSortKey is the only sort order the backend paginates stably under.
const feedSortKey = "createdAt,desc"

// HTTPClient is the REST/JSON implementation of Client.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewHTTPClient builds a client for the backend rooted at baseURL (including
// the /api prefix, e.g. "http://localhost:8080/api"). tokens may be nil for
// a client that never authenticates. A zero timeout disables the client-side
// deadline; callers can still cancel through the context.
func NewHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: fallbackMessage(resp.StatusCode)}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	}
	return apiErr
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	body := map[string]string{"username": username, "password": password}

	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// page is the Spring-style paginated response envelope.
type page[T any] struct {
	Content []T  `json:"content"`
	Last    bool `json:"last"`
}

func pageQuery(pageIndex, size int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(pageIndex))
	q.Set("size", strconv.Itoa(size))
	q.Set("sort", feedSortKey)
	return q
}

func (c *HTTPClient) ListFeed(ctx context.Context, pageIndex, size int) (*FeedPage, error) {
	var resp page[models.Post]
	if err := c.do(ctx, http.MethodGet, "/posts", pageQuery(pageIndex, size), nil, &resp); err != nil {
		return nil, err
	}
	return &FeedPage{Items: resp.Content, Last: resp.Last}, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodPost, "/posts", nil, req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d", postID), nil, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, postID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d", postID), nil, nil, nil)
}

func (c *HTTPClient) LikePost(ctx context.Context, postID int64) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/posts/%d/like", postID), nil, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) UnlikePost(ctx context.Context, postID int64) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d/like", postID), nil, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) ListComments(ctx context.Context, postID int64, pageIndex, size int) ([]models.Comment, error) {
	var resp page[models.Comment]
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d/comments", postID), pageQuery(pageIndex, size), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Content, nil
}

func (c *HTTPClient) CreateComment(ctx context.Context, postID int64, content string) (*models.Comment, error) {
	body := map[string]string{"content": content}

	var comment models.Comment
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/posts/%d/comments", postID), nil, body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *HTTPClient) DeleteComment(ctx context.Context, postID, commentID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d/comments/%d", postID, commentID), nil, nil, nil)
}

func (c *HTTPClient) GetProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	var profile models.Profile
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", userID), nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *HTTPClient) Follow(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/follow", userID), nil, nil, nil)
}

func (c *HTTPClient) Unfollow(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/unfollow", userID), nil, nil, nil)
}
