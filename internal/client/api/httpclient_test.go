package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/socli/internal/client/models"
	"github.com/dmitrijs2005/socli/internal/common"
)

type staticTokens struct{ token string }

func (s *staticTokens) Token() string { return s.token }

func TestDo_SetsBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		_ = json.NewEncoder(w).Encode(models.Post{ID: 1})
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, &staticTokens{token: "tok-123"}, time.Second)
	_, err := c.GetPost(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestDo_NoTokenMeansNoAuthHeader(t *testing.T) {
	var sawAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		_ = json.NewEncoder(w).Encode(AuthResponse{Token: "t", User: models.User{ID: 7}})
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, &staticTokens{}, time.Second)
	resp, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)

	assert.False(t, sawAuth)
	assert.Equal(t, int64(7), resp.User.ID)
}

func TestListFeed_RequestShapeAndDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "2", r.URL.Query().Get("size"))
		assert.Equal(t, "createdAt,desc", r.URL.Query().Get("sort"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []models.Post{{ID: 3}, {ID: 2}},
			"last":    true,
		})
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, nil, time.Second)
	pg, err := c.ListFeed(context.Background(), 1, 2)
	require.NoError(t, err)

	require.Len(t, pg.Items, 2)
	assert.Equal(t, int64(3), pg.Items[0].ID)
	assert.True(t, pg.Last)
}

func TestDo_ErrorMessageFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Username is already taken"})
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, nil, time.Second)
	_, err := c.Register(context.Background(), RegisterRequest{Username: "alice"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Username is already taken", apiErr.Message)
}

func TestDo_FallbackMessagesByStatusClass(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   string
	}{
		{name: "4xx without body", status: http.StatusConflict, want: "request rejected"},
		{name: "5xx without body", status: http.StatusBadGateway, want: "server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			t.Cleanup(srv.Close)

			c := NewHTTPClient(srv.URL, nil, time.Second)
			err := c.DeletePost(context.Background(), 1)
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.want, apiErr.Message)
		})
	}
}

func TestDo_UnauthorizedUnwrapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid username or password"})
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, nil, time.Second)
	_, err := c.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestDo_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	c := NewHTTPClient(srv.URL, nil, time.Second)
	_, err := c.ListFeed(context.Background(), 0, 10)
	require.ErrorIs(t, err, common.ErrorUnavailable)
}

func TestLikeUnlike_ReturnUpdatedPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/5/like", r.URL.Path)
		liked := r.Method == http.MethodPost
		count := 0
		if liked {
			count = 1
		}
		_ = json.NewEncoder(w).Encode(models.Post{ID: 5, LikesCount: count, LikedByCurrentUser: liked})
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, nil, time.Second)

	post, err := c.LikePost(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, post.LikedByCurrentUser)
	assert.Equal(t, 1, post.LikesCount)

	post, err = c.UnlikePost(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, post.LikedByCurrentUser)
	assert.Equal(t, 0, post.LikesCount)
}

func TestComments_Endpoints(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			assert.Equal(t, "/posts/9/comments", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"content": []models.Comment{{ID: 2}, {ID: 1}},
			})
		case r.Method == http.MethodPost:
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			_ = json.NewEncoder(w).Encode(models.Comment{ID: 3, Content: body["content"]})
		case r.Method == http.MethodDelete:
			assert.Equal(t, "/posts/9/comments/2", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, nil, time.Second)
	ctx := context.Background()

	comments, err := c.ListComments(ctx, 9, 0, 10)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	created, err := c.CreateComment(ctx, 9, "nice post")
	require.NoError(t, err)
	assert.Equal(t, "nice post", created.Content)

	require.NoError(t, c.DeleteComment(ctx, 9, 2))
}

func TestProfile_FollowUnfollowUsePost(t *testing.T) {
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method+" "+r.URL.Path)
		if r.URL.Path == "/users/4" {
			_ = json.NewEncoder(w).Encode(models.Profile{ID: 4, FollowersCount: 10})
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, nil, time.Second)
	ctx := context.Background()

	profile, err := c.GetProfile(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 10, profile.FollowersCount)

	require.NoError(t, c.Follow(ctx, 4))
	require.NoError(t, c.Unfollow(ctx, 4))

	assert.Equal(t, []string{"GET /users/4", "POST /users/4/follow", "POST /users/4/unfollow"}, methods)
}

func TestDo_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, nil, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.GetPost(ctx, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorUnavailable) || errors.Is(err, context.DeadlineExceeded))
}
