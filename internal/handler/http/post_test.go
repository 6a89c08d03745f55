package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhng-dev/taskblog/internal/apperr"
	"github.com/minhng-dev/taskblog/internal/service"
	"github.com/minhng-dev/taskblog/models"
)

func newPostRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set("Authorization", "Bearer test-token")
	return req
}

func TestCreatePost_Success(t *testing.T) {
	posts := &mockPostService{
		createFn: func(_ context.Context, payload map[string]any) (models.Post, error) {
			assert.Equal(t, "Hello world", payload["title"])
			return models.Post{PostID: 1, AuthorID: 7, Title: "Hello world"}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: passThroughAuth(), PostService: posts})

	req := newPostRequest(http.MethodPost, "/v1/posts", `{"title":"Hello world","content":"long enough content","author":7}`)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Create post successfully", envelope.Message)
}

func TestGetAllPosts_EmptyPageRendersNotFound(t *testing.T) {
	posts := &mockPostService{
		listFn: func(_ context.Context, _ map[string]string) ([]models.Post, error) {
			return nil, apperr.New(apperr.NotFound, "No posts found")
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: passThroughAuth(), PostService: posts})

	req := newPostRequest(http.MethodGet, "/v1/posts?author=ghost", "")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, models.StatusFailed, envelope.Status)
	assert.Equal(t, "No posts found", envelope.Message)
}

func TestGetPostByID_Success(t *testing.T) {
	posts := &mockPostService{
		getFn: func(_ context.Context, postID int64) (models.Post, error) {
			assert.Equal(t, int64(3), postID)
			return models.Post{PostID: 3, AuthorID: 7, AuthorName: "jane42", Title: "Hello world"}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: passThroughAuth(), PostService: posts})

	req := newPostRequest(http.MethodGet, "/v1/posts/3", "")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Get post successfully", envelope.Message)
}

func TestCountPostsByUser_Success(t *testing.T) {
	posts := &mockPostService{
		countFn: func(_ context.Context, userID int64) (int64, error) {
			assert.Equal(t, int64(7), userID)
			return 12, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: passThroughAuth(), PostService: posts})

	req := newPostRequest(http.MethodGet, "/v1/posts/user/7/count", "")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Count posts successfully", envelope.Message)

	metadata, ok := envelope.Metadata.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(12), metadata["count"])
}

func TestDeletePost_NotFound(t *testing.T) {
	posts := &mockPostService{
		deleteFn: func(_ context.Context, _ int64) error {
			return apperr.New(apperr.NotFound, "Post not found")
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: passThroughAuth(), PostService: posts})

	req := newPostRequest(http.MethodDelete, "/v1/posts/99", "")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Post not found", envelope.Message)
}

func TestUpdatePost_ValidationFailure(t *testing.T) {
	posts := &mockPostService{
		updateFn: func(_ context.Context, _ int64, _ map[string]any) (models.Post, error) {
			return models.Post{}, apperr.New(apperr.BadRequest, "Title must be at least 3 characters long")
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: passThroughAuth(), PostService: posts})

	req := newPostRequest(http.MethodPut, "/v1/posts/3", `{"title":"ab"}`)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Title must be at least 3 characters long", envelope.Message)
}
