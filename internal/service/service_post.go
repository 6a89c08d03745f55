package service

import (
	"context"
	"errors"

	"github.com/minhng-dev/taskblog/internal/apperr"
	"github.com/minhng-dev/taskblog/internal/logger"
	"github.com/minhng-dev/taskblog/internal/store"
	"github.com/minhng-dev/taskblog/internal/validation"
	"github.com/minhng-dev/taskblog/models"
)

// postService is the concrete implementation of PostService. It needs the
// user repository in addition to the post repository: authorship is checked
// on create, and the author list-filter accepts names that must be resolved
// to user IDs.
type postService struct {
	postRepository store.PostRepository
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewPostService constructs a PostService wired to the given repositories.
func NewPostService(postRepository store.PostRepository, userRepository store.UserRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		userRepository: userRepository,
		logger:         logger,
	}
}

// CreatePost validates the payload and persists a new post. The referenced
// author must exist.
func (p *postService) CreatePost(ctx context.Context, payload map[string]any) (models.Post, error) {
	log := logger.FromContext(ctx)

	result := validation.Validate(payload, validation.PostRules(), validation.AbortEarly)
	if !result.Valid() {
		return models.Post{}, apperr.New(apperr.BadRequest, result.FirstMessage())
	}

	authorID, _ := result.Value["author"].(int64)
	if _, err := p.userRepository.FindUserByID(ctx, authorID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Post{}, apperr.New(apperr.NotFound, "Author not found!")
		}

		log.Err(err).Int64("author_id", authorID).Msg("author lookup ended with error")
		return models.Post{}, apperr.Wrap(apperr.Internal, "Failed to create post", err)
	}

	post, err := p.postRepository.CreatePost(ctx, result.Value)
	if err != nil {
		log.Err(err).Int64("author_id", authorID).Msg("post creation ended with error")
		return models.Post{}, apperr.Wrap(apperr.Internal, "Failed to create post", err)
	}

	return post, nil
}

// GetAllPosts lists posts selected by the query parameters. An empty page is
// reported as NotFound, matching the API contract for list endpoints.
func (p *postService) GetAllPosts(ctx context.Context, query map[string]string) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	filter, err := buildPostFilter(ctx, query, p.userRepository)
	if err != nil {
		log.Err(err).Msg("post filter construction ended with error")
		return nil, apperr.Wrap(apperr.Internal, "Failed to get posts", err)
	}

	posts, err := p.postRepository.FindAllPosts(ctx, filter)
	if err != nil {
		log.Err(err).Msg("post listing ended with error")
		return nil, apperr.Wrap(apperr.Internal, "Failed to get posts", err)
	}

	if len(posts) == 0 {
		return nil, apperr.New(apperr.NotFound, "No posts found")
	}

	return posts, nil
}

// GetPostByID retrieves a single post with the author's name populated.
func (p *postService) GetPostByID(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := p.postRepository.FindPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return models.Post{}, apperr.New(apperr.NotFound, "Post not found")
		}

		log.Err(err).Int64("post_id", postID).Msg("post lookup ended with error")
		return models.Post{}, apperr.Wrap(apperr.Internal, "Failed to get post", err)
	}

	return post, nil
}

// UpdatePost validates the payload and applies a partial update.
func (p *postService) UpdatePost(ctx context.Context, postID int64, payload map[string]any) (models.Post, error) {
	log := logger.FromContext(ctx)

	result := validation.Validate(payload, validation.PostRules(), validation.AbortEarly)
	if !result.Valid() {
		return models.Post{}, apperr.New(apperr.BadRequest, result.FirstMessage())
	}

	post, err := p.postRepository.UpdatePost(ctx, postID, result.Value)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return models.Post{}, apperr.New(apperr.NotFound, "Post not found")
		}

		log.Err(err).Int64("post_id", postID).Msg("post update ended with error")
		return models.Post{}, apperr.Wrap(apperr.Internal, "Failed to update post", err)
	}

	return post, nil
}

// DeletePost removes a post.
func (p *postService) DeletePost(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	if err := p.postRepository.DeletePost(ctx, postID); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return apperr.New(apperr.NotFound, "Post not found")
		}

		log.Err(err).Int64("post_id", postID).Msg("post deletion ended with error")
		return apperr.Wrap(apperr.Internal, "Failed to delete post", err)
	}

	return nil
}

// CountPostsByUser reports how many posts the given user has written. The
// user must exist.
func (p *postService) CountPostsByUser(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	if _, err := p.userRepository.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return 0, apperr.New(apperr.NotFound, "User not found")
		}

		log.Err(err).Int64("user_id", userID).Msg("user lookup ended with error")
		return 0, apperr.Wrap(apperr.Internal, "Failed to count posts", err)
	}

	count, err := p.postRepository.CountPostsByAuthor(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("post counting ended with error")
		return 0, apperr.Wrap(apperr.Internal, "Failed to count posts", err)
	}

	return count, nil
}
