package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/minhng-dev/taskblog/internal/logger"
	"github.com/minhng-dev/taskblog/models"
)

// postSelectColumns is the canonical column list scanned into [models.Post]
// for list results. Single-post reads join in the author's username.
var postSelectColumns = []string{"post_id", "author_id", "title", "content", "status", "created_at", "updated_at"}

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost inserts a post from a sanitized payload field map and returns
// the stored record. A foreign-key violation on the author column is
// reported as [ErrNoUserWasFound].
func (r *postRepository) CreatePost(ctx context.Context, fields map[string]any) (models.Post, error) {
	log := logger.FromContext(ctx)

	columns, err := toColumns(fields, postColumns)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error translating fields")
		return models.Post{}, err
	}

	query, args, err := psql.
		Insert(models.Post{}.TableName()).
		SetMap(columns).
		Suffix("RETURNING " + joinColumns(postSelectColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error building insert query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var post models.Post
	if err = row.Scan(&post.PostID, &post.AuthorID, &post.Title, &post.Content, &post.Status, &post.CreatedAt, &post.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error saving post")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Post{}, ErrNoUserWasFound
		default:
			return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return post, nil
}

// FindAllPosts returns the page of posts selected by the filter, ordered by
// recency. An empty page is a valid result.
func (r *postRepository) FindAllPosts(ctx context.Context, filter models.Filter) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	qb, err := applyFilter(
		psql.Select(postSelectColumns...).From(models.Post{}.TableName()),
		filter,
		postColumns,
		nil,
	)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindAllPosts").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindAllPosts").Msg("error rendering list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindAllPosts").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, filter.Limit)
	for rows.Next() {
		var post models.Post
		if scanErr := rows.Scan(&post.PostID, &post.AuthorID, &post.Title, &post.Content, &post.Status, &post.CreatedAt, &post.UpdatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*postRepository.FindAllPosts").Msg("error scanning post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// FindPostByID retrieves a single post with the author's username populated.
// A missing record is reported as [ErrPostNotFound].
func (r *postRepository) FindPostByID(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	var post models.Post
	row := r.db.QueryRowContext(ctx, findPostByIDWithAuthor, postID)
	if err := row.Scan(&post.PostID, &post.AuthorID, &post.AuthorName, &post.Title, &post.Content, &post.Status, &post.CreatedAt, &post.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.FindPostByID").Int64("post_id", postID).Msg("error scanning post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

// UpdatePost applies a partial update: only the columns named in fields are
// touched. The updated record is returned without the author's username;
// a missing record is reported as [ErrPostNotFound].
func (r *postRepository) UpdatePost(ctx context.Context, postID int64, fields map[string]any) (models.Post, error) {
	log := logger.FromContext(ctx)

	columns, err := toColumns(fields, postColumns)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error translating fields")
		return models.Post{}, err
	}

	query, args, err := psql.
		Update(models.Post{}.TableName()).
		SetMap(columns).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"post_id": postID}).
		Suffix("RETURNING " + joinColumns(postSelectColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error building update query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var post models.Post
	if err = row.Scan(&post.PostID, &post.AuthorID, &post.Title, &post.Content, &post.Status, &post.CreatedAt, &post.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.UpdatePost").Int64("post_id", postID).Msg("error updating post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

// DeletePost removes a post. Deleting a missing record is reported as
// [ErrPostNotFound].
func (r *postRepository) DeletePost(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE post_id = $1;`, postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Int64("post_id", postID).Msg("error deleting post")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// CountPostsByAuthor reports how many posts the given user has written.
func (r *postRepository) CountPostsByAuthor(ctx context.Context, authorID int64) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := r.db.QueryRowContext(ctx, countPostsByAuthor, authorID)
	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "*postRepository.CountPostsByAuthor").Int64("author_id", authorID).Msg("error counting posts")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}
