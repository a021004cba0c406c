package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pradeepaul/devConnector/internal/model"
)

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	ListAll(ctx context.Context) ([]model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddLike(ctx context.Context, postID, userID uuid.UUID) error
	RemoveLike(ctx context.Context, postID, userID uuid.UUID) error
	ListLikes(ctx context.Context, postID uuid.UUID) ([]model.Like, error)
	AddComment(ctx context.Context, comment *model.Comment) error
	RemoveComment(ctx context.Context, postID, commentID uuid.UUID) error
	ListComments(ctx context.Context, postID uuid.UUID) ([]model.Comment, error)
}

type postgresPostRepository struct {
	db *sqlx.DB
}

func NewPostgresPostRepository(db *sqlx.DB) PostRepository {
	return &postgresPostRepository{db: db}
}

func (r *postgresPostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	query := `
		INSERT INTO posts (user_id, text, name, avatar_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	row := r.db.QueryRowxContext(ctx, query, post.UserID, post.Text, post.Name, post.AvatarURL)
	err := row.Scan(&post.ID, &post.CreatedAt)

	if err != nil {
		return nil, err
	}

	post.Likes = []model.Like{}
	post.Comments = []model.Comment{}

	return post, nil
}

func (r *postgresPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	query := `SELECT id, user_id, text, name, avatar_url, created_at FROM posts WHERE id = $1`
	err := r.db.GetContext(ctx, &post, query, id)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	post.Likes, err = r.ListLikes(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	post.Comments, err = r.ListComments(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postgresPostRepository) ListAll(ctx context.Context) ([]model.Post, error) {
	posts := []model.Post{}
	query := `SELECT id, user_id, text, name, avatar_url, created_at FROM posts ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &posts, query)

	if err != nil {
		return nil, err
	}

	for i := range posts {
		posts[i].Likes, err = r.ListLikes(ctx, posts[i].ID)
		if err != nil {
			return nil, err
		}

		posts[i].Comments, err = r.ListComments(ctx, posts[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return posts, nil
}

func (r *postgresPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM posts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *postgresPostRepository) AddLike(ctx context.Context, postID, userID uuid.UUID) error {
	query := `INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, postID, userID)
	return err
}

func (r *postgresPostRepository) RemoveLike(ctx context.Context, postID, userID uuid.UUID) error {
	query := `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`
	_, err := r.db.ExecContext(ctx, query, postID, userID)
	return err
}

func (r *postgresPostRepository) ListLikes(ctx context.Context, postID uuid.UUID) ([]model.Like, error) {
	likes := []model.Like{}
	query := `SELECT post_id, user_id, created_at FROM post_likes WHERE post_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &likes, query, postID)

	if err != nil {
		return nil, err
	}

	return likes, nil
}

func (r *postgresPostRepository) AddComment(ctx context.Context, comment *model.Comment) error {
	query := `
		INSERT INTO post_comments (post_id, user_id, text, name, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	row := r.db.QueryRowxContext(ctx, query,
		comment.PostID, comment.UserID, comment.Text, comment.Name, comment.AvatarURL,
	)
	return row.Scan(&comment.ID, &comment.CreatedAt)
}

func (r *postgresPostRepository) RemoveComment(ctx context.Context, postID, commentID uuid.UUID) error {
	query := `DELETE FROM post_comments WHERE id = $1 AND post_id = $2`
	_, err := r.db.ExecContext(ctx, query, commentID, postID)
	return err
}

func (r *postgresPostRepository) ListComments(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	comments := []model.Comment{}
	query := `SELECT id, post_id, user_id, text, name, avatar_url, created_at FROM post_comments WHERE post_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &comments, query, postID)

	if err != nil {
		return nil, err
	}

	return comments, nil
}
