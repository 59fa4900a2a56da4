package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pensees/internal/models"
)

type CommentRepositoryImpl struct {
	db *sqlx.DB
}

type CreateCommentRequest struct {
	ReflectionID string `json:"reflectionId"`
	Author       string `json:"author"`
	Body         string `json:"body"`
}

func NewCommentRepository(db *sqlx.DB) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (comment_id, reflection_id, author, body, created_at)
		VALUES (:comment_id, :reflection_id, :author, :body, :created_at)
	`

	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}
	if comment.Author == "" {
		comment.Author = models.AnonymousAuthor
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("could not create comment: %w", err)
	}

	return nil
}

func (r *CommentRepositoryImpl) GetAll(ctx context.Context) ([]models.Comment, error) {
	query := `SELECT * FROM comments ORDER BY created_at DESC`

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query)
	if err != nil {
		return nil, fmt.Errorf("could not list comments: %w", err)
	}

	return comments, nil
}

func (r *CommentRepositoryImpl) GetByReflectionID(ctx context.Context, reflectionID string) ([]models.Comment, error) {
	query := `SELECT * FROM comments WHERE reflection_id = $1 ORDER BY created_at DESC`

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, reflectionID)
	if err != nil {
		return nil, fmt.Errorf("could not list comments: %w", err)
	}

	return comments, nil
}

func (r *CommentRepositoryImpl) Delete(ctx context.Context, commentID string) error {
	query := `DELETE FROM comments WHERE comment_id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("could not delete comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("comment %s: %w", commentID, ErrNotFound)
	}

	return nil
}
