package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pensees/internal/models"
)

type AphorismRepositoryImpl struct {
	db *sqlx.DB
}

type CreateAphorismRequest struct {
	Text     string   `json:"text"`
	Title    *string  `json:"title"`
	Tags     []string `json:"tags"`
	Featured bool     `json:"featured"`
}

type UpdateAphorismRequest struct {
	AphorismID string   `json:"aphorismId"`
	Text       string   `json:"text"`
	Title      *string  `json:"title"`
	Tags       []string `json:"tags"`
	Featured   bool     `json:"featured"`
}

func NewAphorismRepository(db *sqlx.DB) *AphorismRepositoryImpl {
	return &AphorismRepositoryImpl{db: db}
}

func (r *AphorismRepositoryImpl) Create(ctx context.Context, aphorism *models.Aphorism) error {
	query := `
		INSERT INTO aphorisms
		(aphorism_id, text, title, tags, primary_image_url, featured, likes, created_at, updated_at)
		VALUES
		(:aphorism_id, :text, :title, :tags, :primary_image_url, :featured, :likes, :created_at, :updated_at)
	`

	if aphorism.AphorismID == "" {
		aphorism.AphorismID = uuid.New().String()
	}
	if aphorism.Tags == nil {
		aphorism.Tags = []string{}
	}

	now := time.Now()
	aphorism.CreatedAt = now
	aphorism.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, aphorism)
	if err != nil {
		return fmt.Errorf("could not create aphorism: %w", err)
	}

	return nil
}

func (r *AphorismRepositoryImpl) GetByID(ctx context.Context, aphorismID string) (*models.Aphorism, error) {
	query := `SELECT * FROM aphorisms WHERE aphorism_id = $1`

	var aphorism models.Aphorism
	err := r.db.GetContext(ctx, &aphorism, query, aphorismID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("aphorism %s: %w", aphorismID, ErrNotFound)
		}
		return nil, fmt.Errorf("could not load aphorism: %w", err)
	}

	return &aphorism, nil
}

func (r *AphorismRepositoryImpl) GetAll(ctx context.Context) ([]models.Aphorism, error) {
	query := `SELECT * FROM aphorisms ORDER BY created_at DESC`

	var aphorisms []models.Aphorism
	err := r.db.SelectContext(ctx, &aphorisms, query)
	if err != nil {
		return nil, fmt.Errorf("could not list aphorisms: %w", err)
	}

	return aphorisms, nil
}

// GetByTag matches against the denormalized label array. A label that no
// longer exists in the tags registry still matches here.
func (r *AphorismRepositoryImpl) GetByTag(ctx context.Context, label string) ([]models.Aphorism, error) {
	query := `SELECT * FROM aphorisms WHERE $1 = ANY(tags) ORDER BY created_at DESC`

	var aphorisms []models.Aphorism
	err := r.db.SelectContext(ctx, &aphorisms, query, label)
	if err != nil {
		return nil, fmt.Errorf("could not list aphorisms by tag: %w", err)
	}

	return aphorisms, nil
}

func (r *AphorismRepositoryImpl) GetFeatured(ctx context.Context) ([]models.Aphorism, error) {
	query := `SELECT * FROM aphorisms WHERE featured = TRUE ORDER BY created_at DESC`

	var aphorisms []models.Aphorism
	err := r.db.SelectContext(ctx, &aphorisms, query)
	if err != nil {
		return nil, fmt.Errorf("could not list featured aphorisms: %w", err)
	}

	return aphorisms, nil
}

func (r *AphorismRepositoryImpl) Update(ctx context.Context, aphorism *models.Aphorism) error {
	query := `
		UPDATE aphorisms SET
			text = :text,
			title = :title,
			tags = :tags,
			featured = :featured,
			updated_at = :updated_at
		WHERE aphorism_id = :aphorism_id
	`

	aphorism.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, aphorism)
	if err != nil {
		return fmt.Errorf("could not update aphorism: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("aphorism %s: %w", aphorism.AphorismID, ErrNotFound)
	}

	return nil
}

func (r *AphorismRepositoryImpl) Delete(ctx context.Context, aphorismID string) error {
	query := `DELETE FROM aphorisms WHERE aphorism_id = $1`

	result, err := r.db.ExecContext(ctx, query, aphorismID)
	if err != nil {
		return fmt.Errorf("could not delete aphorism: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("aphorism %s: %w", aphorismID, ErrNotFound)
	}

	return nil
}

// IncrementLikes applies the server-side +1. The base the client saw is
// accepted for the wire contract but the delta is computed here, so
// concurrent clients never overwrite each other with absolute values.
func (r *AphorismRepositoryImpl) IncrementLikes(ctx context.Context, aphorismID string, base int) error {
	query := `UPDATE aphorisms SET likes = likes + 1 WHERE aphorism_id = $1`

	if _, err := r.db.ExecContext(ctx, query, aphorismID); err != nil {
		return fmt.Errorf("could not increment likes: %w", err)
	}
	return nil
}

// DecrementLikes clamps at zero: the counter is never observably negative.
func (r *AphorismRepositoryImpl) DecrementLikes(ctx context.Context, aphorismID string, base int) error {
	query := `UPDATE aphorisms SET likes = GREATEST(likes - 1, 0) WHERE aphorism_id = $1`

	if _, err := r.db.ExecContext(ctx, query, aphorismID); err != nil {
		return fmt.Errorf("could not decrement likes: %w", err)
	}
	return nil
}

func (r *AphorismRepositoryImpl) SetPrimaryImage(ctx context.Context, aphorismID, imageURL string) error {
	query := `UPDATE aphorisms SET primary_image_url = $2, updated_at = CURRENT_TIMESTAMP WHERE aphorism_id = $1`

	result, err := r.db.ExecContext(ctx, query, aphorismID, imageURL)
	if err != nil {
		return fmt.Errorf("could not set primary image: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("aphorism %s: %w", aphorismID, ErrNotFound)
	}

	return nil
}
