package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"pensees/internal/models"
)

type ReflectionRepositoryImpl struct {
	db *sqlx.DB
}

type CreateReflectionRequest struct {
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Slug      string   `json:"slug"`
	Tags      []string `json:"tags"`
	ImageURLs []string `json:"imageUrls"`
	Published bool     `json:"published"`
}

type UpdateReflectionRequest struct {
	ReflectionID string   `json:"reflectionId"`
	Title        string   `json:"title"`
	Body         string   `json:"body"`
	Slug         string   `json:"slug"`
	Tags         []string `json:"tags"`
	Published    bool     `json:"published"`
}

func NewReflectionRepository(db *sqlx.DB) *ReflectionRepositoryImpl {
	return &ReflectionRepositoryImpl{db: db}
}

func (r *ReflectionRepositoryImpl) Create(ctx context.Context, reflection *models.Reflection) error {
	query := `
		INSERT INTO reflections
		(reflection_id, title, body, slug, published, tags, image_urls, likes, dislikes, created_at, updated_at)
		VALUES
		(:reflection_id, :title, :body, :slug, :published, :tags, :image_urls, :likes, :dislikes, :created_at, :updated_at)
	`

	if reflection.ReflectionID == "" {
		reflection.ReflectionID = uuid.New().String()
	}
	if reflection.Tags == nil {
		reflection.Tags = []string{}
	}
	if reflection.ImageURLs == nil {
		reflection.ImageURLs = []string{}
	}

	now := time.Now()
	reflection.CreatedAt = now
	reflection.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, reflection)
	if err != nil {
		if isUniqueViolation(err, "slug") {
			return fmt.Errorf("slug %q is already taken: %w", reflection.Slug, err)
		}
		return fmt.Errorf("could not create reflection: %w", err)
	}

	return nil
}

func (r *ReflectionRepositoryImpl) GetByID(ctx context.Context, reflectionID string) (*models.Reflection, error) {
	query := `SELECT * FROM reflections WHERE reflection_id = $1`

	var reflection models.Reflection
	err := r.db.GetContext(ctx, &reflection, query, reflectionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reflection %s: %w", reflectionID, ErrNotFound)
		}
		return nil, fmt.Errorf("could not load reflection: %w", err)
	}

	return &reflection, nil
}

func (r *ReflectionRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Reflection, error) {
	query := `SELECT * FROM reflections WHERE slug = $1`

	var reflection models.Reflection
	err := r.db.GetContext(ctx, &reflection, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reflection %q: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("could not load reflection: %w", err)
	}

	return &reflection, nil
}

func (r *ReflectionRepositoryImpl) GetAll(ctx context.Context) ([]models.Reflection, error) {
	query := `SELECT * FROM reflections ORDER BY created_at DESC`

	var reflections []models.Reflection
	err := r.db.SelectContext(ctx, &reflections, query)
	if err != nil {
		return nil, fmt.Errorf("could not list reflections: %w", err)
	}

	return reflections, nil
}

func (r *ReflectionRepositoryImpl) GetPublished(ctx context.Context) ([]models.Reflection, error) {
	query := `SELECT * FROM reflections WHERE published = TRUE ORDER BY created_at DESC`

	var reflections []models.Reflection
	err := r.db.SelectContext(ctx, &reflections, query)
	if err != nil {
		return nil, fmt.Errorf("could not list published reflections: %w", err)
	}

	return reflections, nil
}

func (r *ReflectionRepositoryImpl) GetPublishedByTag(ctx context.Context, label string) ([]models.Reflection, error) {
	query := `SELECT * FROM reflections WHERE published = TRUE AND $1 = ANY(tags) ORDER BY created_at DESC`

	var reflections []models.Reflection
	err := r.db.SelectContext(ctx, &reflections, query, label)
	if err != nil {
		return nil, fmt.Errorf("could not list reflections by tag: %w", err)
	}

	return reflections, nil
}

func (r *ReflectionRepositoryImpl) Update(ctx context.Context, reflection *models.Reflection) error {
	query := `
		UPDATE reflections SET
			title = :title,
			body = :body,
			slug = :slug,
			published = :published,
			tags = :tags,
			updated_at = :updated_at
		WHERE reflection_id = :reflection_id
	`

	reflection.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, reflection)
	if err != nil {
		if isUniqueViolation(err, "slug") {
			return fmt.Errorf("slug %q is already taken: %w", reflection.Slug, err)
		}
		return fmt.Errorf("could not update reflection: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("reflection %s: %w", reflection.ReflectionID, ErrNotFound)
	}

	return nil
}

func (r *ReflectionRepositoryImpl) Delete(ctx context.Context, reflectionID string) error {
	query := `DELETE FROM reflections WHERE reflection_id = $1`

	result, err := r.db.ExecContext(ctx, query, reflectionID)
	if err != nil {
		return fmt.Errorf("could not delete reflection: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("reflection %s: %w", reflectionID, ErrNotFound)
	}

	return nil
}

func (r *ReflectionRepositoryImpl) SetPublished(ctx context.Context, reflectionID string, published bool) error {
	query := `UPDATE reflections SET published = $2, updated_at = CURRENT_TIMESTAMP WHERE reflection_id = $1`

	result, err := r.db.ExecContext(ctx, query, reflectionID, published)
	if err != nil {
		return fmt.Errorf("could not change publication state: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("reflection %s: %w", reflectionID, ErrNotFound)
	}

	return nil
}

func (r *ReflectionRepositoryImpl) SetImageURLs(ctx context.Context, reflectionID string, urls []string) error {
	query := `UPDATE reflections SET image_urls = $2, updated_at = CURRENT_TIMESTAMP WHERE reflection_id = $1`

	result, err := r.db.ExecContext(ctx, query, reflectionID, pq.StringArray(urls))
	if err != nil {
		return fmt.Errorf("could not update reflection images: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("reflection %s: %w", reflectionID, ErrNotFound)
	}

	return nil
}

func (r *ReflectionRepositoryImpl) IncrementLikes(ctx context.Context, reflectionID string, base int) error {
	query := `UPDATE reflections SET likes = likes + 1 WHERE reflection_id = $1`

	if _, err := r.db.ExecContext(ctx, query, reflectionID); err != nil {
		return fmt.Errorf("could not increment likes: %w", err)
	}
	return nil
}

func (r *ReflectionRepositoryImpl) DecrementLikes(ctx context.Context, reflectionID string, base int) error {
	query := `UPDATE reflections SET likes = GREATEST(likes - 1, 0) WHERE reflection_id = $1`

	if _, err := r.db.ExecContext(ctx, query, reflectionID); err != nil {
		return fmt.Errorf("could not decrement likes: %w", err)
	}
	return nil
}

func (r *ReflectionRepositoryImpl) IncrementDislikes(ctx context.Context, reflectionID string, base int) error {
	query := `UPDATE reflections SET dislikes = dislikes + 1 WHERE reflection_id = $1`

	if _, err := r.db.ExecContext(ctx, query, reflectionID); err != nil {
		return fmt.Errorf("could not increment dislikes: %w", err)
	}
	return nil
}

func (r *ReflectionRepositoryImpl) DecrementDislikes(ctx context.Context, reflectionID string, base int) error {
	query := `UPDATE reflections SET dislikes = GREATEST(dislikes - 1, 0) WHERE reflection_id = $1`

	if _, err := r.db.ExecContext(ctx, query, reflectionID); err != nil {
		return fmt.Errorf("could not decrement dislikes: %w", err)
	}
	return nil
}
