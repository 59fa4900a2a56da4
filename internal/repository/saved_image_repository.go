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

type SavedImageRepositoryImpl struct {
	db *sqlx.DB
}

func NewSavedImageRepository(db *sqlx.DB) *SavedImageRepositoryImpl {
	return &SavedImageRepositoryImpl{db: db}
}

func (r *SavedImageRepositoryImpl) Create(ctx context.Context, image *models.SavedImage) error {
	query := `
		INSERT INTO saved_images
		(image_id, aphorism_id, image_url, prompt, aspect_ratio, style_family, typography, scene, created_at)
		VALUES
		(:image_id, :aphorism_id, :image_url, :prompt, :aspect_ratio, :style_family, :typography, :scene, :created_at)
	`

	if image.ImageID == "" {
		image.ImageID = uuid.New().String()
	}
	if image.CreatedAt.IsZero() {
		image.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, image)
	if err != nil {
		return fmt.Errorf("could not save generated image: %w", err)
	}

	return nil
}

func (r *SavedImageRepositoryImpl) GetByID(ctx context.Context, imageID string) (*models.SavedImage, error) {
	query := `SELECT * FROM saved_images WHERE image_id = $1`

	var image models.SavedImage
	err := r.db.GetContext(ctx, &image, query, imageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("saved image %s: %w", imageID, ErrNotFound)
		}
		return nil, fmt.Errorf("could not load saved image: %w", err)
	}

	return &image, nil
}

func (r *SavedImageRepositoryImpl) GetByAphorismID(ctx context.Context, aphorismID string) ([]models.SavedImage, error) {
	query := `SELECT * FROM saved_images WHERE aphorism_id = $1 ORDER BY created_at DESC`

	var images []models.SavedImage
	err := r.db.SelectContext(ctx, &images, query, aphorismID)
	if err != nil {
		return nil, fmt.Errorf("could not list saved images: %w", err)
	}

	return images, nil
}

func (r *SavedImageRepositoryImpl) CountByAphorismID(ctx context.Context, aphorismID string) (int, error) {
	query := `SELECT COUNT(*) FROM saved_images WHERE aphorism_id = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, aphorismID)
	if err != nil {
		return 0, fmt.Errorf("could not count saved images: %w", err)
	}

	return count, nil
}

func (r *SavedImageRepositoryImpl) Delete(ctx context.Context, imageID string) error {
	query := `DELETE FROM saved_images WHERE image_id = $1`

	result, err := r.db.ExecContext(ctx, query, imageID)
	if err != nil {
		return fmt.Errorf("could not delete saved image: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("saved image %s: %w", imageID, ErrNotFound)
	}

	return nil
}
