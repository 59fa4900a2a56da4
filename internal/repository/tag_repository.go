package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pensees/internal/models"
)

type TagRepositoryImpl struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) *TagRepositoryImpl {
	return &TagRepositoryImpl{db: db}
}

func isUniqueViolation(err error, column string) bool {
	return strings.Contains(err.Error(), "duplicate key value") &&
		strings.Contains(err.Error(), column)
}

func (r *TagRepositoryImpl) Create(ctx context.Context, tag *models.Tag) error {
	query := `
		INSERT INTO tags (tag_id, label, created_at)
		VALUES (:tag_id, :label, :created_at)
	`

	if tag.TagID == "" {
		tag.TagID = uuid.New().String()
	}
	if tag.CreatedAt.IsZero() {
		tag.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, tag)
	if err != nil {
		if isUniqueViolation(err, "label") {
			return fmt.Errorf("tag %q already exists: %w", tag.Label, err)
		}
		return fmt.Errorf("could not create tag: %w", err)
	}

	return nil
}

func (r *TagRepositoryImpl) GetAll(ctx context.Context) ([]models.Tag, error) {
	query := `SELECT * FROM tags ORDER BY created_at DESC`

	var tags []models.Tag
	err := r.db.SelectContext(ctx, &tags, query)
	if err != nil {
		return nil, fmt.Errorf("could not list tags: %w", err)
	}

	return tags, nil
}

func (r *TagRepositoryImpl) GetByID(ctx context.Context, tagID string) (*models.Tag, error) {
	query := `SELECT * FROM tags WHERE tag_id = $1`

	var tag models.Tag
	err := r.db.GetContext(ctx, &tag, query, tagID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tag %s: %w", tagID, ErrNotFound)
		}
		return nil, fmt.Errorf("could not load tag: %w", err)
	}

	return &tag, nil
}

// Delete removes the registry entry only. Labels on aphorisms and
// reflections are denormalized strings and are deliberately untouched.
func (r *TagRepositoryImpl) Delete(ctx context.Context, tagID string) error {
	query := `DELETE FROM tags WHERE tag_id = $1`

	result, err := r.db.ExecContext(ctx, query, tagID)
	if err != nil {
		return fmt.Errorf("could not delete tag: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("tag %s: %w", tagID, ErrNotFound)
	}

	return nil
}
