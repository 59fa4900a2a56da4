package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pensees/internal/models"
)

func TestCommentRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCommentRepository(sqlx.NewDb(db, "sqlmock"))
	ctx := context.Background()

	t.Run("empty author becomes Anonyme", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO comments").
			WillReturnResult(sqlmock.NewResult(1, 1))

		comment := &models.Comment{ReflectionID: "r1", Body: "Très juste."}
		err := repo.Create(ctx, comment)

		assert.NoError(t, err)
		assert.Equal(t, models.AnonymousAuthor, comment.Author)
		assert.NotEmpty(t, comment.CommentID)
	})

	t.Run("given author is kept", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO comments").
			WillReturnResult(sqlmock.NewResult(1, 1))

		comment := &models.Comment{ReflectionID: "r1", Author: "Claire", Body: "Merci."}
		err := repo.Create(ctx, comment)

		assert.NoError(t, err)
		assert.Equal(t, "Claire", comment.Author)
	})
}

func TestCommentRepository_GetByReflectionID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	rows := sqlmock.NewRows([]string{"comment_id", "reflection_id", "author", "body", "created_at"}).
		AddRow(uuid.New().String(), "r1", "Anonyme", "Première.", time.Now()).
		AddRow(uuid.New().String(), "r1", "Claire", "Seconde.", time.Now())

	mock.ExpectQuery(`SELECT * FROM comments WHERE reflection_id = $1 ORDER BY created_at DESC`).
		WithArgs("r1").
		WillReturnRows(rows)

	comments, err := repo.GetByReflectionID(context.Background(), "r1")

	require.NoError(t, err)
	assert.Len(t, comments, 2)
}

func TestCommentRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	commentID := uuid.New().String()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM comments WHERE comment_id = $1`).
			WithArgs(commentID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, commentID))
	})

	t.Run("unknown comment", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM comments WHERE comment_id = $1`).
			WithArgs(commentID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, commentID), ErrNotFound)
	})
}
