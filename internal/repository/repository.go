package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"pensees/internal/models"
)

// ErrNotFound is returned when a lookup by id or slug matches nothing.
// Handlers map it to a 404 view, it is not treated as a failure.
var ErrNotFound = errors.New("not found")

type AphorismRepository interface {
	Create(ctx context.Context, aphorism *models.Aphorism) error
	GetByID(ctx context.Context, aphorismID string) (*models.Aphorism, error)
	GetAll(ctx context.Context) ([]models.Aphorism, error)
	GetByTag(ctx context.Context, label string) ([]models.Aphorism, error)
	GetFeatured(ctx context.Context) ([]models.Aphorism, error)
	Update(ctx context.Context, aphorism *models.Aphorism) error
	Delete(ctx context.Context, aphorismID string) error
	IncrementLikes(ctx context.Context, aphorismID string, base int) error
	DecrementLikes(ctx context.Context, aphorismID string, base int) error
	SetPrimaryImage(ctx context.Context, aphorismID, imageURL string) error
}

type SavedImageRepository interface {
	Create(ctx context.Context, image *models.SavedImage) error
	GetByID(ctx context.Context, imageID string) (*models.SavedImage, error)
	GetByAphorismID(ctx context.Context, aphorismID string) ([]models.SavedImage, error)
	CountByAphorismID(ctx context.Context, aphorismID string) (int, error)
	Delete(ctx context.Context, imageID string) error
}

type ReflectionRepository interface {
	Create(ctx context.Context, reflection *models.Reflection) error
	GetByID(ctx context.Context, reflectionID string) (*models.Reflection, error)
	GetBySlug(ctx context.Context, slug string) (*models.Reflection, error)
	GetAll(ctx context.Context) ([]models.Reflection, error)
	GetPublished(ctx context.Context) ([]models.Reflection, error)
	GetPublishedByTag(ctx context.Context, label string) ([]models.Reflection, error)
	Update(ctx context.Context, reflection *models.Reflection) error
	Delete(ctx context.Context, reflectionID string) error
	SetPublished(ctx context.Context, reflectionID string, published bool) error
	SetImageURLs(ctx context.Context, reflectionID string, urls []string) error
	IncrementLikes(ctx context.Context, reflectionID string, base int) error
	DecrementLikes(ctx context.Context, reflectionID string, base int) error
	IncrementDislikes(ctx context.Context, reflectionID string, base int) error
	DecrementDislikes(ctx context.Context, reflectionID string, base int) error
}

type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetAll(ctx context.Context) ([]models.Tag, error)
	GetByID(ctx context.Context, tagID string) (*models.Tag, error)
	Delete(ctx context.Context, tagID string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetAll(ctx context.Context) ([]models.Comment, error)
	GetByReflectionID(ctx context.Context, reflectionID string) ([]models.Comment, error)
	Delete(ctx context.Context, commentID string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type Repository struct {
	Aphorism   AphorismRepository
	SavedImage SavedImageRepository
	Reflection ReflectionRepository
	Tag        TagRepository
	Comment    CommentRepository
	User       UserRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Aphorism:   NewAphorismRepository(db),
		SavedImage: NewSavedImageRepository(db),
		Reflection: NewReflectionRepository(db),
		Tag:        NewTagRepository(db),
		Comment:    NewCommentRepository(db),
		User:       NewUserRepository(db),
	}
}
