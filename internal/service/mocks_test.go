package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"pensees/internal/imagegen"
	"pensees/internal/models"
)

type MockAphorismRepository struct {
	mock.Mock
}

func (m *MockAphorismRepository) Create(ctx context.Context, aphorism *models.Aphorism) error {
	args := m.Called(ctx, aphorism)
	return args.Error(0)
}

func (m *MockAphorismRepository) GetByID(ctx context.Context, aphorismID string) (*models.Aphorism, error) {
	args := m.Called(ctx, aphorismID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Aphorism), args.Error(1)
}

func (m *MockAphorismRepository) GetAll(ctx context.Context) ([]models.Aphorism, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Aphorism), args.Error(1)
}

func (m *MockAphorismRepository) GetByTag(ctx context.Context, label string) ([]models.Aphorism, error) {
	args := m.Called(ctx, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Aphorism), args.Error(1)
}

func (m *MockAphorismRepository) GetFeatured(ctx context.Context) ([]models.Aphorism, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Aphorism), args.Error(1)
}

func (m *MockAphorismRepository) Update(ctx context.Context, aphorism *models.Aphorism) error {
	args := m.Called(ctx, aphorism)
	return args.Error(0)
}

func (m *MockAphorismRepository) Delete(ctx context.Context, aphorismID string) error {
	args := m.Called(ctx, aphorismID)
	return args.Error(0)
}

func (m *MockAphorismRepository) IncrementLikes(ctx context.Context, aphorismID string, base int) error {
	args := m.Called(ctx, aphorismID, base)
	return args.Error(0)
}

func (m *MockAphorismRepository) DecrementLikes(ctx context.Context, aphorismID string, base int) error {
	args := m.Called(ctx, aphorismID, base)
	return args.Error(0)
}

func (m *MockAphorismRepository) SetPrimaryImage(ctx context.Context, aphorismID, imageURL string) error {
	args := m.Called(ctx, aphorismID, imageURL)
	return args.Error(0)
}

type MockSavedImageRepository struct {
	mock.Mock
}

func (m *MockSavedImageRepository) Create(ctx context.Context, image *models.SavedImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockSavedImageRepository) GetByID(ctx context.Context, imageID string) (*models.SavedImage, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SavedImage), args.Error(1)
}

func (m *MockSavedImageRepository) GetByAphorismID(ctx context.Context, aphorismID string) ([]models.SavedImage, error) {
	args := m.Called(ctx, aphorismID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SavedImage), args.Error(1)
}

func (m *MockSavedImageRepository) CountByAphorismID(ctx context.Context, aphorismID string) (int, error) {
	args := m.Called(ctx, aphorismID)
	return args.Int(0), args.Error(1)
}

func (m *MockSavedImageRepository) Delete(ctx context.Context, imageID string) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

type MockReflectionRepository struct {
	mock.Mock
}

func (m *MockReflectionRepository) Create(ctx context.Context, reflection *models.Reflection) error {
	args := m.Called(ctx, reflection)
	return args.Error(0)
}

func (m *MockReflectionRepository) GetByID(ctx context.Context, reflectionID string) (*models.Reflection, error) {
	args := m.Called(ctx, reflectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reflection), args.Error(1)
}

func (m *MockReflectionRepository) GetBySlug(ctx context.Context, slug string) (*models.Reflection, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reflection), args.Error(1)
}

func (m *MockReflectionRepository) GetAll(ctx context.Context) ([]models.Reflection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reflection), args.Error(1)
}

func (m *MockReflectionRepository) GetPublished(ctx context.Context) ([]models.Reflection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reflection), args.Error(1)
}

func (m *MockReflectionRepository) GetPublishedByTag(ctx context.Context, label string) ([]models.Reflection, error) {
	args := m.Called(ctx, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reflection), args.Error(1)
}

func (m *MockReflectionRepository) Update(ctx context.Context, reflection *models.Reflection) error {
	args := m.Called(ctx, reflection)
	return args.Error(0)
}

func (m *MockReflectionRepository) Delete(ctx context.Context, reflectionID string) error {
	args := m.Called(ctx, reflectionID)
	return args.Error(0)
}

func (m *MockReflectionRepository) SetPublished(ctx context.Context, reflectionID string, published bool) error {
	args := m.Called(ctx, reflectionID, published)
	return args.Error(0)
}

func (m *MockReflectionRepository) SetImageURLs(ctx context.Context, reflectionID string, urls []string) error {
	args := m.Called(ctx, reflectionID, urls)
	return args.Error(0)
}

func (m *MockReflectionRepository) IncrementLikes(ctx context.Context, reflectionID string, base int) error {
	args := m.Called(ctx, reflectionID, base)
	return args.Error(0)
}

func (m *MockReflectionRepository) DecrementLikes(ctx context.Context, reflectionID string, base int) error {
	args := m.Called(ctx, reflectionID, base)
	return args.Error(0)
}

func (m *MockReflectionRepository) IncrementDislikes(ctx context.Context, reflectionID string, base int) error {
	args := m.Called(ctx, reflectionID, base)
	return args.Error(0)
}

func (m *MockReflectionRepository) DecrementDislikes(ctx context.Context, reflectionID string, base int) error {
	args := m.Called(ctx, reflectionID, base)
	return args.Error(0)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) GetByID(ctx context.Context, tagID string) (*models.Tag, error) {
	args := m.Called(ctx, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) Delete(ctx context.Context, tagID string) error {
	args := m.Called(ctx, tagID)
	return args.Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetAll(ctx context.Context) ([]models.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByReflectionID(ctx context.Context, reflectionID string) ([]models.Comment, error) {
	args := m.Called(ctx, reflectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshToken, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadImage(ctx context.Context, folder, fileName, contentType string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, folder, fileName, contentType, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteImage(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt, aspectRatio string) (*imagegen.Result, error) {
	args := m.Called(ctx, prompt, aspectRatio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*imagegen.Result), args.Error(1)
}
