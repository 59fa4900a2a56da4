package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"pensees/internal/imagegen"
	"pensees/internal/models"
	"pensees/internal/prompt"
	"pensees/internal/repository"
	"pensees/internal/storage"
)

// Library caps: attempts to exceed them are rejected before any upload.
const (
	AphorismLibraryCap   = 5
	ReflectionLibraryCap = 4
)

// VisualService drives the round trip from card parameters to a durable,
// attached image URL. Generation only produces an unsaved preview; nothing
// is persisted until the explicit save step, and a failed save never
// leaves a dangling library entry.
type VisualService interface {
	GenerateCard(ctx context.Context, params prompt.Params) (*imagegen.Result, error)
	SaveToAphorismLibrary(ctx context.Context, aphorismID, dataURI, promptText string, params prompt.Params) (*models.SavedImage, error)
	DeleteSavedImage(ctx context.Context, imageID string) error
	AddReflectionImage(ctx context.Context, reflectionID, fileName, contentType string, data []byte) (string, error)
	SetAphorismPrimaryImage(ctx context.Context, aphorismID, imageURL string) error
}

type visualService struct {
	aphorismRepo   repository.AphorismRepository
	savedImageRepo repository.SavedImageRepository
	reflectionRepo repository.ReflectionRepository
	generator      imagegen.Generator
	storage        storage.Storage
}

func NewVisualService(repo *repository.Repository, generator imagegen.Generator, store storage.Storage) VisualService {
	return &visualService{
		aphorismRepo:   repo.Aphorism,
		savedImageRepo: repo.SavedImage,
		reflectionRepo: repo.Reflection,
		generator:      generator,
		storage:        store,
	}
}

// GenerateCard validates the required fields, renders the brief and calls
// the image model. No network call is made when validation fails.
func (s *visualService) GenerateCard(ctx context.Context, params prompt.Params) (*imagegen.Result, error) {
	if strings.TrimSpace(params.Citation) == "" {
		return nil, fmt.Errorf("citation text is required")
	}
	if strings.TrimSpace(params.Author) == "" {
		return nil, fmt.Errorf("author is required")
	}
	if s.generator == nil {
		return nil, fmt.Errorf("image generation is not configured")
	}

	ratio := params.AspectRatio
	if ratio == "" {
		ratio = prompt.DefaultAspectRatio
	}

	return s.generator.Generate(ctx, prompt.Render(params), ratio)
}

// SaveToAphorismLibrary uploads a previewed card and attaches it to the
// aphorism. The library cap is checked before the payload is even decoded,
// so a full library never costs an upload.
func (s *visualService) SaveToAphorismLibrary(ctx context.Context, aphorismID, dataURI, promptText string, params prompt.Params) (*models.SavedImage, error) {
	aphorism, err := s.aphorismRepo.GetByID(ctx, aphorismID)
	if err != nil {
		return nil, err
	}

	count, err := s.savedImageRepo.CountByAphorismID(ctx, aphorismID)
	if err != nil {
		return nil, err
	}
	if count >= AphorismLibraryCap {
		return nil, fmt.Errorf("the library already holds %d images, delete one first", AphorismLibraryCap)
	}

	contentType, data, err := imagegen.DecodeDataURI(dataURI)
	if err != nil {
		return nil, fmt.Errorf("invalid image payload: %w", err)
	}

	objectName, imageURL, err := s.storage.UploadImage(ctx,
		"cartes/"+aphorismID, "carte"+extensionFor(contentType), contentType,
		bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("could not upload card: %w", err)
	}

	ratio := params.AspectRatio
	if ratio == "" {
		ratio = prompt.DefaultAspectRatio
	}
	style := params.StyleFamily
	if style == "" {
		style = prompt.DefaultStyleFamily
	}
	typo := params.Typography
	if typo == "" {
		typo = prompt.DefaultTypography
	}

	image := &models.SavedImage{
		AphorismID:  aphorismID,
		ImageURL:    imageURL,
		Prompt:      promptText,
		AspectRatio: ratio,
		StyleFamily: style,
		Typography:  typo,
	}
	if params.Scene != "" {
		scene := params.Scene
		image.Scene = &scene
	}

	if err = s.savedImageRepo.Create(ctx, image); err != nil {
		// Never leave an orphaned object behind a failed attach.
		if delErr := s.storage.DeleteImage(ctx, objectName); delErr != nil {
			log.Printf("Warning: could not remove orphaned object %s: %v", objectName, delErr)
		}
		return nil, fmt.Errorf("could not attach card: %w", err)
	}

	// The first saved card becomes the aphorism's display image.
	if aphorism.PrimaryImageURL == nil || *aphorism.PrimaryImageURL == "" {
		if err = s.aphorismRepo.SetPrimaryImage(ctx, aphorismID, imageURL); err != nil {
			log.Printf("Warning: could not set primary image for %s: %v", aphorismID, err)
		}
	}

	return image, nil
}

func (s *visualService) DeleteSavedImage(ctx context.Context, imageID string) error {
	image, err := s.savedImageRepo.GetByID(ctx, imageID)
	if err != nil {
		return err
	}

	if objectName := objectNameFromURL(image.ImageURL); objectName != "" {
		if err := s.storage.DeleteImage(ctx, objectName); err != nil {
			log.Printf("Warning: could not delete object for image %s: %v", imageID, err)
		}
	}

	return s.savedImageRepo.Delete(ctx, imageID)
}

// AddReflectionImage uploads one illustration and appends its URL to the
// reflection, up to the four-image cap.
func (s *visualService) AddReflectionImage(ctx context.Context, reflectionID, fileName, contentType string, data []byte) (string, error) {
	reflection, err := s.reflectionRepo.GetByID(ctx, reflectionID)
	if err != nil {
		return "", err
	}

	if len(reflection.ImageURLs) >= ReflectionLibraryCap {
		return "", fmt.Errorf("a reflection holds at most %d images", ReflectionLibraryCap)
	}

	_, imageURL, err := s.storage.UploadImage(ctx,
		"reflexions/"+reflectionID, fileName, contentType,
		bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("could not upload image: %w", err)
	}

	urls := append([]string{}, reflection.ImageURLs...)
	urls = append(urls, imageURL)

	if err = s.reflectionRepo.SetImageURLs(ctx, reflectionID, urls); err != nil {
		return "", fmt.Errorf("could not attach image: %w", err)
	}

	return imageURL, nil
}

func (s *visualService) SetAphorismPrimaryImage(ctx context.Context, aphorismID, imageURL string) error {
	return s.aphorismRepo.SetPrimaryImage(ctx, aphorismID, imageURL)
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

// objectNameFromURL strips the public endpoint and bucket prefix off a
// stored URL, leaving the object path inside the bucket.
func objectNameFromURL(imageURL string) string {
	parts := strings.SplitN(imageURL, "//", 2)
	if len(parts) == 2 {
		imageURL = parts[1]
	}

	// host / bucket / object...
	segments := strings.SplitN(imageURL, "/", 3)
	if len(segments) < 3 {
		return ""
	}
	return segments[2]
}
