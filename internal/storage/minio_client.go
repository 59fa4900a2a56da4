package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"pensees/internal/config"
)

// Storage is the durable image store behind generated cards and
// reflection illustrations.
type Storage interface {
	UploadImage(ctx context.Context, folder, fileName, contentType string, file io.Reader, size int64) (string, string, error)
	DeleteImage(ctx context.Context, objectName string) error
}

// Only web image formats are accepted, mirrored by a 5MB default size cap
// in the configuration.
var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type MinIOClient struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("could not check bucket %s: %w", cfg.MinIO.BucketName, err)
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("could not create bucket %s: %w", cfg.MinIO.BucketName, err)
		}
		log.Printf("Created bucket %s", cfg.MinIO.BucketName)
	}

	return &MinIOClient{client: client, cfg: cfg}, nil
}

// UploadImage stores one image under folder and returns the object name and
// its public URL. The content type is validated here, before any bytes are
// sent, and the size cap is enforced against the declared size.
func (m *MinIOClient) UploadImage(ctx context.Context, folder, fileName, contentType string, file io.Reader, size int64) (string, string, error) {
	ext, ok := allowedContentTypes[contentType]
	if !ok {
		return "", "", fmt.Errorf("unsupported image type %q (jpeg, png or webp only)", contentType)
	}

	if size <= 0 || size > m.cfg.MaxUploadSize {
		return "", "", fmt.Errorf("image size %d exceeds the %d byte limit", size, m.cfg.MaxUploadSize)
	}

	now := time.Now()
	objectName := fmt.Sprintf("%s/%d/%02d/%s%s",
		folder,
		now.Year(),
		now.Month(),
		uuid.New().String(),
		ext)

	_, err := m.client.PutObject(ctx, m.cfg.MinIO.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("could not upload to MinIO: %w", err)
	}

	imageURL := fmt.Sprintf("%s/%s", m.cfg.MinIO.PublicURL, path.Join(m.cfg.MinIO.BucketName, objectName))

	return objectName, imageURL, nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.cfg.MinIO.BucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("could not delete from MinIO: %w", err)
	}
	return nil
}
