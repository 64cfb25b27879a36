package usecase

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/athsb009/cloud-cdn/internal/entity"
	"github.com/athsb009/cloud-cdn/internal/repo/persistent"
	"github.com/athsb009/cloud-cdn/pkg/logger"

	"gorm.io/gorm"
)

// ErrPostNotFound is returned when the referenced post id has no row.
var ErrPostNotFound = errors.New("post not found")

// ObjectStorage is the bucket-facing surface the post flow needs.
// pkg/s3 implements it; tests substitute in-memory fakes.
type ObjectStorage interface {
	Upload(key string, data []byte, contentType string) error
	Delete(key string) error
	SignedURL(key string, ttl time.Duration) (string, error)
}

// ImageNormalizer fits an uploaded buffer into the delivery bounding
// box. pkg/imaging implements it.
type ImageNormalizer interface {
	Normalize(buf []byte) ([]byte, error)
}

type PostUseCase interface {
	CreatePost(image []byte, contentType, caption string) (*entity.Post, error)
	ListPosts() ([]*entity.Post, error)
	DeletePost(id uint) (*entity.Post, error)
}

type postUseCase struct {
	postRepo   persistent.PostRepository
	storage    ObjectStorage
	normalizer ImageNormalizer
	cdnBaseURL string
	logger     *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	storage ObjectStorage,
	normalizer ImageNormalizer,
	cdnBaseURL string,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:   postRepo,
		storage:    storage,
		normalizer: normalizer,
		cdnBaseURL: cdnBaseURL,
		logger:     logger,
	}
}

// CreatePost normalizes the image, uploads the blob, then persists the
// metadata row, strictly in that order. There is no rollback: a failed
// metadata write after a successful upload leaves an orphaned blob,
// which is tolerated (a record without a blob never occurs on this
// path).
func (uc *postUseCase) CreatePost(image []byte, contentType, caption string) (*entity.Post, error) {
	imageName, err := generateImageName()
	if err != nil {
		return nil, fmt.Errorf("failed to generate image name: %w", err)
	}

	normalized, err := uc.normalizer.Normalize(image)
	if err != nil {
		return nil, fmt.Errorf("failed to process image: %w", err)
	}

	if err := uc.storage.Upload(imageName, normalized, contentType); err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	post := &entity.Post{
		ImageName: imageName,
		Caption:   caption,
	}

	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Orphaned blob %s: metadata write failed: %v", imageName, err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// ListPosts returns all posts newest first, each projected with its
// public CDN URL. The URL is computed here and never stored.
func (uc *postUseCase) ListPosts() ([]*entity.Post, error) {
	posts, err := uc.postRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	for _, post := range posts {
		post.ImageURL = uc.cdnBaseURL + "/" + post.ImageName
	}

	return posts, nil
}

// DeletePost removes the blob before the metadata row. If the blob
// delete fails the row is left intact, so a record never ends up
// pointing at nothing by our own doing.
func (uc *postUseCase) DeletePost(id uint) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}

	if err := uc.storage.Delete(post.ImageName); err != nil {
		return nil, fmt.Errorf("failed to delete image: %w", err)
	}

	if err := uc.postRepo.Delete(post.ID); err != nil {
		uc.logger.Error("Blob %s deleted but row %d remains: %v", post.ImageName, post.ID, err)
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}

	return post, nil
}

func generateImageName() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
