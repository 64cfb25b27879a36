package persistent

import (
	"github.com/athsb009/cloud-cdn/internal/entity"
	"github.com/athsb009/cloud-cdn/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *entity.Post) error
	List() ([]*entity.Post, error)
	GetByID(id uint) (*entity.Post, error)
	Delete(id uint) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)

	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}

	// id and created are assigned by the store
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) List() ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.Order("created DESC").Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) GetByID(id uint) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) Delete(id uint) error {
	return r.db.Delete(&model.PostModel{}, "id = ?", id).Error
}
