package persistent

import (
	"github.com/athsb009/cloud-cdn/internal/entity"
	"github.com/athsb009/cloud-cdn/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:        m.ID,
		ImageName: m.ImageName,
		Caption:   m.Caption,
		Created:   m.Created,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:        e.ID,
		ImageName: e.ImageName,
		Caption:   e.Caption,
		Created:   e.Created,
	}
}
