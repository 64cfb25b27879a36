package model

import (
	"time"
)

type PostModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ImageName string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"image_name"`
	Caption   string    `gorm:"type:text" json:"caption"`
	Created   time.Time `gorm:"autoCreateTime;index" json:"created"`
}

func (PostModel) TableName() string {
	return "posts"
}
