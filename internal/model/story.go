package model

import (
	"time"
)

// Story 24 小时内可见，由清理任务物理删除
type Story struct {
	ID          uint64    `gorm:"primaryKey"`
	UserID      uint64    `gorm:"not null;index:idx_story_user" json:"user_id"`
	ImageBase64 string    `gorm:"type:longtext;not null" json:"image_base64"`
	Caption     *string   `gorm:"type:text" json:"caption"`
	CreatedAt   time.Time `gorm:"index:idx_story_created" json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Story) TableName() string {
	return "stories"
}
