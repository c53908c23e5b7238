package model

import (
	"time"
)

type Post struct {
	ID            uint64    `gorm:"primaryKey"`
	UserID        uint64    `gorm:"not null;index:idx_user_created;uniqueIndex:idx_user_repost" json:"user_id"`
	Content       string    `gorm:"type:varchar(280);not null" json:"content"`
	ImageBase64   *string   `gorm:"type:longtext" json:"image_base64"`
	RepostOf      *uint64   `gorm:"index:idx_repost_of;uniqueIndex:idx_user_repost" json:"repost_of"`
	RepostComment *string   `gorm:"type:varchar(280)" json:"repost_comment"`
	CreatedAt     time.Time `gorm:"index:idx_user_created" json:"created_at"`

	// 关联关系
	User     User  `gorm:"foreignKey:UserID;references:ID"`
	Original *Post `gorm:"foreignKey:RepostOf;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
