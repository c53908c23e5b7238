package model

import "time"

// Hashtag 标签目录，tag 统一小写存储
type Hashtag struct {
	ID        uint64 `gorm:"primaryKey"`
	Tag       string `gorm:"type:varchar(100);not null;uniqueIndex:idx_hashtag_tag"`
	CreatedAt time.Time
}

func (Hashtag) TableName() string {
	return "hashtags"
}
