package model

import (
	"time"
)

type StoryView struct {
	UserID   uint64    `gorm:"primaryKey" json:"userId"`
	StoryID  uint64    `gorm:"primaryKey;index:idx_view_story" json:"storyId"`
	ViewedAt time.Time `json:"viewedAt"`
}

func (StoryView) TableName() string {
	return "story_views"
}
