package model

import (
	"time"
)

type User struct {
	ID        uint64  `gorm:"primaryKey"`
	Username  string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_username"`
	Email     string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_email"`
	Password  string  `gorm:"type:varchar(255);not null"`
	AvatarURL *string `gorm:"type:varchar(512)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
