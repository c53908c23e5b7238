package model

type PostHashtag struct {
	PostID    uint64 `gorm:"primaryKey" json:"postId"`
	HashtagID uint64 `gorm:"primaryKey;index:idx_hashtag_id" json:"hashtagId"`
}

func (PostHashtag) TableName() string {
	return "post_hashtags"
}
