package repository

import (
	"Glimpse/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagCount 热门标签统计行
type TagCount struct {
	Tag       string
	PostCount int64
}

type HashtagRepo interface {
	GetOrCreateTags(ctx context.Context, tags []string) ([]*model.Hashtag, error)
	LinkPost(ctx context.Context, postID uint64, hashtagIDs []uint64) error
	TrendingTags(ctx context.Context, since time.Time, limit int) ([]*TagCount, error)
}

type hashtagRepoImpl struct {
	db *gorm.DB
}

func NewHashtagRepository(db *gorm.DB) HashtagRepo {
	return &hashtagRepoImpl{db: db}
}

func (s *hashtagRepoImpl) GetOrCreateTags(ctx context.Context, tags []string) ([]*model.Hashtag, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	// 使用 OnConflict DoNothing 懒插入，避免重复创建
	for _, tag := range tags {
		record := model.Hashtag{
			Tag:       tag,
			CreatedAt: time.Now(),
		}
		err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error
		if err != nil {
			return nil, err
		}
	}

	var result []*model.Hashtag
	err := s.db.WithContext(ctx).Where("tag IN ?", tags).Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *hashtagRepoImpl) LinkPost(ctx context.Context, postID uint64, hashtagIDs []uint64) error {
	if len(hashtagIDs) == 0 {
		return nil
	}

	links := make([]*model.PostHashtag, 0, len(hashtagIDs))
	for _, id := range hashtagIDs {
		links = append(links, &model.PostHashtag{PostID: postID, HashtagID: id})
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(links).Error
}

// TrendingTags 统计窗口内各标签的帖子数，计数降序、同数按标签升序
func (s *hashtagRepoImpl) TrendingTags(ctx context.Context, since time.Time, limit int) ([]*TagCount, error) {
	var rows []*TagCount
	err := s.db.WithContext(ctx).Model(&model.Hashtag{}).
		Select("hashtags.tag AS tag, COUNT(ph.post_id) AS post_count").
		Joins("JOIN post_hashtags ph ON ph.hashtag_id = hashtags.id").
		Joins("JOIN posts p ON p.id = ph.post_id").
		Where("p.created_at > ?", since).
		Group("hashtags.id, hashtags.tag").
		Order("post_count DESC, hashtags.tag ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
