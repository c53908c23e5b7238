package repository

import (
	"Glimpse/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StoryRepo interface {
	CreateStory(ctx context.Context, story *model.Story) error
	GetStory(ctx context.Context, id uint64) (*model.Story, error)
	ListSince(ctx context.Context, since time.Time) ([]*model.Story, error)
	CreateView(ctx context.Context, view *model.StoryView) error
	GetViewedStoryIDs(ctx context.Context, userID uint64, storyIDs []uint64) (map[uint64]bool, error)
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type storyRepoImpl struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepo {
	return &storyRepoImpl{db: db}
}

func (s *storyRepoImpl) CreateStory(ctx context.Context, story *model.Story) error {
	return s.db.WithContext(ctx).Create(story).Error
}

func (s *storyRepoImpl) GetStory(ctx context.Context, id uint64) (*model.Story, error) {
	var story model.Story
	err := s.db.WithContext(ctx).First(&story, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &story, nil
}

func (s *storyRepoImpl) ListSince(ctx context.Context, since time.Time) ([]*model.Story, error) {
	var stories []*model.Story
	err := s.db.WithContext(ctx).Preload("User").
		Where("created_at > ?", since).
		Order("created_at DESC, id DESC").
		Find(&stories).Error
	return stories, err
}

// CreateView 幂等写入浏览记录，冲突时不做任何事
func (s *storyRepoImpl) CreateView(ctx context.Context, view *model.StoryView) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(view).Error
}

func (s *storyRepoImpl) GetViewedStoryIDs(ctx context.Context, userID uint64, storyIDs []uint64) (map[uint64]bool, error) {
	viewed := make(map[uint64]bool, len(storyIDs))
	if userID == 0 || len(storyIDs) == 0 {
		return viewed, nil
	}

	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.StoryView{}).
		Where("user_id = ? AND story_id IN ?", userID, storyIDs).
		Pluck("story_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		viewed[id] = true
	}
	return viewed, nil
}

// DeleteExpired 集合式删除过期快拍及其浏览记录。
// 删除本身是集合操作，并发调用是安全的。
func (s *storyRepoImpl) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("story_id IN (?)", tx.Model(&model.Story{}).Select("id").Where("created_at < ?", before)).
			Delete(&model.StoryView{}).Error; err != nil {
			return err
		}

		result := tx.Where("created_at < ?", before).Delete(&model.Story{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	return deleted, err
}
