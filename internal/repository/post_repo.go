package repository

import (
	"Glimpse/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostByIDs(ctx context.Context, ids []uint64) ([]*model.Post, error)
	ListLatest(ctx context.Context, limit int) ([]*model.Post, error)
	ListByTag(ctx context.Context, tag string, limit int) ([]*model.Post, error)
	SearchContent(ctx context.Context, keyword string, limit int) ([]*model.Post, error)
	CheckRepostExists(ctx context.Context, userID, postID uint64) (bool, error)
	GetRepostCountsByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error)
}

type postRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &postRepoImpl{db: db}
}

func (s *postRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *postRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Preload("User").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *postRepoImpl) GetPostByIDs(ctx context.Context, ids []uint64) ([]*model.Post, error) {
	var posts []*model.Post
	if len(ids) == 0 {
		return posts, nil
	}
	err := s.db.WithContext(ctx).Preload("User").Where("id IN ?", ids).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *postRepoImpl) ListLatest(ctx context.Context, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).Preload("User").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (s *postRepoImpl) ListByTag(ctx context.Context, tag string, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).Preload("User").
		Select("posts.*").
		Joins("JOIN post_hashtags ph ON ph.post_id = posts.id").
		Joins("JOIN hashtags h ON h.id = ph.hashtag_id").
		Where("h.tag = ?", tag).
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (s *postRepoImpl) SearchContent(ctx context.Context, keyword string, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).Preload("User").
		Where("content LIKE ?", "%"+keyword+"%").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (s *postRepoImpl) CheckRepostExists(ctx context.Context, userID, postID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("user_id = ? AND repost_of = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (s *postRepoImpl) GetRepostCountsByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	type row struct {
		PostID uint64
		Total  int64
	}
	var rows []row
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Select("repost_of AS post_id, COUNT(*) AS total").
		Where("repost_of IN ?", postIDs).
		Group("repost_of").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.PostID] = r.Total
	}
	return counts, nil
}
