package repository

import (
	"Glimpse/internal/model"
	"context"

	"gorm.io/gorm"
)

type PostActionRepo interface {
	CreateLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, userID, postID uint64) error
	CheckLikeExists(ctx context.Context, userID, postID uint64) (bool, error)
	GetLikeCountsByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error)
	GetLikedPostIDs(ctx context.Context, userID uint64, postIDs []uint64) (map[uint64]bool, error)

	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentsByPostID(ctx context.Context, postID uint64) ([]*model.Comment, error)
	GetCommentCountsByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error)
}

type postActionRepoImpl struct {
	db *gorm.DB
}

func NewPostActionRepo(db *gorm.DB) PostActionRepo {
	return &postActionRepoImpl{db}
}

func (s *postActionRepoImpl) CreateLike(ctx context.Context, like *model.Like) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *postActionRepoImpl) DeleteLike(ctx context.Context, userID, postID uint64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Like{}).Error
}

func (s *postActionRepoImpl) CheckLikeExists(ctx context.Context, userID, postID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (s *postActionRepoImpl) GetLikeCountsByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	return s.countByPostIDs(ctx, &model.Like{}, postIDs)
}

func (s *postActionRepoImpl) GetLikedPostIDs(ctx context.Context, userID uint64, postIDs []uint64) (map[uint64]bool, error) {
	liked := make(map[uint64]bool, len(postIDs))
	if userID == 0 || len(postIDs) == 0 {
		return liked, nil
	}

	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

func (s *postActionRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

// GetCommentsByPostID 按创建时间升序返回帖子的全部评论
func (s *postActionRepoImpl) GetCommentsByPostID(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

func (s *postActionRepoImpl) GetCommentCountsByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	return s.countByPostIDs(ctx, &model.Comment{}, postIDs)
}

func (s *postActionRepoImpl) countByPostIDs(ctx context.Context, m interface{}, postIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	type row struct {
		PostID uint64
		Total  int64
	}
	var rows []row
	err := s.db.WithContext(ctx).Model(m).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.PostID] = r.Total
	}
	return counts, nil
}
