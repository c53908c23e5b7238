package service

import (
	"Glimpse/internal/api/dto"
	"Glimpse/internal/model"
	"Glimpse/internal/pkg/consts"
	"Glimpse/internal/repository"
	"context"
	"strings"
	"time"
)

type StoryService interface {
	ListVisibleStories(ctx context.Context, viewerID uint64) ([]*dto.StoryDTO, error)
	ListStoryGroups(ctx context.Context, viewerID uint64) ([]*dto.StoryGroupDTO, error)
	UploadStory(ctx context.Context, ownerID uint64, req *dto.StoryCreateDTO) (*dto.StoryDTO, error)
	MarkViewed(ctx context.Context, viewerID, storyID uint64) error
	CleanupExpired(ctx context.Context) (int64, error)
}

type storyServiceImpl struct {
	storyRepo repository.StoryRepo
	userRepo  repository.UserRepo
}

func NewStoryService(storyRepo repository.StoryRepo, userRepo repository.UserRepo) StoryService {
	return &storyServiceImpl{
		storyRepo: storyRepo,
		userRepo:  userRepo,
	}
}

// ListVisibleStories 返回 24 小时内的快拍，按创建时间倒序，
// 并标记当前查看者是否已看过
func (s *storyServiceImpl) ListVisibleStories(ctx context.Context, viewerID uint64) ([]*dto.StoryDTO, error) {
	since := time.Now().Add(-consts.StoryLifetime)
	stories, err := s.storyRepo.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}

	storyIDs := make([]uint64, 0, len(stories))
	for _, story := range stories {
		storyIDs = append(storyIDs, story.ID)
	}

	viewed, err := s.storyRepo.GetViewedStoryIDs(ctx, viewerID, storyIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.StoryDTO, 0, len(stories))
	for _, story := range stories {
		result = append(result, toStoryDTO(story, viewed[story.ID]))
	}
	return result, nil
}

// ListStoryGroups 按作者聚合快拍；任一条未看即标记 has_unseen。
// 纯读侧聚合，不落库。
func (s *storyServiceImpl) ListStoryGroups(ctx context.Context, viewerID uint64) ([]*dto.StoryGroupDTO, error) {
	stories, err := s.ListVisibleStories(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	groupIndex := make(map[uint64]*dto.StoryGroupDTO)
	var groups []*dto.StoryGroupDTO

	for _, story := range stories {
		group, ok := groupIndex[story.UserID]
		if !ok {
			group = &dto.StoryGroupDTO{
				UserID:    story.UserID,
				Username:  story.Username,
				AvatarURL: story.AvatarURL,
			}
			groupIndex[story.UserID] = group
			groups = append(groups, group)
		}
		group.Stories = append(group.Stories, story)
		if !story.Viewed {
			group.HasUnseen = true
		}
	}

	return groups, nil
}

func (s *storyServiceImpl) UploadStory(ctx context.Context, ownerID uint64, req *dto.StoryCreateDTO) (*dto.StoryDTO, error) {
	if strings.TrimSpace(req.ImageBase64) == "" {
		return nil, ErrStoryImageRequired
	}

	owner, err := s.userRepo.GetUserByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}

	story := &model.Story{
		UserID:      ownerID,
		ImageBase64: req.ImageBase64,
		Caption:     req.Caption,
		CreatedAt:   time.Now(),
	}
	if err = s.storyRepo.CreateStory(ctx, story); err != nil {
		return nil, err
	}

	story.User = *owner
	return toStoryDTO(story, false), nil
}

// MarkViewed 幂等标记已看；快拍已过期或已看过都不算失败
func (s *storyServiceImpl) MarkViewed(ctx context.Context, viewerID, storyID uint64) error {
	story, err := s.storyRepo.GetStory(ctx, storyID)
	if err != nil {
		return err
	}
	if story == nil {
		return ErrStoryNotFound
	}

	view := &model.StoryView{
		UserID:   viewerID,
		StoryID:  storyID,
		ViewedAt: time.Now(),
	}
	if err = s.storyRepo.CreateView(ctx, view); err != nil {
		if isDuplicateError(err) {
			return nil
		}
		return err
	}
	return nil
}

func (s *storyServiceImpl) CleanupExpired(ctx context.Context) (int64, error) {
	before := time.Now().Add(-consts.StoryLifetime)
	return s.storyRepo.DeleteExpired(ctx, before)
}

func toStoryDTO(story *model.Story, viewed bool) *dto.StoryDTO {
	return &dto.StoryDTO{
		ID:          story.ID,
		UserID:      story.UserID,
		Username:    story.User.Username,
		AvatarURL:   story.User.AvatarURL,
		ImageBase64: story.ImageBase64,
		Caption:     story.Caption,
		CreatedAt:   story.CreatedAt.Format(time.RFC3339),
		Viewed:      viewed,
	}
}
