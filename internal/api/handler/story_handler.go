package handler

import (
	"Glimpse/internal/api/dto"
	"Glimpse/internal/pkg/response"
	"Glimpse/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type StoryHandler struct {
	storySvc service.StoryService
}

func NewStoryHandler(storySvc service.StoryService) *StoryHandler {
	return &StoryHandler{storySvc: storySvc}
}

// ListStories 24 小时内可见的快拍，带当前用户的已看标记
func (s *StoryHandler) ListStories(c *gin.Context) {
	userID := c.GetUint64("user_id")

	stories, err := s.storySvc.ListVisibleStories(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stories)
}

// ListStoryGroups 按作者聚合的快拍组
func (s *StoryHandler) ListStoryGroups(c *gin.Context) {
	userID := c.GetUint64("user_id")

	groups, err := s.storySvc.ListStoryGroups(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, groups)
}

// UploadStory 上传快拍
func (s *StoryHandler) UploadStory(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.StoryCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	story, err := s.storySvc.UploadStory(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, story)
}

// MarkViewed 标记快拍已看，幂等
func (s *StoryHandler) MarkViewed(c *gin.Context) {
	userID := c.GetUint64("user_id")
	storyID, err := strconv.ParseUint(c.Param("story_id"), 10, 64)
	if err != nil || storyID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.storySvc.MarkViewed(c.Request.Context(), userID, storyID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.StoryViewDTO{Success: true})
}

// Cleanup 删除过期快拍，可手动触发，也由定时任务调用
func (s *StoryHandler) Cleanup(c *gin.Context) {
	deleted, err := s.storySvc.CleanupExpired(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.StoryCleanupDTO{Deleted: deleted})
}
