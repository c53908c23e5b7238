package handler

import (
	"Glimpse/internal/api/dto"
	"Glimpse/internal/pkg/response"
	"Glimpse/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

// ListFeed 信息流
func (s *PostHandler) ListFeed(c *gin.Context) {
	userID := c.GetUint64("user_id")

	posts, err := s.postSvc.ListFeed(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// CreatePost 发帖
func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.CreatePostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, post)
}

// Repost 转发帖子
func (s *PostHandler) Repost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	// 转发评论可缺省，空请求体直接放行
	var req dto.RepostDTO
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, err)
			return
		}
	}

	repost, err := s.postSvc.Repost(c.Request.Context(), userID, postID, req.Comment)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, repost)
}

// Search 按标签或正文关键词搜索
func (s *PostHandler) Search(c *gin.Context) {
	userID := c.GetUint64("user_id")
	query := c.Query("q")

	posts, err := s.postSvc.Search(c.Request.Context(), userID, query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// Trending 热门标签
func (s *PostHandler) Trending(c *gin.Context) {
	tags, err := s.postSvc.Trending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tags)
}
