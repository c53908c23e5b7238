package handler

import (
	"Glimpse/internal/api/dto"
	"Glimpse/internal/pkg/minio"
	"Glimpse/internal/pkg/response"
	"Glimpse/internal/service"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Register 用户注册
func (s *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user)
}

// Login 用户登录，签发 JWT
func (s *UserHandler) Login(c *gin.Context) {
	var req dto.CredentialDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.userSvc.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Logout 注销当前 token
func (s *UserHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")

	if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"success": true})
}

// GetUserInfo 获取当前登录用户信息
func (s *UserHandler) GetUserInfo(c *gin.Context) {
	userID := c.GetUint64("user_id")

	user, err := s.userSvc.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// UploadAvatar 上传头像到对象存储并更新用户资料
func (s *UserHandler) UploadAvatar(c *gin.Context) {
	userID := c.GetUint64("user_id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	objectName := "avatars/" + uuid.NewString() + path.Ext(fileHeader.Filename)
	if _, err = minio.UploadFile(c.Request.Context(), objectName, file, fileHeader.Size, contentType); err != nil {
		response.Error(c, err)
		return
	}

	avatarURL, err := s.userSvc.UpdateAvatar(c.Request.Context(), userID, objectName)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"avatar_url": avatarURL})
}
