package service

import (
	"Glimpse/internal/api/dto"
	"Glimpse/internal/model"
	"Glimpse/internal/pkg/consts"
	"Glimpse/internal/pkg/minio"
	"Glimpse/internal/pkg/redis"
	"Glimpse/internal/pkg/security"
	"Glimpse/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) (*dto.UserDTO, error)
	Login(ctx context.Context, req *dto.CredentialDTO) (*dto.LoginResultDTO, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateAvatar(ctx context.Context, id uint64, objectName string) (string, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) (*dto.UserDTO, error) {
	existing, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExist
	}

	existing, err = s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExist
	}

	passwordHash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  passwordHash,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		// 唯一索引兜底并发注册
		if isDuplicateError(err) {
			return nil, ErrUsernameExist
		}
		return nil, err
	}

	return toUserDTO(user), nil
}

func (s *userServiceImpl) Login(ctx context.Context, req *dto.CredentialDTO) (*dto.LoginResultDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrPasswordIncorrect
	}

	if err = security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResultDTO{
		Token: token,
		User:  toUserDTO(user),
	}, nil
}

// Logout 将 token 签名加入失效名单，存活到 token 自身过期为止
func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrParamInvalid
	}

	ttl := 72 * time.Hour
	if claims, err := security.ValidateToken(token); err == nil && claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			ttl = remaining
		}
	}

	return redis.SetWithExpiration(ctx, consts.TokenBlockKey+signature, "1", ttl)
}

func (s *userServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

// UpdateAvatar 将已上传的对象记录到用户资料，返回公共访问地址
func (s *userServiceImpl) UpdateAvatar(ctx context.Context, id uint64, objectName string) (string, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	avatarURL := minio.GetPublicURL(objectName)
	if err = s.userRepo.UpdateAvatar(ctx, id, avatarURL); err != nil {
		return "", err
	}
	return avatarURL, nil
}

func toUserDTO(user *model.User) *dto.UserDTO {
	result := &dto.UserDTO{}
	_ = copier.Copy(result, user)
	result.CreatedAt = user.CreatedAt.Format(time.RFC3339)
	return result
}
