package service

import (
	"Glimpse/internal/api/dto"
	"Glimpse/internal/model"
	"Glimpse/internal/pkg/consts"
	"Glimpse/internal/repository"
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-sql-driver/mysql"
)

type PostActionService interface {
	ToggleLike(ctx context.Context, userID, postID uint64) (bool, error)
	AddComment(ctx context.Context, userID, postID uint64, content string) (*dto.CommentDTO, error)
	ListComments(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error)
}

type postActionServiceImpl struct {
	actionRepo repository.PostActionRepo
	postRepo   repository.PostRepo
	userRepo   repository.UserRepo
}

func NewPostActionService(
	actionRepo repository.PostActionRepo,
	postRepo repository.PostRepo,
	userRepo repository.UserRepo,
) PostActionService {
	return &postActionServiceImpl{
		actionRepo: actionRepo,
		postRepo:   postRepo,
		userRepo:   userRepo,
	}
}

// ToggleLike 点赞开关：已赞则取消，未赞则点赞。
// 先查后插只是优化，(user_id, post_id) 唯一索引才是正确性保证；
// 并发下撞唯一键按"已点赞"处理
func (s *postActionServiceImpl) ToggleLike(ctx context.Context, userID, postID uint64) (bool, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return false, err
	}
	if post == nil {
		return false, ErrPostNotFound
	}

	liked, err := s.actionRepo.CheckLikeExists(ctx, userID, postID)
	if err != nil {
		return false, err
	}

	if liked {
		if err = s.actionRepo.DeleteLike(ctx, userID, postID); err != nil {
			return false, err
		}
		return false, nil
	}

	like := &model.Like{UserID: userID, PostID: postID, CreatedAt: time.Now()}
	if err = s.actionRepo.CreateLike(ctx, like); err != nil {
		if isDuplicateError(err) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

func (s *postActionServiceImpl) AddComment(ctx context.Context, userID, postID uint64, content string) (*dto.CommentDTO, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrCommentEmpty
	}
	if utf8.RuneCountInString(trimmed) > consts.MaxCommentContentLen {
		return nil, ErrCommentTooLong
	}

	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	comment := &model.Comment{
		UserID:    userID,
		PostID:    postID,
		Content:   trimmed,
		CreatedAt: time.Now(),
	}
	if err = s.actionRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	comment.User = *user
	return toCommentDTO(comment), nil
}

// ListComments 按创建时间升序返回帖子评论
func (s *postActionServiceImpl) ListComments(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comments, err := s.actionRepo.GetCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		result = append(result, toCommentDTO(comment))
	}
	return result, nil
}

func toCommentDTO(comment *model.Comment) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:        comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Username:  comment.User.Username,
		AvatarURL: comment.User.AvatarURL,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	}
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}
