package service

import (
	"errors"
	"net/http"
)

var (
	ErrParamInvalid        = errors.New("参数错误")
	ErrUserNotFound        = errors.New("用户不存在")
	ErrUsernameExist       = errors.New("用户名已存在")
	ErrEmailExist          = errors.New("邮箱已注册")
	ErrPasswordIncorrect   = errors.New("用户名或密码错误")
	ErrPostNotFound        = errors.New("帖子不存在")
	ErrPostEmpty           = errors.New("帖子需要正文或图片")
	ErrPostTooLong         = errors.New("帖子正文不能超过280字符")
	ErrCommentEmpty        = errors.New("评论内容不能为空")
	ErrCommentTooLong      = errors.New("评论不能超过500字符")
	ErrRepostCommentLong   = errors.New("转发评语不能超过280字符")
	ErrStoryNotFound       = errors.New("快拍不存在")
	ErrStoryImageRequired  = errors.New("快拍需要图片")
	ErrAlreadyReposted     = errors.New("已转发过该帖子")
	ErrSearchQueryRequired = errors.New("搜索关键词不能为空")
	ErrFileNotSupported    = errors.New("不支持的文件类型")
	UnauthorizedError      = errors.New("权限不足")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

// ErrorMap 服务错误到 HTTP 状态码的映射
var ErrorMap = map[error]int{
	ErrParamInvalid:        http.StatusBadRequest,
	ErrUserNotFound:        http.StatusNotFound,
	ErrUsernameExist:       http.StatusBadRequest,
	ErrEmailExist:          http.StatusBadRequest,
	ErrPasswordIncorrect:   http.StatusUnauthorized,
	ErrPostNotFound:        http.StatusNotFound,
	ErrPostEmpty:           http.StatusBadRequest,
	ErrPostTooLong:         http.StatusBadRequest,
	ErrCommentEmpty:        http.StatusBadRequest,
	ErrCommentTooLong:      http.StatusBadRequest,
	ErrRepostCommentLong:   http.StatusBadRequest,
	ErrStoryNotFound:       http.StatusNotFound,
	ErrStoryImageRequired:  http.StatusBadRequest,
	ErrAlreadyReposted:     http.StatusBadRequest,
	ErrSearchQueryRequired: http.StatusBadRequest,
	ErrFileNotSupported:    http.StatusBadRequest,
	UnauthorizedError:      http.StatusUnauthorized,
	UnExpectedError:        http.StatusInternalServerError,
}
