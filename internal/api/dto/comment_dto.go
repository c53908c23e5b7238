package dto

// CommentCreateDTO 创建评论请求
type CommentCreateDTO struct {
	Content string `json:"content" binding:"required"`
}

// CommentDTO 评论详情
type CommentDTO struct {
	ID        uint64  `json:"id"`
	PostID    uint64  `json:"post_id"`
	UserID    uint64  `json:"user_id"`
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Content   string  `json:"content"`
	CreatedAt string  `json:"created_at"`
}
