package dto

// CreatePostDTO 发帖请求，正文与图片至少其一
type CreatePostDTO struct {
	Content     string  `json:"content"`
	ImageBase64 *string `json:"imageBase64"`
}

// RepostDTO 转发请求
type RepostDTO struct {
	Comment *string `json:"comment"`
}

// OriginalPostDTO 转发时内嵌的原帖（只解析一层）
type OriginalPostDTO struct {
	ID          uint64  `json:"id"`
	UserID      uint64  `json:"user_id"`
	Username    string  `json:"username"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	Content     string  `json:"content"`
	ImageBase64 *string `json:"image_base64"`
	CreatedAt   string  `json:"created_at"`
}

// PostDTO 信息流条目，带聚合计数
type PostDTO struct {
	ID            uint64  `json:"id"`
	UserID        uint64  `json:"user_id"`
	Username      string  `json:"username"`
	AvatarURL     *string `json:"avatar_url,omitempty"`
	Content       string  `json:"content"`
	ImageBase64   *string `json:"image_base64"`
	RepostOf      *uint64 `json:"repost_of,omitempty"`
	RepostComment *string `json:"repost_comment,omitempty"`
	CreatedAt     string  `json:"created_at"`

	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
	RepostCount  int64 `json:"repost_count"`
	UserLiked    bool  `json:"user_liked"`

	Original *OriginalPostDTO `json:"original,omitempty"`
}

// LikeResultDTO 点赞切换结果
type LikeResultDTO struct {
	Liked bool `json:"liked"`
}

// TrendingTagDTO 热门标签
type TrendingTagDTO struct {
	Tag       string `json:"tag"`
	PostCount int64  `json:"post_count"`
}
