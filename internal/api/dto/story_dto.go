package dto

// StoryCreateDTO 上传快拍请求
type StoryCreateDTO struct {
	ImageBase64 string  `json:"imageBase64"`
	Caption     *string `json:"caption"`
}

// StoryDTO 快拍详情，Viewed 针对当前查看者
type StoryDTO struct {
	ID          uint64  `json:"id"`
	UserID      uint64  `json:"user_id"`
	Username    string  `json:"username"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	ImageBase64 string  `json:"image_base64"`
	Caption     *string `json:"caption"`
	CreatedAt   string  `json:"created_at"`
	Viewed      bool    `json:"viewed"`
}

// StoryGroupDTO 按作者聚合的快拍组，纯读侧聚合
type StoryGroupDTO struct {
	UserID    uint64      `json:"user_id"`
	Username  string      `json:"username"`
	AvatarURL *string     `json:"avatar_url,omitempty"`
	HasUnseen bool        `json:"has_unseen"`
	Stories   []*StoryDTO `json:"stories"`
}

// StoryCleanupDTO 清理结果
type StoryCleanupDTO struct {
	Deleted int64 `json:"deleted"`
}

// StoryViewDTO 标记已看结果
type StoryViewDTO struct {
	Success bool `json:"success"`
}
