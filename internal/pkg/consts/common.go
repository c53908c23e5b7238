package consts

import "time"

const (
	// FeedLimit 信息流单次返回上限
	FeedLimit = 50
	// SearchLimit 搜索结果上限
	SearchLimit = 50
	// TrendingLimit 热门标签数量
	TrendingLimit = 10

	// MaxPostContentLen 帖子正文最大长度（按字符计）
	MaxPostContentLen = 280
	// MaxCommentContentLen 评论最大长度
	MaxCommentContentLen = 500

	// StoryLifetime 快拍可见窗口
	StoryLifetime = 24 * time.Hour
	// TrendingWindow 热门标签统计窗口
	TrendingWindow = 7 * 24 * time.Hour
)
