package consts

const (
	TokenBlockKey    = "auth:token:block:"
	TrendingTagsKey  = "hashtag:trending"
	StoryCleanupLock = "story:cleanup:lock"
)
